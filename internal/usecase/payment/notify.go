package payment

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
)

func transitionMessage(status domain.PaymentStatus) string {
	switch status {
	case domain.PaymentPending:
		return "payment is awaiting settlement"
	case domain.PaymentProcessing:
		return "payment is being processed"
	case domain.PaymentPaid:
		return "payment has been settled"
	case domain.PaymentFailed:
		return "payment attempt failed"
	case domain.PaymentRefunded:
		return "payment has been refunded"
	case domain.PaymentCancelled:
		return "payment has been cancelled"
	}
	return fmt.Sprintf("payment status changed to %s", status)
}

// dispatchTransitionEvents publishes status notifications: the customer is
// told about every transition, the worker about paid and cancelled ones.
// Dispatch is fire-and-forget; failures are logged and never roll back the
// committed transition.
func (uc *DefaultPaymentUsecase) dispatchTransitionEvents(workOrder *domain.WorkOrder, update *domain.StatusUpdate) {
	if uc.Publisher == nil {
		return
	}

	target := update.Log.Status
	events := []domain.PaymentEvent{{
		WorkOrderID:    workOrder.ID,
		Recipient:      domain.RecipientCustomer,
		RecipientID:    workOrder.CustomerID,
		Status:         target,
		PreviousStatus: update.Log.PreviousStatus,
		Amount:         update.Record.Amount,
		Message:        transitionMessage(target),
		OccurredAt:     time.Now(),
	}}

	if target == domain.PaymentPaid || target == domain.PaymentCancelled {
		events = append(events, domain.PaymentEvent{
			WorkOrderID:    workOrder.ID,
			Recipient:      domain.RecipientWorker,
			RecipientID:    workOrder.ContractorID,
			Status:         target,
			PreviousStatus: update.Log.PreviousStatus,
			Amount:         update.Record.Amount,
			Message:        transitionMessage(target),
			OccurredAt:     time.Now(),
		})
	}

	for _, event := range events {
		go func(e domain.PaymentEvent) {
			if err := uc.Publisher.PublishPaymentEvent(e); err != nil {
				slog.Error("failed to publish payment event",
					"work_order_id", e.WorkOrderID,
					"recipient", string(e.Recipient),
					"status", string(e.Status),
					"error", err.Error())
			}
		}(event)
	}
}
