package payment

import (
	"errors"
	"time"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	paymentdto "github.com/LavaJover/shvark-payment-service/internal/usecase/dto/payment"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Transition validates and applies one payment-status change: work-order
// status, payment-record mirror and audit log are committed together, then
// notifications go out best-effort.
func (uc *DefaultPaymentUsecase) Transition(input *paymentdto.TransitionInput) (*paymentdto.TransitionOutput, error) {
	paidAt, warnings, err := validateTransitionInput(input)
	if err != nil {
		return nil, err
	}

	workOrder, err := uc.WorkOrderRepo.GetWorkOrderByID(input.WorkOrderID)
	if err != nil {
		if errors.Is(err, domain.ErrWorkOrderNotFound) {
			return nil, status.Errorf(codes.NotFound, "work order %s not found", input.WorkOrderID)
		}
		return nil, status.Errorf(codes.Internal, "failed to load work order: %v", err)
	}

	update, err := uc.buildStatusUpdate(workOrder, input, paidAt)
	if err != nil {
		return nil, err
	}

	if err := uc.WorkOrderRepo.ApplyStatusUpdates([]*domain.StatusUpdate{update}); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to apply status update: %v", err)
	}

	uc.recordTransitionMetrics(update)
	uc.dispatchTransitionEvents(workOrder, update)

	return &paymentdto.TransitionOutput{
		WorkOrderID:    workOrder.ID,
		Status:         update.Log.Status,
		PreviousStatus: update.Log.PreviousStatus,
		Warnings:       warnings,
	}, nil
}

// buildStatusUpdate checks the transition table and assembles the mutation of
// one transition: updated work order, payment-record mirror and log entry.
func (uc *DefaultPaymentUsecase) buildStatusUpdate(
	workOrder *domain.WorkOrder,
	input *paymentdto.TransitionInput,
	paidAt *time.Time,
) (*domain.StatusUpdate, error) {

	target := domain.PaymentStatus(input.Status)
	previous := workOrder.PaymentStatus

	if !domain.CanTransitPayment(previous, target) {
		return nil, status.Errorf(codes.InvalidArgument,
			"cannot transit payment of work order %s from %q to %q, allowed: %v",
			workOrder.ID, previous, target, domain.ValidPaymentTransitions(previous))
	}

	record, err := uc.loadOrCreateRecord(workOrder.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to load payment record: %v", err)
	}

	now := time.Now()
	record.Status = target
	record.UpdatedAt = now

	switch target {
	case domain.PaymentPaid:
		if paidAt == nil {
			paidAt = &now
		}
		record.PaidAt = paidAt
		if input.PaymentMethod != "" {
			record.PaymentMethod = domain.PaymentMethod(input.PaymentMethod)
		}
		if input.TransactionID != "" {
			record.TransactionID = input.TransactionID
		}
		if input.Amount != nil {
			record.Amount = *input.Amount
		}
		if input.Notes != "" {
			record.Notes = input.Notes
		}
	case domain.PaymentFailed:
		record.FailedAt = &now
		record.FailureReason = input.FailureReason
	case domain.PaymentRefunded:
		record.RefundedAt = &now
		record.RefundReason = input.RefundReason
		if input.Amount != nil {
			record.Amount = *input.Amount
		}
	case domain.PaymentCancelled:
		record.CancelledAt = &now
		record.Notes = input.Notes
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to init id generator: %v", err)
	}

	updated := *workOrder
	updated.PaymentStatus = target
	updated.UpdatedAt = now

	return &domain.StatusUpdate{
		WorkOrder: &updated,
		Record:    record,
		Log: &domain.PaymentStatusLog{
			ID:             idGenerator(),
			WorkOrderID:    workOrder.ID,
			Status:         target,
			PreviousStatus: previous,
			UpdatedBy:      input.UpdatedBy,
			CreatedAt:      now,
		},
	}, nil
}

func (uc *DefaultPaymentUsecase) loadOrCreateRecord(workOrderID string) (*domain.PaymentRecord, error) {
	record, err := uc.PaymentRepo.GetPaymentRecordByWorkOrderID(workOrderID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, domain.ErrPaymentRecordNotFound) {
		return nil, err
	}
	now := time.Now()
	return &domain.PaymentRecord{
		ID:          uuid.New().String(),
		WorkOrderID: workOrderID,
		Status:      domain.PaymentPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (uc *DefaultPaymentUsecase) recordTransitionMetrics(update *domain.StatusUpdate) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordTransition(string(update.Log.PreviousStatus), string(update.Log.Status))
	if update.Log.Status == domain.PaymentPaid {
		uc.Metrics.RecordPaidAmount(update.Record.Amount)
	}
}
