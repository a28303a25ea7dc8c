package payment

import (
	"errors"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	paymentdto "github.com/LavaJover/shvark-payment-service/internal/usecase/dto/payment"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GetPayment returns the payment record of one work order together with its
// full transition history, oldest first.
func (uc *DefaultPaymentUsecase) GetPayment(workOrderID string) (*paymentdto.PaymentOutput, error) {
	if workOrderID == "" {
		return nil, status.Error(codes.InvalidArgument, "work order id is required")
	}

	record, err := uc.PaymentRepo.GetPaymentRecordByWorkOrderID(workOrderID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentRecordNotFound) {
			return nil, status.Errorf(codes.NotFound, "payment record for work order %s not found", workOrderID)
		}
		return nil, status.Errorf(codes.Internal, "failed to load payment record: %v", err)
	}

	history, err := uc.StatusLogRepo.GetStatusLogsByWorkOrderID(workOrderID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to load status history: %v", err)
	}

	return &paymentdto.PaymentOutput{Record: record, History: history}, nil
}

// ValidTransitions returns the allowed target statuses for a current status,
// ["pending"] for anything unknown.
func (uc *DefaultPaymentUsecase) ValidTransitions(current string) []string {
	transitions := domain.ValidPaymentTransitions(domain.PaymentStatus(current))
	result := make([]string, len(transitions))
	for i, s := range transitions {
		result[i] = string(s)
	}
	return result
}
