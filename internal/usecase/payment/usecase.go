package payment

import (
	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/metrics"
	paymentdto "github.com/LavaJover/shvark-payment-service/internal/usecase/dto/payment"
)

// MaxBulkUpdates caps the number of entries accepted by one bulk call.
const MaxBulkUpdates = 100

type PaymentUsecase interface {
	Calculate(input *paymentdto.CalculateInput) (*paymentdto.CalculateOutput, error)
	Transition(input *paymentdto.TransitionInput) (*paymentdto.TransitionOutput, error)
	BulkTransition(input *paymentdto.BulkTransitionInput) (*paymentdto.BulkTransitionOutput, error)
	GetPayment(workOrderID string) (*paymentdto.PaymentOutput, error)
	ValidTransitions(status string) []string
}

type DefaultPaymentUsecase struct {
	WorkOrderRepo domain.WorkOrderRepository
	PaymentRepo   domain.PaymentRecordRepository
	StatusLogRepo domain.StatusLogRepository
	Publisher     domain.NotificationPublisher
	Metrics       *metrics.PaymentMetrics
}

func NewDefaultPaymentUsecase(
	workOrderRepo domain.WorkOrderRepository,
	paymentRepo domain.PaymentRecordRepository,
	statusLogRepo domain.StatusLogRepository,
	publisher domain.NotificationPublisher,
	paymentMetrics *metrics.PaymentMetrics) *DefaultPaymentUsecase {

	return &DefaultPaymentUsecase{
		WorkOrderRepo: workOrderRepo,
		PaymentRepo:   paymentRepo,
		StatusLogRepo: statusLogRepo,
		Publisher:     publisher,
		Metrics:       paymentMetrics,
	}
}
