package paymentdto

import (
	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/LavaJover/shvark-payment-service/internal/usecase/fees"
)

type CalculateOutput struct {
	Valid         bool
	Errors        []string
	Warnings      []string
	Breakdown     *domain.FeeBreakdown
	GradeAdjusted *fees.GradeAdjustedBreakdown
}

type TransitionOutput struct {
	WorkOrderID    string
	Status         domain.PaymentStatus
	PreviousStatus domain.PaymentStatus
	Warnings       []string
}

type BulkItemResult struct {
	WorkOrderID string
	Success     bool
	Status      string
	Error       string
}

type BulkTransitionOutput struct {
	Results   []BulkItemResult
	Succeeded int
	Failed    int
}

type PaymentOutput struct {
	Record  *domain.PaymentRecord
	History []*domain.PaymentStatusLog
}
