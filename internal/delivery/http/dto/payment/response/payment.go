package response

import (
	"time"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	paymentdto "github.com/LavaJover/shvark-payment-service/internal/usecase/dto/payment"
	"github.com/LavaJover/shvark-payment-service/internal/usecase/fees"
)

type FeeItem struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

type FeeBreakdown struct {
	BaseFee              float64   `json:"base_fee"`
	DiscountPercent      float64   `json:"discount_percent"`
	DiscountAmount       float64   `json:"discount_amount"`
	DiscountedBaseFee    float64   `json:"discounted_base_fee"`
	UrgentFeePercent     float64   `json:"urgent_fee_percent"`
	UrgentFee            float64   `json:"urgent_fee"`
	TotalFee             float64   `json:"total_fee"`
	PlatformFeePercent   float64   `json:"platform_fee_percent"`
	PlatformFee          float64   `json:"platform_fee"`
	TaxPercent           float64   `json:"tax_percent"`
	TaxAmount            float64   `json:"tax_amount"`
	WorkerPayment        float64   `json:"worker_payment"`
	CustomerTotalPayment float64   `json:"customer_total_payment"`
	Items                []FeeItem `json:"items,omitempty"`
}

type GradeAdjustment struct {
	GradeLevel            int     `json:"grade_level"`
	GradeName             string  `json:"grade_name,omitempty"`
	Multiplier            float64 `json:"multiplier"`
	AdjustedPlatformFee   float64 `json:"adjusted_platform_fee"`
	AdjustedWorkerPayment float64 `json:"adjusted_worker_payment"`
}

type CalculatePayment struct {
	Valid           bool             `json:"is_valid"`
	Errors          []string         `json:"errors,omitempty"`
	Warnings        []string         `json:"warnings,omitempty"`
	Breakdown       *FeeBreakdown    `json:"breakdown,omitempty"`
	GradeAdjustment *GradeAdjustment `json:"grade_adjustment,omitempty"`
}

type UpdatePaymentStatus struct {
	WorkOrderID    string   `json:"work_order_id"`
	Status         string   `json:"status"`
	PreviousStatus string   `json:"previous_status"`
	Warnings       []string `json:"warnings,omitempty"`
}

type BulkItemResult struct {
	WorkOrderID string `json:"work_order_id"`
	Success     bool   `json:"success"`
	Status      string `json:"status,omitempty"`
	Error       string `json:"error,omitempty"`
}

type BulkUpdatePaymentStatus struct {
	Results   []BulkItemResult `json:"results"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

type StatusLogEntry struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status"`
	UpdatedBy      string    `json:"updated_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type Payment struct {
	WorkOrderID   string           `json:"work_order_id"`
	Status        string           `json:"status"`
	Breakdown     FeeBreakdown     `json:"breakdown"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	TransactionID string           `json:"transaction_id,omitempty"`
	Amount        float64          `json:"amount,omitempty"`
	PaidAt        *time.Time       `json:"paid_at,omitempty"`
	FailedAt      *time.Time       `json:"failed_at,omitempty"`
	RefundedAt    *time.Time       `json:"refunded_at,omitempty"`
	CancelledAt   *time.Time       `json:"cancelled_at,omitempty"`
	History       []StatusLogEntry `json:"history"`
}

type ValidTransitions struct {
	Status      string   `json:"status"`
	Transitions []string `json:"transitions"`
}

type EscalationRun struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	ProcessedCount int       `json:"processed_count"`
	IncreasedCount int       `json:"increased_count"`
	ErrorCount     int       `json:"error_count"`
	Errors         []string  `json:"errors,omitempty"`
	DurationMs     int64     `json:"duration_ms"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
}

func FromFeeBreakdown(breakdown *domain.FeeBreakdown) *FeeBreakdown {
	if breakdown == nil {
		return nil
	}
	items := make([]FeeItem, len(breakdown.Items))
	for i, item := range breakdown.Items {
		items[i] = FeeItem{Label: item.Label, Percent: item.Percent, Amount: item.Amount}
	}
	return &FeeBreakdown{
		BaseFee:              breakdown.BaseFee,
		DiscountPercent:      breakdown.DiscountPercent,
		DiscountAmount:       breakdown.DiscountAmount,
		DiscountedBaseFee:    breakdown.DiscountedBaseFee,
		UrgentFeePercent:     breakdown.UrgentFeePercent,
		UrgentFee:            breakdown.UrgentFee,
		TotalFee:             breakdown.TotalFee,
		PlatformFeePercent:   breakdown.PlatformFeePercent,
		PlatformFee:          breakdown.PlatformFee,
		TaxPercent:           breakdown.TaxPercent,
		TaxAmount:            breakdown.TaxAmount,
		WorkerPayment:        breakdown.WorkerPayment,
		CustomerTotalPayment: breakdown.CustomerTotalPayment,
		Items:                items,
	}
}

func FromGradeAdjusted(adjusted *fees.GradeAdjustedBreakdown) *GradeAdjustment {
	if adjusted == nil {
		return nil
	}
	return &GradeAdjustment{
		GradeLevel:            adjusted.GradeLevel,
		GradeName:             adjusted.GradeName,
		Multiplier:            adjusted.GradeMultiplier,
		AdjustedPlatformFee:   adjusted.AdjustedPlatformFee,
		AdjustedWorkerPayment: adjusted.AdjustedWorkerPayment,
	}
}

func FromPaymentOutput(output *paymentdto.PaymentOutput) *Payment {
	record := output.Record
	history := make([]StatusLogEntry, len(output.History))
	for i, entry := range output.History {
		history[i] = StatusLogEntry{
			ID:             entry.ID,
			Status:         string(entry.Status),
			PreviousStatus: string(entry.PreviousStatus),
			UpdatedBy:      entry.UpdatedBy,
			CreatedAt:      entry.CreatedAt,
		}
	}
	return &Payment{
		WorkOrderID:   record.WorkOrderID,
		Status:        string(record.Status),
		Breakdown:     *FromFeeBreakdown(&record.Breakdown),
		PaymentMethod: string(record.PaymentMethod),
		TransactionID: record.TransactionID,
		Amount:        record.Amount,
		PaidAt:        record.PaidAt,
		FailedAt:      record.FailedAt,
		RefundedAt:    record.RefundedAt,
		CancelledAt:   record.CancelledAt,
		History:       history,
	}
}

func FromEscalationRun(run *domain.EscalationRun) *EscalationRun {
	return &EscalationRun{
		ID:             run.ID,
		Status:         string(run.Status),
		ProcessedCount: run.ProcessedCount,
		IncreasedCount: run.IncreasedCount,
		ErrorCount:     run.ErrorCount,
		Errors:         run.Errors,
		DurationMs:     run.DurationMs,
		StartedAt:      run.StartedAt,
		FinishedAt:     run.FinishedAt,
	}
}
