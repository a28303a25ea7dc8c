package mappers

import (
	"encoding/json"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/postgres/models"
)

func ToDomainPaymentRecord(model *models.PaymentRecordModel) *domain.PaymentRecord {
	return &domain.PaymentRecord{
		ID:          model.ID,
		WorkOrderID: model.WorkOrderID,
		Status:      model.Status,
		Breakdown: domain.FeeBreakdown{
			BaseFee:              model.BaseFee,
			DiscountPercent:      model.DiscountPercent,
			DiscountAmount:       model.DiscountAmount,
			DiscountedBaseFee:    model.DiscountedBaseFee,
			UrgentFeePercent:     model.UrgentFeePercent,
			UrgentFee:            model.UrgentFee,
			TotalFee:             model.TotalFee,
			PlatformFeePercent:   model.PlatformFeePercent,
			PlatformFee:          model.PlatformFee,
			TaxPercent:           model.TaxPercent,
			TaxAmount:            model.TaxAmount,
			WorkerPayment:        model.WorkerPayment,
			CustomerTotalPayment: model.CustomerTotalPayment,
		},
		PaymentMethod: domain.PaymentMethod(model.PaymentMethod),
		TransactionID: model.TransactionID,
		Amount:        model.Amount,
		Notes:         model.Notes,
		FailureReason: model.FailureReason,
		RefundReason:  model.RefundReason,
		PaidAt:        model.PaidAt,
		FailedAt:      model.FailedAt,
		RefundedAt:    model.RefundedAt,
		CancelledAt:   model.CancelledAt,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMPaymentRecord(record *domain.PaymentRecord) *models.PaymentRecordModel {
	return &models.PaymentRecordModel{
		ID:          record.ID,
		WorkOrderID: record.WorkOrderID,
		Status:      record.Status,

		BaseFee:              record.Breakdown.BaseFee,
		DiscountPercent:      record.Breakdown.DiscountPercent,
		DiscountAmount:       record.Breakdown.DiscountAmount,
		DiscountedBaseFee:    record.Breakdown.DiscountedBaseFee,
		UrgentFeePercent:     record.Breakdown.UrgentFeePercent,
		UrgentFee:            record.Breakdown.UrgentFee,
		TotalFee:             record.Breakdown.TotalFee,
		PlatformFeePercent:   record.Breakdown.PlatformFeePercent,
		PlatformFee:          record.Breakdown.PlatformFee,
		TaxPercent:           record.Breakdown.TaxPercent,
		TaxAmount:            record.Breakdown.TaxAmount,
		WorkerPayment:        record.Breakdown.WorkerPayment,
		CustomerTotalPayment: record.Breakdown.CustomerTotalPayment,

		PaymentMethod: string(record.PaymentMethod),
		TransactionID: record.TransactionID,
		Amount:        record.Amount,
		Notes:         record.Notes,
		FailureReason: record.FailureReason,
		RefundReason:  record.RefundReason,
		PaidAt:        record.PaidAt,
		FailedAt:      record.FailedAt,
		RefundedAt:    record.RefundedAt,
		CancelledAt:   record.CancelledAt,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

func ToDomainStatusLog(model *models.PaymentStatusLogModel) *domain.PaymentStatusLog {
	return &domain.PaymentStatusLog{
		ID:             model.ID,
		WorkOrderID:    model.WorkOrderID,
		Status:         model.Status,
		PreviousStatus: model.PreviousStatus,
		UpdatedBy:      model.UpdatedBy,
		CreatedAt:      model.CreatedAt,
	}
}

func ToGORMStatusLog(entry *domain.PaymentStatusLog) *models.PaymentStatusLogModel {
	return &models.PaymentStatusLogModel{
		ID:             entry.ID,
		WorkOrderID:    entry.WorkOrderID,
		Status:         entry.Status,
		PreviousStatus: entry.PreviousStatus,
		UpdatedBy:      entry.UpdatedBy,
		CreatedAt:      entry.CreatedAt,
	}
}

func ToDomainEscalationRun(model *models.EscalationRunModel) *domain.EscalationRun {
	var runErrors []string
	if model.Errors != "" {
		// stored as a jsonb array; a broken payload degrades to an empty list
		_ = json.Unmarshal([]byte(model.Errors), &runErrors)
	}
	return &domain.EscalationRun{
		ID:             model.ID,
		Status:         domain.EscalationRunStatus(model.Status),
		ProcessedCount: model.ProcessedCount,
		IncreasedCount: model.IncreasedCount,
		ErrorCount:     model.ErrorCount,
		Errors:         runErrors,
		DurationMs:     model.DurationMs,
		StartedAt:      model.StartedAt,
		FinishedAt:     model.FinishedAt,
	}
}

func ToGORMEscalationRun(run *domain.EscalationRun) *models.EscalationRunModel {
	encoded, err := json.Marshal(run.Errors)
	if err != nil {
		encoded = []byte("[]")
	}
	return &models.EscalationRunModel{
		ID:             run.ID,
		Status:         string(run.Status),
		ProcessedCount: run.ProcessedCount,
		IncreasedCount: run.IncreasedCount,
		ErrorCount:     run.ErrorCount,
		Errors:         string(encoded),
		DurationMs:     run.DurationMs,
		StartedAt:      run.StartedAt,
		FinishedAt:     run.FinishedAt,
	}
}
