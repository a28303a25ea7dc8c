package mappers

import (
	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/postgres/models"
)

func ToDomainWorkOrder(model *models.WorkOrderModel) *domain.WorkOrder {
	return &domain.WorkOrder{
		ID:            model.ID,
		SellerID:      model.SellerID,
		ContractorID:  model.ContractorID,
		CustomerID:    model.CustomerID,
		Title:         model.Title,
		Status:        model.Status,
		PaymentStatus: model.PaymentStatus,

		BaseFee:            model.BaseFee,
		UrgentFeePercent:   model.UrgentFeePercent,
		PlatformFeePercent: model.PlatformFeePercent,
		DiscountPercent:    model.DiscountPercent,
		TaxPercent:         model.TaxPercent,

		UrgentFeeEscalationEnabled: model.UrgentFeeEscalationEnabled,
		CurrentUrgentFeePercent:    model.CurrentUrgentFeePercent,
		UrgentFeeIncreaseStartAt:   model.UrgentFeeIncreaseStartAt,
		UrgentFeeMaxPercent:        model.UrgentFeeMaxPercent,
		UrgentFeeIncreaseStep:      model.UrgentFeeIncreaseStep,
		UrgentFeeIncreaseCount:     model.UrgentFeeIncreaseCount,
		LastUrgentFeeUpdate:        model.LastUrgentFeeUpdate,
		UrgentFeeMaxReachedAt:      model.UrgentFeeMaxReachedAt,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMWorkOrder(workOrder *domain.WorkOrder) *models.WorkOrderModel {
	return &models.WorkOrderModel{
		ID:            workOrder.ID,
		SellerID:      workOrder.SellerID,
		ContractorID:  workOrder.ContractorID,
		CustomerID:    workOrder.CustomerID,
		Title:         workOrder.Title,
		Status:        workOrder.Status,
		PaymentStatus: workOrder.PaymentStatus,

		BaseFee:            workOrder.BaseFee,
		UrgentFeePercent:   workOrder.UrgentFeePercent,
		PlatformFeePercent: workOrder.PlatformFeePercent,
		DiscountPercent:    workOrder.DiscountPercent,
		TaxPercent:         workOrder.TaxPercent,

		UrgentFeeEscalationEnabled: workOrder.UrgentFeeEscalationEnabled,
		CurrentUrgentFeePercent:    workOrder.CurrentUrgentFeePercent,
		UrgentFeeIncreaseStartAt:   workOrder.UrgentFeeIncreaseStartAt,
		UrgentFeeMaxPercent:        workOrder.UrgentFeeMaxPercent,
		UrgentFeeIncreaseStep:      workOrder.UrgentFeeIncreaseStep,
		UrgentFeeIncreaseCount:     workOrder.UrgentFeeIncreaseCount,
		LastUrgentFeeUpdate:        workOrder.LastUrgentFeeUpdate,
		UrgentFeeMaxReachedAt:      workOrder.UrgentFeeMaxReachedAt,

		CreatedAt: workOrder.CreatedAt,
		UpdatedAt: workOrder.UpdatedAt,
	}
}
