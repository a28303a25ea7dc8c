package repository

import (
	"errors"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWorkOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultWorkOrderRepository(db *gorm.DB) *DefaultWorkOrderRepository {
	return &DefaultWorkOrderRepository{DB: db}
}

func (r *DefaultWorkOrderRepository) GetWorkOrderByID(workOrderID string) (*domain.WorkOrder, error) {
	var model models.WorkOrderModel
	if err := r.DB.First(&model, "id = ?", workOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainWorkOrder(&model), nil
}

// PageForEscalation walks open escalation-enabled work orders by id, which
// gives the scan a stable cursor.
func (r *DefaultWorkOrderRepository) PageForEscalation(afterID string, limit int) ([]*domain.WorkOrder, error) {
	var workOrderModels []models.WorkOrderModel
	err := r.DB.
		Where("status = ? AND urgent_fee_escalation_enabled = ?", domain.WorkOrderOpen, true).
		Where("id > ?", afterID).
		Order("id").
		Limit(limit).
		Find(&workOrderModels).Error
	if err != nil {
		return nil, err
	}

	workOrders := make([]*domain.WorkOrder, len(workOrderModels))
	for i := range workOrderModels {
		workOrders[i] = mappers.ToDomainWorkOrder(&workOrderModels[i])
	}
	return workOrders, nil
}

// ApplyUrgentFeeUpdates commits one escalation page in a single transaction.
// The increase counter is bumped in SQL and the max-reached stamp is written
// once, so replays of the same page cannot clear it.
func (r *DefaultWorkOrderRepository) ApplyUrgentFeeUpdates(updates []*domain.UrgentFeeUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			values := map[string]interface{}{
				"current_urgent_fee_percent": update.Percent,
				"last_urgent_fee_update":     update.UpdatedAt,
				"urgent_fee_increase_count":  gorm.Expr("urgent_fee_increase_count + 1"),
				"updated_at":                 update.UpdatedAt,
			}
			if update.ReachedMax {
				values["urgent_fee_max_reached_at"] = gorm.Expr("COALESCE(urgent_fee_max_reached_at, ?)", update.UpdatedAt)
			}
			if err := tx.Model(&models.WorkOrderModel{}).
				Where("id = ?", update.WorkOrderID).
				Updates(values).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyStatusUpdates commits work-order status, payment-record mirror and log
// entry of each transition together, one transaction per batch.
func (r *DefaultWorkOrderRepository) ApplyStatusUpdates(updates []*domain.StatusUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			if err := tx.Model(&models.WorkOrderModel{}).
				Where("id = ?", update.WorkOrder.ID).
				Updates(map[string]interface{}{
					"payment_status": update.WorkOrder.PaymentStatus,
					"updated_at":     update.WorkOrder.UpdatedAt,
				}).Error; err != nil {
				return err
			}
			if err := tx.Save(mappers.ToGORMPaymentRecord(update.Record)).Error; err != nil {
				return err
			}
			if err := tx.Create(mappers.ToGORMStatusLog(update.Log)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
