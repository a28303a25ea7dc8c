package repository

import (
	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultStatusLogRepository struct {
	DB *gorm.DB
}

func NewDefaultStatusLogRepository(db *gorm.DB) *DefaultStatusLogRepository {
	return &DefaultStatusLogRepository{DB: db}
}

func (r *DefaultStatusLogRepository) GetStatusLogsByWorkOrderID(workOrderID string) ([]*domain.PaymentStatusLog, error) {
	var logModels []models.PaymentStatusLogModel
	err := r.DB.
		Where("work_order_id = ?", workOrderID).
		Order("created_at").
		Find(&logModels).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.PaymentStatusLog, len(logModels))
	for i := range logModels {
		entries[i] = mappers.ToDomainStatusLog(&logModels[i])
	}
	return entries, nil
}
