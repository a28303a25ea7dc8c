package repository

import (
	"errors"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRecordRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRecordRepository(db *gorm.DB) *DefaultPaymentRecordRepository {
	return &DefaultPaymentRecordRepository{DB: db}
}

func (r *DefaultPaymentRecordRepository) GetPaymentRecordByWorkOrderID(workOrderID string) (*domain.PaymentRecord, error) {
	var model models.PaymentRecordModel
	if err := r.DB.First(&model, "work_order_id = ?", workOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentRecordNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPaymentRecord(&model), nil
}

func (r *DefaultPaymentRecordRepository) SavePaymentRecord(record *domain.PaymentRecord) error {
	return r.DB.Save(mappers.ToGORMPaymentRecord(record)).Error
}
