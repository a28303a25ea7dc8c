package repository

import (
	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultEscalationRunRepository struct {
	DB *gorm.DB
}

func NewDefaultEscalationRunRepository(db *gorm.DB) *DefaultEscalationRunRepository {
	return &DefaultEscalationRunRepository{DB: db}
}

func (r *DefaultEscalationRunRepository) SaveEscalationRun(run *domain.EscalationRun) error {
	return r.DB.Create(mappers.ToGORMEscalationRun(run)).Error
}

func (r *DefaultEscalationRunRepository) GetRecentEscalationRuns(limit int) ([]*domain.EscalationRun, error) {
	var runModels []models.EscalationRunModel
	err := r.DB.
		Order("started_at DESC").
		Limit(limit).
		Find(&runModels).Error
	if err != nil {
		return nil, err
	}

	runs := make([]*domain.EscalationRun, len(runModels))
	for i := range runModels {
		runs[i] = mappers.ToDomainEscalationRun(&runModels[i])
	}
	return runs, nil
}
