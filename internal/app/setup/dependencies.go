package setup

import (
	"fmt"

	"github.com/LavaJover/shvark-payment-service/internal/config"
	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config    *config.PaymentConfig
	DB        *gorm.DB
	Publisher *kafka.NotificationPublisher
	Metrics   *metrics.PaymentMetrics

	Repositories *Repositories
}

type Repositories struct {
	WorkOrderRepo domain.WorkOrderRepository
	PaymentRepo   domain.PaymentRecordRepository
	StatusLogRepo domain.StatusLogRepository
	RunRepo       domain.EscalationRunRepository
}

func InitializeDependencies(cfg *config.PaymentConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	publisher := kafka.NewNotificationPublisher(brokers, cfg.KafkaService.PaymentTopic, cfg.KafkaService.AlertTopic)

	repos := &Repositories{
		WorkOrderRepo: repository.NewDefaultWorkOrderRepository(db),
		PaymentRepo:   repository.NewDefaultPaymentRecordRepository(db),
		StatusLogRepo: repository.NewDefaultStatusLogRepository(db),
		RunRepo:       repository.NewDefaultEscalationRunRepository(db),
	}

	return &Dependencies{
		Config:       cfg,
		DB:           db,
		Publisher:    publisher,
		Metrics:      metrics.NewPaymentMetrics(),
		Repositories: repos,
	}, nil
}
