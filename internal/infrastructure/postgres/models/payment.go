package models

import (
	"time"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
)

type PaymentRecordModel struct {
	ID          string               `gorm:"primaryKey;type:uuid"`
	WorkOrderID string               `gorm:"type:uuid;uniqueIndex"`
	Status      domain.PaymentStatus `gorm:"index"`

	// latest fee breakdown mirror
	BaseFee              float64
	DiscountPercent      float64
	DiscountAmount       float64
	DiscountedBaseFee    float64
	UrgentFeePercent     float64
	UrgentFee            float64
	TotalFee             float64
	PlatformFeePercent   float64
	PlatformFee          float64
	TaxPercent           float64
	TaxAmount            float64
	WorkerPayment        float64
	CustomerTotalPayment float64

	PaymentMethod string
	TransactionID string
	Amount        float64
	Notes         string
	FailureReason string
	RefundReason  string

	PaidAt      *time.Time
	FailedAt    *time.Time
	RefundedAt  *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PaymentStatusLogModel struct {
	ID             string               `gorm:"primaryKey"`
	WorkOrderID    string               `gorm:"type:uuid;not null;index"`
	Status         domain.PaymentStatus `gorm:"not null"`
	PreviousStatus domain.PaymentStatus
	UpdatedBy      string
	CreatedAt      time.Time `gorm:"not null;index"`
}

type EscalationRunModel struct {
	ID             string `gorm:"primaryKey"`
	Status         string `gorm:"not null;index"`
	ProcessedCount int
	IncreasedCount int
	ErrorCount     int
	Errors         string `gorm:"type:jsonb"`
	DurationMs     int64
	StartedAt      time.Time `gorm:"index"`
	FinishedAt     time.Time
}
