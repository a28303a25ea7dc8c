package models

import (
	"time"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
)

type WorkOrderModel struct {
	ID            string                `gorm:"primaryKey;type:uuid"`
	SellerID      string                `gorm:"type:uuid"`
	ContractorID  string                `gorm:"type:uuid"`
	CustomerID    string                `gorm:"type:uuid"`
	Title         string
	Status        domain.WorkOrderStatus `gorm:"index:idx_status_escalation"`
	PaymentStatus domain.PaymentStatus   `gorm:"index:idx_payment_status"`

	BaseFee            float64
	UrgentFeePercent   float64
	PlatformFeePercent float64
	DiscountPercent    float64
	TaxPercent         float64

	UrgentFeeEscalationEnabled bool       `gorm:"index:idx_status_escalation"`
	CurrentUrgentFeePercent    *float64
	UrgentFeeIncreaseStartAt   *time.Time
	UrgentFeeMaxPercent        float64
	UrgentFeeIncreaseStep      float64
	UrgentFeeIncreaseCount     int32
	LastUrgentFeeUpdate        *time.Time
	UrgentFeeMaxReachedAt      *time.Time

	CreatedAt time.Time `gorm:"index:idx_created_at"`
	UpdatedAt time.Time
}
