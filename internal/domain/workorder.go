package domain

import "time"

type WorkOrderStatus string

const (
	WorkOrderOpen       WorkOrderStatus = "open"
	WorkOrderAssigned   WorkOrderStatus = "assigned"
	WorkOrderInProgress WorkOrderStatus = "in-progress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderCancelled  WorkOrderStatus = "cancelled"
)

// WorkOrder is owned by the marketplace job workflow. This service reads job
// fields and writes only the payment and urgent-fee fields.
type WorkOrder struct {
	ID            string
	SellerID      string
	ContractorID  string
	CustomerID    string
	Title         string
	Status        WorkOrderStatus
	PaymentStatus PaymentStatus

	BaseFee            float64
	UrgentFeePercent   float64
	PlatformFeePercent float64
	DiscountPercent    float64
	TaxPercent         float64

	UrgentFeeEscalationEnabled bool
	CurrentUrgentFeePercent    *float64
	UrgentFeeIncreaseStartAt   *time.Time
	UrgentFeeMaxPercent        float64
	UrgentFeeIncreaseStep      float64
	UrgentFeeIncreaseCount     int32
	LastUrgentFeeUpdate        *time.Time
	UrgentFeeMaxReachedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveUrgentPercent returns the escalated percent when escalation has
// started, otherwise the base rate.
func (w *WorkOrder) EffectiveUrgentPercent() float64 {
	if w.CurrentUrgentFeePercent != nil {
		return *w.CurrentUrgentFeePercent
	}
	return w.UrgentFeePercent
}

// UrgentFeeUpdate is one accumulated mutation of an escalation page commit.
type UrgentFeeUpdate struct {
	WorkOrderID string
	Percent     float64
	ReachedMax  bool
	UpdatedAt   time.Time
}
