package domain

import "time"

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentPaid       PaymentStatus = "paid"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
	PaymentCancelled  PaymentStatus = "cancelled"
)

type PaymentMethod string

const (
	MethodCard          PaymentMethod = "card"
	MethodBankTransfer  PaymentMethod = "bank_transfer"
	MethodCash          PaymentMethod = "cash"
	MethodMobilePayment PaymentMethod = "mobile_payment"
	MethodOther         PaymentMethod = "other"
)

func IsKnownPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentProcessing, PaymentPaid, PaymentFailed, PaymentRefunded, PaymentCancelled:
		return true
	}
	return false
}

func IsKnownPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCard, MethodBankTransfer, MethodCash, MethodMobilePayment, MethodOther:
		return true
	}
	return false
}

// paymentTransitions maps a current status to the set of statuses it may move to.
// Refunded and cancelled are terminal. An unknown or empty current status may
// only bootstrap into pending.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:    {PaymentPaid, PaymentFailed, PaymentCancelled, PaymentProcessing},
	PaymentProcessing: {PaymentPaid, PaymentFailed, PaymentCancelled},
	PaymentPaid:       {PaymentRefunded},
	PaymentFailed:     {PaymentPending, PaymentProcessing},
	PaymentRefunded:   {},
	PaymentCancelled:  {},
}

func ValidPaymentTransitions(current PaymentStatus) []PaymentStatus {
	next, ok := paymentTransitions[current]
	if !ok {
		return []PaymentStatus{PaymentPending}
	}
	return next
}

func CanTransitPayment(current, target PaymentStatus) bool {
	for _, s := range ValidPaymentTransitions(current) {
		if s == target {
			return true
		}
	}
	return false
}

// PaymentRecord mirrors the latest fee breakdown and payment status of one work
// order. Created on first calculation, updated on every recalculation or status
// change, never deleted.
type PaymentRecord struct {
	ID          string
	WorkOrderID string
	Status      PaymentStatus
	Breakdown   FeeBreakdown

	PaymentMethod PaymentMethod
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

// PaymentStatusLog is an append-only audit record of one transition.
type PaymentStatusLog struct {
	ID             string
	WorkOrderID    string
	Status         PaymentStatus
	PreviousStatus PaymentStatus
	UpdatedBy      string
	CreatedAt      time.Time
}

type FeeBreakdown struct {
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
	Items                []FeeItem
}

// FeeItem is one line of the audit itemization.
type FeeItem struct {
	Label   string
	Percent float64
	Amount  float64
}
