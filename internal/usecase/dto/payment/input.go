package paymentdto

// CalculateInput carries the fee parameters of one computation request. When
// WorkOrderID is set, the resulting breakdown is mirrored into the payment
// record.
type CalculateInput struct {
	WorkOrderID             string
	BaseFee                 float64
	UrgentFeePercent        float64
	PlatformFeePercent      float64
	CurrentUrgentFeePercent *float64
	DiscountPercent         float64
	TaxPercent              float64
	GradeLevel              int
	GradeName               string
}

// TransitionInput is one requested payment-status change. PaidAt arrives as a
// raw string and is parsed during validation.
type TransitionInput struct {
	WorkOrderID   string
	Status        string
	PaidAt        string
	PaymentMethod string
	TransactionID string
	Amount        *float64
	Notes         string
	UpdatedBy     string
	RefundReason  string
	FailureReason string
}

type BulkTransitionInput struct {
	Updates   []TransitionInput
	UpdatedBy string
}
