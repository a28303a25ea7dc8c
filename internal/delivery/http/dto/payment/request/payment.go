package request

type CalculatePayment struct {
	WorkOrderID             string   `json:"work_order_id,omitempty"`
	BaseFee                 float64  `json:"base_fee"`
	UrgentFeePercent        float64  `json:"urgent_fee_percent"`
	PlatformFeePercent      float64  `json:"platform_fee_percent"`
	CurrentUrgentFeePercent *float64 `json:"current_urgent_fee_percent,omitempty"`
	DiscountPercent         float64  `json:"discount_percent,omitempty"`
	TaxPercent              float64  `json:"tax_percent,omitempty"`
	GradeLevel              int      `json:"grade_level,omitempty"`
	GradeName               string   `json:"grade_name,omitempty"`
}

type UpdatePaymentStatus struct {
	WorkOrderID   string   `json:"work_order_id"`
	Status        string   `json:"status"`
	PaidAt        string   `json:"paid_at,omitempty"`
	PaymentMethod string   `json:"payment_method,omitempty"`
	TransactionID string   `json:"transaction_id,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	UpdatedBy     string   `json:"updated_by,omitempty"`
	RefundReason  string   `json:"refund_reason,omitempty"`
	FailureReason string   `json:"failure_reason,omitempty"`
}

type BulkUpdatePaymentStatus struct {
	Updates   []UpdatePaymentStatus `json:"updates"`
	UpdatedBy string                `json:"updated_by,omitempty"`
}
