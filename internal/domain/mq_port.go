package domain

import "time"

type NotificationRecipient string

const (
	RecipientCustomer NotificationRecipient = "customer"
	RecipientWorker   NotificationRecipient = "worker"
	RecipientAdmin    NotificationRecipient = "admin"
)

type PaymentEvent struct {
	WorkOrderID    string                `json:"work_order_id"`
	Recipient      NotificationRecipient `json:"recipient"`
	RecipientID    string                `json:"recipient_id"`
	Status         PaymentStatus         `json:"status"`
	PreviousStatus PaymentStatus         `json:"previous_status"`
	Amount         float64               `json:"amount,omitempty"`
	Message        string                `json:"message"`
	OccurredAt     time.Time             `json:"occurred_at"`
}

type EscalationAlert struct {
	RunID          string    `json:"run_id"`
	Critical       bool      `json:"critical"`
	ProcessedCount int       `json:"processed_count"`
	IncreasedCount int       `json:"increased_count"`
	ErrorCount     int       `json:"error_count"`
	Errors         []string  `json:"errors,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// NotificationPublisher is the outbound port for best-effort notifications.
// Publish failures are logged by callers and never abort the primary operation.
type NotificationPublisher interface {
	PublishPaymentEvent(event PaymentEvent) error
	PublishEscalationAlert(alert EscalationAlert) error
}
