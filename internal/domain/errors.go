package domain

import "errors"

var (
	ErrWorkOrderNotFound     = errors.New("work order not found")
	ErrPaymentRecordNotFound = errors.New("payment record not found")
	ErrIllegalTransition     = errors.New("illegal payment status transition")
	ErrNotificationFailed    = errors.New("failed to dispatch notification")
	ErrEscalationRunFailed   = errors.New("escalation run failed")
)
