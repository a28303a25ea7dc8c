package domain

// StatusUpdate is one accumulated payment-status mutation of a bulk commit.
type StatusUpdate struct {
	WorkOrder *WorkOrder
	Record    *PaymentRecord
	Log       *PaymentStatusLog
}

type WorkOrderRepository interface {
	GetWorkOrderByID(workOrderID string) (*WorkOrder, error)
	// PageForEscalation returns up to limit open work orders with escalation
	// enabled whose id is greater than afterID, ordered by id.
	PageForEscalation(afterID string, limit int) ([]*WorkOrder, error)
	// ApplyUrgentFeeUpdates commits one page of escalation mutations in a
	// single transaction.
	ApplyUrgentFeeUpdates(updates []*UrgentFeeUpdate) error
	// ApplyStatusUpdates commits work-order status, payment-record mirror and
	// status-log rows for a batch of transitions in a single transaction.
	ApplyStatusUpdates(updates []*StatusUpdate) error
}

type PaymentRecordRepository interface {
	GetPaymentRecordByWorkOrderID(workOrderID string) (*PaymentRecord, error)
	SavePaymentRecord(record *PaymentRecord) error
}

// StatusLogRepository reads the append-only transition history. Entries are
// written inside ApplyStatusUpdates so the log never drifts from the status it
// records.
type StatusLogRepository interface {
	GetStatusLogsByWorkOrderID(workOrderID string) ([]*PaymentStatusLog, error)
}

type EscalationRunRepository interface {
	SaveEscalationRun(run *EscalationRun) error
	GetRecentEscalationRuns(limit int) ([]*EscalationRun, error)
}
