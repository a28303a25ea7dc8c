package domain

import "time"

type EscalationRunStatus string

const (
	EscalationRunCompleted EscalationRunStatus = "completed"
	EscalationRunCritical  EscalationRunStatus = "critical"
)

// MaxEscalationRunErrors caps the error list persisted with one run.
const MaxEscalationRunErrors = 10

// EscalationRun is written once per escalator execution, on both the success
// and the failure path.
type EscalationRun struct {
	ID             string
	Status         EscalationRunStatus
	ProcessedCount int
	IncreasedCount int
	ErrorCount     int
	Errors         []string
	DurationMs     int64
	StartedAt      time.Time
	FinishedAt     time.Time
}
