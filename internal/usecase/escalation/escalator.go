package escalation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/LavaJover/shvark-payment-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-payment-service/internal/usecase/batch"
	"github.com/jaevor/go-nanoid"
)

// Config enumerates every escalation option explicitly. Zero values in a work
// order's step fall back to StepPercent; a missing start time, base percent or
// max percent skips the document.
type Config struct {
	PageSize        int
	IntervalSeconds int
	StepPercent     float64
	MaxPercent      float64
	SendAlerts      bool
}

func DefaultConfig() Config {
	return Config{
		PageSize:        500,
		IntervalSeconds: 3600,
		StepPercent:     5,
		MaxPercent:      50,
		SendAlerts:      true,
	}
}

// Escalator is the periodic urgent-fee task. It scans open work orders in
// pages and raises each job's effective urgent-fee percent according to
// elapsed time. Correctness under overlapping runs rests solely on the
// candidate > current guard.
type Escalator struct {
	WorkOrderRepo domain.WorkOrderRepository
	RunRepo       domain.EscalationRunRepository
	Publisher     domain.NotificationPublisher
	Metrics       *metrics.PaymentMetrics
	Config        Config

	now func() time.Time
}

func NewEscalator(
	workOrderRepo domain.WorkOrderRepository,
	runRepo domain.EscalationRunRepository,
	publisher domain.NotificationPublisher,
	paymentMetrics *metrics.PaymentMetrics,
	cfg Config) *Escalator {

	return &Escalator{
		WorkOrderRepo: workOrderRepo,
		RunRepo:       runRepo,
		Publisher:     publisher,
		Metrics:       paymentMetrics,
		Config:        cfg,
		now:           time.Now,
	}
}

func (e *Escalator) Name() string { return "urgent-fee-escalation" }

// Run executes one escalation pass. Per-document failures are isolated into
// the run's error list; a failure that prevents the run from completing is
// persisted as critical, alerted, and returned to the scheduler.
func (e *Escalator) Run(ctx context.Context) error {
	startedAt := e.now()

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return fmt.Errorf("failed to init id generator: %w", err)
	}
	runID := idGenerator()

	coordinator := &batch.Coordinator[*domain.WorkOrder, *domain.UrgentFeeUpdate]{
		PageSize: e.Config.PageSize,
		FetchPage: func(_ context.Context, cursor string, limit int) ([]*domain.WorkOrder, error) {
			return e.WorkOrderRepo.PageForEscalation(cursor, limit)
		},
		Key: func(workOrder *domain.WorkOrder) string { return workOrder.ID },
		Process: func(_ context.Context, workOrder *domain.WorkOrder) (*domain.UrgentFeeUpdate, bool, error) {
			return e.escalate(workOrder)
		},
		Commit: func(_ context.Context, updates []*domain.UrgentFeeUpdate) error {
			return e.WorkOrderRepo.ApplyUrgentFeeUpdates(updates)
		},
	}

	result, runErr := coordinator.Run(ctx)
	finishedAt := e.now()

	run := &domain.EscalationRun{
		ID:             runID,
		Status:         domain.EscalationRunCompleted,
		ProcessedCount: result.Processed,
		IncreasedCount: result.Applied,
		ErrorCount:     len(result.Errors),
		Errors:         truncateErrors(result.Errors),
		DurationMs:     finishedAt.Sub(startedAt).Milliseconds(),
		StartedAt:      startedAt,
		FinishedAt:     finishedAt,
	}

	if runErr != nil {
		run.Status = domain.EscalationRunCritical
		run.ErrorCount++
		if len(run.Errors) < domain.MaxEscalationRunErrors {
			run.Errors = append(run.Errors, runErr.Error())
		}
		e.persistRun(run)
		e.alert(run)
		e.recordRunMetrics(run)
		return fmt.Errorf("escalation run %s failed: %w", runID, runErr)
	}

	e.persistRun(run)
	if run.ErrorCount > 0 {
		e.alert(run)
	}
	e.recordRunMetrics(run)

	slog.Info("escalation run finished",
		"run_id", runID,
		"processed", run.ProcessedCount,
		"increased", run.IncreasedCount,
		"errors", run.ErrorCount,
		"duration_ms", run.DurationMs)

	return nil
}

// escalate computes the time-derived candidate percent for one work order and
// decides whether it must be raised. The update is applied only when the
// candidate exceeds the current effective percent, so a duplicate or
// overlapping run never regresses or double-applies.
func (e *Escalator) escalate(workOrder *domain.WorkOrder) (*domain.UrgentFeeUpdate, bool, error) {
	if workOrder.UrgentFeeIncreaseStartAt == nil {
		slog.Warn("skipping work order without escalation start time", "work_order_id", workOrder.ID)
		return nil, false, nil
	}
	if workOrder.UrgentFeePercent <= 0 {
		slog.Warn("skipping work order without base urgent fee percent", "work_order_id", workOrder.ID)
		return nil, false, nil
	}
	maxPercent := workOrder.UrgentFeeMaxPercent
	if maxPercent <= 0 {
		slog.Warn("skipping work order without max urgent fee percent", "work_order_id", workOrder.ID)
		return nil, false, nil
	}

	stepPercent := workOrder.UrgentFeeIncreaseStep
	if stepPercent <= 0 {
		stepPercent = e.Config.StepPercent
	}

	now := e.now()
	elapsedSeconds := now.Sub(*workOrder.UrgentFeeIncreaseStartAt).Seconds()
	if elapsedSeconds <= 0 {
		return nil, false, nil
	}

	increments := math.Floor(elapsedSeconds / float64(e.Config.IntervalSeconds))
	candidate := math.Min(workOrder.UrgentFeePercent+increments*stepPercent, maxPercent)

	if candidate <= workOrder.EffectiveUrgentPercent() {
		return nil, false, nil
	}

	return &domain.UrgentFeeUpdate{
		WorkOrderID: workOrder.ID,
		Percent:     candidate,
		ReachedMax:  candidate == maxPercent,
		UpdatedAt:   now,
	}, true, nil
}

func (e *Escalator) persistRun(run *domain.EscalationRun) {
	if err := e.RunRepo.SaveEscalationRun(run); err != nil {
		slog.Error("failed to persist escalation run", "run_id", run.ID, "error", err.Error())
	}
}

func (e *Escalator) alert(run *domain.EscalationRun) {
	if !e.Config.SendAlerts || e.Publisher == nil {
		return
	}
	alert := domain.EscalationAlert{
		RunID:          run.ID,
		Critical:       run.Status == domain.EscalationRunCritical,
		ProcessedCount: run.ProcessedCount,
		IncreasedCount: run.IncreasedCount,
		ErrorCount:     run.ErrorCount,
		Errors:         run.Errors,
		OccurredAt:     run.FinishedAt,
	}
	go func() {
		if err := e.Publisher.PublishEscalationAlert(alert); err != nil {
			slog.Error("failed to publish escalation alert", "run_id", alert.RunID, "error", err.Error())
		}
	}()
}

func (e *Escalator) recordRunMetrics(run *domain.EscalationRun) {
	if e.Metrics == nil {
		return
	}
	e.Metrics.RecordEscalationRun(string(run.Status), run.IncreasedCount, run.ErrorCount, run.DurationMs)
}

func truncateErrors(itemErrors []batch.ItemError) []string {
	limit := len(itemErrors)
	if limit > domain.MaxEscalationRunErrors {
		limit = domain.MaxEscalationRunErrors
	}
	result := make([]string, 0, limit)
	for _, itemErr := range itemErrors[:limit] {
		result = append(result, itemErr.Error())
	}
	return result
}
