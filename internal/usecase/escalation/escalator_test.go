package escalation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkOrderRepo struct {
	orders   map[string]*domain.WorkOrder
	commits  int
	fetchErr error
}

func newFakeWorkOrderRepo(orders ...*domain.WorkOrder) *fakeWorkOrderRepo {
	repo := &fakeWorkOrderRepo{orders: make(map[string]*domain.WorkOrder)}
	for _, wo := range orders {
		repo.orders[wo.ID] = wo
	}
	return repo
}

func (f *fakeWorkOrderRepo) GetWorkOrderByID(workOrderID string) (*domain.WorkOrder, error) {
	wo, ok := f.orders[workOrderID]
	if !ok {
		return nil, domain.ErrWorkOrderNotFound
	}
	return wo, nil
}

func (f *fakeWorkOrderRepo) PageForEscalation(afterID string, limit int) ([]*domain.WorkOrder, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	ids := make([]string, 0, len(f.orders))
	for id, wo := range f.orders {
		if wo.Status == domain.WorkOrderOpen && wo.UrgentFeeEscalationEnabled && id > afterID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	page := make([]*domain.WorkOrder, len(ids))
	for i, id := range ids {
		copied := *f.orders[id]
		page[i] = &copied
	}
	return page, nil
}

func (f *fakeWorkOrderRepo) ApplyUrgentFeeUpdates(updates []*domain.UrgentFeeUpdate) error {
	f.commits++
	for _, update := range updates {
		wo := f.orders[update.WorkOrderID]
		percent := update.Percent
		wo.CurrentUrgentFeePercent = &percent
		wo.LastUrgentFeeUpdate = &update.UpdatedAt
		wo.UrgentFeeIncreaseCount++
		if update.ReachedMax && wo.UrgentFeeMaxReachedAt == nil {
			wo.UrgentFeeMaxReachedAt = &update.UpdatedAt
		}
	}
	return nil
}

func (f *fakeWorkOrderRepo) ApplyStatusUpdates(updates []*domain.StatusUpdate) error {
	return nil
}

type fakeRunRepo struct {
	runs []*domain.EscalationRun
}

func (f *fakeRunRepo) SaveEscalationRun(run *domain.EscalationRun) error {
	f.runs = append(f.runs, run)
	return nil
}

func (f *fakeRunRepo) GetRecentEscalationRuns(limit int) ([]*domain.EscalationRun, error) {
	if len(f.runs) > limit {
		return f.runs[len(f.runs)-limit:], nil
	}
	return f.runs, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	alerts []domain.EscalationAlert
}

func (f *fakePublisher) PublishPaymentEvent(event domain.PaymentEvent) error { return nil }

func (f *fakePublisher) PublishEscalationAlert(alert domain.EscalationAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, alert)
	return nil
}

func (f *fakePublisher) alertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.alerts)
}

func escalatableOrder(id string, startedAgo time.Duration, now time.Time) *domain.WorkOrder {
	start := now.Add(-startedAgo)
	return &domain.WorkOrder{
		ID:                         id,
		Status:                     domain.WorkOrderOpen,
		PaymentStatus:              domain.PaymentPending,
		BaseFee:                    100000,
		UrgentFeePercent:           10,
		UrgentFeeEscalationEnabled: true,
		UrgentFeeIncreaseStartAt:   &start,
		UrgentFeeMaxPercent:        50,
		UrgentFeeIncreaseStep:      5,
	}
}

func newTestEscalator(repo *fakeWorkOrderRepo, runRepo *fakeRunRepo, publisher *fakePublisher, now time.Time) *Escalator {
	e := NewEscalator(repo, runRepo, publisher, nil, DefaultConfig())
	e.now = func() time.Time { return now }
	return e
}

func TestEscalator_RaisesPercentFromElapsedTime(t *testing.T) {
	now := time.Now()
	repo := newFakeWorkOrderRepo(escalatableOrder("wo-1", 2*time.Hour, now))
	runRepo := &fakeRunRepo{}
	e := newTestEscalator(repo, runRepo, &fakePublisher{}, now)

	require.NoError(t, e.Run(context.Background()))

	wo := repo.orders["wo-1"]
	require.NotNil(t, wo.CurrentUrgentFeePercent)
	// base 10 + 2 increments of 5
	assert.Equal(t, 20.0, *wo.CurrentUrgentFeePercent)
	assert.Equal(t, int32(1), wo.UrgentFeeIncreaseCount)
	assert.NotNil(t, wo.LastUrgentFeeUpdate)
	assert.Nil(t, wo.UrgentFeeMaxReachedAt)

	require.Len(t, runRepo.runs, 1)
	run := runRepo.runs[0]
	assert.Equal(t, domain.EscalationRunCompleted, run.Status)
	assert.Equal(t, 1, run.ProcessedCount)
	assert.Equal(t, 1, run.IncreasedCount)
	assert.Equal(t, 0, run.ErrorCount)
}

func TestEscalator_SecondRunIsNoOp(t *testing.T) {
	now := time.Now()
	repo := newFakeWorkOrderRepo(escalatableOrder("wo-1", 3*time.Hour, now))
	runRepo := &fakeRunRepo{}
	e := newTestEscalator(repo, runRepo, &fakePublisher{}, now)

	require.NoError(t, e.Run(context.Background()))
	require.NoError(t, e.Run(context.Background()))

	wo := repo.orders["wo-1"]
	assert.Equal(t, 25.0, *wo.CurrentUrgentFeePercent)
	// candidate == current on the second pass, so no second increment
	assert.Equal(t, int32(1), wo.UrgentFeeIncreaseCount)

	require.Len(t, runRepo.runs, 2)
	assert.Equal(t, 1, runRepo.runs[0].IncreasedCount)
	assert.Equal(t, 0, runRepo.runs[1].IncreasedCount)
}

func TestEscalator_CapsAtMaxAndStampsMaxReached(t *testing.T) {
	now := time.Now()
	repo := newFakeWorkOrderRepo(escalatableOrder("wo-1", 30*time.Hour, now))
	runRepo := &fakeRunRepo{}
	e := newTestEscalator(repo, runRepo, &fakePublisher{}, now)

	require.NoError(t, e.Run(context.Background()))

	wo := repo.orders["wo-1"]
	assert.Equal(t, 50.0, *wo.CurrentUrgentFeePercent)
	assert.NotNil(t, wo.UrgentFeeMaxReachedAt)
}

func TestEscalator_NeverRegressesCurrentPercent(t *testing.T) {
	now := time.Now()
	wo := escalatableOrder("wo-1", 1*time.Hour, now)
	current := 40.0
	wo.CurrentUrgentFeePercent = &current
	repo := newFakeWorkOrderRepo(wo)
	e := newTestEscalator(repo, &fakeRunRepo{}, &fakePublisher{}, now)

	require.NoError(t, e.Run(context.Background()))

	// candidate 15 < current 40: untouched
	assert.Equal(t, 40.0, *repo.orders["wo-1"].CurrentUrgentFeePercent)
	assert.Equal(t, int32(0), repo.orders["wo-1"].UrgentFeeIncreaseCount)
}

func TestEscalator_SkipsJobsWithMissingFields(t *testing.T) {
	now := time.Now()
	noStart := escalatableOrder("wo-1", time.Hour, now)
	noStart.UrgentFeeIncreaseStartAt = nil
	noBase := escalatableOrder("wo-2", time.Hour, now)
	noBase.UrgentFeePercent = 0
	noMax := escalatableOrder("wo-3", time.Hour, now)
	noMax.UrgentFeeMaxPercent = 0

	repo := newFakeWorkOrderRepo(noStart, noBase, noMax)
	runRepo := &fakeRunRepo{}
	e := newTestEscalator(repo, runRepo, &fakePublisher{}, now)

	require.NoError(t, e.Run(context.Background()))

	run := runRepo.runs[0]
	assert.Equal(t, 3, run.ProcessedCount)
	assert.Equal(t, 0, run.IncreasedCount)
	assert.Equal(t, 0, run.ErrorCount)
}

func TestEscalator_ZeroStepFallsBackToConfig(t *testing.T) {
	now := time.Now()
	wo := escalatableOrder("wo-1", 2*time.Hour, now)
	wo.UrgentFeeIncreaseStep = 0
	repo := newFakeWorkOrderRepo(wo)
	e := newTestEscalator(repo, &fakeRunRepo{}, &fakePublisher{}, now)

	require.NoError(t, e.Run(context.Background()))

	assert.Equal(t, 20.0, *repo.orders["wo-1"].CurrentUrgentFeePercent)
}

func TestEscalator_ScansAllPages(t *testing.T) {
	now := time.Now()
	orders := make([]*domain.WorkOrder, 12)
	for i := range orders {
		orders[i] = escalatableOrder(fmt.Sprintf("wo-%02d", i), 2*time.Hour, now)
	}
	repo := newFakeWorkOrderRepo(orders...)
	runRepo := &fakeRunRepo{}
	e := newTestEscalator(repo, runRepo, &fakePublisher{}, now)
	e.Config.PageSize = 5

	require.NoError(t, e.Run(context.Background()))

	run := runRepo.runs[0]
	assert.Equal(t, 12, run.ProcessedCount)
	assert.Equal(t, 12, run.IncreasedCount)
	assert.Equal(t, 3, repo.commits)
}

func TestEscalator_CriticalFailurePersistsAndAlerts(t *testing.T) {
	now := time.Now()
	repo := newFakeWorkOrderRepo()
	repo.fetchErr = errors.New("connection refused")
	runRepo := &fakeRunRepo{}
	publisher := &fakePublisher{}
	e := newTestEscalator(repo, runRepo, publisher, now)

	err := e.Run(context.Background())
	require.Error(t, err)

	require.Len(t, runRepo.runs, 1)
	run := runRepo.runs[0]
	assert.Equal(t, domain.EscalationRunCritical, run.Status)
	assert.Equal(t, 1, run.ErrorCount)
	require.Len(t, run.Errors, 1)
	assert.Contains(t, run.Errors[0], "connection refused")

	require.Eventually(t, func() bool { return publisher.alertCount() == 1 }, time.Second, 5*time.Millisecond)
}

func TestRecentRuns(t *testing.T) {
	runRepo := &fakeRunRepo{}
	for i := 0; i < 5; i++ {
		runRepo.runs = append(runRepo.runs, &domain.EscalationRun{ID: fmt.Sprintf("run-%d", i)})
	}
	e := NewEscalator(newFakeWorkOrderRepo(), runRepo, &fakePublisher{}, nil, DefaultConfig())

	runs, err := e.RecentRuns(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}
