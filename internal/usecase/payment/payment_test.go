package payment

import (
	"sync"

	"github.com/LavaJover/shvark-payment-service/internal/domain"
)

// in-memory fakes for the repository and publisher ports

type fakeWorkOrderRepo struct {
	orders   map[string]*domain.WorkOrder
	applied  [][]*domain.StatusUpdate
	applyErr error
}

func newFakeWorkOrderRepo(orders ...*domain.WorkOrder) *fakeWorkOrderRepo {
	repo := &fakeWorkOrderRepo{orders: make(map[string]*domain.WorkOrder)}
	for _, wo := range orders {
		repo.orders[wo.ID] = wo
	}
	return repo
}

func (f *fakeWorkOrderRepo) GetWorkOrderByID(workOrderID string) (*domain.WorkOrder, error) {
	workOrder, ok := f.orders[workOrderID]
	if !ok {
		return nil, domain.ErrWorkOrderNotFound
	}
	copied := *workOrder
	return &copied, nil
}

func (f *fakeWorkOrderRepo) PageForEscalation(afterID string, limit int) ([]*domain.WorkOrder, error) {
	return nil, nil
}

func (f *fakeWorkOrderRepo) ApplyUrgentFeeUpdates(updates []*domain.UrgentFeeUpdate) error {
	return nil
}

func (f *fakeWorkOrderRepo) ApplyStatusUpdates(updates []*domain.StatusUpdate) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.applied = append(f.applied, updates)
	for _, update := range updates {
		f.orders[update.WorkOrder.ID] = update.WorkOrder
	}
	return nil
}

type fakePaymentRepo struct {
	records map[string]*domain.PaymentRecord
}

func newFakePaymentRepo(records ...*domain.PaymentRecord) *fakePaymentRepo {
	repo := &fakePaymentRepo{records: make(map[string]*domain.PaymentRecord)}
	for _, record := range records {
		repo.records[record.WorkOrderID] = record
	}
	return repo
}

func (f *fakePaymentRepo) GetPaymentRecordByWorkOrderID(workOrderID string) (*domain.PaymentRecord, error) {
	record, ok := f.records[workOrderID]
	if !ok {
		return nil, domain.ErrPaymentRecordNotFound
	}
	copied := *record
	return &copied, nil
}

func (f *fakePaymentRepo) SavePaymentRecord(record *domain.PaymentRecord) error {
	f.records[record.WorkOrderID] = record
	return nil
}

type fakeLogRepo struct {
	entries []*domain.PaymentStatusLog
}

func (f *fakeLogRepo) GetStatusLogsByWorkOrderID(workOrderID string) ([]*domain.PaymentStatusLog, error) {
	var result []*domain.PaymentStatusLog
	for _, entry := range f.entries {
		if entry.WorkOrderID == workOrderID {
			result = append(result, entry)
		}
	}
	return result, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.PaymentEvent
	alerts []domain.EscalationAlert
}

func (f *fakePublisher) PublishPaymentEvent(event domain.PaymentEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) PublishEscalationAlert(alert domain.EscalationAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, alert)
	return nil
}

func (f *fakePublisher) eventCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func (f *fakePublisher) eventsCopy() []domain.PaymentEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.PaymentEvent(nil), f.events...)
}
