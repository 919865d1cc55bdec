package booking

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
)

// Hand-written func-field mocks for the service's consumer interfaces.

type bookingRepoMock struct {
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	CreateFunc func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	UpdateFunc func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
	ListFunc   func(ctx context.Context) ([]domain.BookingSummary, error)

	mu          sync.Mutex
	getCalls    []uuid.UUID
	createCalls []*domain.Booking
	updateCalls []*domain.Booking
	deleteCalls []uuid.UUID
	listCalls   int
}

func (m *bookingRepoMock) Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	m.mu.Lock()
	m.getCalls = append(m.getCalls, id)
	m.mu.Unlock()
	return m.GetFunc(ctx, id)
}

func (m *bookingRepoMock) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, b)
	m.mu.Unlock()
	return m.CreateFunc(ctx, b)
}

func (m *bookingRepoMock) Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.mu.Lock()
	m.updateCalls = append(m.updateCalls, b)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, b)
}

func (m *bookingRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.deleteCalls = append(m.deleteCalls, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *bookingRepoMock) List(ctx context.Context) ([]domain.BookingSummary, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	return m.ListFunc(ctx)
}

func (m *bookingRepoMock) GetCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getCalls
}

func (m *bookingRepoMock) CreateCalls() []*domain.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *bookingRepoMock) UpdateCalls() []*domain.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCalls
}

func (m *bookingRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteCalls
}

type eventLogMock struct {
	LogFunc          func(ctx context.Context, event domain.BookingEvent) error
	GetByBookingFunc func(ctx context.Context, bookingID uuid.UUID, limit int) ([]domain.BookingEvent, error)

	mu       sync.Mutex
	logCalls []domain.BookingEvent
}

func (m *eventLogMock) Log(ctx context.Context, event domain.BookingEvent) error {
	m.mu.Lock()
	m.logCalls = append(m.logCalls, event)
	m.mu.Unlock()
	return m.LogFunc(ctx, event)
}

func (m *eventLogMock) GetByBooking(ctx context.Context, bookingID uuid.UUID, limit int) ([]domain.BookingEvent, error) {
	return m.GetByBookingFunc(ctx, bookingID, limit)
}

func (m *eventLogMock) LogCalls() []domain.BookingEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logCalls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTxFunc(ctx, fn)
}
