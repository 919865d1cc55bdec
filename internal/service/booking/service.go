// Package booking implements the booking-desk use cases: opening and saving
// freight files step by step, snapshotting the shipment register, filtering
// and reporting over it, and exporting it for spreadsheets.
package booking

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
)

type bookingRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.BookingSummary, error)
}

type eventLog interface {
	Log(ctx context.Context, event domain.BookingEvent) error
	GetByBooking(ctx context.Context, bookingID uuid.UUID, limit int) ([]domain.BookingEvent, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config carries the service limits taken from application configuration.
type Config struct {
	MaxRegisterRows int
	ExportMaxRows   int
	DefaultOperator string
}

// Service provides booking desk operations.
type Service struct {
	cfg      Config
	bookings bookingRepo
	events   eventLog
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new booking Service.
func NewService(
	log *slog.Logger,
	cfg Config,
	bookings bookingRepo,
	events eventLog,
	tx txManager,
) *Service {
	return &Service{
		cfg:      cfg,
		bookings: bookings,
		events:   events,
		tx:       tx,
		log:      log.With("service", "booking"),
	}
}
