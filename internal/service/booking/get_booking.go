package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
)

// GetBooking returns the booking with the given id.
// Returns domain.ErrNotFound when it does not exist.
func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "must not be empty")
	}
	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// ListBookings returns summaries of all bookings, most recently updated first.
func (s *Service) ListBookings(ctx context.Context) ([]domain.BookingSummary, error) {
	summaries, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return summaries, nil
}
