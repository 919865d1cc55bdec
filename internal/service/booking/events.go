package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 200
)

// GetEvents returns the booking's change log, newest first. A limit of 0
// applies the default; the cap bounds pathological requests.
func (s *Service) GetEvents(ctx context.Context, id uuid.UUID, limit int) ([]domain.BookingEvent, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "must not be empty")
	}
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative")
	}
	if limit == 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	events, err := s.events.GetByBooking(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("get booking events: %w", err)
	}
	return events, nil
}
