package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
	"github.com/harborline/freightdesk-backend/internal/register"
)

// FilterRegister returns the booking's register rows matching the criteria,
// preserving register order. An empty criteria set returns every row.
func (s *Service) FilterRegister(ctx context.Context, id uuid.UUID, criteria domain.RegisterFilter) ([]domain.RegisterRow, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "must not be empty")
	}
	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return register.Filter(b.RegisterEntries, criteria), nil
}

// SaveFilters persists the operator's last-used register filter set on the
// booking so the desk reopens with the same view.
func (s *Service) SaveFilters(ctx context.Context, id uuid.UUID, criteria domain.RegisterFilter) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "must not be empty")
	}
	if criteria.Status != "" && !domain.StageLabel(criteria.Status).IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("unknown status %q", criteria.Status))
	}

	actor := s.operator(ctx)

	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	b.Filters = criteria
	b.CurrentUser = actor
	b.UpdatedAt = time.Now()

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.bookings.Update(txCtx, b); err != nil {
			return fmt.Errorf("update booking: %w", err)
		}
		if err := s.events.Log(txCtx, domain.BookingEvent{
			BookingID: b.ID,
			Action:    domain.EventFiltersUpdated,
			Actor:     actor,
			Details:   map[string]any{"status": criteria.Status, "carrier": criteria.Carrier},
		}); err != nil {
			return fmt.Errorf("log event: %w", err)
		}
		return nil
	})
}
