package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
	"github.com/harborline/freightdesk-backend/pkg/ctxutil"
)

// OpenBooking returns the booking with the given id, creating an empty
// aggregate on first navigation to an unknown id. The operator label is
// recorded as the booking's current user either way.
func (s *Service) OpenBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "must not be empty")
	}

	actor := s.operator(ctx)

	b, err := s.bookings.Get(ctx, id)
	if err == nil {
		if b.CurrentUser != actor {
			b.CurrentUser = actor
			b.UpdatedAt = time.Now()
			if b, err = s.bookings.Update(ctx, b); err != nil {
				return nil, fmt.Errorf("update booking: %w", err)
			}
		}
		return b, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	now := time.Now()
	created, err := s.bookings.Create(ctx, &domain.Booking{
		ID:              id,
		CreatedAt:       now,
		UpdatedAt:       now,
		CurrentUser:     actor,
		StepData:        map[string]domain.StepEntry{},
		RegisterEntries: []domain.RegisterRow{},
	})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.InfoContext(ctx, "booking opened",
		slog.String("booking_id", id.String()),
		slog.String("operator", actor),
	)

	return created, nil
}

// operator resolves the acting operator label, falling back to the
// configured default when the request carries none.
func (s *Service) operator(ctx context.Context) string {
	if op, ok := ctxutil.OperatorFromCtx(ctx); ok {
		return op
	}
	return s.cfg.DefaultOperator
}
