package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
)

// DeleteBooking removes the whole aggregate: step data and register rows go
// with it. The deletion event is logged first so the trail survives the row.
func (s *Service) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "must not be empty")
	}

	actor := s.operator(ctx)

	// Existence check so a delete of an unknown id reports ErrNotFound
	// instead of silently succeeding.
	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.events.Log(txCtx, domain.BookingEvent{
			BookingID: b.ID,
			Action:    domain.EventBookingDeleted,
			Actor:     actor,
			Details: map[string]any{
				"stepsDone":    len(b.StepData),
				"registerRows": len(b.RegisterEntries),
			},
		}); err != nil {
			return fmt.Errorf("log event: %w", err)
		}
		if err := s.bookings.Delete(txCtx, b.ID); err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "booking deleted",
		slog.String("booking_id", id.String()),
		slog.String("operator", actor),
	)

	return nil
}
