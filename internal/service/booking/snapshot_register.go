package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
	"github.com/harborline/freightdesk-backend/internal/register"
)

// SnapshotRegister snapshots the booking's current step data into its
// register: an existing row with the same file reference is replaced in
// place, otherwise the row is appended. The snapshot itself never fails on
// missing data; only the per-booking row limit and storage errors can
// reject it.
func (s *Service) SnapshotRegister(ctx context.Context, id uuid.UUID) (domain.RegisterRow, error) {
	if id == uuid.Nil {
		return domain.RegisterRow{}, domain.NewValidationError("id", "must not be empty")
	}

	actor := s.operator(ctx)

	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return domain.RegisterRow{}, fmt.Errorf("get booking: %w", err)
	}

	row := register.Snapshot(b.StepData, actor, time.Now())

	if !s.hasRow(b.RegisterEntries, row.FileReference) && len(b.RegisterEntries) >= s.cfg.MaxRegisterRows {
		return domain.RegisterRow{}, domain.NewValidationError("register",
			fmt.Sprintf("row limit reached (max %d)", s.cfg.MaxRegisterRows))
	}

	b.RegisterEntries = register.Upsert(b.RegisterEntries, row)
	b.CurrentUser = actor
	b.UpdatedAt = row.LastUpdatedRaw

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if b, err = s.bookings.Update(txCtx, b); err != nil {
			return fmt.Errorf("update booking: %w", err)
		}
		if err := s.events.Log(txCtx, domain.BookingEvent{
			BookingID: b.ID,
			Action:    domain.EventRegisterSnapshot,
			Actor:     actor,
			Details: map[string]any{
				"fileReference": row.FileReference,
				"overallStatus": row.OverallStatus.String(),
				"stepsDone":     row.StepsDone,
			},
		}); err != nil {
			return fmt.Errorf("log event: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.RegisterRow{}, err
	}

	// Return the stored row: on replace, Upsert preserves the original
	// CreatedAt/CreatedBy, which the freshly built row does not carry.
	stored := row
	for _, r := range b.RegisterEntries {
		if r.FileReference == row.FileReference {
			stored = r
			break
		}
	}

	s.log.InfoContext(ctx, "register snapshot",
		slog.String("booking_id", b.ID.String()),
		slog.String("file_reference", stored.FileReference),
		slog.String("status", stored.OverallStatus.String()),
	)

	return stored, nil
}

func (s *Service) hasRow(rows []domain.RegisterRow, fileReference string) bool {
	for _, r := range rows {
		if r.FileReference == fileReference {
			return true
		}
	}
	return false
}
