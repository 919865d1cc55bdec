package booking

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
	"github.com/harborline/freightdesk-backend/internal/register"
)

// ExportRegister writes the booking's register as CSV to w, filtered by the
// given criteria and capped at the configured export row limit.
func (s *Service) ExportRegister(ctx context.Context, id uuid.UUID, criteria domain.RegisterFilter, w io.Writer) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "must not be empty")
	}
	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	rows := register.Filter(b.RegisterEntries, criteria)
	if len(rows) > s.cfg.ExportMaxRows {
		rows = rows[:s.cfg.ExportMaxRows]
	}

	if err := register.WriteCSV(w, rows); err != nil {
		return fmt.Errorf("export register: %w", err)
	}
	return nil
}
