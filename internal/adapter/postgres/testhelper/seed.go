package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harborline/freightdesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedBooking creates an empty booking aggregate row.
// Returns the filled domain.Booking.
func SeedBooking(t *testing.T, pool *pgxpool.Pool) domain.Booking {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	b := domain.Booking{
		ID:              uuid.New(),
		CreatedAt:       now,
		UpdatedAt:       now,
		CurrentUser:     "operator-" + uniqueSuffix(),
		StepData:        map[string]domain.StepEntry{},
		RegisterEntries: []domain.RegisterRow{},
	}

	stepData, err := json.Marshal(b.StepData)
	if err != nil {
		t.Fatalf("testhelper: SeedBooking marshal step_data: %v", err)
	}
	registerEntries, err := json.Marshal(b.RegisterEntries)
	if err != nil {
		t.Fatalf("testhelper: SeedBooking marshal register_entries: %v", err)
	}
	filters, err := json.Marshal(b.Filters)
	if err != nil {
		t.Fatalf("testhelper: SeedBooking marshal filters: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO bookings (id, created_at, updated_at, current_operator, active_step_id, step_data, register_entries, filters)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.CreatedAt, b.UpdatedAt, b.CurrentUser, b.ActiveStepID, stepData, registerEntries, filters,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBooking insert: %v", err)
	}

	return b
}
