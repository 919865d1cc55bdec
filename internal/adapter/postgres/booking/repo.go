// Package booking implements the Booking repository using PostgreSQL.
// A booking is stored as one row carrying the whole aggregate: scalar
// columns plus jsonb documents for step data, register rows, and filters.
// Reads and writes are whole-aggregate; there is no partial update.
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/harborline/freightdesk-backend/internal/adapter/postgres"
	"github.com/harborline/freightdesk-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "bookings"

var columns = []string{
	"id",
	"created_at",
	"updated_at",
	"current_operator",
	"active_step_id",
	"step_data",
	"register_entries",
	"filters",
}

const listSummariesSQL = `
SELECT
    id,
    current_operator,
    (SELECT count(*) FROM jsonb_object_keys(step_data)) AS steps_done,
    jsonb_array_length(register_entries) AS register_count,
    created_at,
    updated_at
FROM bookings
ORDER BY updated_at DESC`

// Repo provides booking persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new booking repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the booking aggregate by primary key.
// Returns domain.ErrNotFound when no row exists.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query := qb.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	b, err := scanBooking(row)
	if err != nil {
		return nil, mapError(err, "booking", id)
	}
	return b, nil
}

// Create inserts a new booking aggregate and returns the persisted row.
func (r *Repo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	stepData, registerEntries, filters, err := marshalAggregate(b)
	if err != nil {
		return nil, err
	}

	query := qb.Insert(table).
		Columns(columns...).
		Values(b.ID, b.CreatedAt, b.UpdatedAt, b.CurrentUser, b.ActiveStepID,
			stepData, registerEntries, filters).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create booking: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	created, err := scanBooking(row)
	if err != nil {
		return nil, mapError(err, "booking", b.ID)
	}
	return created, nil
}

// Update replaces the whole aggregate row and returns the persisted state.
// Returns domain.ErrNotFound when the booking does not exist.
func (r *Repo) Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	stepData, registerEntries, filters, err := marshalAggregate(b)
	if err != nil {
		return nil, err
	}

	query := qb.Update(table).
		Set("updated_at", b.UpdatedAt).
		Set("current_operator", b.CurrentUser).
		Set("active_step_id", b.ActiveStepID).
		Set("step_data", stepData).
		Set("register_entries", registerEntries).
		Set("filters", filters).
		Where(squirrel.Eq{"id": b.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update booking: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	updated, err := scanBooking(row)
	if err != nil {
		return nil, mapError(err, "booking", b.ID)
	}
	return updated, nil
}

// Delete removes the booking row. Events are kept; the change log outlives
// the aggregate. Returns domain.ErrNotFound when no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query := qb.Delete(table).Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "booking", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns summaries of all bookings ordered by updated_at DESC.
// Returns an empty slice (not nil) when no bookings exist.
func (r *Repo) List(ctx context.Context) ([]domain.BookingSummary, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSummariesSQL)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	summaries := []domain.BookingSummary{}
	for rows.Next() {
		var s domain.BookingSummary
		if err := rows.Scan(&s.ID, &s.CurrentUser, &s.StepsDone, &s.RegisterCount,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan booking summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return summaries, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func marshalAggregate(b *domain.Booking) (stepData, registerEntries, filters []byte, err error) {
	sd := b.StepData
	if sd == nil {
		sd = map[string]domain.StepEntry{}
	}
	if stepData, err = json.Marshal(sd); err != nil {
		return nil, nil, nil, fmt.Errorf("booking %s: marshal step_data: %w", b.ID, err)
	}

	re := b.RegisterEntries
	if re == nil {
		re = []domain.RegisterRow{}
	}
	if registerEntries, err = json.Marshal(re); err != nil {
		return nil, nil, nil, fmt.Errorf("booking %s: marshal register_entries: %w", b.ID, err)
	}

	if filters, err = json.Marshal(b.Filters); err != nil {
		return nil, nil, nil, fmt.Errorf("booking %s: marshal filters: %w", b.ID, err)
	}
	return stepData, registerEntries, filters, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var (
		b               domain.Booking
		stepData        []byte
		registerEntries []byte
		filters         []byte
	)
	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt, &b.CurrentUser, &b.ActiveStepID,
		&stepData, &registerEntries, &filters); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(stepData, &b.StepData); err != nil {
		return nil, fmt.Errorf("unmarshal step_data: %w", err)
	}
	if err := json.Unmarshal(registerEntries, &b.RegisterEntries); err != nil {
		return nil, fmt.Errorf("unmarshal register_entries: %w", err)
	}
	if err := json.Unmarshal(filters, &b.Filters); err != nil {
		return nil, fmt.Errorf("unmarshal filters: %w", err)
	}
	return &b, nil
}

// mapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled pass through as-is.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
