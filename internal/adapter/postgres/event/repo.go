// Package event implements the booking event log repository using
// PostgreSQL. The log is append-only; records are never updated and they
// deliberately survive deletion of the booking they describe.
package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/harborline/freightdesk-backend/internal/adapter/postgres"
	"github.com/harborline/freightdesk-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "booking_events"

var columns = []string{"id", "booking_id", "action", "actor", "details", "created_at"}

// Repo provides booking event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Log appends one event record. Zero ID and CreatedAt are filled in here so
// callers only describe what happened.
func (r *Repo) Log(ctx context.Context, event domain.BookingEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	if event.Details == nil {
		event.Details = map[string]any{}
	}

	details, err := json.Marshal(event.Details)
	if err != nil {
		return fmt.Errorf("booking_event %s: marshal details: %w", event.ID, err)
	}

	query := qb.Insert(table).
		Columns(columns...).
		Values(event.ID, event.BookingID, string(event.Action), event.Actor, details, event.CreatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build log event: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return mapError(err, "booking_event", event.ID)
	}
	return nil
}

// GetByBooking returns the event history for a booking ordered by
// created_at DESC, limited to `limit` records.
// Returns an empty slice (not nil) when no events exist.
func (r *Repo) GetByBooking(ctx context.Context, bookingID uuid.UUID, limit int) ([]domain.BookingEvent, error) {
	query := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get events: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get events by booking: %w", err)
	}
	defer rows.Close()

	events := []domain.BookingEvent{}
	for rows.Next() {
		var (
			e       domain.BookingEvent
			action  string
			details []byte
		)
		if err := rows.Scan(&e.ID, &e.BookingID, &action, &e.Actor, &details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking_event: %w", err)
		}
		e.Action = domain.EventAction(action)
		if err := json.Unmarshal(details, &e.Details); err != nil {
			return nil, fmt.Errorf("unmarshal event details: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get events by booking: %w", err)
	}

	return events, nil
}

// mapError converts pgx/pgconn errors to domain errors.
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
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
