// Command export writes one booking's shipment register as CSV to stdout or
// a file, applying the booking's saved filters. Intended for scheduled
// reporting jobs that want the register without going through the HTTP API.
//
// Usage: export -booking <uuid> [-out register.csv] [-saved-filters]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/harborline/freightdesk-backend/internal/adapter/postgres"
	bookingrepo "github.com/harborline/freightdesk-backend/internal/adapter/postgres/booking"
	"github.com/harborline/freightdesk-backend/internal/app"
	"github.com/harborline/freightdesk-backend/internal/config"
	"github.com/harborline/freightdesk-backend/internal/domain"
	"github.com/harborline/freightdesk-backend/internal/register"
)

func main() {
	var (
		bookingID    = flag.String("booking", "", "booking id (uuid, required)")
		outPath      = flag.String("out", "", "output file (default stdout)")
		savedFilters = flag.Bool("saved-filters", false, "apply the booking's saved register filters")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	id, err := uuid.Parse(*bookingID)
	if err != nil {
		logger.Error("invalid -booking flag", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	b, err := bookingrepo.New(pool).Get(ctx, id)
	if err != nil {
		logger.Error("load booking", slog.String("error", err.Error()))
		os.Exit(1)
	}

	criteria := domain.RegisterFilter{}
	if *savedFilters {
		criteria = b.Filters
	}

	rows := register.Filter(b.RegisterEntries, criteria)
	if len(rows) > cfg.Register.ExportMaxRows {
		rows = rows[:cfg.Register.ExportMaxRows]
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.Error("create output file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := register.WriteCSV(out, rows); err != nil {
		logger.Error("write csv", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("export completed",
		slog.String("booking_id", id.String()),
		slog.Int("rows", len(rows)),
	)
}
