package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/harborline/freightdesk-backend/internal/adapter/postgres"
	bookingrepo "github.com/harborline/freightdesk-backend/internal/adapter/postgres/booking"
	eventrepo "github.com/harborline/freightdesk-backend/internal/adapter/postgres/event"
	"github.com/harborline/freightdesk-backend/internal/config"
	"github.com/harborline/freightdesk-backend/internal/service/booking"
	"github.com/harborline/freightdesk-backend/internal/transport/middleware"
	"github.com/harborline/freightdesk-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, wires services and transport, and
// serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	bookings := bookingrepo.New(pool)
	events := eventrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	svc := booking.NewService(logger, booking.Config{
		MaxRegisterRows: cfg.Register.MaxRowsPerBooking,
		ExportMaxRows:   cfg.Register.ExportMaxRows,
		DefaultOperator: cfg.Register.DefaultOperator,
	}, bookings, events, tx)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Operator,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.MaxPerMinute))
	}

	handler := middleware.Chain(mws...)(rest.NewRouter(rest.RouterDeps{
		Bookings: svc,
		DB:       pool,
		Version:  BuildVersion(),
		Logger:   logger,
	}))

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
