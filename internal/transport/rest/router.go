package rest

import (
	"log/slog"
	"net/http"

	"github.com/harborline/freightdesk-backend/internal/service/booking"
)

// RouterDeps carries everything the REST router needs.
type RouterDeps struct {
	Bookings *booking.Service
	DB       dbPinger
	Version  string
	Logger   *slog.Logger
}

// NewRouter builds the HTTP mux with all REST routes.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	health := NewHealthHandler(deps.DB, deps.Version)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	bookings := NewBookingHandler(deps.Bookings, deps.Logger)
	mux.HandleFunc("GET /v1/bookings", bookings.List)
	mux.HandleFunc("POST /v1/bookings/{id}/open", bookings.Open)
	mux.HandleFunc("GET /v1/bookings/{id}", bookings.Get)
	mux.HandleFunc("DELETE /v1/bookings/{id}", bookings.Delete)
	mux.HandleFunc("PUT /v1/bookings/{id}/steps/{stepID}", bookings.SaveStep)
	mux.HandleFunc("GET /v1/bookings/{id}/events", bookings.Events)

	register := NewRegisterHandler(deps.Bookings, deps.Logger)
	mux.HandleFunc("POST /v1/bookings/{id}/register/snapshot", register.Snapshot)
	mux.HandleFunc("GET /v1/bookings/{id}/register", register.List)
	mux.HandleFunc("PUT /v1/bookings/{id}/register/filters", register.SaveFilters)
	mux.HandleFunc("GET /v1/bookings/{id}/register/report", register.Report)
	mux.HandleFunc("GET /v1/bookings/{id}/register/export", register.Export)

	wf := NewWorkflowHandler()
	mux.HandleFunc("GET /v1/workflow/tabs", wf.Tabs)
	mux.HandleFunc("GET /v1/workflow/steps", wf.Steps)

	return mux
}
