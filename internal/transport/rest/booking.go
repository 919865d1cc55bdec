package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
	"github.com/harborline/freightdesk-backend/internal/service/booking"
	"github.com/harborline/freightdesk-backend/internal/workflow"
)

// bookingService defines the minimal interface needed by BookingHandler.
type bookingService interface {
	OpenBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.BookingSummary, error)
	SaveStep(ctx context.Context, id uuid.UUID, stepID string, data map[string]string) (*booking.SaveStepResult, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	GetEvents(ctx context.Context, id uuid.UUID, limit int) ([]domain.BookingEvent, error)
}

// BookingHandler serves booking REST endpoints.
type BookingHandler struct {
	svc bookingService
	log *slog.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc bookingService, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: logger.With("handler", "booking")}
}

type bookingResponse struct {
	ID              uuid.UUID                   `json:"id"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
	CurrentUser     string                      `json:"currentUser"`
	ActiveStepID    string                      `json:"activeStepId"`
	StepData        map[string]domain.StepEntry `json:"stepData"`
	RegisterEntries []domain.RegisterRow        `json:"registerEntries"`
	Filters         domain.RegisterFilter       `json:"filters"`
}

type bookingSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	CurrentUser   string    `json:"currentUser"`
	StepsDone     int       `json:"stepsDone"`
	RegisterCount int       `json:"registerCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type saveStepRequest struct {
	Data map[string]string `json:"data"`
}

type saveStepResponse struct {
	Booking        bookingResponse           `json:"booking"`
	Stage          string                    `json:"stage"`
	CategoryCounts map[workflow.Category]int `json:"categoryCounts"`
}

type eventResponse struct {
	ID        uuid.UUID      `json:"id"`
	BookingID uuid.UUID      `json:"bookingId"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Open handles POST /v1/bookings/{id}/open.
// Creates an empty booking on first navigation to an unknown id.
func (h *BookingHandler) Open(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	b, err := h.svc.OpenBooking(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

// Get handles GET /v1/bookings/{id}.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	b, err := h.svc.GetBooking(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookingResponse(b))
}

// List handles GET /v1/bookings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListBookings(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]bookingSummaryResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = bookingSummaryResponse{
			ID:            s.ID,
			CurrentUser:   s.CurrentUser,
			StepsDone:     s.StepsDone,
			RegisterCount: s.RegisterCount,
			CreatedAt:     s.CreatedAt,
			UpdatedAt:     s.UpdatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// SaveStep handles PUT /v1/bookings/{id}/steps/{stepID}.
// The submitted data replaces the step's saved data wholesale.
func (h *BookingHandler) SaveStep(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req saveStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SaveStep(r.Context(), id, r.PathValue("stepID"), req.Data)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, saveStepResponse{
		Booking:        toBookingResponse(result.Booking),
		Stage:          result.Stage.String(),
		CategoryCounts: result.CategoryCounts,
	})
}

// Delete handles DELETE /v1/bookings/{id}.
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteBooking(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Events handles GET /v1/bookings/{id}/events.
func (h *BookingHandler) Events(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	events, err := h.svc.GetEvents(r.Context(), id, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]eventResponse, len(events))
	for i, e := range events {
		resp[i] = eventResponse{
			ID:        e.ID,
			BookingID: e.BookingID,
			Action:    e.Action.String(),
			Actor:     e.Actor,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:              b.ID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		CurrentUser:     b.CurrentUser,
		ActiveStepID:    b.ActiveStepID,
		StepData:        b.StepData,
		RegisterEntries: b.RegisterEntries,
		Filters:         b.Filters,
	}
}

// pathUUID parses the named path segment as a UUID, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return uuid.Nil, false
	}
	return id, true
}

func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
