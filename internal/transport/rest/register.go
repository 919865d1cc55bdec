package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
	"github.com/harborline/freightdesk-backend/internal/service/booking"
)

// registerService defines the minimal interface needed by RegisterHandler.
type registerService interface {
	SnapshotRegister(ctx context.Context, id uuid.UUID) (domain.RegisterRow, error)
	FilterRegister(ctx context.Context, id uuid.UUID, criteria domain.RegisterFilter) ([]domain.RegisterRow, error)
	SaveFilters(ctx context.Context, id uuid.UUID, criteria domain.RegisterFilter) error
	Report(ctx context.Context, id uuid.UUID) (*booking.RegisterReport, error)
	ExportRegister(ctx context.Context, id uuid.UUID, criteria domain.RegisterFilter, w io.Writer) error
}

// RegisterHandler serves shipment register REST endpoints.
type RegisterHandler struct {
	svc registerService
	log *slog.Logger
}

// NewRegisterHandler creates a RegisterHandler.
func NewRegisterHandler(svc registerService, logger *slog.Logger) *RegisterHandler {
	return &RegisterHandler{svc: svc, log: logger.With("handler", "register")}
}

type filtersRequest struct {
	Search  string `json:"search"`
	Status  string `json:"status"`
	Carrier string `json:"carrier"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Snapshot handles POST /v1/bookings/{id}/register/snapshot.
func (h *RegisterHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	row, err := h.svc.SnapshotRegister(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, row)
}

// List handles GET /v1/bookings/{id}/register with filter query params.
func (h *RegisterHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	criteria, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, filterErr := h.svc.FilterRegister(r.Context(), id, criteria)
	if filterErr != nil {
		h.handleError(w, r, filterErr)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

// SaveFilters handles PUT /v1/bookings/{id}/register/filters.
func (h *RegisterHandler) SaveFilters(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req filtersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	criteria := domain.RegisterFilter{
		Search:  req.Search,
		Status:  req.Status,
		Carrier: req.Carrier,
	}
	var err error
	if criteria.From, err = parseDate(req.From); err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date")
		return
	}
	if criteria.To, err = parseDate(req.To); err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date")
		return
	}

	if err := h.svc.SaveFilters(r.Context(), id, criteria); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Report handles GET /v1/bookings/{id}/register/report.
func (h *RegisterHandler) Report(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	report, err := h.svc.Report(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Export handles GET /v1/bookings/{id}/register/export (text/csv).
func (h *RegisterHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	criteria, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Buffer the CSV so a failing export still gets a proper error status.
	// The export row cap bounds the buffer size.
	var buf bytes.Buffer
	if err := h.svc.ExportRegister(r.Context(), id, criteria, &buf); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="register-`+id.String()+`.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *RegisterHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, w, r, err)
}

func criteriaFromQuery(q url.Values) (domain.RegisterFilter, error) {
	criteria := domain.RegisterFilter{
		Search:  q.Get("search"),
		Status:  q.Get("status"),
		Carrier: q.Get("carrier"),
	}

	var err error
	if criteria.From, err = parseDate(q.Get("from")); err != nil {
		return domain.RegisterFilter{}, domain.NewValidationError("from", "invalid date")
	}
	if criteria.To, err = parseDate(q.Get("to")); err != nil {
		return domain.RegisterFilter{}, domain.NewValidationError("to", "invalid date")
	}
	return criteria, nil
}

// parseDate accepts RFC 3339 timestamps or bare dates (2006-01-02).
// Empty input means "no constraint" and returns nil.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
