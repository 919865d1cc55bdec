package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harborline/freightdesk-backend/internal/domain"
	"github.com/harborline/freightdesk-backend/internal/register"
	"github.com/harborline/freightdesk-backend/internal/service/booking"
)

type registerServiceMock struct {
	SnapshotRegisterFunc func(ctx context.Context, id uuid.UUID) (domain.RegisterRow, error)
	FilterRegisterFunc   func(ctx context.Context, id uuid.UUID, criteria domain.RegisterFilter) ([]domain.RegisterRow, error)
	SaveFiltersFunc      func(ctx context.Context, id uuid.UUID, criteria domain.RegisterFilter) error
	ReportFunc           func(ctx context.Context, id uuid.UUID) (*booking.RegisterReport, error)
	ExportRegisterFunc   func(ctx context.Context, id uuid.UUID, criteria domain.RegisterFilter, w io.Writer) error
}

func (m *registerServiceMock) SnapshotRegister(ctx context.Context, id uuid.UUID) (domain.RegisterRow, error) {
	return m.SnapshotRegisterFunc(ctx, id)
}

func (m *registerServiceMock) FilterRegister(ctx context.Context, id uuid.UUID, criteria domain.RegisterFilter) ([]domain.RegisterRow, error) {
	return m.FilterRegisterFunc(ctx, id, criteria)
}

func (m *registerServiceMock) SaveFilters(ctx context.Context, id uuid.UUID, criteria domain.RegisterFilter) error {
	return m.SaveFiltersFunc(ctx, id, criteria)
}

func (m *registerServiceMock) Report(ctx context.Context, id uuid.UUID) (*booking.RegisterReport, error) {
	return m.ReportFunc(ctx, id)
}

func (m *registerServiceMock) ExportRegister(ctx context.Context, id uuid.UUID, criteria domain.RegisterFilter, w io.Writer) error {
	return m.ExportRegisterFunc(ctx, id, criteria, w)
}

func TestRegisterHandler_Snapshot(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := &registerServiceMock{
		SnapshotRegisterFunc: func(ctx context.Context, gotID uuid.UUID) (domain.RegisterRow, error) {
			return domain.RegisterRow{
				FileReference: "FR-001",
				OverallStatus: domain.StageBookedWithCarrier,
				StepsDone:     2,
			}, nil
		},
	}
	h := NewRegisterHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/"+id.String()+"/register/snapshot", nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Snapshot(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var row domain.RegisterRow
	if err := json.NewDecoder(rec.Body).Decode(&row); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if row.FileReference != "FR-001" {
		t.Errorf("fileReference: got %q, want %q", row.FileReference, "FR-001")
	}
	if row.OverallStatus != domain.StageBookedWithCarrier {
		t.Errorf("overallStatus: got %q", row.OverallStatus)
	}
}

func TestRegisterHandler_Snapshot_RowLimit(t *testing.T) {
	t.Parallel()

	svc := &registerServiceMock{
		SnapshotRegisterFunc: func(ctx context.Context, id uuid.UUID) (domain.RegisterRow, error) {
			return domain.RegisterRow{}, domain.NewValidationError("register", "row limit reached")
		},
	}
	h := NewRegisterHandler(svc, discardLogger())

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/"+id.String()+"/register/snapshot", nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Snapshot(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestRegisterHandler_List_ParsesQuery(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	var got domain.RegisterFilter
	svc := &registerServiceMock{
		FilterRegisterFunc: func(ctx context.Context, _ uuid.UUID, criteria domain.RegisterFilter) ([]domain.RegisterRow, error) {
			got = criteria
			return []domain.RegisterRow{}, nil
		},
	}
	h := NewRegisterHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet,
		"/v1/bookings/"+id.String()+"/register?search=acme&status=INVOICING&carrier=MSC&from=2026-01-01&to=2026-03-31", nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if got.Search != "acme" || got.Status != "INVOICING" || got.Carrier != "MSC" {
		t.Errorf("criteria: got %+v", got)
	}
	if got.From == nil || got.From.Year() != 2026 || got.From.Month() != time.January {
		t.Errorf("from: got %v", got.From)
	}
	if got.To == nil || got.To.Month() != time.March || got.To.Day() != 31 {
		t.Errorf("to: got %v", got.To)
	}
}

func TestRegisterHandler_List_InvalidDate(t *testing.T) {
	t.Parallel()

	h := NewRegisterHandler(&registerServiceMock{}, discardLogger())

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/"+id.String()+"/register?from=yesterday", nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestRegisterHandler_SaveFilters(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	var got domain.RegisterFilter
	svc := &registerServiceMock{
		SaveFiltersFunc: func(ctx context.Context, _ uuid.UUID, criteria domain.RegisterFilter) error {
			got = criteria
			return nil
		},
	}
	h := NewRegisterHandler(svc, discardLogger())

	body := strings.NewReader(`{"status":"COMPLETED","carrier":"Maersk","from":"2026-01-01"}`)
	req := httptest.NewRequest(http.MethodPut, "/v1/bookings/"+id.String()+"/register/filters", body)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.SaveFilters(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if got.Status != "COMPLETED" || got.Carrier != "Maersk" || got.From == nil {
		t.Errorf("criteria: got %+v", got)
	}
}

func TestRegisterHandler_Report(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := &registerServiceMock{
		ReportFunc: func(ctx context.Context, _ uuid.UUID) (*booking.RegisterReport, error) {
			return &booking.RegisterReport{
				KPIs:      register.KPISet{Total: 2, Completed: 1},
				ByCarrier: map[string]int{"MSC": 2},
				Stage:     domain.StageInvoicing,
			}, nil
		},
	}
	h := NewRegisterHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/"+id.String()+"/register/report", nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Report(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total":2`) {
		t.Errorf("expected KPI total in body, got %s", rec.Body.String())
	}
}

func TestRegisterHandler_Export(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := &registerServiceMock{
		ExportRegisterFunc: func(ctx context.Context, _ uuid.UUID, _ domain.RegisterFilter, w io.Writer) error {
			_, err := w.Write([]byte("File Ref,Client\nFR-001,Acme\n"))
			return err
		},
	}
	h := NewRegisterHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/"+id.String()+"/register/export", nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Export(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type: got %q, want text/csv", ct)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "attachment") {
		t.Errorf("content disposition: got %q", rec.Header().Get("Content-Disposition"))
	}
	if !strings.Contains(rec.Body.String(), "FR-001") {
		t.Errorf("expected CSV body, got %q", rec.Body.String())
	}
}

func TestRegisterHandler_Export_NotFound(t *testing.T) {
	t.Parallel()

	svc := &registerServiceMock{
		ExportRegisterFunc: func(ctx context.Context, _ uuid.UUID, _ domain.RegisterFilter, _ io.Writer) error {
			return domain.ErrNotFound
		},
	}
	h := NewRegisterHandler(svc, discardLogger())

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/"+id.String()+"/register/export", nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	h.Export(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
}
