package register

import (
	"testing"
	"time"

	"github.com/harborline/freightdesk-backend/internal/domain"
)

func entry(stepID string, data map[string]string) domain.StepEntry {
	step, _ := domain.StepByID(stepID)
	return domain.StepEntry{StepID: stepID, Title: step.Title, Tag: step.Tag, Data: data}
}

func TestSnapshot_EmptyStepData(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.Local)
	row := Snapshot(map[string]domain.StepEntry{}, "j.tanaka", now)

	if row.FileReference != domain.NoFileRef {
		t.Errorf("fileReference: got %q, want %q", row.FileReference, domain.NoFileRef)
	}
	if row.ClientName != domain.NoClient {
		t.Errorf("clientName: got %q, want %q", row.ClientName, domain.NoClient)
	}
	if row.Carrier != domain.NoCarrier {
		t.Errorf("carrier: got %q, want %q", row.Carrier, domain.NoCarrier)
	}
	if row.Route != domain.NoRoute {
		t.Errorf("route: got %q, want %q", row.Route, domain.NoRoute)
	}
	if row.StepsDone != 0 {
		t.Errorf("stepsDone: got %d, want 0", row.StepsDone)
	}
	if row.OverallStatus != domain.StageNotStarted {
		t.Errorf("overallStatus: got %q, want %q", row.OverallStatus, domain.StageNotStarted)
	}
	if row.LastUpdatedRaw != now {
		t.Errorf("lastUpdatedRaw: got %v, want %v", row.LastUpdatedRaw, now)
	}
	if row.LastUpdated != "14 Mar 2026 10:30 (j.tanaka)" {
		t.Errorf("lastUpdated display: got %q", row.LastUpdated)
	}
}

func TestSnapshot_EndToEnd(t *testing.T) {
	t.Parallel()

	stepData := map[string]domain.StepEntry{
		"1": entry("1", map[string]string{
			"clientName":      "Acme",
			"portOfLoad":      "JPYOK",
			"portOfDischarge": "USLAX",
			"bkMessrsAgent":   "MSC",
		}),
		"3": entry("3", map[string]string{
			"bookingNumber": "BK100",
			"vesselName":    "EVER GIVEN",
			"voyage":        "V001",
		}),
	}

	row := Snapshot(stepData, "ops", time.Now())

	if row.ClientName != "Acme" {
		t.Errorf("clientName: got %q", row.ClientName)
	}
	if row.Carrier != "MSC" {
		t.Errorf("carrier: got %q", row.Carrier)
	}
	if row.POL != "JPYOK" || row.POD != "USLAX" {
		t.Errorf("ports: got %q/%q", row.POL, row.POD)
	}
	if row.Route != "JPYOK → USLAX" {
		t.Errorf("route: got %q", row.Route)
	}
	if row.BookingNumber != "BK100" {
		t.Errorf("bookingNumber: got %q", row.BookingNumber)
	}
	if row.VesselName != "EVER GIVEN" {
		t.Errorf("vesselName: got %q", row.VesselName)
	}
	if row.OverallStatus != domain.StageBookedWithCarrier {
		t.Errorf("overallStatus: got %q, want %q", row.OverallStatus, domain.StageBookedWithCarrier)
	}
	if row.StepsDone != 2 {
		t.Errorf("stepsDone: got %d, want 2", row.StepsDone)
	}
}

func TestSnapshot_FallbackPrecedence(t *testing.T) {
	t.Parallel()

	// Vessel present in both step 3 and step 4: step 3 wins.
	stepData := map[string]domain.StepEntry{
		"3": entry("3", map[string]string{"vesselName": "ONE HARMONY"}),
		"4": entry("4", map[string]string{"vesselName": "ONE HORIZON"}),
	}
	row := Snapshot(stepData, "ops", time.Now())
	if row.VesselName != "ONE HARMONY" {
		t.Errorf("vesselName: got %q, want earlier-listed step to win", row.VesselName)
	}

	// Vessel blank in step 3: falls through to step 4.
	stepData["3"] = entry("3", map[string]string{"vesselName": ""})
	row = Snapshot(stepData, "ops", time.Now())
	if row.VesselName != "ONE HORIZON" {
		t.Errorf("vesselName: got %q, want fallback value", row.VesselName)
	}
}

func TestSnapshot_RouteRequiresBothPorts(t *testing.T) {
	t.Parallel()

	stepData := map[string]domain.StepEntry{
		"1": entry("1", map[string]string{"portOfLoad": "JPYOK"}),
	}
	row := Snapshot(stepData, "ops", time.Now())
	if row.POL != "JPYOK" {
		t.Errorf("pol: got %q", row.POL)
	}
	if row.POD != domain.NoPOD {
		t.Errorf("pod: got %q, want sentinel", row.POD)
	}
	if row.Route != domain.NoRoute {
		t.Errorf("route: got %q, want %q when either port is blank", row.Route, domain.NoRoute)
	}
}

func TestSnapshot_CancellationOverride(t *testing.T) {
	t.Parallel()

	stepData := map[string]domain.StepEntry{
		"3": entry("3", map[string]string{"bookingNumber": "BK1"}),
		"4": entry("4", map[string]string{"bookingStatus": "cancelled"}),
		"5": entry("5", map[string]string{"shipperName": "Acme"}),
	}
	row := Snapshot(stepData, "ops", time.Now())
	if row.OverallStatus != domain.StageCancelled {
		t.Errorf("overallStatus: got %q, want %q", row.OverallStatus, domain.StageCancelled)
	}
}

func TestSnapshot_FullDataIsolatedFromSource(t *testing.T) {
	t.Parallel()

	stepData := map[string]domain.StepEntry{
		"1": entry("1", map[string]string{"fileReference": "HL-001"}),
	}
	row := Snapshot(stepData, "ops", time.Now())

	stepData["1"].Data["fileReference"] = "HL-999"

	if row.FullData["1"].Data["fileReference"] != "HL-001" {
		t.Error("snapshot shares step data with live booking")
	}
}

func TestUpsert_ReplaceInPlace(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	t1 := t0.Add(2 * time.Hour)

	first := domain.RegisterRow{FileReference: "HL-001", CreatedAt: t0, CreatedBy: "alice", UpdatedBy: "alice", LastUpdatedRaw: t0}
	other := domain.RegisterRow{FileReference: "HL-002", CreatedAt: t0, LastUpdatedRaw: t0}
	rows := Upsert(Upsert(nil, first), other)

	second := domain.RegisterRow{FileReference: "HL-001", CreatedAt: t1, CreatedBy: "bob", UpdatedBy: "bob", LastUpdatedRaw: t1}
	rows = Upsert(rows, second)

	if len(rows) != 2 {
		t.Fatalf("expected replace, not append: got %d rows", len(rows))
	}
	if rows[0].FileReference != "HL-001" {
		t.Errorf("replaced row moved: position 0 holds %q", rows[0].FileReference)
	}
	if rows[0].UpdatedBy != "bob" {
		t.Errorf("updatedBy: got %q, want bob", rows[0].UpdatedBy)
	}
	if !rows[0].LastUpdatedRaw.Equal(t1) {
		t.Errorf("lastUpdatedRaw not refreshed: %v", rows[0].LastUpdatedRaw)
	}
	// The original opener and opening time survive re-snapshots.
	if rows[0].CreatedBy != "alice" || !rows[0].CreatedAt.Equal(t0) {
		t.Errorf("createdBy/createdAt not preserved: %q %v", rows[0].CreatedBy, rows[0].CreatedAt)
	}
}

func TestUpsert_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	rows := []domain.RegisterRow{{FileReference: "HL-001", UpdatedBy: "alice"}}
	_ = Upsert(rows, domain.RegisterRow{FileReference: "HL-001", UpdatedBy: "bob"})

	if rows[0].UpdatedBy != "alice" {
		t.Error("input slice mutated by Upsert")
	}
}

func TestUpsert_Idempotence(t *testing.T) {
	t.Parallel()

	stepData := map[string]domain.StepEntry{
		"1": entry("1", map[string]string{"fileReference": "HL-001"}),
	}

	t0 := time.Now()
	rows := Upsert(nil, Snapshot(stepData, "ops", t0))
	rows = Upsert(rows, Snapshot(stepData, "ops", t0.Add(time.Minute)))

	if len(rows) != 1 {
		t.Fatalf("expected 1 row after re-snapshot, got %d", len(rows))
	}
	if rows[0].LastUpdatedRaw.Before(t0) {
		t.Error("second snapshot must not move lastUpdatedRaw backwards")
	}
}
