package domain

import "testing"

func TestBooking_Field(t *testing.T) {
	t.Parallel()

	b := &Booking{
		StepData: map[string]StepEntry{
			"1": {StepID: "1", Data: map[string]string{"clientName": "Acme"}},
		},
	}

	if got := b.Field("1", "clientName"); got != "Acme" {
		t.Errorf("got %q, want Acme", got)
	}
	if got := b.Field("1", "missing"); got != "" {
		t.Errorf("missing field: got %q, want empty", got)
	}
	if got := b.Field("2", "clientName"); got != "" {
		t.Errorf("missing step: got %q, want empty", got)
	}
}

func TestBooking_CompletedSteps(t *testing.T) {
	t.Parallel()

	b := &Booking{
		StepData: map[string]StepEntry{
			"1": {StepID: "1"},
			"3": {StepID: "3"},
		},
	}

	done := b.CompletedSteps()
	if len(done) != 2 || !done["1"] || !done["3"] {
		t.Errorf("unexpected completed set: %v", done)
	}
}

func TestCopyStepData_DeepCopy(t *testing.T) {
	t.Parallel()

	src := map[string]StepEntry{
		"1": {StepID: "1", Title: "Booking Request", Data: map[string]string{"fileReference": "HL-001"}},
	}

	dst := CopyStepData(src)
	src["1"].Data["fileReference"] = "CHANGED"
	src["2"] = StepEntry{StepID: "2"}

	if dst["1"].Data["fileReference"] != "HL-001" {
		t.Error("copy shares field map with source")
	}
	if _, ok := dst["2"]; ok {
		t.Error("copy shares top-level map with source")
	}
}

func TestCopyStepData_Nil(t *testing.T) {
	t.Parallel()

	dst := CopyStepData(nil)
	if dst == nil {
		t.Fatal("expected non-nil empty map")
	}
	if len(dst) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(dst))
	}
}
