package domain

import "testing"

func TestSteps_SchemaShape(t *testing.T) {
	t.Parallel()

	all := Steps()
	if len(all) != 16 {
		t.Fatalf("expected 16 steps, got %d", len(all))
	}
	for i, s := range all {
		if s.ID == "" || s.Title == "" {
			t.Errorf("step %d has empty id or title", i)
		}
		if len(s.Fields) == 0 {
			t.Errorf("step %s has no fields", s.ID)
		}
		for _, f := range s.Fields {
			if f.Name == "" || f.Label == "" || f.Type == "" {
				t.Errorf("step %s has incomplete field descriptor %+v", s.ID, f)
			}
		}
	}
}

func TestStepByID(t *testing.T) {
	t.Parallel()

	s, ok := StepByID("3")
	if !ok {
		t.Fatal("expected step 3 to exist")
	}
	if s.Title != "Booking with Carrier" {
		t.Errorf("step 3 title: got %q", s.Title)
	}
	if s.Tag != TagCarrier {
		t.Errorf("step 3 tag: got %q, want %q", s.Tag, TagCarrier)
	}

	if _, ok := StepByID("17"); ok {
		t.Error("expected step 17 to be unknown")
	}
	if KnownStepID("0") {
		t.Error("expected step 0 to be unknown")
	}
}

func TestSteps_UniqueIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, s := range Steps() {
		if seen[s.ID] {
			t.Errorf("duplicate step id %s", s.ID)
		}
		seen[s.ID] = true
	}
}
