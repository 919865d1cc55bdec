package domain

import "testing"

func TestStageLabel_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stage StageLabel
		want  bool
	}{
		{StageNotStarted, true},
		{StageInProgress, true},
		{StageBookedWithCarrier, true},
		{StageBookedWithClient, true},
		{StageDocsInProgress, true},
		{StageInvoicing, true},
		{StagePaymentsInProgress, true},
		{StageCompleted, true},
		{StageCancelled, true},
		{StageLabel("DONE"), false},
		{StageLabel(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			t.Parallel()
			if got := tt.stage.IsValid(); got != tt.want {
				t.Errorf("StageLabel(%q).IsValid() = %v, want %v", tt.stage, got, tt.want)
			}
		})
	}
}

func TestStages_CompleteVocabulary(t *testing.T) {
	t.Parallel()

	all := Stages()
	if len(all) != 9 {
		t.Fatalf("expected 9 stage labels, got %d", len(all))
	}
	seen := make(map[StageLabel]bool, len(all))
	for _, s := range all {
		if !s.IsValid() {
			t.Errorf("Stages() contains invalid label %q", s)
		}
		if seen[s] {
			t.Errorf("Stages() contains duplicate label %q", s)
		}
		seen[s] = true
	}
}
