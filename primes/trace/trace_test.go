package trace

import "testing"

func TestIsValidTraceLevel(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"none", true},
		{"steps", true},
		{"", true},
		{"decisions", false},
		{"STEPS", false},
	}
	for _, tt := range tests {
		if got := IsValidTraceLevel(tt.level); got != tt.want {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestGenerationTrace_RecordStep_AppendsInOrder(t *testing.T) {
	// GIVEN a new trace
	gt := NewGenerationTrace(TraceConfig{Level: TraceLevelSteps})
	if len(gt.Steps) != 0 {
		t.Fatalf("expected empty trace, got %d steps", len(gt.Steps))
	}

	// WHEN two steps are recorded
	gt.RecordStep(StepRecord{Index: 0, Prime: 2})
	gt.RecordStep(StepRecord{Index: 1, Prime: 3, Candidates: 1})

	// THEN they are kept in recording order
	if len(gt.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(gt.Steps))
	}
	if gt.Steps[0].Prime != 2 || gt.Steps[1].Prime != 3 {
		t.Errorf("unexpected order: %+v", gt.Steps)
	}
}
