package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalSteps != 0 || summary.MaxGap != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if summary.GapDistribution == nil {
		t.Error("expected non-nil gap distribution")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	gt := NewGenerationTrace(TraceConfig{Level: TraceLevelSteps})

	// WHEN summarized
	summary := Summarize(gt)

	// THEN all counts are zero
	if summary.TotalSteps != 0 {
		t.Errorf("expected 0 steps, got %d", summary.TotalSteps)
	}
	if summary.TotalCandidates != 0 || summary.TotalDivisions != 0 {
		t.Error("expected 0 candidates and divisions")
	}
	if summary.MeanDivisions != 0 {
		t.Errorf("expected 0 mean divisions, got %v", summary.MeanDivisions)
	}
	if len(summary.GapDistribution) != 0 {
		t.Error("expected empty gap distribution")
	}
}

func TestSummarize_PopulatedTrace_CorrectTotalsAndGaps(t *testing.T) {
	// GIVEN the trace of the first six primes
	gt := NewGenerationTrace(TraceConfig{Level: TraceLevelSteps})
	gt.RecordStep(StepRecord{Index: 0, Prime: 2})
	gt.RecordStep(StepRecord{Index: 1, Prime: 3, Candidates: 1})
	gt.RecordStep(StepRecord{Index: 2, Prime: 5, Candidates: 1, Divisions: 1})
	gt.RecordStep(StepRecord{Index: 3, Prime: 7, Candidates: 1, Divisions: 1})
	gt.RecordStep(StepRecord{Index: 4, Prime: 11, Candidates: 2, Divisions: 4})
	gt.RecordStep(StepRecord{Index: 5, Prime: 13, Candidates: 1, Divisions: 2})

	// WHEN summarized
	summary := Summarize(gt)

	// THEN totals and gaps match
	if summary.TotalSteps != 6 {
		t.Errorf("expected 6 steps, got %d", summary.TotalSteps)
	}
	if summary.TotalCandidates != 6 {
		t.Errorf("expected 6 candidates, got %d", summary.TotalCandidates)
	}
	if summary.TotalDivisions != 8 {
		t.Errorf("expected 8 divisions, got %d", summary.TotalDivisions)
	}
	if want := 8.0 / 6.0; summary.MeanDivisions != want {
		t.Errorf("expected mean %v, got %v", want, summary.MeanDivisions)
	}
	if summary.MaxGap != 4 || summary.MaxGapAfter != 7 {
		t.Errorf("expected max gap 4 after 7, got %d after %d", summary.MaxGap, summary.MaxGapAfter)
	}
	wantGaps := map[uint64]int{1: 1, 2: 3, 4: 1}
	for gap, count := range wantGaps {
		if summary.GapDistribution[gap] != count {
			t.Errorf("gap %d: expected %d, got %d", gap, count, summary.GapDistribution[gap])
		}
	}
	if len(summary.GapDistribution) != len(wantGaps) {
		t.Errorf("unexpected gap sizes: %v", summary.GapDistribution)
	}
}
