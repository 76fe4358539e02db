package trace

// TraceSummary aggregates statistics from a GenerationTrace.
type TraceSummary struct {
	TotalSteps      int
	TotalCandidates int64
	TotalDivisions  int64
	MeanDivisions   float64 // divisions per produced prime
	MaxGap          uint64
	MaxGapAfter     uint64         // prime that opens the largest gap
	GapDistribution map[uint64]int // gap size → count of consecutive pairs
}

// Summarize computes aggregate statistics from a GenerationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(gt *GenerationTrace) *TraceSummary {
	summary := &TraceSummary{
		GapDistribution: make(map[uint64]int),
	}
	if gt == nil {
		return summary
	}

	summary.TotalSteps = len(gt.Steps)
	for i, s := range gt.Steps {
		summary.TotalCandidates += s.Candidates
		summary.TotalDivisions += s.Divisions
		if i == 0 {
			continue
		}
		prev := gt.Steps[i-1].Prime
		gap := s.Prime - prev
		summary.GapDistribution[gap]++
		if gap > summary.MaxGap {
			summary.MaxGap = gap
			summary.MaxGapAfter = prev
		}
	}

	if summary.TotalSteps > 0 {
		summary.MeanDivisions = float64(summary.TotalDivisions) / float64(summary.TotalSteps)
	}

	return summary
}
