package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/primeiter/primes"
	"github.com/inference-sim/primeiter/primes/trace"
)

// runOptions bounds a single run. At least one of Count or Below must be set.
type runOptions struct {
	Count      int
	Below      uint64
	Big        bool
	TraceLevel trace.TraceLevel
}

func (o runOptions) validate() error {
	if o.Count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", o.Count)
	}
	if o.Count == 0 && o.Below == 0 {
		return errors.New("unbounded run: set --count or --below")
	}
	return nil
}

// runPrimes writes primes to w, one per line. The returned trace is nil unless
// steps were traced.
func runPrimes(w io.Writer, opts runOptions) (*trace.GenerationTrace, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(w)

	var gt *trace.GenerationTrace
	var err error
	if opts.Big {
		if opts.TraceLevel == trace.TraceLevelSteps {
			logrus.Warnf("--trace=%s is ignored with --big", opts.TraceLevel)
		}
		err = writeBig(bw, opts)
	} else {
		gt = trace.NewGenerationTrace(trace.TraceConfig{Level: opts.TraceLevel})
		err = writeUint64(bw, primes.NewGenerator().WithTrace(gt), opts)
		if opts.TraceLevel != trace.TraceLevelSteps {
			gt = nil
		}
	}
	if err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("flush output: %w", err)
	}
	return gt, nil
}

func writeUint64(w io.Writer, g *primes.Generator, opts runOptions) error {
	for n := 0; opts.Count == 0 || n < opts.Count; n++ {
		p := g.Next()
		if opts.Below > 0 && p > opts.Below {
			break
		}
		if _, err := fmt.Fprintln(w, p); err != nil {
			return fmt.Errorf("write prime: %w", err)
		}
		if p == primes.MaxPrime {
			logrus.Warnf("reached the largest uint64 prime; use --big to continue")
			break
		}
	}
	return nil
}

func writeBig(w io.Writer, opts runOptions) error {
	var limit *big.Int
	if opts.Below > 0 {
		limit = new(big.Int).SetUint64(opts.Below)
	}
	g := primes.NewBigGenerator()
	for n := 0; opts.Count == 0 || n < opts.Count; n++ {
		p := g.Next()
		if limit != nil && p.Cmp(limit) > 0 {
			break
		}
		if _, err := fmt.Fprintln(w, p); err != nil {
			return fmt.Errorf("write prime: %w", err)
		}
	}
	return nil
}

// printTraceSummary writes a human-readable trace summary.
func printTraceSummary(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Trace Summary ===")
	fmt.Fprintf(w, "Primes produced  : %d\n", s.TotalSteps)
	fmt.Fprintf(w, "Candidates tested: %d\n", s.TotalCandidates)
	fmt.Fprintf(w, "Trial divisions  : %d (%.2f per prime)\n", s.TotalDivisions, s.MeanDivisions)
	if s.MaxGap > 0 {
		fmt.Fprintf(w, "Largest gap      : %d (after %d)\n", s.MaxGap, s.MaxGapAfter)
	}
	gaps := make([]uint64, 0, len(s.GapDistribution))
	for g := range s.GapDistribution {
		gaps = append(gaps, g)
	}
	sort.Slice(gaps, func(i, j int) bool { return gaps[i] < gaps[j] })
	for _, g := range gaps {
		fmt.Fprintf(w, "  gap %-4d: %d\n", g, s.GapDistribution[g])
	}
}
