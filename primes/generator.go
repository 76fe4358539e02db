package primes

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/primeiter/primes/trace"
)

// ErrOverflow is the panic value (wrapped) raised when the next prime does not
// fit in a uint64. The largest prime below 2^64 is MaxPrime.
var ErrOverflow = errors.New("primes: next prime exceeds uint64 range")

// MaxPrime is the largest prime representable as a uint64.
const MaxPrime uint64 = 18446744073709551557

// Generator yields primes in increasing order.
//
// The zero value is ready to use. Not thread-safe.
type Generator struct {
	found []uint64
	trace *trace.GenerationTrace
}

// NewGenerator returns a Generator with an empty discovered set.
func NewGenerator() *Generator {
	return &Generator{}
}

// WithTrace attaches a trace that receives one StepRecord per Next call.
// A nil trace or one at TraceLevelNone disables recording.
func (g *Generator) WithTrace(t *trace.GenerationTrace) *Generator {
	g.trace = t
	return g
}

// Next returns the next prime and appends it to the discovered set.
//
// Panics with an error wrapping ErrOverflow once MaxPrime has been produced.
func (g *Generator) Next() uint64 {
	if len(g.found) == 0 {
		g.found = append(g.found, 2)
		g.record(2, 0, 0)
		return 2
	}

	last := g.found[len(g.found)-1]
	if last == MaxPrime {
		panic(fmt.Errorf("after %d: %w", last, ErrOverflow))
	}

	// After 2 the first candidate is 3; after any odd prime it is last+2.
	candidate := last + 1
	if candidate%2 == 0 {
		candidate++
	}

	var candidates, divisions int64
	for {
		candidates++
		isPrime, n := g.trialDivide(candidate)
		divisions += n
		if isPrime {
			g.found = append(g.found, candidate)
			g.record(candidate, candidates, divisions)
			return candidate
		}
		if candidate > math.MaxUint64-2 {
			// Unreachable while last < MaxPrime.
			panic(fmt.Errorf("candidate %d: %w", candidate, ErrOverflow))
		}
		candidate += 2
	}
}

// trialDivide reports whether candidate has no divisor among the discovered
// primes up to its square root, and how many divisions it took to decide.
func (g *Generator) trialDivide(candidate uint64) (bool, int64) {
	var n int64
	for _, p := range g.found {
		// p*p > candidate, written to avoid overflow for p >= 2^32.
		if p > candidate/p {
			break
		}
		n++
		if candidate%p == 0 {
			return false, n
		}
	}
	return true, n
}

func (g *Generator) record(prime uint64, candidates, divisions int64) {
	if g.trace == nil || g.trace.Config.Level != trace.TraceLevelSteps {
		return
	}
	logrus.Debugf("prime #%d = %d (candidates=%d, divisions=%d)", len(g.found)-1, prime, candidates, divisions)
	g.trace.RecordStep(trace.StepRecord{
		Index:      len(g.found) - 1,
		Prime:      prime,
		Candidates: candidates,
		Divisions:  divisions,
	})
}

// Len returns how many primes have been produced.
func (g *Generator) Len() int {
	return len(g.found)
}

// Last returns the most recently produced prime, or false before the first call to Next.
func (g *Generator) Last() (uint64, bool) {
	if len(g.found) == 0 {
		return 0, false
	}
	return g.found[len(g.found)-1], true
}

// Primes returns a copy of the discovered set in production order.
func (g *Generator) Primes() []uint64 {
	out := make([]uint64, len(g.found))
	copy(out, g.found)
	return out
}
