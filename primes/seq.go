package primes

import (
	"iter"
	"math/big"
)

// All returns an infinite sequence backed by g. Ranging over it advances g,
// so a second range continues where the first one stopped.
func (g *Generator) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// All returns an infinite sequence backed by g.
func (g *BigGenerator) All() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		for {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// takePrealloc caps Take's initial capacity; n is an upper bound, not a length.
const takePrealloc = 64

// Take collects the first n values of seq. n <= 0 yields an empty slice.
func Take[V any](seq iter.Seq[V], n int) []V {
	out := make([]V, 0, min(max(n, 0), takePrealloc))
	if n <= 0 {
		return out
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// TakeWhile collects values of seq until pred first returns false. The
// rejected value is consumed from seq but not returned.
func TakeWhile[V any](seq iter.Seq[V], pred func(V) bool) []V {
	var out []V
	for v := range seq {
		if !pred(v) {
			break
		}
		out = append(out, v)
	}
	return out
}
