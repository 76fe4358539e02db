package primes

import "math/big"

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// BigGenerator is Generator over arbitrary-precision integers. It trades
// speed for an unbounded range and never overflows.
//
// Not thread-safe.
type BigGenerator struct {
	found []*big.Int
}

// NewBigGenerator returns a BigGenerator with an empty discovered set.
func NewBigGenerator() *BigGenerator {
	return &BigGenerator{}
}

// Next returns the next prime. The returned value is a fresh copy owned by the caller.
func (g *BigGenerator) Next() *big.Int {
	if len(g.found) == 0 {
		g.found = append(g.found, big.NewInt(2))
		return big.NewInt(2)
	}

	candidate := new(big.Int).Add(g.found[len(g.found)-1], bigOne)
	if candidate.Bit(0) == 0 {
		candidate.Add(candidate, bigOne)
	}

	sq := new(big.Int)
	rem := new(big.Int)
	for {
		isPrime := true
		for _, p := range g.found {
			if sq.Mul(p, p).Cmp(candidate) > 0 {
				break
			}
			if rem.Rem(candidate, p).Sign() == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			g.found = append(g.found, candidate)
			return new(big.Int).Set(candidate)
		}
		candidate.Add(candidate, bigTwo)
	}
}

// Len returns how many primes have been produced.
func (g *BigGenerator) Len() int {
	return len(g.found)
}
