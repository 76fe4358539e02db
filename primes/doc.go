// Package primes produces the sequence of prime numbers lazily, one value
// per call, without an upper bound.
//
// # Reading Guide
//
//   - generator.go: Generator, the uint64 trial-division generator
//   - big.go: BigGenerator, the same algorithm over *big.Int
//   - seq.go: range-over-func adapters (All, Take, TakeWhile)
//
// # Algorithm
//
// Each generator keeps the primes it has already produced. The first call
// returns 2. Every later call scans odd candidates above the last prime and
// trial-divides each one by the discovered primes whose square does not
// exceed it. At the start of every call the discovered set is exactly the
// primes below the next candidate, so the test is complete.
//
// # Ownership
//
// Generators are not safe for concurrent use. Give each goroutine its own
// generator; independently constructed generators always yield identical
// sequences.
package primes
