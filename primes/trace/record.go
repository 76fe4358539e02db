// Package trace records per-step statistics of prime generation.
// This package has no dependencies on primes/ — it stores pure data types.
package trace

// StepRecord captures a single produce-next call.
type StepRecord struct {
	Index      int    // zero-based position of Prime in the sequence
	Prime      uint64 // value returned by the call
	Candidates int64  // odd candidates examined, including the accepted one; 0 for the seed prime 2
	Divisions  int64  // trial divisions performed across all candidates
}
