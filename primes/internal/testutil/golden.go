// Package testutil provides shared test infrastructure for the primes packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenPrimes represents the structure of testdata/primes_golden.json.
type GoldenPrimes struct {
	Description string   `json:"description"`
	Primes      []uint64 `json:"primes"`
}

// LoadGoldenPrimes loads the golden prime list from the testdata directory.
// The path is resolved relative to this source file: primes/internal/testutil/ → testdata/.
func LoadGoldenPrimes(t *testing.T) *GoldenPrimes {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "primes_golden.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden primes: %v", err)
	}

	var golden GoldenPrimes
	if err := json.Unmarshal(data, &golden); err != nil {
		t.Fatalf("Failed to parse golden primes: %v", err)
	}
	if len(golden.Primes) == 0 {
		t.Fatal("golden primes file is empty")
	}

	return &golden
}

// IsPrime reports primality by plain trial division over every integer in
// [2, sqrt(n)]. Slow, and independent of the generator under test.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d <= n/d; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
