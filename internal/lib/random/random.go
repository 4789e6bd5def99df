// Package random provides the sampling primitives behind the canned
// responses: uniform floats rounded half-up to a fixed number of decimals,
// and inclusive random integers.
package random

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Source is a random source safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source seeded with seed. A zero seed is replaced by the
// current time so every process gets a different sequence.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Source{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Uniform samples a float in [lo, hi] and rounds it to places decimals.
func (s *Source) Uniform(lo, hi float64, places int32) float64 {
	s.mu.Lock()
	f := s.rng.Float64()
	s.mu.Unlock()

	return Round(lo+(hi-lo)*f, places)
}

// IntBetween samples an integer in [lo, hi], both ends inclusive.
func (s *Source) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return lo + s.rng.IntN(hi-lo+1)
}

// Round rounds v half away from zero to places decimals.
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
