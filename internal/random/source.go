package random

import (
	"math/rand"
	"sync"
)

// Source is a seeded pseudo-random source safe for concurrent use.
type Source struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Intn returns a uniform value in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
