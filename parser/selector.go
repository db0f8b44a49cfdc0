package parser

import "math/rand"

// Selector picks one of n alternatives, n > 0.
// Parser calls Select once per choice group, after the whole group is parsed,
// in the order groups are closed.
type Selector interface {
	Select(n int) int
}

type seededSelector struct {
	rng *rand.Rand
}

// NewSelector returns Selector with its own generator seeded with seed.
// Selectors created with the same seed return the same sequence for the same sequence of calls.
// The result is not safe for concurrent use.
func NewSelector(seed int64) Selector {
	return &seededSelector{rand.New(rand.NewSource(seed))}
}

func (s *seededSelector) Select(n int) int {
	return s.rng.Intn(n)
}

