package mec

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mathext/prng"
)

// Rand is the source of pivot choices. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). n is always > 0.
	IntN(n int) int
}

// NewRand returns a generator backed by an MT19937 source seeded with seed.
// Equal seeds produce equal pivot sequences.
func NewRand(seed uint64) *rand.Rand {
	src := prng.NewMT19937()
	src.Seed(seed)
	return rand.New(src)
}
