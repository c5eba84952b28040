package grid

import "math/rand/v2"

// Source supplies uniformly distributed random numbers to FillRandom.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Uint64() uint64
	// Uint64N returns a value in [0, n). n is never 0.
	Uint64N(n uint64) uint64
}

// sharedSource draws from the math/rand/v2 top-level generator, which is
// seeded by the runtime and safe for concurrent use.
type sharedSource struct{}

func (sharedSource) Uint64() uint64          { return rand.Uint64() }
func (sharedSource) Uint64N(n uint64) uint64 { return rand.Uint64N(n) }

// SharedSource returns the process-wide source every grid uses unless
// WithSource overrides it.
func SharedSource() Source {
	return sharedSource{}
}
