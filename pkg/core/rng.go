package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, 0))}
}

// Float32 returns a uniform value in [0, 1).
func (r *RNG) Float32() float32 {
	return r.r.Float32()
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Sign returns -1 or +1 with equal probability.
func (r *RNG) Sign() int {
	if r.r.IntN(2) == 0 {
		return -1
	}
	return 1
}
