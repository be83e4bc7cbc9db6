package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// OddOffset returns a random odd offset in [1, n-2], or 1 when that range
// is empty.
func (r *RNG) OddOffset(n int) int {
	count := (n - 1) / 2
	if count < 1 {
		count = 1
	}
	return 2*r.IntN(count) + 1
}

// EvenOffset returns a random even offset in [0, n-1].
func (r *RNG) EvenOffset(n int) int {
	return 2 * r.IntN((n+1)/2)
}
