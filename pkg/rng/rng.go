// Package rng provides explicit, seedable random sources for the simulation.
// Every consumer (battle resolution, each faction commander) owns its own
// Source so that a session can be replayed bit-for-bit from its seed.
package rng

import "math/rand/v2"

// Source is a deterministic pseudo-random generator. It remembers its seed
// so it can be rewound with Reset.
type Source struct {
	seed uint64
	rand *rand.Rand
}

// New creates a Source seeded with the given value.
func New(seed uint64) *Source {
	s := &Source{seed: seed}
	s.Reset()
	return s
}

// Seed replaces the source's seed and rewinds the stream.
func (s *Source) Seed(seed uint64) {
	s.seed = seed
	s.Reset()
}

// Reset rewinds the stream to the beginning of the current seed.
func (s *Source) Reset() {
	s.rand = rand.New(rand.NewPCG(s.seed, s.seed))
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rand.Float64()
}

// Range returns a uniform value in [min, max).
func (s *Source) Range(min, max float64) float64 {
	return min + s.rand.Float64()*(max-min)
}
