package breakout

import "math/rand/v2"

// Booster produces the random horizontal boost applied when a brick breaks.
type Booster interface {
	Next() int
}

// BoostSource draws boosts uniformly from [-max, max] using a seeded PCG
// generator, so a given seed always yields the same sequence.
type BoostSource struct {
	max  int
	seed uint64
	rng  *rand.Rand
}

// NewBoostSource creates a source bounded by max (negative max is treated as 0).
func NewBoostSource(max int, seed uint64) *BoostSource {
	if max < 0 {
		max = 0
	}
	s := &BoostSource{max: max}
	s.Reseed(seed)
	return s
}

// Reseed restarts the sequence from seed.
func (s *BoostSource) Reseed(seed uint64) {
	s.seed = seed
	s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Seed returns the seed the current sequence started from.
func (s *BoostSource) Seed() uint64 {
	return s.seed
}

// Max returns the bound of the boost range.
func (s *BoostSource) Max() int {
	return s.max
}

// Next returns the next boost in [-max, max].
func (s *BoostSource) Next() int {
	if s.max == 0 {
		return 0
	}
	return s.rng.IntN(2*s.max+1) - s.max
}
