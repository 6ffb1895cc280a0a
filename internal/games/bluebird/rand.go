package bluebird

import "math/rand"

// Rand draws uniform integers. It is the only source of nondeterminism in a
// run and can be replaced for tests.
type Rand interface {
	// IntBetween returns a uniform integer in the closed interval [min, max].
	IntBetween(min, max int) int
}

// seededRand is the default Rand backed by math/rand.
type seededRand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded for reproducible runs.
func NewRand(seed int64) Rand {
	return &seededRand{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRand) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}
