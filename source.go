package rollin

import "math/rand"

// Source is a source of uniformly distributed random numbers for dice rolls.
// *rand.Rand implements Source.
type Source interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// globalSource uses the top-level functions of package math/rand, which are
// safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

func seeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
