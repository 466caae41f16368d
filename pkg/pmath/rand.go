package pmath

import (
	"math"
	"math/rand"
)

// Rand is the random source used by emission profiles and spawn parameter
// sampling. It wraps math/rand with the small surface the particle core
// needs and is explicitly injected into every emitter, so tests can pin a
// seed and get reproducible spawn sequences. A Rand is not safe for
// concurrent use; give each emitter updated from its own goroutine its own
// instance.
type Rand struct {
	src *rand.Rand
}

// NewRand creates a random source from the given seed. The same seed always
// produces the same sample sequence.
func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// IntN returns a uniform integer in [0, n). n <= 0 returns 0, so callers
// sampling degenerate extents (zero-perimeter boxes) never panic.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.Intn(n)
}

// Float returns a uniform float64 in [min, max). If min >= max it returns
// min, matching the zero-extent behavior of range sampling.
func (r *Rand) Float(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + r.src.Float64()*(max-min)
}

// Float01 returns a uniform float64 in [0, 1).
func (r *Rand) Float01() float64 {
	return r.src.Float64()
}

// Angle returns a uniform angle in [0, 2π) radians.
func (r *Rand) Angle() float64 {
	return r.src.Float64() * 2 * math.Pi
}

// UnitVector returns a uniformly distributed unit vector: a uniform angle
// mapped through (cos, sin).
func (r *Rand) UnitVector() Vec2 {
	sin, cos := math.Sincos(r.Angle())
	return Vec2{X: cos, Y: sin}
}
