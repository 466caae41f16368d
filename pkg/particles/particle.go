// Package particles implements the particle lifecycle core: the particle
// record, the fixed-capacity slot buffer, and the emitter that spawns, ages
// and retires particles each tick.
//
// The package is renderer-agnostic. Hosts drive an Emitter (or Effect) with
// Tick once per frame and read live particle state back through Each or
// LiveView to build their own draw data; the core never issues draw calls.
package particles

import "github.com/gonewx/sparks/pkg/pmath"

// Color is an RGBA color with float64 channels in [0, 1]. Floating-point
// channels keep per-tick interpolation smooth; conversion to a renderer's
// color format happens at submission time, outside the core.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// White is the default particle color, leaving any texture untinted.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Lerp returns the channel-wise linear interpolation between c and o at
// parameter t. t is not clamped.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: pmath.Lerp(c.R, o.R, t),
		G: pmath.Lerp(c.G, o.G, t),
		B: pmath.Lerp(c.B, o.B, t),
		A: pmath.Lerp(c.A, o.A, t),
	}
}

// Particle is a single particle record. Particles are plain values living
// inside a buffer slot; they are never individually heap-allocated.
//
// The Initial* fields snapshot spawn-time state for interpolating modifiers
// that blend from the spawn value toward a configured end value. The
// duplication is deliberate: it keeps the per-tick modifier loop free of
// lookups back into emitter configuration.
type Particle struct {
	// Position is the world position. Origin is the emitter's world
	// position at spawn time, kept for modifiers that orbit or radiate
	// particles around their spawn point.
	Position pmath.Vec2
	Origin   pmath.Vec2

	// Velocity in units per second.
	Velocity pmath.Vec2

	// Rotation is the visual angle in degrees; RotationRate is its speed
	// in degrees per second.
	Rotation     float64
	RotationRate float64

	// Scale multiplier (1.0 = authored size).
	Scale float64

	// Color including opacity in the alpha channel.
	Color Color

	// Age is seconds since spawn; Lifetime is total seconds to live,
	// fixed at spawn. A particle is live while Age < Lifetime.
	Age      float64
	Lifetime float64

	// Spawn-time snapshots used by interpolating modifiers.
	InitialColor        Color
	InitialScale        float64
	InitialRotationRate float64
}

// AgeFraction returns Age/Lifetime clamped to [0, 1], the normalized
// progress interpolating modifiers blend over.
func (p *Particle) AgeFraction() float64 {
	if p.Lifetime <= 0 {
		return 1
	}
	return pmath.Clamp01(p.Age / p.Lifetime)
}
