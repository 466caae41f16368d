// Package modifiers implements the per-tick particle modifiers: velocity
// fields, drag, interpolators over the particle's age fraction, and the
// orbital fields layered effects use.
//
// Modifiers execute in the order they are configured on an emitter; each
// sees the writes of the ones before it within the same tick. No modifier
// changes a particle's age or lifetime.
package modifiers

import (
	"github.com/gonewx/sparks/internal/curve"
	"github.com/gonewx/sparks/pkg/particles"
	"github.com/gonewx/sparks/pkg/pmath"
)

// LinearGravity accelerates particles along a fixed direction, velocity +=
// direction * strength * dt. Direction is normalized at update time.
type LinearGravity struct {
	Direction pmath.Vec2
	// Strength is the acceleration magnitude in units per second squared.
	Strength float64
}

func (m LinearGravity) Update(elapsed float64, view particles.View) {
	delta := m.Direction.Normalize().Scale(m.Strength * elapsed)
	view.Each(func(p *particles.Particle) {
		p.Velocity = p.Velocity.Add(delta)
	})
}

// Drag decays velocity by a factor (1 - coefficient*dt) per tick. The factor
// is clamped at zero so a large coefficient or frame spike stops particles
// dead instead of reversing them.
type Drag struct {
	// Coefficient is the drag strength in 1/seconds.
	Coefficient float64
}

func (m Drag) Update(elapsed float64, view particles.View) {
	factor := 1 - m.Coefficient*elapsed
	if factor < 0 {
		factor = 0
	}
	view.Each(func(p *particles.Particle) {
		p.Velocity = p.Velocity.Scale(factor)
	})
}

// ColorInterpolator blends each particle's RGB channels from its spawn-time
// color toward Final over the particle's lifetime. Opacity is untouched;
// pair with OpacityInterpolator to fade.
type ColorInterpolator struct {
	Final particles.Color
}

func (m ColorInterpolator) Update(elapsed float64, view particles.View) {
	view.Each(func(p *particles.Particle) {
		t := p.AgeFraction()
		p.Color.R = pmath.Lerp(p.InitialColor.R, m.Final.R, t)
		p.Color.G = pmath.Lerp(p.InitialColor.G, m.Final.G, t)
		p.Color.B = pmath.Lerp(p.InitialColor.B, m.Final.B, t)
	})
}

// OpacityInterpolator blends each particle's alpha from its spawn-time value
// toward Final over the particle's lifetime.
type OpacityInterpolator struct {
	Final float64
}

func (m OpacityInterpolator) Update(elapsed float64, view particles.View) {
	view.Each(func(p *particles.Particle) {
		p.Color.A = pmath.Lerp(p.InitialColor.A, m.Final, p.AgeFraction())
	})
}

// ScaleInterpolator blends each particle's scale from its spawn-time value
// toward Final over the particle's lifetime.
type ScaleInterpolator struct {
	Final float64
}

func (m ScaleInterpolator) Update(elapsed float64, view particles.View) {
	view.Each(func(p *particles.Particle) {
		p.Scale = pmath.Lerp(p.InitialScale, m.Final, p.AgeFraction())
	})
}

// RotationRateInterpolator blends each particle's spin rate from its
// spawn-time value toward Final (degrees per second) over the particle's
// lifetime. Place it before Rotation in the modifier list so the adjusted
// rate is the one integrated this tick.
type RotationRateInterpolator struct {
	Final float64
}

func (m RotationRateInterpolator) Update(elapsed float64, view particles.View) {
	view.Each(func(p *particles.Particle) {
		p.RotationRate = pmath.Lerp(p.InitialRotationRate, m.Final, p.AgeFraction())
	})
}

// Rotation integrates each particle's own rotation rate into its rotation
// angle, rotation += rate * dt.
type Rotation struct{}

func (Rotation) Update(elapsed float64, view particles.View) {
	view.Each(func(p *particles.Particle) {
		p.Rotation += p.RotationRate * elapsed
	})
}

// Vortex rotates particles around their spawn origin at a fixed angular
// velocity in degrees per second, negative for clockwise.
type Vortex struct {
	AngularVelocity float64
}

func (m Vortex) Update(elapsed float64, view particles.View) {
	angle := m.AngularVelocity * elapsed * degToRad
	view.Each(func(p *particles.Particle) {
		arm := p.Position.Sub(p.Origin)
		p.Position = p.Origin.Add(arm.Rotate(angle))
	})
}

// Away pushes particles radially from their spawn origin at a constant
// speed in units per second. A particle sitting exactly on the origin stays
// put until something else moves it.
type Away struct {
	Speed float64
}

func (m Away) Update(elapsed float64, view particles.View) {
	view.Each(func(p *particles.Particle) {
		dir := p.Position.Sub(p.Origin).Normalize()
		p.Position = p.Position.Add(dir.Scale(m.Speed * elapsed))
	})
}

// Container keeps particles inside an axis-aligned rectangle centered on
// their spawn origin, reflecting the velocity component normal to the wall
// scaled by Restitution.
type Container struct {
	Width       float64
	Height      float64
	Restitution float64
}

func (m Container) Update(elapsed float64, view particles.View) {
	halfW := m.Width / 2
	halfH := m.Height / 2
	view.Each(func(p *particles.Particle) {
		local := p.Position.Sub(p.Origin)
		if local.X < -halfW {
			local.X = -halfW
			p.Velocity.X = -p.Velocity.X * m.Restitution
		} else if local.X > halfW {
			local.X = halfW
			p.Velocity.X = -p.Velocity.X * m.Restitution
		}
		if local.Y < -halfH {
			local.Y = -halfH
			p.Velocity.Y = -p.Velocity.Y * m.Restitution
		} else if local.Y > halfH {
			local.Y = halfH
			p.Velocity.Y = -p.Velocity.Y * m.Restitution
		}
		p.Position = p.Origin.Add(local)
	})
}

// KeyframeTrack animates scale and opacity along authored keyframe curves
// over the particle's age fraction, using the curve package's track format.
// Empty tracks leave the corresponding property alone.
type KeyframeTrack struct {
	Scale         []curve.Keyframe
	Opacity       []curve.Keyframe
	Interpolation string
}

func (m KeyframeTrack) Update(elapsed float64, view particles.View) {
	view.Each(func(p *particles.Particle) {
		t := p.AgeFraction()
		if len(m.Scale) > 0 {
			p.Scale = curve.Evaluate(m.Scale, t, m.Interpolation)
		}
		if len(m.Opacity) > 0 {
			p.Color.A = curve.Evaluate(m.Opacity, t, m.Interpolation)
		}
	})
}

const degToRad = 0.017453292519943295
