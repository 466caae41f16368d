package particles

import (
	"fmt"
	"math"

	"github.com/gonewx/sparks/pkg/pmath"
	"github.com/gonewx/sparks/pkg/profiles"
)

// Modifier mutates live particle state over elapsed time. Implementations
// live in the modifiers package; the interface is declared here so the
// emitter can run an ordered list of them without importing it.
//
// Modifiers run in configured list order every tick, each seeing the writes
// of the ones before it. A modifier must never change a particle's Age or
// Lifetime.
type Modifier interface {
	Update(elapsed float64, view View)
}

// Range is a closed numeric interval parameters are drawn from at spawn
// time. Min == Max pins the value.
type Range struct {
	Min float64
	Max float64
}

// Sample draws a uniform value from the range.
func (r Range) Sample(rng *pmath.Rand) float64 {
	return rng.Float(r.Min, r.Max)
}

// zero reports whether the range is the zero value, used to detect unset
// parameters during defaulting.
func (r Range) zero() bool {
	return r.Min == 0 && r.Max == 0
}

// ReleaseParameters describe the spawn-time state drawn for each new
// particle. Ranges sample uniformly; unset (zero) visual parameters default
// to neutral values: scale 1, opacity 1, white color, lifespan 1s.
type ReleaseParameters struct {
	// Speed is the initial velocity magnitude in units per second,
	// applied along the heading the emission profile produces.
	Speed Range

	// Lifespan is the total seconds a particle lives, drawn per particle.
	Lifespan Range

	// Scale is the initial size multiplier.
	Scale Range

	// Rotation is the initial visual angle in degrees.
	Rotation Range

	// RotationRate is the initial spin in degrees per second.
	RotationRate Range

	// Color is the initial RGB tint; Opacity the initial alpha.
	Color   Color
	Opacity Range
}

// EmitterConfig is the plain configuration struct an emitter is built from.
// Any serialization format producing it (YAML authoring files, preset
// stores) lives outside this package.
type EmitterConfig struct {
	// Capacity is the fixed particle buffer size. Must be positive.
	Capacity int

	// Rate is the continuous emission rate in particles per second.
	// Zero means the emitter only releases particles through Burst.
	Rate float64

	// Duration limits how long the emitter spawns, in seconds; zero means
	// forever. With Loop set, the emitter's clock wraps instead of
	// stopping.
	Duration float64
	Loop     bool

	// Profile decides where new particles appear and which way they head.
	Profile profiles.Profile

	// Modifiers run in order over live particles every tick.
	Modifiers []Modifier

	// Release describes spawn-time particle state.
	Release ReleaseParameters
}

// Emitter owns one particle buffer, one emission profile and an ordered
// modifier list, and advances them together each tick.
//
// An Emitter is single-threaded: Tick must not be called concurrently with
// itself or with reads of the live view. Independent emitters may be ticked
// from different goroutines.
type Emitter struct {
	// Position is the emitter's world position; profile offsets are
	// relative to it. Hosts may move it freely between ticks.
	Position pmath.Vec2

	rng       *pmath.Rand
	buffer    *Buffer
	profile   profiles.Profile
	modifiers []Modifier
	release   ReleaseParameters

	rate      float64
	remainder float64
	duration  float64
	loop      bool
	age       float64
	emitting  bool
}

// NewEmitter validates the configuration and builds an emitter. All
// configuration faults surface here, synchronously, wrapped around
// ErrInvalidConfiguration; a successfully constructed emitter ticks without
// ever checking configuration again.
func NewEmitter(rng *pmath.Rand, cfg EmitterConfig) (*Emitter, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
	}
	if cfg.Rate < 0 {
		return nil, fmt.Errorf("%w: emission rate must not be negative, got %g", ErrInvalidConfiguration, cfg.Rate)
	}
	if cfg.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative, got %g", ErrInvalidConfiguration, cfg.Duration)
	}

	release := cfg.Release
	applyReleaseDefaults(&release)
	if err := validateRelease(release); err != nil {
		return nil, err
	}

	buffer, err := NewBuffer(cfg.Capacity)
	if err != nil {
		return nil, err
	}

	profile := cfg.Profile
	if profile == nil {
		profile = profiles.Point{}
	}

	return &Emitter{
		rng:       rng,
		buffer:    buffer,
		profile:   profile,
		modifiers: cfg.Modifiers,
		release:   release,
		rate:      cfg.Rate,
		duration:  cfg.Duration,
		loop:      cfg.Loop,
		emitting:  true,
	}, nil
}

func applyReleaseDefaults(r *ReleaseParameters) {
	if r.Lifespan.zero() {
		r.Lifespan = Range{Min: 1, Max: 1}
	}
	if r.Scale.zero() {
		r.Scale = Range{Min: 1, Max: 1}
	}
	if r.Opacity.zero() {
		r.Opacity = Range{Min: 1, Max: 1}
	}
	if (r.Color == Color{}) {
		r.Color = White
	}
}

func validateRelease(r ReleaseParameters) error {
	ranges := []struct {
		name string
		r    Range
	}{
		{"speed", r.Speed},
		{"lifespan", r.Lifespan},
		{"scale", r.Scale},
		{"rotation", r.Rotation},
		{"rotationRate", r.RotationRate},
		{"opacity", r.Opacity},
	}
	for _, entry := range ranges {
		if entry.r.Min > entry.r.Max {
			return fmt.Errorf("%w: %s range inverted, min %g > max %g",
				ErrInvalidConfiguration, entry.name, entry.r.Min, entry.r.Max)
		}
	}
	if r.Lifespan.Min <= 0 {
		return fmt.Errorf("%w: lifespan must be positive, got min %g", ErrInvalidConfiguration, r.Lifespan.Min)
	}
	return nil
}

// Tick advances the emitter by elapsed seconds, in fixed order: accumulate
// spawn debt and spawn, age every live particle, retire expired ones and
// integrate velocity for the survivors, then run the modifier list over
// them. Retiring before modifying keeps the modifier loop from touching
// particles that died this tick.
//
// Spawning is best-effort: requests beyond remaining capacity are dropped,
// not queued, and only the fractional spawn remainder carries to the next
// tick. A zero (or negative) elapsed time is a valid no-op.
func (e *Emitter) Tick(elapsed float64) {
	if elapsed <= 0 {
		return
	}

	e.age += elapsed
	if e.duration > 0 && e.age >= e.duration {
		if e.loop {
			e.age = math.Mod(e.age, e.duration)
		} else {
			e.emitting = false
		}
	}

	if e.emitting && e.rate > 0 {
		debt := e.remainder + e.rate*elapsed
		count := math.Floor(debt)
		e.remainder = debt - count
		e.spawn(int(count))
	}

	// Age, retire and move in one pass. Release swap-compacts, moving the
	// last live particle (not yet visited) into the freed slot, so the
	// index only advances when the current slot survives. Velocity is
	// integrated here so movement never depends on the modifier list.
	for i := 0; i < e.buffer.Len(); {
		p := e.buffer.At(i)
		p.Age += elapsed
		if p.Age >= p.Lifetime {
			e.buffer.Release(i)
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Scale(elapsed))
		i++
	}

	view := e.buffer.LiveView()
	for _, m := range e.modifiers {
		m.Update(elapsed, view)
	}
}

// Burst releases up to count particles immediately, independent of the
// emission rate, capped by remaining buffer capacity. Used for one-shot
// effects alongside or instead of continuous emission.
func (e *Emitter) Burst(count int) {
	e.spawn(count)
}

func (e *Emitter) spawn(count int) {
	for i := 0; i < count; i++ {
		idx, err := e.buffer.Allocate()
		if err != nil {
			// Full buffer is normal steady state; drop the rest.
			return
		}

		offset, heading := e.profile.OffsetAndHeading(e.rng)

		p := e.buffer.At(idx)
		p.Position = e.Position.Add(offset)
		p.Origin = e.Position
		p.Velocity = heading.Scale(e.release.Speed.Sample(e.rng))
		p.Rotation = e.release.Rotation.Sample(e.rng)
		p.RotationRate = e.release.RotationRate.Sample(e.rng)
		p.Scale = e.release.Scale.Sample(e.rng)
		p.Color = e.release.Color
		p.Color.A = e.release.Opacity.Sample(e.rng)
		p.Age = 0
		p.Lifetime = e.release.Lifespan.Sample(e.rng)

		p.InitialColor = p.Color
		p.InitialScale = p.Scale
		p.InitialRotationRate = p.RotationRate
	}
}

// Count returns the number of live particles.
func (e *Emitter) Count() int {
	return e.buffer.Len()
}

// Capacity returns the fixed buffer capacity.
func (e *Emitter) Capacity() int {
	return e.buffer.Cap()
}

// Emitting reports whether the emitter is still spawning. It turns false
// only when a finite, non-looping duration has elapsed; live particles keep
// aging out afterwards.
func (e *Emitter) Emitting() bool {
	return e.emitting
}

// LiveView returns the read-only-by-convention view over live particles for
// render submission. It is valid only until the next Tick or Burst; hosts
// must re-fetch it every frame.
func (e *Emitter) LiveView() View {
	return e.buffer.LiveView()
}

// Each visits every live particle. Same validity rules as LiveView.
func (e *Emitter) Each(fn func(p *Particle)) {
	e.buffer.ForEachLive(fn)
}
