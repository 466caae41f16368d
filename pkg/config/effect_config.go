// Package config loads particle effect definitions from YAML and builds the
// runtime emitters they describe.
//
// The core packages only accept plain structs; this package is the
// serialization collaborator that produces them. Numeric parameters accept
// the compact value-string syntax ("100", "[0.5 1.5]", keyframe tracks) so
// authored files stay terse.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/sparks/internal/curve"
	"github.com/gonewx/sparks/pkg/modifiers"
	"github.com/gonewx/sparks/pkg/particles"
	"github.com/gonewx/sparks/pkg/pmath"
	"github.com/gonewx/sparks/pkg/profiles"
)

// EffectConfig is the root of an authored effect file: a named list of
// emitter definitions ticked together.
type EffectConfig struct {
	Name     string          `yaml:"name"`
	Emitters []EmitterConfig `yaml:"emitters"`
}

// EmitterConfig describes one emitter layer of an effect.
//
// String-typed fields use the value-string syntax: a fixed number ("1.5"),
// a random range ("[0.5 2]"), or for the keyframe modifier a track
// ("0,1 1,0"). Empty strings fall back to the core's defaults.
type EmitterConfig struct {
	Name     string  `yaml:"name,omitempty"`
	Capacity int     `yaml:"capacity"`
	Rate     float64 `yaml:"rate,omitempty"`
	Duration float64 `yaml:"duration,omitempty"`
	Loop     bool    `yaml:"loop,omitempty"`

	Profile ProfileConfig `yaml:"profile"`

	Lifespan     string    `yaml:"lifespan,omitempty"`
	Speed        string    `yaml:"speed,omitempty"`
	Scale        string    `yaml:"scale,omitempty"`
	Rotation     string    `yaml:"rotation,omitempty"`
	RotationRate string    `yaml:"rotationRate,omitempty"`
	Color        []float64 `yaml:"color,omitempty,flow"`
	Opacity      string    `yaml:"opacity,omitempty"`

	Modifiers []ModifierConfig `yaml:"modifiers,omitempty"`
}

// ProfileConfig selects an emission profile shape. Only the fields relevant
// to the chosen type are consulted.
type ProfileConfig struct {
	// Type is one of: point, ring, circle, boxOutline, boxFill, line,
	// spray.
	Type string `yaml:"type"`

	Radius float64 `yaml:"radius,omitempty"`
	// Radiate is "out", "in" or "" (free heading) for ring and circle.
	Radiate string `yaml:"radiate,omitempty"`

	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	Start Point `yaml:"start,omitempty"`
	End   Point `yaml:"end,omitempty"`
	// Heading is "free", "fixed" or "perpendicular" for line profiles.
	Heading string `yaml:"heading,omitempty"`

	Direction Point `yaml:"direction,omitempty"`
	// SpreadDegrees is the full cone width of a spray profile.
	SpreadDegrees float64 `yaml:"spreadDegrees,omitempty"`
}

// Point is a YAML-friendly 2D vector.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts the point to the math vector type.
func (p Point) Vec() pmath.Vec2 {
	return pmath.Vec2{X: p.X, Y: p.Y}
}

// ModifierConfig describes one modifier in an emitter's ordered list. Only
// the fields relevant to the chosen type are consulted.
type ModifierConfig struct {
	// Type is one of: linearGravity, drag, colorInterpolator,
	// opacityInterpolator, scaleInterpolator, rotationRateInterpolator,
	// rotation, vortex, away, container, keyframes.
	Type string `yaml:"type"`

	Direction Point   `yaml:"direction,omitempty"`
	Strength  float64 `yaml:"strength,omitempty"`

	Coefficient float64 `yaml:"coefficient,omitempty"`

	FinalColor        []float64 `yaml:"finalColor,omitempty,flow"`
	FinalOpacity      float64   `yaml:"finalOpacity,omitempty"`
	FinalScale        float64   `yaml:"finalScale,omitempty"`
	FinalRotationRate float64   `yaml:"finalRotationRate,omitempty"`

	AngularVelocity float64 `yaml:"angularVelocity,omitempty"`
	Speed           float64 `yaml:"speed,omitempty"`

	Width       float64 `yaml:"width,omitempty"`
	Height      float64 `yaml:"height,omitempty"`
	Restitution float64 `yaml:"restitution,omitempty"`

	ScaleTrack    string `yaml:"scaleTrack,omitempty"`
	OpacityTrack  string `yaml:"opacityTrack,omitempty"`
	Interpolation string `yaml:"interpolation,omitempty"`
}

// Load reads and parses an effect YAML file, validating it before returning.
func Load(path string) (*EffectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect config: %w", err)
	}
	return Parse(data)
}

// Parse parses effect YAML from memory, validating it before returning.
func Parse(data []byte) (*EffectConfig, error) {
	var cfg EffectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse effect config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for faults the core would reject at
// construction, so authoring mistakes surface with field context at load
// time rather than from deep inside NewEmitter.
func (c *EffectConfig) Validate() error {
	if len(c.Emitters) == 0 {
		return fmt.Errorf("%w: effect %q has no emitters", particles.ErrInvalidConfiguration, c.Name)
	}
	for i, em := range c.Emitters {
		if err := em.validate(); err != nil {
			return fmt.Errorf("effect %q emitter %d (%s): %w", c.Name, i, em.Name, err)
		}
	}
	return nil
}

func (c *EmitterConfig) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", particles.ErrInvalidConfiguration, c.Capacity)
	}
	if c.Rate < 0 {
		return fmt.Errorf("%w: rate must not be negative, got %g", particles.ErrInvalidConfiguration, c.Rate)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative, got %g", particles.ErrInvalidConfiguration, c.Duration)
	}
	if _, err := buildProfile(c.Profile); err != nil {
		return err
	}
	for _, ranged := range []struct {
		name  string
		value string
	}{
		{"lifespan", c.Lifespan},
		{"speed", c.Speed},
		{"scale", c.Scale},
		{"rotation", c.Rotation},
		{"rotationRate", c.RotationRate},
		{"opacity", c.Opacity},
	} {
		if _, err := parseRange(ranged.name, ranged.value); err != nil {
			return err
		}
	}
	if c.Color != nil && len(c.Color) != 3 && len(c.Color) != 4 {
		return fmt.Errorf("%w: color must have 3 or 4 channels, got %d", particles.ErrInvalidConfiguration, len(c.Color))
	}
	for j, mod := range c.Modifiers {
		if _, err := buildModifier(mod); err != nil {
			return fmt.Errorf("modifier %d: %w", j, err)
		}
	}
	return nil
}

// Build constructs the runtime effect the configuration describes. The
// random source is shared by all of the effect's emitters.
func (c *EffectConfig) Build(rng *pmath.Rand) (*particles.Effect, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	effect := &particles.Effect{Name: c.Name}
	for i, em := range c.Emitters {
		emitter, err := em.Build(rng)
		if err != nil {
			return nil, fmt.Errorf("effect %q emitter %d (%s): %w", c.Name, i, em.Name, err)
		}
		effect.Emitters = append(effect.Emitters, emitter)
	}
	return effect, nil
}

// Build constructs a single emitter from its configuration.
func (c *EmitterConfig) Build(rng *pmath.Rand) (*particles.Emitter, error) {
	profile, err := buildProfile(c.Profile)
	if err != nil {
		return nil, err
	}

	var mods []particles.Modifier
	for j, mod := range c.Modifiers {
		built, err := buildModifier(mod)
		if err != nil {
			return nil, fmt.Errorf("modifier %d: %w", j, err)
		}
		mods = append(mods, built)
	}

	release := particles.ReleaseParameters{}
	fields := []struct {
		name  string
		value string
		dst   *particles.Range
	}{
		{"lifespan", c.Lifespan, &release.Lifespan},
		{"speed", c.Speed, &release.Speed},
		{"scale", c.Scale, &release.Scale},
		{"rotation", c.Rotation, &release.Rotation},
		{"rotationRate", c.RotationRate, &release.RotationRate},
		{"opacity", c.Opacity, &release.Opacity},
	}
	for _, f := range fields {
		r, err := parseRange(f.name, f.value)
		if err != nil {
			return nil, err
		}
		*f.dst = r
	}
	release.Color = colorFromSlice(c.Color)

	return particles.NewEmitter(rng, particles.EmitterConfig{
		Capacity:  c.Capacity,
		Rate:      c.Rate,
		Duration:  c.Duration,
		Loop:      c.Loop,
		Profile:   profile,
		Modifiers: mods,
		Release:   release,
	})
}

// parseRange resolves a value string into a numeric range. Keyframe tracks
// are rejected here; tracks only belong to the keyframes modifier.
func parseRange(name, value string) (particles.Range, error) {
	if value == "" {
		return particles.Range{}, nil
	}
	min, max, keyframes, _ := curve.ParseValue(value)
	if len(keyframes) > 0 {
		return particles.Range{}, fmt.Errorf("%w: %s: expected a fixed value or range, got a keyframe track %q",
			particles.ErrInvalidConfiguration, name, value)
	}
	if min > max {
		return particles.Range{}, fmt.Errorf("%w: %s: range inverted, min %g > max %g",
			particles.ErrInvalidConfiguration, name, min, max)
	}
	return particles.Range{Min: min, Max: max}, nil
}

func colorFromSlice(channels []float64) particles.Color {
	switch len(channels) {
	case 3:
		return particles.Color{R: channels[0], G: channels[1], B: channels[2], A: 1}
	case 4:
		return particles.Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}
	default:
		return particles.Color{}
	}
}

func buildProfile(cfg ProfileConfig) (profiles.Profile, error) {
	radiate, err := parseRadiate(cfg.Radiate)
	if err != nil {
		return nil, err
	}

	switch cfg.Type {
	case "", "point":
		return profiles.Point{}, nil
	case "ring":
		return profiles.Ring{Radius: cfg.Radius, Radiate: radiate}, nil
	case "circle":
		return profiles.Circle{Radius: cfg.Radius, Radiate: radiate}, nil
	case "boxOutline":
		return profiles.BoxOutline{Width: cfg.Width, Height: cfg.Height}, nil
	case "boxFill":
		return profiles.BoxFill{Width: cfg.Width, Height: cfg.Height}, nil
	case "line":
		heading, err := parseLineHeading(cfg.Heading)
		if err != nil {
			return nil, err
		}
		return profiles.Line{
			Start:     cfg.Start.Vec(),
			End:       cfg.End.Vec(),
			Heading:   heading,
			Direction: cfg.Direction.Vec(),
		}, nil
	case "spray":
		return profiles.Spray{
			Direction: cfg.Direction.Vec(),
			Spread:    cfg.SpreadDegrees * math.Pi / 180,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown profile type %q", particles.ErrInvalidConfiguration, cfg.Type)
	}
}

func parseRadiate(s string) (profiles.Radiate, error) {
	switch s {
	case "", "none", "free":
		return profiles.RadiateNone, nil
	case "out":
		return profiles.RadiateOut, nil
	case "in":
		return profiles.RadiateIn, nil
	default:
		return 0, fmt.Errorf("%w: unknown radiate mode %q", particles.ErrInvalidConfiguration, s)
	}
}

func parseLineHeading(s string) (profiles.LineHeading, error) {
	switch s {
	case "", "free":
		return profiles.LineHeadingFree, nil
	case "fixed":
		return profiles.LineHeadingFixed, nil
	case "perpendicular":
		return profiles.LineHeadingPerpendicular, nil
	default:
		return 0, fmt.Errorf("%w: unknown line heading %q", particles.ErrInvalidConfiguration, s)
	}
}

func buildModifier(cfg ModifierConfig) (particles.Modifier, error) {
	switch cfg.Type {
	case "linearGravity":
		return modifiers.LinearGravity{Direction: cfg.Direction.Vec(), Strength: cfg.Strength}, nil
	case "drag":
		return modifiers.Drag{Coefficient: cfg.Coefficient}, nil
	case "colorInterpolator":
		if len(cfg.FinalColor) != 3 && len(cfg.FinalColor) != 4 {
			return nil, fmt.Errorf("%w: colorInterpolator finalColor must have 3 or 4 channels, got %d",
				particles.ErrInvalidConfiguration, len(cfg.FinalColor))
		}
		return modifiers.ColorInterpolator{Final: colorFromSlice(cfg.FinalColor)}, nil
	case "opacityInterpolator":
		return modifiers.OpacityInterpolator{Final: cfg.FinalOpacity}, nil
	case "scaleInterpolator":
		return modifiers.ScaleInterpolator{Final: cfg.FinalScale}, nil
	case "rotationRateInterpolator":
		return modifiers.RotationRateInterpolator{Final: cfg.FinalRotationRate}, nil
	case "rotation":
		return modifiers.Rotation{}, nil
	case "vortex":
		return modifiers.Vortex{AngularVelocity: cfg.AngularVelocity}, nil
	case "away":
		return modifiers.Away{Speed: cfg.Speed}, nil
	case "container":
		return modifiers.Container{Width: cfg.Width, Height: cfg.Height, Restitution: cfg.Restitution}, nil
	case "keyframes":
		mod := modifiers.KeyframeTrack{Interpolation: cfg.Interpolation}
		var err error
		if mod.Scale, err = parseTrack("scaleTrack", cfg.ScaleTrack); err != nil {
			return nil, err
		}
		if mod.Opacity, err = parseTrack("opacityTrack", cfg.OpacityTrack); err != nil {
			return nil, err
		}
		if len(mod.Scale) == 0 && len(mod.Opacity) == 0 {
			return nil, fmt.Errorf("%w: keyframes modifier needs scaleTrack or opacityTrack",
				particles.ErrInvalidConfiguration)
		}
		return mod, nil
	default:
		return nil, fmt.Errorf("%w: unknown modifier type %q", particles.ErrInvalidConfiguration, cfg.Type)
	}
}

func parseTrack(name, value string) ([]curve.Keyframe, error) {
	if value == "" {
		return nil, nil
	}
	_, _, keyframes, _ := curve.ParseValue(value)
	if len(keyframes) == 0 {
		return nil, fmt.Errorf("%w: %s: expected a keyframe track, got %q",
			particles.ErrInvalidConfiguration, name, value)
	}
	return keyframes, nil
}
