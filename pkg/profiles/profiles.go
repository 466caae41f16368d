// Package profiles implements emission profiles: the strategies that decide,
// for each newly spawned particle, its position offset from the emitter and
// its initial heading.
//
// Every profile returns a unit heading. Shapes with zero extent (radius 0,
// zero-size boxes, zero-length lines) still produce a valid offset and a
// valid unit heading; degenerate geometry never fails.
package profiles

import (
	"math"

	"github.com/gonewx/sparks/pkg/pmath"
)

// Profile produces a spawn-time (offset, heading) sample from a geometric
// shape. Offsets are relative to the emitter's world position; headings are
// unit vectors.
type Profile interface {
	OffsetAndHeading(r *pmath.Rand) (offset, heading pmath.Vec2)
}

// Radiate selects how ring and circle profiles orient particle headings
// relative to the sampled point.
type Radiate int

const (
	// RadiateNone gives every particle an independent random heading.
	RadiateNone Radiate = iota
	// RadiateOut points headings from the center through the sample.
	RadiateOut
	// RadiateIn points headings from the sample back toward the center.
	RadiateIn
)

// Point emits every particle at the emitter position with a random heading.
type Point struct{}

func (Point) OffsetAndHeading(r *pmath.Rand) (pmath.Vec2, pmath.Vec2) {
	return pmath.Vec2{}, r.UnitVector()
}

// Ring emits particles on the edge of a circle.
type Ring struct {
	Radius  float64
	Radiate Radiate
}

func (p Ring) OffsetAndHeading(r *pmath.Rand) (pmath.Vec2, pmath.Vec2) {
	sin, cos := math.Sincos(r.Angle())
	radial := pmath.Vec2{X: cos, Y: sin}
	return radial.Scale(p.Radius), radiateHeading(r, radial, p.Radiate)
}

// Circle emits particles inside a filled disk. The sampled radius is scaled
// by sqrt of a uniform draw so density stays uniform by area; linear scaling
// would crowd samples toward the center.
type Circle struct {
	Radius  float64
	Radiate Radiate
}

func (p Circle) OffsetAndHeading(r *pmath.Rand) (pmath.Vec2, pmath.Vec2) {
	sin, cos := math.Sincos(r.Angle())
	radial := pmath.Vec2{X: cos, Y: sin}
	dist := p.Radius * math.Sqrt(r.Float01())
	return radial.Scale(dist), radiateHeading(r, radial, p.Radiate)
}

// radiateHeading resolves the heading for circular profiles. The radial
// direction is already a unit vector even at radius zero, so degenerate
// shapes still produce valid headings.
func radiateHeading(r *pmath.Rand, radial pmath.Vec2, mode Radiate) pmath.Vec2 {
	switch mode {
	case RadiateOut:
		return radial
	case RadiateIn:
		return radial.Neg()
	default:
		return r.UnitVector()
	}
}

// BoxOutline emits particles on the perimeter of an axis-aligned rectangle
// centered on the emitter. Edges are weighted by their length: an integer
// draw over the total perimeter 2*(W+H) picks the edge, then the free
// coordinate is drawn uniformly along it.
type BoxOutline struct {
	Width  float64
	Height float64
}

func (p BoxOutline) OffsetAndHeading(r *pmath.Rand) (pmath.Vec2, pmath.Vec2) {
	heading := r.UnitVector()
	perimeter := int(2 * (p.Width + p.Height))
	if perimeter <= 0 {
		return pmath.Vec2{}, heading
	}

	halfW := p.Width / 2
	halfH := p.Height / 2
	var offset pmath.Vec2
	switch v := float64(r.IntN(perimeter)); {
	case v < p.Width: // top edge
		offset = pmath.Vec2{X: r.Float(-halfW, halfW), Y: -halfH}
	case v < 2*p.Width: // bottom edge
		offset = pmath.Vec2{X: r.Float(-halfW, halfW), Y: halfH}
	case v < 2*p.Width+p.Height: // left edge
		offset = pmath.Vec2{X: -halfW, Y: r.Float(-halfH, halfH)}
	default: // right edge
		offset = pmath.Vec2{X: halfW, Y: r.Float(-halfH, halfH)}
	}
	return offset, heading
}

// BoxFill emits particles uniformly inside an axis-aligned rectangle
// centered on the emitter.
type BoxFill struct {
	Width  float64
	Height float64
}

func (p BoxFill) OffsetAndHeading(r *pmath.Rand) (pmath.Vec2, pmath.Vec2) {
	offset := pmath.Vec2{
		X: r.Float(-p.Width/2, p.Width/2),
		Y: r.Float(-p.Height/2, p.Height/2),
	}
	return offset, r.UnitVector()
}

// LineHeading selects how a Line profile orients particle headings.
type LineHeading int

const (
	// LineHeadingFree gives every particle an independent random heading.
	LineHeadingFree LineHeading = iota
	// LineHeadingFixed uses the configured Direction for every particle.
	LineHeadingFixed
	// LineHeadingPerpendicular points headings 90 degrees off the segment.
	LineHeadingPerpendicular
)

// Line emits particles along the segment from Start to End, both relative to
// the emitter position.
type Line struct {
	Start   pmath.Vec2
	End     pmath.Vec2
	Heading LineHeading

	// Direction is the heading used with LineHeadingFixed. It is
	// normalized at sample time; a zero direction falls back to a random
	// heading.
	Direction pmath.Vec2
}

func (p Line) OffsetAndHeading(r *pmath.Rand) (pmath.Vec2, pmath.Vec2) {
	offset := p.Start.Lerp(p.End, r.Float01())

	switch p.Heading {
	case LineHeadingFixed:
		if dir := p.Direction.Normalize(); dir != (pmath.Vec2{}) {
			return offset, dir
		}
	case LineHeadingPerpendicular:
		if axis := p.End.Sub(p.Start).Normalize(); axis != (pmath.Vec2{}) {
			return offset, axis.Perpendicular()
		}
	}
	return offset, r.UnitVector()
}

// Spray emits particles at the emitter position with headings inside a cone:
// the base Direction deviated by a uniform angle within ±Spread/2 radians.
type Spray struct {
	Direction pmath.Vec2
	Spread    float64
}

func (p Spray) OffsetAndHeading(r *pmath.Rand) (pmath.Vec2, pmath.Vec2) {
	dir := p.Direction.Normalize()
	if dir == (pmath.Vec2{}) {
		return pmath.Vec2{}, r.UnitVector()
	}
	deviation := r.Float(-p.Spread/2, p.Spread/2)
	return pmath.Vec2{}, dir.Rotate(deviation)
}
