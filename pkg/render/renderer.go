// Package render is the ebiten render-submission adapter for the particle
// core. It reads the live particle view each frame and batches one textured
// quad per particle into a single DrawTriangles call.
//
// The core stays renderer-agnostic; only this package (and programs built on
// it) import ebiten. Hosts targeting another framework implement the same
// pattern against Emitter.Each themselves.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/sparks/pkg/particles"
)

// quadIndices is the index pattern of one particle quad, two triangles over
// four vertices.
var quadIndices = [6]uint16{0, 1, 2, 1, 3, 2}

// Renderer batches live particles of an effect into vertex/index buffers
// and submits them with one draw call per Draw. The vertex buffers are
// reused between frames; a Renderer is not safe for concurrent use.
type Renderer struct {
	texture  *ebiten.Image
	additive bool

	vertices []ebiten.Vertex
	indices  []uint16
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAdditiveBlend renders particles with additive blending, the usual
// choice for fire and glow effects.
func WithAdditiveBlend() Option {
	return func(r *Renderer) { r.additive = true }
}

// NewRenderer creates a renderer drawing each particle as a quad of the
// given texture. A nil texture falls back to a small white square, which
// tinted and scaled per particle is enough for untextured effects.
func NewRenderer(texture *ebiten.Image, opts ...Option) *Renderer {
	if texture == nil {
		texture = ebiten.NewImage(4, 4)
		texture.Fill(color.White)
	}
	r := &Renderer{texture: texture}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Draw submits every live particle of the effect to screen. Must be called
// after the effect's Tick for the frame; the live view it reads is only
// valid until the next Tick.
func (r *Renderer) Draw(screen *ebiten.Image, effect *particles.Effect) {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

	bounds := r.texture.Bounds()
	srcX0 := float32(bounds.Min.X)
	srcY0 := float32(bounds.Min.Y)
	srcX1 := float32(bounds.Max.X)
	srcY1 := float32(bounds.Max.Y)
	halfW := float64(bounds.Dx()) / 2
	halfH := float64(bounds.Dy()) / 2

	effect.Each(func(p *particles.Particle) {
		// Vertex indices are uint16; flush the batch before a quad
		// would overflow them.
		if len(r.vertices) > math.MaxUint16-4 {
			r.flush(screen)
		}
		base := uint16(len(r.vertices))

		sin, cos := math.Sincos(p.Rotation * math.Pi / 180)
		// Quad corners: top-left, top-right, bottom-left, bottom-right,
		// rotated and scaled around the particle center.
		corners := [4][2]float64{
			{-halfW, -halfH},
			{halfW, -halfH},
			{-halfW, halfH},
			{halfW, halfH},
		}
		src := [4][2]float32{
			{srcX0, srcY0},
			{srcX1, srcY0},
			{srcX0, srcY1},
			{srcX1, srcY1},
		}

		colorR := float32(p.Color.R)
		colorG := float32(p.Color.G)
		colorB := float32(p.Color.B)
		colorA := float32(p.Color.A)

		for i, corner := range corners {
			x := (corner[0]*cos - corner[1]*sin) * p.Scale
			y := (corner[0]*sin + corner[1]*cos) * p.Scale
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   float32(p.Position.X + x),
				DstY:   float32(p.Position.Y + y),
				SrcX:   src[i][0],
				SrcY:   src[i][1],
				ColorR: colorR,
				ColorG: colorG,
				ColorB: colorB,
				ColorA: colorA,
			})
		}
		for _, idx := range quadIndices {
			r.indices = append(r.indices, base+idx)
		}
	})

	r.flush(screen)
}

func (r *Renderer) flush(screen *ebiten.Image) {
	if len(r.indices) == 0 {
		return
	}

	op := &ebiten.DrawTrianglesOptions{}
	if r.additive {
		op.Blend = ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	}
	screen.DrawTriangles(r.vertices, r.indices, r.texture, op)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
