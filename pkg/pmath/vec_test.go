package pmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVecBasicOps(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -4}

	if got := a.Add(b); got != (Vec2{X: 4, Y: -2}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: -2, Y: 6}) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 2, Y: 4}) {
		t.Errorf("Scale: got %+v", got)
	}
	if got := b.Length(); got != 5 {
		t.Errorf("Length: got %v, want 5", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot: got %v, want -5", got)
	}
}

func TestVecNormalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalize()
	if !almostEqual(v.X, 0.6) || !almostEqual(v.Y, 0.8) {
		t.Errorf("Normalize: got %+v, want (0.6, 0.8)", v)
	}

	// The zero vector must not divide by zero.
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize zero vector: got %+v, want zero", got)
	}
}

func TestVecRotate(t *testing.T) {
	v := Vec2{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 1) {
		t.Errorf("Rotate 90°: got %+v, want (0, 1)", v)
	}
}

func TestVecPerpendicular(t *testing.T) {
	v := Vec2{X: 1, Y: 0}.Perpendicular()
	if v != (Vec2{X: 0, Y: 1}) {
		t.Errorf("Perpendicular: got %+v, want (0, 1)", v)
	}
	if got := v.Dot(Vec2{X: 1, Y: 0}); got != 0 {
		t.Errorf("Perpendicular not orthogonal, dot = %v", got)
	}
}

func TestVecLerp(t *testing.T) {
	a := Vec2{X: 0, Y: 10}
	b := Vec2{X: 10, Y: 0}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp t=0: got %+v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp t=1: got %+v", got)
	}
	if got := a.Lerp(b, 0.5); got != (Vec2{X: 5, Y: 5}) {
		t.Errorf("Lerp t=0.5: got %+v, want (5, 5)", got)
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.5, 1},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Errorf("Clamp01(%v): got %v, want %v", c.in, got, c.want)
		}
	}
}
