package curve

import (
	"math"
	"testing"
)

func TestEvaluateEmpty(t *testing.T) {
	if got := Evaluate(nil, 0.5, InterpLinear); got != 0 {
		t.Errorf("empty track: got %v, want 0", got)
	}
}

func TestEvaluateSingleKeyframe(t *testing.T) {
	kf := []Keyframe{{Time: 0.5, Value: 3}}
	for _, tm := range []float64{0, 0.5, 1} {
		if got := Evaluate(kf, tm, InterpLinear); got != 3 {
			t.Errorf("single keyframe at t=%v: got %v, want 3", tm, got)
		}
	}
}

func TestEvaluateLinear(t *testing.T) {
	kf := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 10}}
	cases := []struct{ t, want float64 }{
		{0, 0},
		{0.25, 2.5},
		{0.5, 5},
		{1, 10},
	}
	for _, c := range cases {
		if got := Evaluate(kf, c.t, InterpLinear); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("linear t=%v: got %v, want %v", c.t, got, c.want)
		}
	}
}

func TestEvaluateClamping(t *testing.T) {
	kf := []Keyframe{{Time: 0.2, Value: 1}, {Time: 0.8, Value: 5}}
	if got := Evaluate(kf, -1, InterpLinear); got != 1 {
		t.Errorf("t=-1: got %v, want first value 1", got)
	}
	if got := Evaluate(kf, 0.1, InterpLinear); got != 1 {
		t.Errorf("t before first frame: got %v, want 1", got)
	}
	if got := Evaluate(kf, 2, InterpLinear); got != 5 {
		t.Errorf("t=2: got %v, want last value 5", got)
	}
}

func TestEvaluateEaseModes(t *testing.T) {
	kf := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 1}}

	// At the midpoint the eased ratios have known closed forms.
	if got := Evaluate(kf, 0.5, InterpEaseIn); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("EaseIn midpoint: got %v, want 0.25", got)
	}
	if got := Evaluate(kf, 0.5, InterpEaseOut); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("EaseOut midpoint: got %v, want 0.75", got)
	}
	if got := Evaluate(kf, 0.5, InterpFastInOutWeak); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("FastInOutWeak midpoint: got %v, want 0.5", got)
	}

	// Endpoints are exact for every mode.
	for _, mode := range []string{InterpLinear, InterpEaseIn, InterpEaseOut, InterpFastInOutWeak} {
		if got := Evaluate(kf, 0, mode); got != 0 {
			t.Errorf("%s at t=0: got %v, want 0", mode, got)
		}
		if got := Evaluate(kf, 1, mode); got != 1 {
			t.Errorf("%s at t=1: got %v, want 1", mode, got)
		}
	}
}

func TestEvaluateMultiSegment(t *testing.T) {
	kf := []Keyframe{{Time: 0, Value: 0}, {Time: 0.5, Value: 10}, {Time: 1, Value: 4}}
	if got := Evaluate(kf, 0.25, InterpLinear); math.Abs(got-5) > 1e-9 {
		t.Errorf("first segment t=0.25: got %v, want 5", got)
	}
	if got := Evaluate(kf, 0.75, InterpLinear); math.Abs(got-7) > 1e-9 {
		t.Errorf("second segment t=0.75: got %v, want 7", got)
	}
}

func TestEvaluateUnknownModeFallsBackToLinear(t *testing.T) {
	kf := []Keyframe{{Time: 0, Value: 0}, {Time: 1, Value: 10}}
	if got := Evaluate(kf, 0.5, "Bounce"); math.Abs(got-5) > 1e-9 {
		t.Errorf("unknown mode: got %v, want linear 5", got)
	}
}
