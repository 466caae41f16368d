// Package curve provides keyframe animation tracks and the compact
// value-string syntax used by effect configuration files.
//
// Configuration values come in three shapes: a fixed number ("1500"), a
// random range ("[0.7 0.9]"), or a keyframe track ("0,1 0.5,0.2 1,0" with an
// optional interpolation keyword). The particle core itself only deals with
// parsed numbers; this package is the bridge from authored strings to those
// numbers.
package curve

import "math"

// Interpolation mode keywords accepted in value strings and keyframe tracks.
const (
	InterpLinear        = "Linear"
	InterpEaseIn        = "EaseIn"
	InterpEaseOut       = "EaseOut"
	InterpFastInOutWeak = "FastInOutWeak"
)

// Keyframe is a single point on an animation curve: a value at a normalized
// time in [0, 1].
type Keyframe struct {
	Time  float64
	Value float64
}

// Evaluate returns the interpolated value of the track at normalized time t.
// t is clamped to [0, 1]. Before the first keyframe the first value is
// returned; past the last keyframe the last value is returned. An empty
// track evaluates to 0.
func Evaluate(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = math.Max(0, math.Min(1, t))
	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]
		if t < k0.Time || t > k1.Time {
			continue
		}

		duration := k1.Time - k0.Time
		if duration <= 0 {
			return k0.Value
		}
		ratio := (t - k0.Time) / duration

		switch interpolation {
		case InterpEaseIn:
			ratio = ratio * ratio
		case InterpEaseOut:
			ratio = 1 - (1-ratio)*(1-ratio)
		case InterpFastInOutWeak:
			ratio = ratio * ratio * (3 - 2*ratio)
		default:
			// Linear, empty, or unknown keyword all fall back to linear.
		}
		return k0.Value + ratio*(k1.Value-k0.Value)
	}

	return keyframes[len(keyframes)-1].Value
}
