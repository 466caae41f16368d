package curve

import "testing"

func TestParseValueFixed(t *testing.T) {
	min, max, kf, interp := ParseValue("1500")
	if min != 1500 || max != 1500 {
		t.Errorf("fixed: got min=%v max=%v, want 1500/1500", min, max)
	}
	if kf != nil || interp != "" {
		t.Errorf("fixed: unexpected keyframes=%v interp=%q", kf, interp)
	}
}

func TestParseValueRange(t *testing.T) {
	min, max, kf, _ := ParseValue("[0.7 0.9]")
	if min != 0.7 || max != 0.9 {
		t.Errorf("range: got min=%v max=%v, want 0.7/0.9", min, max)
	}
	if kf != nil {
		t.Errorf("range: unexpected keyframes %v", kf)
	}
}

func TestParseValueSingleValueRange(t *testing.T) {
	min, max, _, _ := ParseValue("[0.5]")
	if min != 0.5 || max != 0.5 {
		t.Errorf("single-value range: got min=%v max=%v, want 0.5/0.5", min, max)
	}
}

func TestParseValueKeyframes(t *testing.T) {
	_, _, kf, interp := ParseValue("0,1 0.5,0.2 1,0")
	if len(kf) != 3 {
		t.Fatalf("keyframes: got %d frames, want 3", len(kf))
	}
	if kf[0] != (Keyframe{Time: 0, Value: 1}) {
		t.Errorf("keyframes[0]: got %+v", kf[0])
	}
	if kf[1] != (Keyframe{Time: 0.5, Value: 0.2}) {
		t.Errorf("keyframes[1]: got %+v", kf[1])
	}
	if kf[2] != (Keyframe{Time: 1, Value: 0}) {
		t.Errorf("keyframes[2]: got %+v", kf[2])
	}
	if interp != "" {
		t.Errorf("keyframes: unexpected interpolation %q", interp)
	}
}

func TestParseValueKeyframesWithMode(t *testing.T) {
	_, _, kf, interp := ParseValue("EaseOut 0,1 1,0")
	if interp != InterpEaseOut {
		t.Errorf("mode: got interpolation %q, want %q", interp, InterpEaseOut)
	}
	if len(kf) != 2 {
		t.Fatalf("mode: got %d frames, want 2", len(kf))
	}
}

func TestParseValueGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "abc", "[x y]", "[]"} {
		min, max, kf, _ := ParseValue(s)
		if min != 0 || max != 0 || kf != nil {
			t.Errorf("ParseValue(%q): got min=%v max=%v kf=%v, want all zero", s, min, max, kf)
		}
	}
}

func TestIsTrack(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1500", false},
		{"[0.7 0.9]", false},
		{"0,1 1,0", true},
		{"EaseIn 0,0 1,1", true},
		{"", false},
	}
	for _, c := range cases {
		if got := IsTrack(c.in); got != c.want {
			t.Errorf("IsTrack(%q): got %v, want %v", c.in, got, c.want)
		}
	}
}
