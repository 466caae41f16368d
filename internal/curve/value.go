package curve

import (
	"strconv"
	"strings"
)

// ParseValue parses a configuration value string.
//
// Supported formats:
//   - Fixed value: "1500" → min=1500, max=1500, keyframes=nil
//   - Range: "[0.7 0.9]" → min=0.7, max=0.9, keyframes=nil
//   - Single-value range: "[0.5]" → min=max=0.5
//   - Keyframes: "0,1 0.5,0.2 1,0" → keyframes of time,value pairs
//   - Keyframes with mode: "EaseOut 0,1 1,0" → interpolation="EaseOut"
//
// Returns the range bounds for fixed/range formats, or the keyframe track
// and interpolation keyword for track formats. Unparseable input returns all
// zero values; configuration validation is the caller's job.
func ParseValue(s string) (min, max float64, keyframes []Keyframe, interpolation string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil, ""
	}

	// Range format: "[min max]" or "[value]"
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		rangeStr := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		parts := strings.Fields(rangeStr)
		switch len(parts) {
		case 2:
			min, _ = strconv.ParseFloat(parts[0], 64)
			max, _ = strconv.ParseFloat(parts[1], 64)
			return min, max, nil, ""
		case 1:
			if val, err := strconv.ParseFloat(parts[0], 64); err == nil {
				return val, val, nil, ""
			}
		}
		return 0, 0, nil, ""
	}

	// Interpolation keyword prefixes a keyframe track.
	for _, keyword := range []string{InterpLinear, InterpEaseIn, InterpEaseOut, InterpFastInOutWeak} {
		if strings.Contains(s, keyword) {
			interpolation = keyword
			s = strings.TrimSpace(strings.ReplaceAll(s, keyword, ""))
			break
		}
	}

	// Keyframe track: whitespace-separated "time,value" pairs.
	if strings.Contains(s, ",") || interpolation != "" {
		parts := strings.Fields(s)
		keyframes = make([]Keyframe, 0, len(parts))
		for _, part := range parts {
			pair := strings.Split(part, ",")
			if len(pair) != 2 {
				continue
			}
			time, err1 := strconv.ParseFloat(pair[0], 64)
			value, err2 := strconv.ParseFloat(pair[1], 64)
			if err1 == nil && err2 == nil {
				keyframes = append(keyframes, Keyframe{Time: time, Value: value})
			}
		}
		if len(keyframes) > 0 {
			return 0, 0, keyframes, interpolation
		}
		return 0, 0, nil, interpolation
	}

	// Fixed value format.
	if value, err := strconv.ParseFloat(s, 64); err == nil {
		return value, value, nil, ""
	}

	return 0, 0, nil, ""
}

// IsTrack reports whether the value string parses to a keyframe track rather
// than a fixed value or range.
func IsTrack(s string) bool {
	_, _, kf, _ := ParseValue(s)
	return len(kf) > 0
}
