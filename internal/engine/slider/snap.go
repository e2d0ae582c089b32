package slider

import "github.com/Faultbox/hoverkit/pkg/math"

// DefaultEasePower is the easing sharpness used for live hover values.
const DefaultEasePower = 3

// Snap quantizes v to one of snaps evenly spaced positions in [0, 1].
// Fewer than two snaps means no snapping.
func Snap(v float32, snaps int) float32 {
	if snaps < 2 {
		return v
	}
	s := float32(snaps - 1)
	return math.Round(v*s) / s
}

// EasedValue blends a raw value toward its snapped value. Close to a snap
// point the result sticks to it; halfway between snaps it tracks the raw
// value. Higher power makes the pull snappier; a power of zero or less is
// treated as 1, which returns raw unchanged.
func EasedValue(snaps int, raw, snapped, power float32) float32 {
	if snaps < 2 {
		return raw
	}
	if power <= 0 {
		power = 1
	}

	s := float32(snaps - 1)
	diff := raw - snapped
	sign := float32(1)
	if diff < 0 {
		sign = -1
	}

	// |diff| is at most half a snap step; normalize it to [0, 1] for the curve.
	d := math.Abs(diff) * s * 2
	d = math.Pow(d, power)
	d = d / 2 / s

	return snapped + d*sign
}
