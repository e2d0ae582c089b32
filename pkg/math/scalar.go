package math

import "math"

// Epsilon is the tolerance used for degenerate-geometry checks.
const Epsilon = 1e-6

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to [0, 1].
func Clamp01(x float32) float32 {
	return Clamp(x, 0, 1)
}

// Lerp interpolates from a to b. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// InverseLerp returns where value lies between a and b, clamped to [0, 1].
// a may be greater than b. Returns 0 when a == b.
func InverseLerp(a, b, value float32) float32 {
	if a == b {
		return 0
	}
	return Clamp01((value - a) / (b - a))
}

// Sin is a float32 wrapper around math.Sin.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos is a float32 wrapper around math.Cos.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Atan2 is a float32 wrapper around math.Atan2.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// Abs returns |x|.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Round rounds half away from zero.
func Round(x float32) float32 {
	return float32(math.Round(float64(x)))
}

// Pow is a float32 wrapper around math.Pow.
func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
