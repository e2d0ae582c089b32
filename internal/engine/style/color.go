// Package style maps item visuals to colors.
package style

import "github.com/Faultbox/hoverkit/pkg/math"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Basic colors.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Fade multiplies alpha by f.
func (c Color) Fade(f float32) Color {
	return c.WithAlpha(c.A * math.Clamp01(f))
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}

// Lerp blends from c to other by t, clamped to [0, 1].
func (c Color) Lerp(other Color, t float32) Color {
	t = math.Clamp01(t)
	return Color{
		R: math.Lerp(c.R, other.R, t),
		G: math.Lerp(c.G, other.G, t),
		B: math.Lerp(c.B, other.B, t),
		A: math.Lerp(c.A, other.A, t),
	}
}

// Vec4 returns the components in shader order.
func (c Color) Vec4() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
