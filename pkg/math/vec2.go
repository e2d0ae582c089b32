// Package math provides float32 vector, quaternion and matrix types for
// spatial UI work.
package math

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// PolarVec2 returns the point at angle radians and distance r, where the
// angle is measured from +Y toward +X. Arc layouts use this convention in
// their local XZ plane (X stays X, Y maps to Z).
func PolarVec2(angle, r float32) Vec2 {
	return Vec2{Sin(angle) * r, Cos(angle) * r}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// PolarAngle is the inverse of PolarVec2's angle: atan2(X, Y).
// Returns 0 for the zero vector.
func (v Vec2) PolarAngle() float32 {
	return Atan2(v.X, v.Y)
}
