// Package geom provides the nearest-point primitives used for cursor
// proximity: rectangles, planes hit by rays, and arc bands.
//
// All functions are pure and safe to call concurrently.
package geom

import "github.com/Faultbox/hoverkit/pkg/math"

// Transform places a shape in world space. The zero value is the identity
// (a zero Rotation is treated as no rotation, a zero Scale as unit scale).
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
}

// NewTransform returns a unit-scale transform.
func NewTransform(position math.Vec3, rotation math.Quat) Transform {
	return Transform{Position: position, Rotation: rotation, Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

func (t Transform) rotation() math.Quat {
	if t.Rotation.IsZero() {
		return math.QuatIdentity()
	}
	return t.Rotation.Normalize()
}

func (t Transform) scale() math.Vec3 {
	if t.Scale == (math.Vec3{}) {
		return math.Vec3{X: 1, Y: 1, Z: 1}
	}
	return t.Scale
}

// Matrix returns the local-to-world matrix.
func (t Transform) Matrix() math.Mat4 {
	return math.TRS(t.Position, t.rotation(), t.scale())
}

// WorldRotation returns the effective rotation.
func (t Transform) WorldRotation() math.Quat {
	return t.rotation()
}

// TransformPoint maps a local point to world space.
func (t Transform) TransformPoint(local math.Vec3) math.Vec3 {
	return t.rotation().Rotate(local.Mul(t.scale())).Add(t.Position)
}

// InverseTransformPoint maps a world point to local space.
// Zero scale components collapse that axis to 0.
func (t Transform) InverseTransformPoint(world math.Vec3) math.Vec3 {
	p := t.rotation().Conjugate().Rotate(world.Sub(t.Position))
	s := t.scale()
	return math.Vec3{X: safeDiv(p.X, s.X), Y: safeDiv(p.Y, s.Y), Z: safeDiv(p.Z, s.Z)}
}

// TransformDirection rotates a local direction into world space (no scale).
func (t Transform) TransformDirection(local math.Vec3) math.Vec3 {
	return t.rotation().Rotate(local)
}

// Child composes a local transform under t, the way a scene hierarchy would.
func (t Transform) Child(local Transform) Transform {
	return Transform{
		Position: t.TransformPoint(local.Position),
		Rotation: t.rotation().Mul(local.rotation()),
		Scale:    t.scale().Mul(local.scale()),
	}
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}
