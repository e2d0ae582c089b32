package shape

import (
	"fmt"

	"github.com/Faultbox/hoverkit/internal/engine/mesh"
	"github.com/Faultbox/hoverkit/pkg/geom"
	"github.com/Faultbox/hoverkit/pkg/math"
)

// DefaultRectSize is the side length of a new Rect.
const DefaultRectSize = 0.1

// Rect is a flat rectangle centered on its transform, lying in the local XY
// plane and facing -Z.
type Rect struct {
	SizeX     float32
	SizeY     float32
	Transform geom.Transform
}

// NewRect returns a rect of the default size at tx.
func NewRect(tx geom.Transform) *Rect {
	return &Rect{SizeX: DefaultRectSize, SizeY: DefaultRectSize, Transform: tx}
}

// CenterWorldPosition returns the rect's center.
func (r *Rect) CenterWorldPosition() math.Vec3 {
	return r.Transform.Position
}

// NearestWorldPosition clamps from onto the rectangle.
func (r *Rect) NearestWorldPosition(from math.Vec3) math.Vec3 {
	return geom.NearestOnRectangle(from, r.Transform, r.SizeX, r.SizeY)
}

// NearestWorldPositionAlongRay hits the rect's plane with ray, then clamps
// the hit point onto the rectangle.
func (r *Rect) NearestWorldPositionAlongRay(ray geom.Ray) (math.Vec3, geom.RaycastResult) {
	plane := geom.WorldPlane(r.Transform)
	hit := geom.RaycastResult{
		WorldPosition: geom.NearestOnPlaneAlongRay(ray, plane),
		WorldRotation: r.Transform.WorldRotation(),
		WorldPlane:    plane,
	}
	return r.NearestWorldPosition(hit.WorldPosition), hit
}

// SliderValue maps a point on a vertical rect track to [0, 1], bottom to
// top. The handle's height is excluded from the travel. handle must be a
// *Rect.
func (r *Rect) SliderValue(nearest math.Vec3, container geom.Transform, handle Shape) (float32, error) {
	h, ok := handle.(*Rect)
	if !ok {
		return 0, fmt.Errorf("rect slider with %T handle: %w", handle, ErrHandleShape)
	}

	local := container.InverseTransformPoint(nearest)
	half := (r.SizeY - h.SizeY) / 2
	return math.InverseLerp(-half, half, local.Y), nil
}

// BuildMesh rebuilds target as the rect's quad in local space.
func (r *Rect) BuildMesh(target *mesh.Mesh) {
	mesh.BuildRectMesh(target, r.SizeX, r.SizeY)
}

// SetSize resizes the rect. Negative sizes clamp to 0.
func (r *Rect) SetSize(x, y float32) {
	r.SizeX = max(0, x)
	r.SizeY = max(0, y)
}
