package geom

import (
	"github.com/Faultbox/hoverkit/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// Point returns the point at distance t along the ray.
func (r Ray) Point(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Plane is the set of points p with Normal·p + Distance = 0.
type Plane struct {
	Normal   math.Vec3
	Distance float32
}

// NewPlane builds a plane from a normal and a point on it.
func NewPlane(normal, point math.Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Distance: -n.Dot(point)}
}

// SignedDistance returns the signed distance from the plane to p.
func (p Plane) SignedDistance(point math.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// WorldPlane returns the plane a flat shape lies in: through the transform's
// position, facing along its local -Z.
func WorldPlane(t Transform) Plane {
	return NewPlane(t.TransformDirection(math.Vec3Back), t.Position)
}

// RaycastResult describes where a cursor ray met a shape's plane.
type RaycastResult struct {
	WorldPosition math.Vec3
	WorldRotation math.Quat
	WorldPlane    Plane
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	nearWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1.0, 1.0})

	near := perspectiveDivide(nearWorld)
	far := perspectiveDivide(farWorld)

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

func perspectiveDivide(v math.Vec4) math.Vec3 {
	if v[3] != 0 {
		return math.Vec3{X: v[0] / v[3], Y: v[1] / v[3], Z: v[2] / v[3]}
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
