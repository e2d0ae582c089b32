// Package camera provides the viewer's orbit camera and its picking ray.
package camera

import (
	gomath "math"

	"github.com/Faultbox/hoverkit/pkg/geom"
	"github.com/Faultbox/hoverkit/pkg/math"
)

// OrbitCamera orbits around a center point. Distances are in meters.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // pitch, radians
	RotationY float32 // yaw, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Projection
	FovY float32 // radians
	Near float32
	Far  float32
}

// NewOrbitCamera returns a camera looking at center from the -Z side, the
// side rect items face.
func NewOrbitCamera(center math.Vec3) *OrbitCamera {
	return &OrbitCamera{
		Center:          center,
		Distance:        1.5,
		RotationX:       0.2,
		RotationY:       gomath.Pi,
		MinDistance:     0.2,
		MaxDistance:     10,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            gomath.Pi / 3,
		Near:            0.01,
		Far:             100,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cosX, sinX := math.Cos(c.RotationX), math.Sin(c.RotationX)
	offset := math.Vec3{
		X: c.Distance * cosX * math.Sin(c.RotationY),
		Y: c.Distance * sinX,
		Z: c.Distance * cosX * math.Cos(c.RotationY),
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3Up)
}

// ProjectionMatrix returns the perspective projection for aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view for a width x height viewport.
func (c *OrbitCamera) ViewProjection(width, height int) math.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// ScreenRay returns the world ray under pixel (x, y) of a width x height
// viewport.
func (c *OrbitCamera) ScreenRay(x, y float32, width, height int) geom.Ray {
	inv := c.ViewProjection(width, height).Inverse()
	return geom.ScreenToRay(x, y, float32(width), float32(height), inv)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX = math.Clamp(c.RotationX+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on a bounding box and backs off far
// enough to see all of it.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec3) {
	c.Center = lo.Add(hi).Scale(0.5)
	radius := hi.Sub(lo).Length() / 2
	fit := radius / math.Sin(c.FovY/2)
	c.Distance = math.Clamp(fit, c.MinDistance, c.MaxDistance)
}
