package shape

import (
	gomath "math"

	"github.com/Faultbox/hoverkit/internal/engine/mesh"
	"github.com/Faultbox/hoverkit/internal/engine/slider"
	"github.com/Faultbox/hoverkit/pkg/geom"
	"github.com/Faultbox/hoverkit/pkg/math"
)

// Arc is a flat annular band in the local XZ plane, facing +Y. Angles are
// measured from +Z toward +X.
type Arc struct {
	InnerRadius float32
	OuterRadius float32
	Angle0      float32
	Angle1      float32
	Transform   geom.Transform

	// StepsPerPi sets mesh resolution for BuildMesh.
	StepsPerPi float32

	// Slider is set for arc sliders; it maps band angles to values.
	Slider *slider.Layout
}

// NewArc returns a band centered on angle 0 spanning arcAngle radians.
func NewArc(tx geom.Transform, inner, outer, arcAngle float32) *Arc {
	return &Arc{
		InnerRadius: inner,
		OuterRadius: outer,
		Angle0:      -arcAngle / 2,
		Angle1:      arcAngle / 2,
		Transform:   tx,
		StepsPerPi:  slider.DefaultConfig().StepsPerPi,
	}
}

// NewSliderArc returns the band an arc slider occupies. The band covers the
// layout's usable arc and radii.
func NewSliderArc(tx geom.Transform, layout slider.Layout) *Arc {
	return &Arc{
		InnerRadius: layout.InnerRadius,
		OuterRadius: layout.OuterRadius,
		Angle0:      layout.Angle0,
		Angle1:      layout.Angle1,
		Transform:   tx,
		StepsPerPi:  layout.StepsPerPi,
		Slider:      &layout,
	}
}

// CenterWorldPosition returns the band's mid point.
func (a *Arc) CenterWorldPosition() math.Vec3 {
	mid := math.PolarVec2((a.Angle0+a.Angle1)/2, (a.InnerRadius+a.OuterRadius)/2)
	return a.Transform.TransformPoint(math.Vec3{X: mid.X, Z: mid.Y})
}

// NearestWorldPosition projects from onto the band.
func (a *Arc) NearestWorldPosition(from math.Vec3) math.Vec3 {
	return geom.NearestOnArcBand(from, a.InnerRadius, a.OuterRadius, a.Angle0, a.Angle1, a.Transform)
}

// Plane returns the plane the band lies in.
func (a *Arc) Plane() geom.Plane {
	return geom.NewPlane(a.Transform.TransformDirection(math.Vec3Up), a.Transform.Position)
}

// NearestWorldPositionAlongRay hits the band's plane with ray, then
// projects the hit point onto the band.
func (a *Arc) NearestWorldPositionAlongRay(ray geom.Ray) (math.Vec3, geom.RaycastResult) {
	plane := a.Plane()
	hit := geom.RaycastResult{
		WorldPosition: geom.NearestOnPlaneAlongRay(ray, plane),
		WorldRotation: a.Transform.WorldRotation(),
		WorldPlane:    plane,
	}
	return a.NearestWorldPosition(hit.WorldPosition), hit
}

// SliderValue maps a point on the band to the slider value whose handle
// sits at the same angle. The handle shape is not needed since the handle
// travel is already part of the layout.
func (a *Arc) SliderValue(nearest math.Vec3, container geom.Transform, _ Shape) (float32, error) {
	if a.Slider == nil {
		return 0, ErrNotSlider
	}
	return a.Slider.ValueFromNearestPoint(nearest, container), nil
}

// BuildMesh rebuilds target as the full band.
func (a *Arc) BuildMesh(target *mesh.Mesh) {
	span := math.Abs(a.Angle1 - a.Angle0)
	steps := int(math.Round(span / gomath.Pi * a.StepsPerPi))
	mesh.BuildRingMesh(target, a.InnerRadius, a.OuterRadius, a.Angle0, a.Angle1, steps)
}
