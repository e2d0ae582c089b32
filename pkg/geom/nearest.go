package geom

import (
	gomath "math"

	"github.com/Faultbox/hoverkit/pkg/math"
)

// NearestOnRectangle returns the point on a width x height rectangle, centered
// on the transform and lying in its local XY plane, closest to point.
func NearestOnRectangle(point math.Vec3, t Transform, width, height float32) math.Vec3 {
	local := t.InverseTransformPoint(point)
	halfW := width / 2
	halfH := height / 2

	local.X = math.Clamp(local.X, -halfW, halfW)
	local.Y = math.Clamp(local.Y, -halfH, halfH)
	local.Z = 0

	return t.TransformPoint(local)
}

// NearestOnPlaneAlongRay intersects ray with plane. A ray parallel to the
// plane has no intersection; the ray origin is returned instead. Intersections
// behind the origin are returned as-is.
func NearestOnPlaneAlongRay(ray Ray, plane Plane) math.Vec3 {
	denom := plane.Normal.Dot(ray.Direction)
	if math.Abs(denom) < math.Epsilon {
		return ray.Origin
	}
	enter := -plane.SignedDistance(ray.Origin) / denom
	return ray.Point(enter)
}

// NearestOnArcBand returns the point on an annular sector closest to point.
// The band lies in the transform's local XZ plane, with angles measured from
// +Z toward +X. angle0 may be greater than angle1.
func NearestOnArcBand(point math.Vec3, innerRadius, outerRadius, angle0, angle1 float32, t Transform) math.Vec3 {
	local := t.InverseTransformPoint(point)
	flat := local.XZ()

	minAngle, maxAngle := angle0, angle1
	if minAngle > maxAngle {
		minAngle, maxAngle = maxAngle, minAngle
	}
	minR, maxR := innerRadius, outerRadius
	if minR > maxR {
		minR, maxR = maxR, minR
	}

	angle := flat.PolarAngle()
	var radius float32

	if angleWithin(angle, minAngle, maxAngle) {
		radius = math.Clamp(flat.Length(), minR, maxR)
	} else {
		// Outside the sweep: the nearest point lies on one of the two radial edges.
		angle = nearerEdge(angle, minAngle, maxAngle)
		radius = math.Clamp(flat.Dot(math.PolarVec2(angle, 1)), minR, maxR)
	}

	onBand := math.PolarVec2(angle, radius)
	return t.TransformPoint(math.Vec3{X: onBand.X, Y: 0, Z: onBand.Y})
}

// angleWithin reports whether angle, or any 2π turn of it, lies in [lo, hi].
func angleWithin(angle, lo, hi float32) bool {
	if hi-lo >= 2*gomath.Pi {
		return true
	}
	a := wrapFrom(angle, lo)
	return a <= hi
}

// wrapFrom shifts angle by whole turns into [base, base+2π).
func wrapFrom(angle, base float32) float32 {
	turn := float32(2 * gomath.Pi)
	a := float32(gomath.Mod(float64(angle-base), float64(turn)))
	if a < 0 {
		a += turn
	}
	return base + a
}

func nearerEdge(angle, lo, hi float32) float32 {
	if angularDistance(angle, lo) <= angularDistance(angle, hi) {
		return lo
	}
	return hi
}

func angularDistance(a, b float32) float32 {
	d := math.Abs(float32(gomath.Remainder(float64(a-b), 2*gomath.Pi)))
	return d
}
