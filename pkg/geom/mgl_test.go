package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hoverkit/pkg/math"
)

// Cross-checks against mathgl.

func toMGL(v math.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func nearMGL(a math.Vec3, b mgl32.Vec3, eps float32) bool {
	return math.Abs(a.X-b[0]) < eps && math.Abs(a.Y-b[1]) < eps && math.Abs(a.Z-b[2]) < eps
}

func TestInverseTransformPointMatchesMathGL(t *testing.T) {
	tx := Transform{
		Position: math.Vec3{X: -1, Y: 0.5, Z: 4},
		Rotation: math.QuatFromAxisAngle(math.Vec3{X: 1, Y: 1, Z: 0}.Normalize(), 1.1),
		Scale:    math.Vec3{X: 0.5, Y: 2, Z: 1},
	}
	p := math.Vec3{X: 0.3, Y: -2, Z: 1}

	got := tx.InverseTransformPoint(p)
	want := mgl32.Mat4(tx.Matrix()).Inv().Mul4x1(toMGL(p).Vec4(1)).Vec3()

	if !nearMGL(got, want, 1e-4) {
		t.Errorf("InverseTransformPoint() = %v, mathgl = %v", got, want)
	}
}

func TestScreenToRayMatchesUnProject(t *testing.T) {
	const w, h = 800, 600
	view := math.LookAt(math.Vec3{X: 0.5, Y: 1.5, Z: -2}, math.Vec3{Y: 1}, math.Vec3Up)
	proj := math.Perspective(1.0, float32(w)/h, 0.1, 50)
	sx, sy := float32(220), float32(410)

	ray := ScreenToRay(sx, sy, w, h, proj.Mul(view).Inverse())

	nearPt, err := mgl32.UnProject(mgl32.Vec3{sx, h - sy, 0}, mgl32.Mat4(view), mgl32.Mat4(proj), 0, 0, w, h)
	if err != nil {
		t.Fatalf("UnProject(near) error = %v", err)
	}
	farPt, err := mgl32.UnProject(mgl32.Vec3{sx, h - sy, 1}, mgl32.Mat4(view), mgl32.Mat4(proj), 0, 0, w, h)
	if err != nil {
		t.Fatalf("UnProject(far) error = %v", err)
	}

	if !nearMGL(ray.Origin, nearPt, 1e-3) {
		t.Errorf("ray origin = %v, mathgl near point = %v", ray.Origin, nearPt)
	}
	if want := farPt.Sub(nearPt).Normalize(); !nearMGL(ray.Direction, want, 1e-3) {
		t.Errorf("ray direction = %v, mathgl = %v", ray.Direction, want)
	}
}
