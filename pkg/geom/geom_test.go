package geom

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hoverkit/pkg/math"
)

func near(a, b math.Vec3) bool {
	return a.Distance(b) < 0.0001
}

func TestTransformRoundTrip(t *testing.T) {
	tx := Transform{
		Position: math.Vec3{X: 1, Y: 2, Z: 3},
		Rotation: math.QuatFromAxisAngle(math.Vec3{X: 0, Y: 1, Z: 0}, 0.8),
		Scale:    math.Vec3{X: 2, Y: 1, Z: 0.5},
	}
	p := math.Vec3{X: -0.4, Y: 7, Z: 1.5}

	back := tx.InverseTransformPoint(tx.TransformPoint(p))
	if !near(back, p) {
		t.Errorf("InverseTransformPoint(TransformPoint(p)) = %v, want %v", back, p)
	}

	viaMatrix := tx.Matrix().TransformPoint(p)
	if !near(viaMatrix, tx.TransformPoint(p)) {
		t.Errorf("Matrix().TransformPoint = %v, TransformPoint = %v", viaMatrix, tx.TransformPoint(p))
	}
}

func TestZeroTransformIsIdentity(t *testing.T) {
	var tx Transform
	p := math.Vec3{X: 3, Y: -1, Z: 2}
	if got := tx.TransformPoint(p); got != p {
		t.Errorf("zero Transform.TransformPoint(%v) = %v", p, got)
	}
}

func TestNearestOnRectangle(t *testing.T) {
	tx := NewTransform(math.Vec3{X: 0, Y: 0, Z: 1}, math.QuatIdentity())

	tests := []struct {
		name     string
		point    math.Vec3
		expected math.Vec3
	}{
		{"inside projects onto plane", math.Vec3{X: 0.1, Y: -0.2, Z: 3}, math.Vec3{X: 0.1, Y: -0.2, Z: 1}},
		{"clamps x", math.Vec3{X: 5, Y: 0, Z: 0}, math.Vec3{X: 0.5, Y: 0, Z: 1}},
		{"clamps corner", math.Vec3{X: -5, Y: 9, Z: 1}, math.Vec3{X: -0.5, Y: 0.25, Z: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearestOnRectangle(tt.point, tx, 1, 0.5)
			if !near(got, tt.expected) {
				t.Errorf("NearestOnRectangle(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestNearestOnRectangleRotated(t *testing.T) {
	// Rotated 90 degrees about Y: local X now points along world -Z.
	tx := NewTransform(math.Vec3{}, math.QuatFromAxisAngle(math.Vec3{X: 0, Y: 1, Z: 0}, gomath.Pi/2))

	got := NearestOnRectangle(math.Vec3{X: 3, Y: 0, Z: -5}, tx, 2, 2)
	want := math.Vec3{X: 0, Y: 0, Z: -1}
	if !near(got, want) {
		t.Errorf("NearestOnRectangle rotated = %v, want %v", got, want)
	}
}

func TestNearestOnPlaneAlongRay(t *testing.T) {
	plane := NewPlane(math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: 0, Y: 0, Z: 2})

	ray := Ray{Origin: math.Vec3{X: 1, Y: 1, Z: 0}, Direction: math.Vec3{X: 0, Y: 0, Z: 1}}
	got := NearestOnPlaneAlongRay(ray, plane)
	if !near(got, math.Vec3{X: 1, Y: 1, Z: 2}) {
		t.Errorf("NearestOnPlaneAlongRay = %v, want (1, 1, 2)", got)
	}

	// Behind the origin the line intersection is still returned.
	back := Ray{Origin: math.Vec3{X: 0, Y: 0, Z: 4}, Direction: math.Vec3{X: 0, Y: 0, Z: 1}}
	got = NearestOnPlaneAlongRay(back, plane)
	if !near(got, math.Vec3{X: 0, Y: 0, Z: 2}) {
		t.Errorf("NearestOnPlaneAlongRay behind origin = %v, want (0, 0, 2)", got)
	}
}

func TestNearestOnPlaneAlongParallelRay(t *testing.T) {
	plane := NewPlane(math.Vec3{X: 0, Y: 0, Z: 1}, math.Vec3{})
	ray := Ray{Origin: math.Vec3{X: 2, Y: 3, Z: 4}, Direction: math.Vec3{X: 1, Y: 0, Z: 0}}

	if got := NearestOnPlaneAlongRay(ray, plane); got != ray.Origin {
		t.Errorf("parallel ray should return origin %v, got %v", ray.Origin, got)
	}
}

func TestWorldPlaneContainsPosition(t *testing.T) {
	tx := NewTransform(math.Vec3{X: 1, Y: 2, Z: 3}, math.QuatFromAxisAngle(math.Vec3{X: 1, Y: 0, Z: 0}, 0.5))
	plane := WorldPlane(tx)

	if d := plane.SignedDistance(tx.Position); math.Abs(d) > 0.0001 {
		t.Errorf("WorldPlane should contain the transform position, distance %v", d)
	}
	if d := plane.SignedDistance(tx.TransformPoint(math.Vec3{X: 1, Y: 1, Z: 0})); math.Abs(d) > 0.0001 {
		t.Errorf("WorldPlane should contain local XY points, distance %v", d)
	}
}

func TestNearestOnArcBand(t *testing.T) {
	var tx Transform
	const inner, outer = float32(1), float32(2)
	a0, a1 := float32(-gomath.Pi/4), float32(gomath.Pi/4)

	tests := []struct {
		name     string
		point    math.Vec3
		expected math.Vec3
	}{
		{"inside band drops height", math.Vec3{X: 0, Y: 3, Z: 1.5}, math.Vec3{X: 0, Y: 0, Z: 1.5}},
		{"inside radius clamps to inner", math.Vec3{X: 0, Y: 0, Z: 0.2}, math.Vec3{X: 0, Y: 0, Z: 1}},
		{"beyond radius clamps to outer", math.Vec3{X: 0, Y: 0, Z: 10}, math.Vec3{X: 0, Y: 0, Z: 2}},
		{
			"past end angle projects onto edge",
			math.Vec3{X: 2, Y: 0, Z: 0},
			math.Vec3{X: 1, Y: 0, Z: 1}, // dot((2,0),(sin45,cos45)) = sqrt2 radius
		},
		{
			"behind band clamps to inner edge",
			math.Vec3{X: 0, Y: 0, Z: -3},
			math.Vec3{X: float32(-gomath.Sin(gomath.Pi / 4)), Y: 0, Z: float32(gomath.Cos(gomath.Pi / 4))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NearestOnArcBand(tt.point, inner, outer, a0, a1, tx)
			if !near(got, tt.expected) {
				t.Errorf("NearestOnArcBand(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestNearestOnArcBandReversedAngles(t *testing.T) {
	var tx Transform
	p := math.Vec3{X: 0.5, Y: 0, Z: 1.2}

	forward := NearestOnArcBand(p, 1, 2, -1, 1, tx)
	reversed := NearestOnArcBand(p, 1, 2, 1, -1, tx)
	if !near(forward, reversed) {
		t.Errorf("reversed angles gave %v, want %v", reversed, forward)
	}
}

func TestNearestOnArcBandIsNoFartherThanSamples(t *testing.T) {
	tx := NewTransform(math.Vec3{X: 0, Y: 1, Z: 0}, math.QuatFromAxisAngle(math.Vec3{X: 0, Y: 0, Z: 1}, 0.3))
	a0, a1 := float32(-1.2), float32(0.7)
	points := []math.Vec3{
		{X: 3, Y: 1, Z: -2}, {X: -1, Y: 0, Z: 0.1}, {X: 0.2, Y: 2, Z: 1.8}, {X: -2, Y: 1, Z: -2},
	}

	for _, p := range points {
		nearest := NearestOnArcBand(p, 1, 2, a0, a1, tx)
		best := p.Distance(nearest)
		for i := 0; i <= 40; i++ {
			angle := math.Lerp(a0, a1, float32(i)/40)
			for j := 0; j <= 10; j++ {
				r := math.Lerp(1, 2, float32(j)/10)
				s := math.PolarVec2(angle, r)
				sample := tx.TransformPoint(math.Vec3{X: s.X, Y: 0, Z: s.Y})
				if d := p.Distance(sample); d < best-0.0001 {
					t.Fatalf("point %v: sample at angle %v radius %v is closer (%v < %v)", p, angle, r, d, best)
				}
			}
		}
	}
}

func TestScreenToRayCenter(t *testing.T) {
	proj := math.Perspective(gomath.Pi/3, 1, 0.1, 100)
	view := math.LookAt(math.Vec3{X: 0, Y: 0, Z: 5}, math.Vec3{}, math.Vec3{X: 0, Y: 1, Z: 0})
	ray := ScreenToRay(400, 300, 800, 600, proj.Mul(view).Inverse())

	if ray.Direction.Dot(math.Vec3{X: 0, Y: 0, Z: -1}) < 0.999 {
		t.Errorf("center ray should look down -Z, got %v", ray.Direction)
	}
}
