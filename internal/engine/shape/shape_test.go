package shape

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/hoverkit/internal/engine/mesh"
	"github.com/Faultbox/hoverkit/internal/engine/slider"
	"github.com/Faultbox/hoverkit/pkg/geom"
	"github.com/Faultbox/hoverkit/pkg/math"
)

var (
	_ Shape = (*Rect)(nil)
	_ Shape = (*Arc)(nil)
)

func near(a, b math.Vec3, tol float32) bool {
	return a.Distance(b) <= tol
}

func TestRectNearest(t *testing.T) {
	r := NewRect(geom.NewTransform(math.Vec3{X: 1, Y: 2, Z: 3}, math.QuatIdentity()))

	tests := []struct {
		name string
		from math.Vec3
		want math.Vec3
	}{
		{"in front", math.Vec3{X: 1.01, Y: 2.02, Z: 2.5}, math.Vec3{X: 1.01, Y: 2.02, Z: 3}},
		{"past corner", math.Vec3{X: 2, Y: 0, Z: 3.2}, math.Vec3{X: 1.05, Y: 1.95, Z: 3}},
		{"center", math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{X: 1, Y: 2, Z: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.NearestWorldPosition(tt.from); !near(got, tt.want, 1e-5) {
				t.Errorf("NearestWorldPosition(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestRectNearestAlongRay(t *testing.T) {
	r := NewRect(geom.Transform{})
	ray := geom.Ray{Origin: math.Vec3{X: 0.2, Y: 0.01, Z: -1}, Direction: math.Vec3{Z: 1}}

	nearest, hit := r.NearestWorldPositionAlongRay(ray)

	if !near(hit.WorldPosition, math.Vec3{X: 0.2, Y: 0.01}, 1e-6) {
		t.Errorf("hit = %v, want (0.2, 0.01, 0)", hit.WorldPosition)
	}
	if !near(nearest, math.Vec3{X: 0.05, Y: 0.01}, 1e-6) {
		t.Errorf("nearest = %v, want (0.05, 0.01, 0)", nearest)
	}
	if d := hit.WorldPlane.SignedDistance(hit.WorldPosition); math.Abs(d) > 1e-6 {
		t.Errorf("hit is %v off its plane", d)
	}
}

func TestRectSliderValue(t *testing.T) {
	track := &Rect{SizeX: 0.1, SizeY: 0.5}
	handle := &Rect{SizeX: 0.1, SizeY: 0.1}
	var container geom.Transform

	tests := []struct {
		y    float32
		want float32
	}{
		{0, 0.5},
		{-0.2, 0},
		{0.2, 1},
		{0.1, 0.75},
		{0.4, 1},
		{-1, 0},
	}
	for _, tt := range tests {
		got, err := track.SliderValue(math.Vec3{Y: tt.y}, container, handle)
		if err != nil {
			t.Fatalf("SliderValue() error = %v", err)
		}
		if math.Abs(got-tt.want) > 1e-5 {
			t.Errorf("SliderValue(y=%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestRectSliderValueWrongHandle(t *testing.T) {
	track := &Rect{SizeX: 0.1, SizeY: 0.5}
	handle := NewArc(geom.Transform{}, 1, 2, 1)

	_, err := track.SliderValue(math.Vec3{}, geom.Transform{}, handle)
	if !errors.Is(err, ErrHandleShape) {
		t.Errorf("SliderValue() error = %v, want ErrHandleShape", err)
	}
}

func TestArcNearest(t *testing.T) {
	a := NewArc(geom.Transform{}, 1, 2, gomath.Pi/2)

	// Straight ahead on +Z, beyond the outer radius.
	if got := a.NearestWorldPosition(math.Vec3{Y: 0.3, Z: 5}); !near(got, math.Vec3{Z: 2}, 1e-5) {
		t.Errorf("NearestWorldPosition() = %v, want (0, 0, 2)", got)
	}

	center := a.CenterWorldPosition()
	if !near(center, math.Vec3{Z: 1.5}, 1e-5) {
		t.Errorf("CenterWorldPosition() = %v, want (0, 0, 1.5)", center)
	}
}

func TestArcNearestAlongRay(t *testing.T) {
	a := NewArc(geom.Transform{}, 1, 2, gomath.Pi/2)
	ray := geom.Ray{Origin: math.Vec3{Y: 1, Z: 1.5}, Direction: math.Vec3{Y: -1}}

	nearest, hit := a.NearestWorldPositionAlongRay(ray)
	if !near(hit.WorldPosition, math.Vec3{Z: 1.5}, 1e-6) {
		t.Errorf("hit = %v, want (0, 0, 1.5)", hit.WorldPosition)
	}
	if !near(nearest, hit.WorldPosition, 1e-6) {
		t.Errorf("nearest = %v, want the hit point", nearest)
	}
	if !near(hit.WorldPlane.Normal, math.Vec3Up, 1e-6) {
		t.Errorf("arc plane normal = %v, want +Y", hit.WorldPlane.Normal)
	}
}

func TestArcSliderValue(t *testing.T) {
	tx := geom.Transform{
		Position: math.Vec3{X: 0.3, Y: 1.2},
		Rotation: math.QuatFromAxisAngle(math.Vec3{X: 1}, -0.5),
		Scale:    math.Vec3{X: 0.05, Y: 0.05, Z: 0.05},
	}
	layout := slider.NewLayout(gomath.Pi/4, slider.DefaultConfig(), false)
	a := NewSliderArc(tx, layout)

	for _, v := range []float32{0, 0.25, 0.5, 0.75, 1} {
		handle := layout.HandleWorldPosition(v, tx)
		got, err := a.SliderValue(a.NearestWorldPosition(handle), tx, nil)
		if err != nil {
			t.Fatalf("SliderValue() error = %v", err)
		}
		if math.Abs(got-v) > 1e-4 {
			t.Errorf("SliderValue at handle(%v) = %v", v, got)
		}
	}
}

func TestArcWithoutSlider(t *testing.T) {
	a := NewArc(geom.Transform{}, 1, 2, 1)
	if _, err := a.SliderValue(math.Vec3{}, geom.Transform{}, nil); !errors.Is(err, ErrNotSlider) {
		t.Errorf("SliderValue() error = %v, want ErrNotSlider", err)
	}
}

func TestBuildMesh(t *testing.T) {
	var m mesh.Mesh

	a := NewArc(geom.Transform{}, 1, 2, gomath.Pi)
	a.BuildMesh(&m)
	if len(m.Vertices) != 2*(60+1) {
		t.Errorf("arc mesh has %d vertices, want %d", len(m.Vertices), 2*61)
	}

	r := &Rect{SizeX: 0.3, SizeY: 0.1}
	r.BuildMesh(&m)
	if len(m.Vertices) != 4 {
		t.Errorf("rect mesh has %d vertices, want 4", len(m.Vertices))
	}
}
