package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestPolarRoundTrip(t *testing.T) {
	for _, angle := range []float32{-2.5, -1, 0, 0.3, 1.5, 3} {
		v := PolarVec2(angle, 2)
		if got := v.PolarAngle(); abs(got-angle) > 0.0001 {
			t.Errorf("PolarVec2(%v, 2).PolarAngle() = %v", angle, got)
		}
		if got := v.Length(); abs(got-2) > 0.0001 {
			t.Errorf("PolarVec2(%v, 2).Length() = %v, want 2", angle, got)
		}
	}
}

func TestPolarZeroAngleIsForward(t *testing.T) {
	v := PolarVec2(0, 1)
	if abs(v.X) > 0.0001 || abs(v.Y-1) > 0.0001 {
		t.Errorf("PolarVec2(0, 1) = %v, want (0, 1)", v)
	}
	v = PolarVec2(math.Pi/2, 1)
	if abs(v.X-1) > 0.0001 || abs(v.Y) > 0.0001 {
		t.Errorf("PolarVec2(pi/2, 1) = %v, want (1, 0)", v)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	got := Vec3{0, 0, 0}.Lerp(Vec3{10, 20, 30}, 0.5)
	want := Vec3{5, 10, 15}
	if got != want {
		t.Errorf("Vec3.Lerp() = %v, want %v", got, want)
	}
}

func TestInverseLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, v  float32
		expected float32
	}{
		{"midpoint", 0, 10, 5, 0.5},
		{"below clamps", 0, 10, -3, 0},
		{"above clamps", 0, 10, 12, 1},
		{"reversed range", 1, 0, 0.1, 0.9},
		{"equal bounds", 2, 2, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InverseLerp(tt.a, tt.b, tt.v)
			if abs(got-tt.expected) > 0.0001 {
				t.Errorf("InverseLerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.v, got, tt.expected)
			}
		})
	}
}
