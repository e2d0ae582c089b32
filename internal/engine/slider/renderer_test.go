package slider

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hoverkit/internal/engine/mesh"
)

func angleSpan(m *mesh.Mesh) (float32, float32) {
	first := m.Vertices[0].XZ().PolarAngle()
	last := m.Vertices[len(m.Vertices)-2].XZ().PolarAngle()
	return first, last
}

func TestRendererLeftSide(t *testing.T) {
	l := NewLayout(gomath.Pi/2, DefaultConfig(), false)
	r := NewRenderer(l, 0)

	r.Update(0, Input{HandleValue: 0.5, FillStartingPoint: FillMinimum, TickCount: 5, Enabled: true, ArcStrength: 1})

	if r.Fill().IsEmpty() {
		t.Fatal("fill mesh should not be empty at value 0.5")
	}
	if len(r.Track()) != 1 {
		t.Fatalf("track segments = %d, want 1", len(r.Track()))
	}

	_, fillEnd := angleSpan(r.Fill())
	trackStart, trackEnd := angleSpan(&r.Track()[0])

	gap := (l.HandleAngleHalf + l.AngleInset) * 2
	if !approx(trackStart-fillEnd, gap, 1e-4) {
		t.Errorf("handle gap = %v, want %v", trackStart-fillEnd, gap)
	}
	if !approx(trackEnd, l.Angle1, 1e-4) {
		t.Errorf("track should end at Angle1 %v, got %v", l.Angle1, trackEnd)
	}

	if len(r.Ticks()) != 5 {
		t.Errorf("tick meshes = %d, want 5", len(r.Ticks()))
	}
	if r.Alpha() != 1 {
		t.Errorf("Alpha() = %v, want 1", r.Alpha())
	}
	if _, ok := r.JumpAngle(); ok {
		t.Error("no jump angle expected")
	}
}

func TestRendererMirroredSideFillsFromRight(t *testing.T) {
	l := NewLayout(gomath.Pi/2, DefaultConfig(), true)
	r := NewRenderer(l, 0)

	r.Update(0, Input{HandleValue: 0.25, FillStartingPoint: FillMinimum, Enabled: true, ArcStrength: 1})

	_, fillEnd := angleSpan(r.Fill())
	if !approx(fillEnd, l.Angle1, 1e-4) {
		t.Errorf("mirrored fill should end at Angle1 %v, got %v", l.Angle1, fillEnd)
	}
	trackStart, _ := angleSpan(&r.Track()[0])
	if !approx(trackStart, l.Angle0, 1e-4) {
		t.Errorf("mirrored track should start at Angle0 %v, got %v", l.Angle0, trackStart)
	}
}

func TestRendererZeroFillHasTwoTracks(t *testing.T) {
	r := NewRenderer(NewLayout(1, DefaultConfig(), false), 0)
	r.Update(0, Input{HandleValue: 0.8, FillStartingPoint: FillZero, ZeroValue: 0.5, Enabled: true, ArcStrength: 1})

	if len(r.Track()) != 2 {
		t.Errorf("track segments = %d, want 2", len(r.Track()))
	}
	if r.Split().Fill != (Range{0.5, 0.8}) {
		t.Errorf("Split().Fill = %+v", r.Split().Fill)
	}
}

func TestRendererEmptyFillAtZero(t *testing.T) {
	r := NewRenderer(NewLayout(1, DefaultConfig(), false), 0)
	r.Update(0, Input{HandleValue: 0, FillStartingPoint: FillMinimum, Enabled: true, ArcStrength: 1})

	if !r.Fill().IsEmpty() {
		t.Errorf("fill at value 0 should be empty, got %d vertices", len(r.Fill().Vertices))
	}
}

func TestRendererJumpAndDisabled(t *testing.T) {
	l := NewLayout(1, DefaultConfig(), false)
	r := NewRenderer(l, 0)
	r.Update(0, Input{HandleValue: 0.2, JumpValue: 0.7, HasJump: true, Enabled: false, ArcStrength: 1})

	angle, ok := r.JumpAngle()
	if !ok || !approx(angle, l.HandleAngle(0.7), 1e-6) {
		t.Errorf("JumpAngle() = %v, %v", angle, ok)
	}
	if !approx(r.Alpha(), DisabledAlphaScale, 1e-6) {
		t.Errorf("disabled Alpha() = %v, want %v", r.Alpha(), DisabledAlphaScale)
	}
}

func TestRendererFadesIn(t *testing.T) {
	r := NewRenderer(NewLayout(1, DefaultConfig(), false), 1)
	in := Input{HandleValue: 0.5, Enabled: true, ArcStrength: 1}

	r.Update(0.1, in)
	early := r.Alpha()
	r.Update(2, in)

	if early <= 0 || early >= 1 {
		t.Errorf("alpha early in fade = %v, want within (0, 1)", early)
	}
	if r.Alpha() != 1 {
		t.Errorf("alpha after fade = %v, want 1", r.Alpha())
	}
}

func TestArcAlpha(t *testing.T) {
	if got := ArcAlpha(1, 0); got != 1 {
		t.Errorf("ArcAlpha(1, 0) = %v, want 1", got)
	}
	if got := ArcAlpha(0, 0); got != 0 {
		t.Errorf("ArcAlpha(0, 0) = %v, want 0", got)
	}
	if got := ArcAlpha(0.2, 1); got != 0 {
		t.Errorf("ArcAlpha(0.2, 1) = %v, want clamped 0", got)
	}
}

func TestFadeAlpha(t *testing.T) {
	if got := FadeAlpha(true, 0.5); !approx(got, 0.875, 1e-5) {
		t.Errorf("FadeAlpha(in, 0.5) = %v, want 0.875", got)
	}
	if got := FadeAlpha(false, 0.5); !approx(got, 0.125, 1e-5) {
		t.Errorf("FadeAlpha(out, 0.5) = %v, want 0.125", got)
	}
}
