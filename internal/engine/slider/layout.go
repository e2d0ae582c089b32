package slider

import (
	gomath "math"

	"github.com/Faultbox/hoverkit/pkg/geom"
	"github.com/Faultbox/hoverkit/pkg/math"
)

// Config holds the fixed geometry shared by every arc slider.
type Config struct {
	AngleInset      float32 // gap kept at each end of an item's arc, radians
	HandleAngleHalf float32 // half the angular width of the draggable handle
	InnerRadius     float32
	OuterRadius     float32
	StepsPerPi      float32 // mesh resolution: steps per π radians of arc
	TickInnerRadius float32
	TickOuterRadius float32
}

// DefaultConfig returns the stock arc slider geometry.
func DefaultConfig() Config {
	return Config{
		AngleInset:      0.0015,
		HandleAngleHalf: gomath.Pi / 80,
		InnerRadius:     1.04,
		OuterRadius:     1.46,
		StepsPerPi:      60,
		TickInnerRadius: 1.1,
		TickOuterRadius: 1.4,
	}
}

// Layout is the angular geometry of one arc slider. Angles are in radians,
// measured around the local Y axis from +Z toward +X.
type Layout struct {
	Config

	Angle0      float32 // start of the item's usable arc
	Angle1      float32 // end of the item's usable arc
	SlideAngle0 float32 // handle center at show value 0
	SlideSpan   float32 // handle travel
	MeshSteps   int

	// Mirrored reflects the value-to-angle mapping for items laid out on the
	// right side of a two-sided menu.
	Mirrored bool
}

// NewLayout derives a slider layout from the item's arc angle.
func NewLayout(arcAngle float32, cfg Config, mirrored bool) Layout {
	l := Layout{Config: cfg, Mirrored: mirrored}
	l.Angle0 = -arcAngle/2 + cfg.AngleInset
	l.Angle1 = arcAngle/2 - cfg.AngleInset
	l.SlideAngle0 = l.Angle0 + cfg.HandleAngleHalf
	l.SlideSpan = l.Angle1 - l.Angle0 - cfg.HandleAngleHalf*2

	steps := (l.Angle1 - l.Angle0) / gomath.Pi * cfg.StepsPerPi
	l.MeshSteps = int(math.Round(max(2, steps)))
	return l
}

// ShowValue converts a value to its on-screen position along the arc.
func (l Layout) ShowValue(v float32) float32 {
	if l.Mirrored {
		return 1 - v
	}
	return v
}

// ValueFromShow converts an on-screen position back to a value.
func (l Layout) ValueFromShow(show float32) float32 {
	return l.ShowValue(show)
}

// HandleAngle is the angle of the handle center for value v.
func (l Layout) HandleAngle(v float32) float32 {
	return l.SlideAngle0 + l.SlideSpan*l.ShowValue(math.Clamp01(v))
}

// HandleWorldPosition places the handle center for value v on the band's
// mid radius in world space.
func (l Layout) HandleWorldPosition(v float32, tx geom.Transform) math.Vec3 {
	r := (l.InnerRadius + l.OuterRadius) / 2
	p := math.PolarVec2(l.HandleAngle(v), r)
	return tx.TransformPoint(math.Vec3{X: p.X, Y: 0, Z: p.Y})
}

// ValueFromNearestPoint converts a point on (or near) the slider band into
// a value in [0, 1]. It inverts HandleAngle exactly.
func (l Layout) ValueFromNearestPoint(world math.Vec3, tx geom.Transform) float32 {
	local := tx.InverseTransformPoint(world)
	angle := local.XZ().PolarAngle()
	show := math.InverseLerp(l.SlideAngle0, l.SlideAngle0+l.SlideSpan, angle)
	return l.ValueFromShow(show)
}

// NearestOnBand returns the point on the slider's full band closest to world.
func (l Layout) NearestOnBand(world math.Vec3, tx geom.Transform) math.Vec3 {
	return geom.NearestOnArcBand(world, l.InnerRadius, l.OuterRadius, l.Angle0, l.Angle1, tx)
}

// TickAngles returns the angle of each tick mark. Fewer than two ticks
// draws none.
func (l Layout) TickAngles(ticks int) []float32 {
	if ticks < 2 {
		return nil
	}
	angles := make([]float32, ticks)
	perTick := 1 / float32(ticks-1)
	for i := range angles {
		angles[i] = l.SlideAngle0 + l.SlideSpan*float32(i)*perTick
	}
	return angles
}

// handleGap is the angle the handle and its insets remove from the track.
func (l Layout) handleGap() float32 {
	return (l.HandleAngleHalf + l.AngleInset) * 2
}

// SegmentAngles maps a show-space range to band angles. Ranges at or above
// the handle position sit past the handle gap.
func (l Layout) SegmentAngles(r Range, handleShow float32) (a0, a1 float32, steps int) {
	angleRange := l.Angle1 - l.Angle0 - l.handleGap()
	a0 = l.Angle0 + angleRange*r.Start
	a1 = l.Angle0 + angleRange*r.End

	if r.Start >= handleShow && r.End > handleShow {
		a0 += l.handleGap()
		a1 += l.handleGap()
	}

	steps = int(math.Round(float32(l.MeshSteps-2)*r.Len())) + 2
	return a0, a1, steps
}
