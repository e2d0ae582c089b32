package scenario

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/hoverkit/internal/engine/highlight"
	"github.com/Faultbox/hoverkit/pkg/math"
)

var easings = map[string]ease.TweenFunc{
	"":             ease.Linear,
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-back":      ease.InBack,
	"out-back":     ease.OutBack,
	"in-bounce":    ease.InBounce,
	"out-bounce":   ease.OutBounce,
}

// CursorTrack plays a cursor's keyframe path. Each keyframe tweens the
// position per axis and the rotation through a 0..1 slerp factor.
type CursorTrack struct {
	spec CursorSpec

	seg     int
	elapsed float32
	tweens  [4]*gween.Tween

	pos, from, to       math.Vec3
	rot, fromRot, toRot math.Quat

	Done bool
}

// NewCursorTrack starts a track at the cursor's start pose. A cursor
// without keyframes stays put and is done immediately.
func NewCursorTrack(spec CursorSpec) *CursorTrack {
	t := &CursorTrack{spec: spec}
	if spec.Loop {
		var total float32
		for _, kf := range spec.Path {
			total += kf.Seconds
		}
		t.spec.Loop = total > 0
	}
	t.restart()
	return t
}

// Cursor returns the cursor at the track's current pose.
func (t *CursorTrack) Cursor() highlight.Cursor {
	return t.spec.cursor(t.pos, t.rot)
}

// Update advances the track by dt seconds. Time left over at the end of a
// keyframe carries into the next one.
func (t *CursorTrack) Update(dt float32) highlight.Cursor {
	for !t.Done {
		kf := t.spec.Path[t.seg]
		step := min(dt, kf.Seconds-t.elapsed)
		t.elapsed += step
		dt -= step

		if t.elapsed < kf.Seconds {
			t.advance(step)
			break
		}
		t.pos, t.rot = t.to, t.toRot
		t.next()
	}
	return t.Cursor()
}

func (t *CursorTrack) advance(dt float32) {
	var v [4]float32
	for i, tw := range t.tweens {
		v[i], _ = tw.Update(dt)
	}
	t.pos = math.Vec3{X: v[0], Y: v[1], Z: v[2]}
	t.rot = t.fromRot.Slerp(t.toRot, v[3])
}

func (t *CursorTrack) restart() {
	t.pos = t.spec.Start
	t.rot = t.spec.Rotation.Quat()
	t.seg = 0
	t.Done = len(t.spec.Path) == 0
	if !t.Done {
		t.begin()
	}
}

func (t *CursorTrack) next() {
	t.seg++
	if t.seg < len(t.spec.Path) {
		t.begin()
		return
	}
	if t.spec.Loop {
		t.restart()
		return
	}
	t.Done = true
}

func (t *CursorTrack) begin() {
	kf := t.spec.Path[t.seg]
	t.elapsed = 0
	t.from, t.to = t.pos, kf.To
	t.fromRot, t.toRot = t.rot, t.rot
	if kf.Rotation != nil {
		t.toRot = kf.Rotation.Quat()
	}
	if kf.Seconds <= 0 {
		return
	}

	fn := easings[kf.Ease]
	t.tweens[0] = gween.New(t.from.X, t.to.X, kf.Seconds, fn)
	t.tweens[1] = gween.New(t.from.Y, t.to.Y, kf.Seconds, fn)
	t.tweens[2] = gween.New(t.from.Z, t.to.Z, kf.Seconds, fn)
	t.tweens[3] = gween.New(0, 1, kf.Seconds, fn)
}
