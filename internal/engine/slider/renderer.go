package slider

import (
	"github.com/Faultbox/hoverkit/internal/engine/mesh"
)

// Input is what the renderer needs from the item each frame.
type Input struct {
	HandleValue       float32
	JumpValue         float32
	HasJump           bool
	FillStartingPoint FillType
	ZeroValue         float32
	TickCount         int
	Enabled           bool
	ArcStrength       float32 // 1 when the menu is fully shown
	GrabStrength      float32
}

// Renderer owns the procedural meshes of one arc slider and rebuilds them
// from the slider state every frame.
type Renderer struct {
	Layout Layout

	track     []mesh.Mesh
	fill      mesh.Mesh
	ticks     []mesh.Mesh
	tickCount int

	handleAngle float32
	jumpAngle   float32
	hasJump     bool
	split       TrackFill
	alpha       float32
	fader       *Fader
}

// NewRenderer creates a renderer that fades in over fadeSeconds.
// A non-positive duration starts fully visible.
func NewRenderer(layout Layout, fadeSeconds float32) *Renderer {
	r := &Renderer{Layout: layout, tickCount: -1}
	if fadeSeconds > 0 {
		r.fader = NewFader(true, fadeSeconds)
	}
	return r
}

// Update rebuilds all meshes for the current frame.
func (r *Renderer) Update(dt float32, in Input) {
	anim := float32(1)
	if r.fader != nil {
		anim = r.fader.Update(dt)
	}
	r.alpha = ArcAlpha(in.ArcStrength, in.GrabStrength) * anim
	if !in.Enabled {
		r.alpha *= DisabledAlphaScale
	}

	r.handleAngle = r.Layout.HandleAngle(in.HandleValue)
	r.hasJump = in.HasJump
	if in.HasJump {
		r.jumpAngle = r.Layout.HandleAngle(in.JumpValue)
	}

	r.split = SplitTrackFill(in.HandleValue, in.FillStartingPoint, in.ZeroValue)
	shown := r.split
	if r.Layout.Mirrored {
		shown = shown.Mirror()
	}
	handleShow := r.Layout.ShowValue(in.HandleValue)

	r.buildSegment(&r.fill, shown.Fill, handleShow)

	if cap(r.track) < len(shown.Track) {
		r.track = append(r.track[:cap(r.track)], make([]mesh.Mesh, len(shown.Track)-cap(r.track))...)
	}
	r.track = r.track[:len(shown.Track)]
	for i, seg := range shown.Track {
		r.buildSegment(&r.track[i], seg, handleShow)
	}

	if in.TickCount != r.tickCount {
		r.buildTicks(in.TickCount)
	}
}

func (r *Renderer) buildSegment(target *mesh.Mesh, seg Range, handleShow float32) {
	a0, a1, steps := r.Layout.SegmentAngles(seg, handleShow)
	mesh.BuildRingMesh(target, r.Layout.InnerRadius, r.Layout.OuterRadius, a0, a1, steps)
}

func (r *Renderer) buildTicks(count int) {
	r.tickCount = count
	angles := r.Layout.TickAngles(count)
	r.ticks = make([]mesh.Mesh, len(angles))
	half := r.Layout.AngleInset
	for i, a := range angles {
		mesh.BuildRingMesh(&r.ticks[i], r.Layout.TickInnerRadius, r.Layout.TickOuterRadius, a-half, a+half, 1)
	}
}

// Fill returns the fill mesh.
func (r *Renderer) Fill() *mesh.Mesh {
	return &r.fill
}

// Track returns the track meshes (one or two).
func (r *Renderer) Track() []mesh.Mesh {
	return r.track
}

// Ticks returns one mesh per tick mark.
func (r *Renderer) Ticks() []mesh.Mesh {
	return r.ticks
}

// Split returns the value-space track/fill ranges used for the last frame.
func (r *Renderer) Split() TrackFill {
	return r.split
}

// HandleAngle returns the handle's angle for the last frame.
func (r *Renderer) HandleAngle() float32 {
	return r.handleAngle
}

// JumpAngle returns the jump preview angle, if a jump value was set.
func (r *Renderer) JumpAngle() (float32, bool) {
	return r.jumpAngle, r.hasJump
}

// Alpha returns the slider opacity for the last frame.
func (r *Renderer) Alpha() float32 {
	return r.alpha
}
