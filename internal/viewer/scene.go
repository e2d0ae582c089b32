package viewer

import (
	gomath "math"

	"github.com/Faultbox/hoverkit/internal/engine/frame"
	"github.com/Faultbox/hoverkit/internal/engine/mesh"
	"github.com/Faultbox/hoverkit/internal/engine/renderer"
	"github.com/Faultbox/hoverkit/internal/engine/shape"
	"github.com/Faultbox/hoverkit/internal/engine/style"
	"github.com/Faultbox/hoverkit/internal/item"
	"github.com/Faultbox/hoverkit/pkg/geom"
	"github.com/Faultbox/hoverkit/pkg/math"
)

// lift moves overlays toward the viewer so they win the depth test.
const lift = 0.001

// barHeight is the selection bar height as a fraction of the item.
const barHeight = 0.12

type itemMeshes struct {
	body   mesh.Mesh
	bar    mesh.Mesh
	handle mesh.Mesh
	jump   mesh.Mesh
}

// scene holds the scratch meshes for each item, rebuilt every frame.
type scene struct {
	items  []*item.Item
	meshes []itemMeshes
}

func newScene(items []*item.Item) *scene {
	return &scene{
		items:  items,
		meshes: make([]itemMeshes, len(items)),
	}
}

// bounds returns the world box around every item's center.
func (s *scene) bounds() (lo, hi math.Vec3, ok bool) {
	for _, it := range s.items {
		if it.Shape == nil {
			continue
		}
		var b mesh.Mesh
		it.Shape.BuildMesh(&b)
		if b.IsEmpty() {
			continue
		}
		tx, _ := shapeTransform(it.Shape)
		local := b.Bounds()
		for _, p := range []math.Vec3{local.Min, local.Max} {
			w := tx.TransformPoint(p)
			if !ok {
				lo, hi, ok = w, w, true
				continue
			}
			lo = math.Vec3{X: min(lo.X, w.X), Y: min(lo.Y, w.Y), Z: min(lo.Z, w.Z)}
			hi = math.Vec3{X: max(hi.X, w.X), Y: max(hi.Y, w.Y), Z: max(hi.Z, w.Z)}
		}
	}
	return lo, hi, ok
}

// shapeTransform returns the transform a shape's mesh is built in.
func shapeTransform(shp shape.Shape) (geom.Transform, bool) {
	switch s := shp.(type) {
	case *shape.Rect:
		return s.Transform, true
	case *shape.Arc:
		return s.Transform, true
	}
	return geom.Transform{}, false
}

func (s *scene) draw(r *renderer.Renderer, visuals []frame.Visual, p style.Palette) {
	for i, vis := range visuals {
		if i >= len(s.items) {
			break
		}
		it := s.items[i]
		if !it.IsActiveInHierarchy() {
			continue
		}
		tx, ok := shapeTransform(it.Shape)
		if !ok {
			continue
		}
		m := &s.meshes[i]
		model := tx.Matrix()

		if vis.Slider != nil && vis.Slider.Renderer != nil {
			drawArcSlider(r, m, model, vis.Slider, p)
			continue
		}

		it.Shape.BuildMesh(&m.body)
		r.DrawMesh(&m.body, model, p.Item(vis).Vec4())

		switch shp := it.Shape.(type) {
		case *shape.Rect:
			if vis.Slider != nil {
				drawRectHandle(r, m, model, shp, it.Handle, vis.Slider, p)
			}
			drawRectBar(r, m, model, shp, vis, p)
		case *shape.Arc:
			drawArcBar(r, m, model, shp, vis, p)
		}
	}
}

func drawArcSlider(r *renderer.Renderer, m *itemMeshes, model math.Mat4, sv *frame.SliderVisual, p style.Palette) {
	sr := sv.Renderer
	colors := p.Slider(sr.Alpha())

	for i := range sr.Track() {
		r.DrawMesh(&sr.Track()[i], model, colors.Track.Vec4())
	}
	r.DrawMesh(sr.Fill(), model, colors.Fill.Vec4())

	lifted := model.Mul(math.Translate(0, lift, 0))
	for i := range sr.Ticks() {
		r.DrawMesh(&sr.Ticks()[i], lifted, colors.Tick.Vec4())
	}

	l := sr.Layout
	a := sr.HandleAngle()
	mesh.BuildRingMesh(&m.handle, l.InnerRadius, l.OuterRadius, a-l.HandleAngleHalf, a+l.HandleAngleHalf, 4)
	r.DrawMesh(&m.handle, lifted, colors.Handle.Vec4())

	if ja, ok := sr.JumpAngle(); ok {
		mesh.BuildRingMesh(&m.jump, l.InnerRadius, l.OuterRadius, ja-l.HandleAngleHalf, ja+l.HandleAngleHalf, 4)
		r.DrawMesh(&m.jump, lifted, colors.Jump.Vec4())
	}
}

// drawRectHandle places the handle along the rect's local Y, matching how
// Rect.SliderValue reads it back.
func drawRectHandle(r *renderer.Renderer, m *itemMeshes, model math.Mat4, track *shape.Rect, handle shape.Shape, sv *frame.SliderVisual, p style.Palette) {
	h, ok := handle.(*shape.Rect)
	if !ok {
		return
	}
	half := (track.SizeY - h.SizeY) / 2
	y := math.Lerp(-half, half, sv.HandleValue)

	mesh.BuildRectMesh(&m.handle, h.SizeX, h.SizeY)
	r.DrawMesh(&m.handle, model.Mul(math.Translate(0, y, -lift)), p.Handle.Vec4())

	if sv.HasJumpValue && sv.AllowJump {
		jy := math.Lerp(-half, half, sv.JumpValue)
		mesh.BuildRectMesh(&m.jump, h.SizeX, h.SizeY)
		r.DrawMesh(&m.jump, model.Mul(math.Translate(0, jy, -lift)), p.Jump.Vec4())
	}
}

// drawRectBar grows a bar along the rect's bottom edge as the dwell
// selection progresses.
func drawRectBar(r *renderer.Renderer, m *itemMeshes, model math.Mat4, rect *shape.Rect, vis frame.Visual, p style.Palette) {
	color := p.SelectionBar(vis)
	if color.A <= 0 {
		return
	}
	w := rect.SizeX * vis.SelectionProgress
	h := rect.SizeY * barHeight
	mesh.BuildRectMesh(&m.bar, w, h)
	x := (w - rect.SizeX) / 2
	y := (h - rect.SizeY) / 2
	r.DrawMesh(&m.bar, model.Mul(math.Translate(x, y, -lift)), color.Vec4())
}

// drawArcBar sweeps a thin band along the arc's inner edge.
func drawArcBar(r *renderer.Renderer, m *itemMeshes, model math.Mat4, arc *shape.Arc, vis frame.Visual, p style.Palette) {
	color := p.SelectionBar(vis)
	if color.A <= 0 {
		return
	}
	thickness := (arc.OuterRadius - arc.InnerRadius) * barHeight
	a1 := math.Lerp(arc.Angle0, arc.Angle1, vis.SelectionProgress)
	steps := max(1, int(math.Round(math.Abs(a1-arc.Angle0)/gomath.Pi*arc.StepsPerPi)))
	mesh.BuildRingMesh(&m.bar, arc.InnerRadius, arc.InnerRadius+thickness, arc.Angle0, a1, steps)
	r.DrawMesh(&m.bar, model.Mul(math.Translate(0, lift, 0)), color.Vec4())
}
