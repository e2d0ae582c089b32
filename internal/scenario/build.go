package scenario

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/hoverkit/internal/engine/highlight"
	"github.com/Faultbox/hoverkit/internal/engine/shape"
	"github.com/Faultbox/hoverkit/internal/engine/slider"
	"github.com/Faultbox/hoverkit/internal/item"
	"github.com/Faultbox/hoverkit/pkg/geom"
	"github.com/Faultbox/hoverkit/pkg/math"
)

var kindBuilders = map[string]func(ItemSpec) item.Kind{
	"checkbox": func(s ItemSpec) item.Kind { return &item.Checkbox{Value: s.Checked} },
	"radio":    func(s ItemSpec) item.Kind { return &item.Radio{Value: s.Checked, Group: s.Group} },
	"selector": func(s ItemSpec) item.Kind { return &item.Selector{Action: selectorActions[s.Action]} },
	"sticky":   func(ItemSpec) item.Kind { return &item.Sticky{} },
	"slider":   func(s ItemSpec) item.Kind { return &item.Slider{Model: s.Slider.model()} },
	"text":     func(ItemSpec) item.Kind { return &item.Text{} },
}

var selectorActions = map[string]item.SelectorAction{
	"":             item.ActionDefault,
	"default":      item.ActionDefault,
	"navigate-in":  item.ActionNavigateIn,
	"navigate-out": item.ActionNavigateOut,
}

func (s SliderSpec) model() *slider.Model {
	m := slider.NewModel()
	m.Snaps = s.Snaps
	m.Ticks = s.Ticks
	m.AllowJump = s.AllowJump
	if s.Value != nil {
		m.SetValue(*s.Value)
	}
	if s.RangeMin != nil {
		m.RangeMin = *s.RangeMin
	}
	if s.RangeMax != nil {
		m.RangeMax = *s.RangeMax
	}
	if s.FillStartingPoint != nil {
		m.FillStartingPoint = *s.FillStartingPoint
	}
	if s.LabelFormat != "" {
		m.LabelFormat = s.LabelFormat
	}
	return m
}

func (s ItemSpec) transform() geom.Transform {
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	return geom.Transform{
		Position: s.Position,
		Rotation: s.Rotation.Quat(),
		Scale:    math.Vec3{X: scale, Y: scale, Z: scale},
	}
}

func (s ItemSpec) shape(cfg slider.Config) (shape.Shape, shape.Shape) {
	tx := s.transform()

	if s.Shape == "arc" {
		arcAngle := s.ArcDegrees * gomath.Pi / 180
		if s.Kind == "slider" {
			return shape.NewSliderArc(tx, slider.NewLayout(arcAngle, cfg, s.Mirrored)), nil
		}
		arc := shape.NewArc(tx, cfg.InnerRadius, cfg.OuterRadius, arcAngle)
		arc.StepsPerPi = cfg.StepsPerPi
		return arc, nil
	}

	r := shape.NewRect(tx)
	if s.SizeX > 0 {
		r.SizeX = s.SizeX
	}
	if s.SizeY > 0 {
		r.SizeY = s.SizeY
	}
	if s.Kind != "slider" {
		return r, nil
	}
	handle := &shape.Rect{SizeX: r.SizeX, SizeY: s.HandleSize, Transform: tx}
	if handle.SizeY <= 0 {
		handle.SizeY = r.SizeX
	}
	return r, handle
}

// Build creates the scenario's items in file order, with parents linked.
func (sc *Scenario) Build(settings *highlight.Settings, cfg slider.Config, log *zap.Logger) ([]*item.Item, error) {
	items := make([]*item.Item, 0, len(sc.Items))
	byID := make(map[string]*item.Item, len(sc.Items))

	for _, spec := range sc.Items {
		newKind, ok := kindBuilders[spec.Kind]
		if !ok {
			return nil, fmt.Errorf("item %q: unknown kind %q", spec.ID, spec.Kind)
		}

		shp, handle := spec.shape(cfg)
		it := item.New(spec.ID, spec.Label, newKind(spec), shp, settings, log)
		it.Handle = handle
		if spec.Enabled != nil {
			it.SetEnabled(*spec.Enabled, writer)
		}

		items = append(items, it)
		byID[spec.ID] = it
	}

	for i, spec := range sc.Items {
		if spec.Parent == "" {
			continue
		}
		parent, ok := byID[spec.Parent]
		if !ok {
			return nil, fmt.Errorf("item %q: unknown parent %q", spec.ID, spec.Parent)
		}
		items[i].Parent = parent
	}

	return items, nil
}

// InitialCursors returns the scenario's cursors at time zero, in file order.
func (sc *Scenario) InitialCursors() []highlight.Cursor {
	out := make([]highlight.Cursor, len(sc.Cursors))
	for i, c := range sc.Cursors {
		out[i] = c.cursor(c.Start, c.Rotation.Quat())
	}
	return out
}

func (c CursorSpec) cursor(pos math.Vec3, rot math.Quat) highlight.Cursor {
	dir := c.RayDirection
	if dir == (math.Vec3{}) {
		dir = math.Vec3Forward
	}
	return highlight.Cursor{
		Type:                  highlight.CursorType(c.Type),
		WorldPosition:         pos,
		WorldRotation:         rot,
		IsRaycast:             c.Raycast,
		RaycastLocalDirection: dir,
		CanCauseSelections:    !c.Passive,
	}
}
