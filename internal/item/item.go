package item

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hoverkit/internal/engine/highlight"
	"github.com/Faultbox/hoverkit/internal/engine/shape"
	"github.com/Faultbox/hoverkit/internal/engine/slider"
	"github.com/Faultbox/hoverkit/pkg/geom"
)

// Field names tracked by Controllers.
const (
	FieldEnabled     = "Enabled"
	FieldActive      = "Active"
	FieldValue       = "Value"
	FieldHoverValue  = "HoverValue"
	FieldHandleValue = "HandleValue"
	FieldJumpValue   = "JumpValue"
	FieldShowEdge    = "ShowEdge"
)

// Item is one interactive element: its data, geometry and highlight state.
type Item struct {
	ID    string
	Label string
	Kind  Kind
	Shape shape.Shape

	// Container is the frame slider values are measured in. Handle is the
	// slider handle's shape, needed by rect sliders.
	Container geom.Transform
	Handle    shape.Shape

	Enabled bool
	Active  bool
	Parent  *Item

	Highlight   *highlight.State
	Controllers Controllers

	stickySelected bool
}

// New creates an enabled, active item whose highlight state reads geometry
// from shp. Container defaults to the shape's own transform. A nil shape,
// typed or not, leaves the item without geometry.
func New(id, label string, kind Kind, shp shape.Shape, settings *highlight.Settings, log *zap.Logger) *Item {
	switch s := shp.(type) {
	case *shape.Rect:
		if s == nil {
			shp = nil
		}
	case *shape.Arc:
		if s == nil {
			shp = nil
		}
	}

	it := &Item{
		ID:      id,
		Label:   label,
		Kind:    kind,
		Shape:   shp,
		Enabled: true,
		Active:  true,
	}
	var provider highlight.ProximityProvider
	switch s := shp.(type) {
	case *shape.Rect:
		it.Container = s.Transform
		provider = s
	case *shape.Arc:
		it.Container = s.Transform
		provider = s
	case nil:
	default:
		provider = s
	}
	it.Highlight = highlight.NewState(id, provider, settings, log)
	return it
}

// IsSelectable reports whether the kind can be selected at all.
func (it *Item) IsSelectable() bool {
	switch it.Kind.(type) {
	case nil, *Text:
		return false
	}
	return true
}

// IsEnabled reports the item's own enabled flag.
func (it *Item) IsEnabled() bool {
	return it.Enabled
}

// IsAncestryEnabled reports whether every parent is enabled.
func (it *Item) IsAncestryEnabled() bool {
	for p := it.Parent; p != nil; p = p.Parent {
		if !p.Enabled {
			return false
		}
	}
	return true
}

// IsActiveInHierarchy reports whether the item and all its parents are active.
func (it *Item) IsActiveInHierarchy() bool {
	for p := it; p != nil; p = p.Parent {
		if !p.Active {
			return false
		}
	}
	return true
}

// IsStickySelected reports whether a sticky selection is in progress.
func (it *Item) IsStickySelected() bool {
	return it.stickySelected
}

// UsesStickySelection reports whether selecting keeps the item selected
// until the cursor leaves.
func (it *Item) UsesStickySelection() bool {
	switch it.Kind.(type) {
	case *Sticky, *Slider:
		return true
	}
	return false
}

// Select applies the kind's selection behavior. all is searched for radios
// sharing this item's group, which are cleared.
func (it *Item) Select(all []*Item) {
	switch k := it.Kind.(type) {
	case *Checkbox:
		k.Value = !k.Value
	case *Radio:
		for _, other := range all {
			if r, ok := other.Kind.(*Radio); ok && other != it && r.Group == k.Group {
				r.Value = false
			}
		}
		k.Value = true
	}

	if it.UsesStickySelection() {
		it.stickySelected = true
	}
}

// DeselectStickySelections ends a sticky selection. Sliders commit their
// snapped value.
func (it *Item) DeselectStickySelections() {
	if s, ok := it.Kind.(*Slider); ok && s.Model != nil {
		s.Model.DeselectStickySelections()
	}
	it.stickySelected = false
}

// SliderModel returns the slider model for slider items.
func (it *Item) SliderModel() (*slider.Model, bool) {
	s, ok := it.Kind.(*Slider)
	if !ok || s.Model == nil {
		return nil, false
	}
	return s.Model, true
}

// DisplayLabel is the label to render: sliders include their value.
func (it *Item) DisplayLabel() string {
	if m, ok := it.SliderModel(); ok {
		return m.FormattedLabel(it.Label)
	}
	return it.Label
}

// SetEnabled sets Enabled on behalf of writer.
func (it *Item) SetEnabled(enabled bool, writer string) {
	it.Controllers.Set(FieldEnabled, writer)
	it.Enabled = enabled
}

// SetActive sets Active on behalf of writer.
func (it *Item) SetActive(active bool, writer string) {
	it.Controllers.Set(FieldActive, writer)
	it.Active = active
}
