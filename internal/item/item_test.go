package item

import (
	"testing"

	"go.uber.org/zap"

	"github.com/Faultbox/hoverkit/internal/engine/highlight"
	"github.com/Faultbox/hoverkit/internal/engine/shape"
	"github.com/Faultbox/hoverkit/internal/engine/slider"
	"github.com/Faultbox/hoverkit/pkg/geom"
	"github.com/Faultbox/hoverkit/pkg/math"
)

var _ highlight.Subject = (*Item)(nil)

func newItem(id string, kind Kind) *Item {
	settings := highlight.DefaultSettings()
	return New(id, id, kind, shape.NewRect(geom.Transform{}), &settings, zap.NewNop())
}

func TestIcon(t *testing.T) {
	tests := []struct {
		kind Kind
		want IconType
	}{
		{&Checkbox{Value: true}, IconCheckboxOn},
		{&Checkbox{}, IconCheckboxOff},
		{&Radio{Value: true}, IconRadioOn},
		{&Radio{}, IconRadioOff},
		{&Selector{Action: ActionNavigateIn}, IconNavigateIn},
		{&Selector{Action: ActionNavigateOut}, IconNavigateOut},
		{&Selector{}, IconUnspecified},
		{&Sticky{}, IconSticky},
		{&Slider{Model: slider.NewModel()}, IconSlider},
		{&Text{}, IconUnspecified},
		{nil, IconUnspecified},
	}
	for _, tt := range tests {
		if got := Icon(tt.kind); got != tt.want {
			t.Errorf("Icon(%s) = %v, want %v", KindName(tt.kind), got, tt.want)
		}
	}
}

func TestSelectCheckboxAndRadio(t *testing.T) {
	box := newItem("box", &Checkbox{})
	a := newItem("a", &Radio{Group: "size", Value: true})
	b := newItem("b", &Radio{Group: "size"})
	other := newItem("other", &Radio{Group: "color", Value: true})
	all := []*Item{box, a, b, other}

	box.Select(all)
	if !box.Kind.(*Checkbox).Value {
		t.Error("checkbox should toggle on")
	}
	box.Select(all)
	if box.Kind.(*Checkbox).Value {
		t.Error("checkbox should toggle off")
	}

	b.Select(all)
	if a.Kind.(*Radio).Value || !b.Kind.(*Radio).Value {
		t.Error("selecting b should clear a")
	}
	if !other.Kind.(*Radio).Value {
		t.Error("radio in another group should be untouched")
	}
	if b.IsStickySelected() {
		t.Error("radios are not sticky")
	}
}

func TestStickySlider(t *testing.T) {
	m := slider.NewModel()
	m.Snaps = 3
	it := newItem("volume", &Slider{Model: m})

	it.Select(nil)
	if !it.IsStickySelected() {
		t.Fatal("slider should be sticky-selected")
	}

	m.SetValue(0.7)
	it.DeselectStickySelections()
	if it.IsStickySelected() {
		t.Error("sticky selection should end")
	}
	if m.Value() != 0.5 {
		t.Errorf("deselect should commit the snapped value, got %v", m.Value())
	}
}

func TestAncestry(t *testing.T) {
	root := newItem("root", &Selector{})
	mid := newItem("mid", &Selector{})
	leaf := newItem("leaf", &Checkbox{})
	mid.Parent = root
	leaf.Parent = mid

	if !leaf.IsAncestryEnabled() || !leaf.IsActiveInHierarchy() {
		t.Fatal("fresh hierarchy should be enabled and active")
	}

	root.SetEnabled(false, "menu")
	if leaf.IsAncestryEnabled() {
		t.Error("disabled root should disable leaf ancestry")
	}
	if !leaf.IsEnabled() {
		t.Error("leaf's own flag is unchanged")
	}

	root.SetEnabled(true, "menu")
	mid.SetActive(false, "menu")
	if leaf.IsActiveInHierarchy() {
		t.Error("inactive parent should deactivate leaf")
	}
	if w, _ := mid.Controllers.Writer(FieldActive); w != "menu" {
		t.Errorf("Writer(Active) = %q, want menu", w)
	}
}

func TestDisabledItemHasNoHighlights(t *testing.T) {
	it := newItem("btn", &Selector{})
	it.Enabled = false
	cursors := []highlight.Cursor{{Type: "hand", CanCauseSelections: true}}

	it.Highlight.Update(it, cursors)

	if len(it.Highlight.Highlights) != 0 {
		t.Errorf("got %d highlights, want none", len(it.Highlight.Highlights))
	}
	if _, ok := it.Highlight.NearestHighlight(); ok {
		t.Error("NearestHighlight() should be absent")
	}
}

func TestNewWithNilShape(t *testing.T) {
	settings := highlight.DefaultSettings()
	tests := []struct {
		name string
		shp  shape.Shape
	}{
		{"untyped nil", nil},
		{"nil rect", (*shape.Rect)(nil)},
		{"nil arc", (*shape.Arc)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := New("btn", "Button", &Selector{}, tt.shp, &settings, zap.NewNop())
			if it.Shape != nil {
				t.Errorf("Shape = %#v, want nil", it.Shape)
			}
			if it.Container != (geom.Transform{}) {
				t.Errorf("Container = %+v, want zero", it.Container)
			}

			it.Highlight.Update(it, []highlight.Cursor{{Type: "hand", CanCauseSelections: true}})
			if len(it.Highlight.Highlights) != 0 {
				t.Errorf("got %d highlights, want none", len(it.Highlight.Highlights))
			}
		})
	}
}

func TestTextIsNotSelectable(t *testing.T) {
	it := newItem("title", &Text{})
	cursors := []highlight.Cursor{{Type: "hand", WorldPosition: math.Vec3{}, CanCauseSelections: true}}

	it.Highlight.Update(it, cursors)
	if !it.Highlight.IsHighlightPrevented() {
		t.Error("text items should never highlight")
	}
}

func TestDisplayLabel(t *testing.T) {
	m := slider.NewModel()
	m.SetValue(1)
	s := newItem("vol", &Slider{Model: m})
	s.Label = "Volume"

	if got := s.DisplayLabel(); got != "Volume: 100.0" {
		t.Errorf("DisplayLabel() = %q", got)
	}

	b := newItem("ok", &Selector{})
	b.Label = "OK"
	if got := b.DisplayLabel(); got != "OK" {
		t.Errorf("DisplayLabel() = %q, want OK", got)
	}
}

func TestControllers(t *testing.T) {
	var c Controllers

	c.Unset("Value", "nobody")
	c.Set("Value", "frame")
	c.Set("Enabled", "scenario")
	c.Set("Value", "scenario")

	if w, ok := c.Writer("Value"); !ok || w != "scenario" {
		t.Errorf("Writer(Value) = %q, %v; want last writer", w, ok)
	}

	c.Unset("Value", "frame")
	if !c.IsControlled("Value") {
		t.Error("a non-owner must not release the field")
	}
	c.Unset("Value", "scenario")
	if c.IsControlled("Value") {
		t.Error("owner should release the field")
	}

	if got := c.Fields(); len(got) != 1 || got[0] != "Enabled" {
		t.Errorf("Fields() = %v, want [Enabled]", got)
	}
}
