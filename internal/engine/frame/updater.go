// Package frame runs one interaction frame over a set of items: per-item
// highlight updates, then cross-item arbitration, then selection, slider
// value derivation and visual output.
package frame

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/hoverkit/internal/engine/highlight"
	"github.com/Faultbox/hoverkit/internal/engine/shape"
	"github.com/Faultbox/hoverkit/internal/engine/slider"
	"github.com/Faultbox/hoverkit/internal/item"
	"github.com/Faultbox/hoverkit/internal/logger"
)

// writer tags fields this package sets in item.Controllers.
const writer = "frame"

// Settings tune per-frame interaction behavior.
type Settings struct {
	EasePower         float32 // sharpness of the hover pull toward snap points
	SelectionDuration float32 // dwell seconds at full highlight to select
	FadeSeconds       float32 // slider fade-in on first appearance
}

// DefaultSettings returns the stock interaction settings.
func DefaultSettings() Settings {
	return Settings{
		EasePower:         slider.DefaultEasePower,
		SelectionDuration: 0.4,
		FadeSeconds:       0.25,
	}
}

// Updater owns the items of a UI and steps them frame by frame.
type Updater struct {
	Settings Settings

	items      []*item.Item
	registry   *highlight.Registry
	renderers  map[*item.Item]*slider.Renderer
	selections map[*item.Item]*Selection
	warned     map[*item.Item]bool
	frame      int
	log        *zap.Logger
}

// New creates an empty updater. A nil log uses the "frame" component logger.
func New(settings Settings, log *zap.Logger) *Updater {
	if log == nil {
		log = logger.Named("frame")
	}
	return &Updater{
		Settings:   settings,
		registry:   highlight.NewRegistry(),
		renderers:  make(map[*item.Item]*slider.Renderer),
		selections: make(map[*item.Item]*Selection),
		warned:     make(map[*item.Item]bool),
		log:        log,
	}
}

// Add registers items. Arc sliders get a mesh renderer.
func (u *Updater) Add(items ...*item.Item) {
	for _, it := range items {
		u.items = append(u.items, it)
		u.registry.Add(it.Highlight)
		u.selections[it] = &Selection{}

		if _, ok := it.SliderModel(); !ok {
			continue
		}
		if arc, ok := it.Shape.(*shape.Arc); ok && arc.Slider != nil {
			u.renderers[it] = slider.NewRenderer(*arc.Slider, u.Settings.FadeSeconds)
		}
	}
}

// Remove unregisters it. Its frame-local state is dropped.
func (u *Updater) Remove(it *item.Item) {
	for i, other := range u.items {
		if other == it {
			u.items = append(u.items[:i], u.items[i+1:]...)
			break
		}
	}
	u.registry.Remove(it.Highlight)
	delete(u.renderers, it)
	delete(u.selections, it)
	delete(u.warned, it)
}

// Items returns the registered items in order.
func (u *Updater) Items() []*item.Item {
	return u.items
}

// Registry exposes the arbitration registry.
func (u *Updater) Registry() *highlight.Registry {
	return u.registry
}

// Frame returns the number of completed steps.
func (u *Updater) Frame() int {
	return u.frame
}

// Step runs one frame with dt seconds elapsed and returns a Visual per
// item, in registration order. An arbitration failure aborts the frame.
func (u *Updater) Step(dt float32, cursors []highlight.Cursor) ([]Visual, error) {
	u.frame++

	for _, it := range u.items {
		it.Highlight.Update(it, cursors)
	}

	if err := u.registry.ArbitrateAll(cursors); err != nil {
		return nil, fmt.Errorf("frame %d: %w", u.frame, err)
	}

	visuals := make([]Visual, 0, len(u.items))
	for _, it := range u.items {
		visuals = append(visuals, u.updateItem(dt, it))
	}
	return visuals, nil
}

func (u *Updater) updateItem(dt float32, it *item.Item) Visual {
	hs := it.Highlight
	isNearest := hs.IsNearestAcrossAllItemsForAnyCursor()
	nearest, hasNearest := hs.NearestHighlight()

	if it.IsStickySelected() && (!hasNearest || nearest.Progress <= 0) {
		it.DeselectStickySelections()
		u.log.Debug("sticky selection released", zap.String("item", it.ID))
	}

	sel := u.selections[it]
	if sel == nil {
		sel = &Selection{}
		u.selections[it] = sel
	}

	var selected bool
	if it.IsStickySelected() {
		sel.Reset()
	} else {
		full := hasNearest && isNearest && nearest.Progress >= 1
		if sel.Update(dt, u.Settings.SelectionDuration, full) {
			it.Select(u.items)
			selected = true
			u.log.Info("item selected",
				zap.String("item", it.ID),
				zap.String("kind", item.KindName(it.Kind)),
				zap.String("cursor", string(nearest.Cursor.Type)))
		}
	}

	it.Controllers.Set(item.FieldShowEdge, writer)
	v := Visual{
		ID:                it.ID,
		Icon:              item.Icon(it.Kind),
		Enabled:           it.IsEnabled(),
		Prevented:         hs.IsHighlightPrevented(),
		HighlightProgress: hs.MaxHighlightProgress(it.IsStickySelected()),
		SelectionProgress: sel.Progress(),
		ShowEdge:          isNearest,
		Selected:          selected,
	}
	if it.IsStickySelected() {
		v.SelectionProgress = 1
	}

	if m, ok := it.SliderModel(); ok {
		v.Slider = u.updateSlider(dt, it, m, v.HighlightProgress)
	}
	v.Label = it.DisplayLabel()
	return v
}

func (u *Updater) updateSlider(dt float32, it *item.Item, m *slider.Model, highProg float32) *SliderVisual {
	hs := it.Highlight
	nearest, hasNearest := hs.NearestHighlight()
	isNearest := hs.IsNearestAcrossAllItemsForAnyCursor()

	it.Controllers.Set(item.FieldHandleValue, writer)
	it.Controllers.Set(item.FieldJumpValue, writer)
	it.Controllers.Set(item.FieldHoverValue, writer)

	sv := &SliderVisual{
		HandleValue:       m.SnappedValue(),
		ZeroValue:         m.ZeroValue(),
		FillStartingPoint: m.FillStartingPoint,
		Ticks:             m.Ticks,
		AllowJump:         m.AllowJump,
	}

	if !hasNearest || highProg <= 0 || !isNearest {
		m.ClearHoverValue()
	} else if value, err := it.Shape.SliderValue(nearest.NearestWorldPos, it.Container, it.Handle); err != nil {
		m.ClearHoverValue()
		if !u.warned[it] {
			u.warned[it] = true
			u.log.Warn("slider value unavailable", zap.String("item", it.ID), zap.Error(err))
		}
	} else {
		m.SetHoverValue(value)
		snapped, _ := m.SnappedHoverValue()
		show := slider.EasedValue(m.Snaps, value, snapped, u.Settings.EasePower)
		sv.JumpValue, sv.HasJumpValue = show, true

		if it.IsStickySelected() {
			it.Controllers.Set(item.FieldValue, writer)
			m.SetValue(value)
			sv.HandleValue = show
		}
	}

	sv.Value = m.Value()
	sv.HoverValue, sv.HasHoverValue = m.HoverValue()

	if r := u.renderers[it]; r != nil {
		r.Update(dt, slider.Input{
			HandleValue:       sv.HandleValue,
			JumpValue:         sv.JumpValue,
			HasJump:           sv.HasJumpValue && m.AllowJump,
			FillStartingPoint: m.FillStartingPoint,
			ZeroValue:         sv.ZeroValue,
			TickCount:         m.Ticks,
			Enabled:           it.IsEnabled(),
			ArcStrength:       1,
		})
		sv.Renderer = r
	}
	return sv
}
