package style

import "github.com/Faultbox/hoverkit/internal/engine/frame"

// Palette holds the colors items are drawn with.
type Palette struct {
	Background Color
	Idle       Color
	Highlight  Color
	Selection  Color
	Disabled   Color

	Track  Color
	Fill   Color
	Tick   Color
	Handle Color
	Jump   Color

	// EdgeLighten brightens the item nearest to a cursor.
	EdgeLighten float32
}

// DefaultPalette returns the stock dark theme.
func DefaultPalette() Palette {
	return Palette{
		Background:  Color{0.1, 0.1, 0.15, 1},
		Idle:        Color{0.15, 0.15, 0.2, 0.7},
		Highlight:   Color{0.25, 0.25, 0.35, 0.9},
		Selection:   Color{0.2, 0.6, 0.9, 1},
		Disabled:    Color{0.15, 0.15, 0.2, 0.25},
		Track:       Color{0.3, 0.3, 0.4, 0.8},
		Fill:        Color{0.2, 0.6, 0.9, 0.9},
		Tick:        Color{0.9, 0.9, 0.9, 0.5},
		Handle:      ColorWhite,
		Jump:        Color{0.9, 0.9, 0.9, 0.4},
		EdgeLighten: 0.15,
	}
}

// Item returns the body color of an item.
func (p Palette) Item(v frame.Visual) Color {
	if !v.Enabled {
		return p.Disabled
	}
	c := p.Idle.Lerp(p.Highlight, v.HighlightProgress)
	if v.ShowEdge {
		c = c.Lighten(p.EdgeLighten)
	}
	return c
}

// SelectionBar returns the color of the dwell progress bar. It is
// transparent while nothing is in progress.
func (p Palette) SelectionBar(v frame.Visual) Color {
	if !v.Enabled || v.SelectionProgress <= 0 {
		return ColorTransparent
	}
	return p.Selection
}

// SliderColors are the per-part colors of one slider.
type SliderColors struct {
	Track  Color
	Fill   Color
	Tick   Color
	Handle Color
	Jump   Color
}

// Slider returns the slider colors faded by alpha.
func (p Palette) Slider(alpha float32) SliderColors {
	return SliderColors{
		Track:  p.Track.Fade(alpha),
		Fill:   p.Fill.Fade(alpha),
		Tick:   p.Tick.Fade(alpha),
		Handle: p.Handle.Fade(alpha),
		Jump:   p.Jump.Fade(alpha),
	}
}
