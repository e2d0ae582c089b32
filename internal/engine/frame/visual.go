package frame

import (
	"github.com/Faultbox/hoverkit/internal/engine/slider"
	"github.com/Faultbox/hoverkit/internal/item"
)

// Visual is what the styling layer needs to draw one item for a frame.
type Visual struct {
	ID        string
	Label     string
	Icon      item.IconType
	Enabled   bool
	Prevented bool

	HighlightProgress float32
	SelectionProgress float32
	ShowEdge          bool // nearest item for at least one cursor
	Selected          bool // selection completed this frame

	Slider *SliderVisual
}

// SliderVisual carries a slider's values and, for arc sliders, its meshes.
type SliderVisual struct {
	Value             float32
	HandleValue       float32
	ZeroValue         float32
	FillStartingPoint slider.FillType
	Ticks             int
	AllowJump         bool

	HoverValue    float32
	HasHoverValue bool
	JumpValue     float32
	HasJumpValue  bool

	// Renderer is nil for sliders that are not arc shaped.
	Renderer *slider.Renderer
}
