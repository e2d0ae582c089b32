// Package item holds the data side of interactive items: a closed set of
// item kinds, enabled/active flags with ancestry, sticky selection, and the
// per-item highlight state.
package item

import "github.com/Faultbox/hoverkit/internal/engine/slider"

// Kind is one of *Checkbox, *Radio, *Selector, *Sticky, *Slider or *Text.
type Kind interface {
	kind()
}

// Checkbox toggles Value on select.
type Checkbox struct {
	Value bool `yaml:"value"`
}

// Radio is set on select and clears other radios in its Group.
type Radio struct {
	Value bool   `yaml:"value"`
	Group string `yaml:"group"`
}

// SelectorAction is what a selector does when selected.
type SelectorAction int

const (
	ActionDefault SelectorAction = iota
	ActionNavigateIn
	ActionNavigateOut
)

// Selector is a plain button, optionally navigating a menu hierarchy.
type Selector struct {
	Action SelectorAction `yaml:"action"`
}

// Sticky stays selected while the cursor remains on it.
type Sticky struct{}

// Slider carries the slider's value model. It uses sticky selection: the
// value follows the cursor while selected.
type Slider struct {
	Model *slider.Model
}

// Text is a non-selectable label.
type Text struct{}

func (*Checkbox) kind() {}
func (*Radio) kind()    {}
func (*Selector) kind() {}
func (*Sticky) kind()   {}
func (*Slider) kind()   {}
func (*Text) kind()     {}

// KindName returns a short name for logs.
func KindName(k Kind) string {
	switch k.(type) {
	case *Checkbox:
		return "checkbox"
	case *Radio:
		return "radio"
	case *Selector:
		return "selector"
	case *Sticky:
		return "sticky"
	case *Slider:
		return "slider"
	case *Text:
		return "text"
	default:
		return "none"
	}
}

// IconType is the icon pair shown next to an item's label.
type IconType int

const (
	IconUnspecified IconType = iota
	IconCheckboxOn
	IconCheckboxOff
	IconRadioOn
	IconRadioOff
	IconNavigateIn
	IconNavigateOut
	IconSticky
	IconSlider
)

var iconNames = [...]string{
	IconUnspecified: "unspecified",
	IconCheckboxOn:  "checkbox-on",
	IconCheckboxOff: "checkbox-off",
	IconRadioOn:     "radio-on",
	IconRadioOff:    "radio-off",
	IconNavigateIn:  "navigate-in",
	IconNavigateOut: "navigate-out",
	IconSticky:      "sticky",
	IconSlider:      "slider",
}

func (i IconType) String() string {
	if i < 0 || int(i) >= len(iconNames) {
		return "unspecified"
	}
	return iconNames[i]
}

// Icon picks the icon for an item kind.
func Icon(k Kind) IconType {
	switch k := k.(type) {
	case *Checkbox:
		if k.Value {
			return IconCheckboxOn
		}
		return IconCheckboxOff
	case *Radio:
		if k.Value {
			return IconRadioOn
		}
		return IconRadioOff
	case *Selector:
		switch k.Action {
		case ActionNavigateIn:
			return IconNavigateIn
		case ActionNavigateOut:
			return IconNavigateOut
		}
		return IconUnspecified
	case *Sticky:
		return IconSticky
	case *Slider:
		return IconSlider
	default:
		return IconUnspecified
	}
}
