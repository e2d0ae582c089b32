// Package slider maps an arc slider's angular layout to a normalized value,
// applies snapping and easing, and rebuilds its track, fill and tick meshes.
package slider

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/hoverkit/pkg/math"
)

// FillType selects where a slider's fill starts.
type FillType int

const (
	FillMinimum FillType = iota
	FillZero
	FillMaximum
)

// String returns the YAML name of the fill type.
func (f FillType) String() string {
	switch f {
	case FillMinimum:
		return "minimum"
	case FillMaximum:
		return "maximum"
	default:
		return "zero"
	}
}

// UnmarshalText accepts the names produced by String.
func (f *FillType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "minimum":
		*f = FillMinimum
	case "zero":
		*f = FillZero
	case "maximum":
		*f = FillMaximum
	default:
		return fmt.Errorf("unknown fill type %q", text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f FillType) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// DefaultLabelFormat renders "<label>: <snapped range value>".
const DefaultLabelFormat = "%s: %.1f"

// Model is a slider's data: the authoritative normalized value plus the
// range, snap and tick settings that shape it. Value and HoverValue are
// always clamped to [0, 1] on write.
type Model struct {
	value      float32
	hoverValue *float32

	LabelFormat       string
	Ticks             int
	Snaps             int
	RangeMin          float32
	RangeMax          float32
	AllowJump         bool
	FillStartingPoint FillType

	prevLabel  string
	prevFormat string
	prevValue  float32
	prevText   string
}

// NewModel returns a model with the default -100..100 range, centered.
func NewModel() *Model {
	return &Model{
		value:             0.5,
		LabelFormat:       DefaultLabelFormat,
		RangeMin:          -100,
		RangeMax:          100,
		FillStartingPoint: FillZero,
	}
}

// Value returns the normalized value.
func (m *Model) Value() float32 {
	return m.value
}

// SetValue clamps and stores the normalized value.
func (m *Model) SetValue(v float32) {
	m.value = math.Clamp01(v)
}

// RangeValue maps Value into [RangeMin, RangeMax].
func (m *Model) RangeValue() float32 {
	return m.toRange(m.value)
}

// SnappedValue is Value quantized to Snaps positions.
func (m *Model) SnappedValue() float32 {
	return Snap(m.value, m.Snaps)
}

// SnappedRangeValue maps SnappedValue into [RangeMin, RangeMax].
func (m *Model) SnappedRangeValue() float32 {
	return m.toRange(m.SnappedValue())
}

// ZeroValue is where a range value of 0 falls in normalized space.
func (m *Model) ZeroValue() float32 {
	return math.InverseLerp(m.RangeMin, m.RangeMax, 0)
}

// HoverValue returns the cursor-driven preview value, if any.
func (m *Model) HoverValue() (float32, bool) {
	if m.hoverValue == nil {
		return 0, false
	}
	return *m.hoverValue, true
}

// SetHoverValue clamps and stores a hover value.
func (m *Model) SetHoverValue(v float32) {
	v = math.Clamp01(v)
	m.hoverValue = &v
}

// ClearHoverValue removes the hover value.
func (m *Model) ClearHoverValue() {
	m.hoverValue = nil
}

// SnappedHoverValue is the hover value quantized to Snaps positions.
func (m *Model) SnappedHoverValue() (float32, bool) {
	v, ok := m.HoverValue()
	if !ok {
		return 0, false
	}
	return Snap(v, m.Snaps), true
}

// DeselectStickySelections commits the snapped value when a sticky drag ends.
func (m *Model) DeselectStickySelections() {
	m.SetValue(m.SnappedValue())
}

// FormattedLabel renders the label with the snapped range value. The last
// result is cached since labels are requested every frame.
func (m *Model) FormattedLabel(label string) string {
	format := m.LabelFormat
	if format == "" {
		format = DefaultLabelFormat
	}
	value := m.SnappedRangeValue()

	if m.prevText != "" && label == m.prevLabel && format == m.prevFormat && value == m.prevValue {
		return m.prevText
	}

	m.prevLabel = label
	m.prevFormat = format
	m.prevValue = value
	m.prevText = fmt.Sprintf(format, label, value)
	return m.prevText
}

// modelState is the serialized form of a Model.
type modelState struct {
	Value             float32  `yaml:"value"`
	HoverValue        *float32 `yaml:"hover_value,omitempty"`
	LabelFormat       string   `yaml:"label_format"`
	Ticks             int      `yaml:"ticks"`
	Snaps             int      `yaml:"snaps"`
	RangeMin          float32  `yaml:"range_min"`
	RangeMax          float32  `yaml:"range_max"`
	AllowJump         bool     `yaml:"allow_jump"`
	FillStartingPoint FillType `yaml:"fill_starting_point"`
}

func (m *Model) state() modelState {
	var hover *float32
	if m.hoverValue != nil {
		v := *m.hoverValue
		hover = &v
	}
	return modelState{
		Value:             m.value,
		HoverValue:        hover,
		LabelFormat:       m.LabelFormat,
		Ticks:             m.Ticks,
		Snaps:             m.Snaps,
		RangeMin:          m.RangeMin,
		RangeMax:          m.RangeMax,
		AllowJump:         m.AllowJump,
		FillStartingPoint: m.FillStartingPoint,
	}
}

// MarshalYAML writes the settings together with Value and HoverValue.
func (m *Model) MarshalYAML() (interface{}, error) {
	return m.state(), nil
}

// UnmarshalYAML reads the form written by MarshalYAML. Keys missing from
// the node keep their current values; values are clamped like SetValue.
func (m *Model) UnmarshalYAML(node *yaml.Node) error {
	st := m.state()
	if err := node.Decode(&st); err != nil {
		return err
	}

	m.SetValue(st.Value)
	if st.HoverValue != nil {
		m.SetHoverValue(*st.HoverValue)
	} else {
		m.ClearHoverValue()
	}
	m.LabelFormat = st.LabelFormat
	m.Ticks = st.Ticks
	m.Snaps = st.Snaps
	m.RangeMin = st.RangeMin
	m.RangeMax = st.RangeMax
	m.AllowJump = st.AllowJump
	m.FillStartingPoint = st.FillStartingPoint
	return nil
}

func (m *Model) toRange(v float32) float32 {
	return v*(m.RangeMax-m.RangeMin) + m.RangeMin
}
