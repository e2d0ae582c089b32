// Package scenario loads scripted interaction scenes: items laid out in
// world space plus cursors that follow eased keyframe paths. It stands in
// for the hand and gaze trackers when running headless or in the viewer.
package scenario

import (
	"errors"
	"fmt"
	gomath "math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/hoverkit/internal/engine/slider"
	"github.com/Faultbox/hoverkit/pkg/math"
)

// Scenario is the root of a scenario file.
type Scenario struct {
	Name    string       `yaml:"name"`
	Items   []ItemSpec   `yaml:"items"`
	Cursors []CursorSpec `yaml:"cursors"`
	Events  []Event      `yaml:"events"`
}

// Rotation is an axis-angle rotation in degrees.
type Rotation struct {
	Axis    math.Vec3 `yaml:"axis"`
	Degrees float32   `yaml:"degrees"`
}

// Quat converts to a quaternion. A zero axis means no rotation.
func (r Rotation) Quat() math.Quat {
	if r.Axis == (math.Vec3{}) || r.Degrees == 0 {
		return math.QuatIdentity()
	}
	return math.QuatFromAxisAngle(r.Axis.Normalize(), r.Degrees*gomath.Pi/180)
}

// SliderSpec configures a slider item's model.
type SliderSpec struct {
	Value             *float32         `yaml:"value"`
	Snaps             int              `yaml:"snaps"`
	Ticks             int              `yaml:"ticks"`
	RangeMin          *float32         `yaml:"range_min"`
	RangeMax          *float32         `yaml:"range_max"`
	AllowJump         bool             `yaml:"allow_jump"`
	FillStartingPoint *slider.FillType `yaml:"fill_starting_point"`
	LabelFormat       string           `yaml:"label_format"`
}

// ItemSpec describes one item.
type ItemSpec struct {
	ID       string    `yaml:"id"`
	Label    string    `yaml:"label"`
	Kind     string    `yaml:"kind"`  // checkbox, radio, selector, sticky, slider, text
	Shape    string    `yaml:"shape"` // rect or arc
	Parent   string    `yaml:"parent"`
	Enabled  *bool     `yaml:"enabled"`
	Position math.Vec3 `yaml:"position"`
	Rotation Rotation  `yaml:"rotation"`
	Scale    float32   `yaml:"scale"`

	// Rect shapes.
	SizeX      float32 `yaml:"size_x"`
	SizeY      float32 `yaml:"size_y"`
	HandleSize float32 `yaml:"handle_size"`

	// Arc shapes.
	ArcDegrees float32 `yaml:"arc_degrees"`
	Mirrored   bool    `yaml:"mirrored"`

	Checked bool       `yaml:"checked"`
	Group   string     `yaml:"group"`
	Action  string     `yaml:"action"` // navigate-in, navigate-out
	Slider  SliderSpec `yaml:"slider"`
}

// Keyframe moves a cursor to To over Seconds.
type Keyframe struct {
	To       math.Vec3 `yaml:"to"`
	Rotation *Rotation `yaml:"rotation"`
	Seconds  float32   `yaml:"seconds"`
	Ease     string    `yaml:"ease"`
}

// CursorSpec describes one scripted cursor.
type CursorSpec struct {
	Type         string     `yaml:"type"`
	Raycast      bool       `yaml:"raycast"`
	RayDirection math.Vec3  `yaml:"ray_direction"`
	Passive      bool       `yaml:"passive"` // cannot cause selections
	Start        math.Vec3  `yaml:"start"`
	Rotation     Rotation   `yaml:"rotation"`
	Path         []Keyframe `yaml:"path"`
	Loop         bool       `yaml:"loop"`
}

// Event changes item state at a point in time.
type Event struct {
	At      float32 `yaml:"at"`
	Item    string  `yaml:"item"`
	Enabled *bool   `yaml:"enabled"`
	Active  *bool   `yaml:"active"`
	Prevent string  `yaml:"prevent"`
	Allow   string  `yaml:"allow"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading scenario from %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks references and enumerations.
func (sc *Scenario) Validate() error {
	var errs []error
	ids := make(map[string]bool, len(sc.Items))

	for i, it := range sc.Items {
		if it.ID == "" {
			errs = append(errs, fmt.Errorf("item %d: missing id", i))
			continue
		}
		if ids[it.ID] {
			errs = append(errs, fmt.Errorf("item %q: duplicate id", it.ID))
		}
		ids[it.ID] = true

		if _, ok := kindBuilders[it.Kind]; !ok {
			errs = append(errs, fmt.Errorf("item %q: unknown kind %q", it.ID, it.Kind))
		}
		if it.Shape != "rect" && it.Shape != "arc" {
			errs = append(errs, fmt.Errorf("item %q: unknown shape %q", it.ID, it.Shape))
		}
		if _, ok := selectorActions[it.Action]; !ok {
			errs = append(errs, fmt.Errorf("item %q: unknown action %q", it.ID, it.Action))
		}
	}
	for _, it := range sc.Items {
		if it.Parent != "" && !ids[it.Parent] {
			errs = append(errs, fmt.Errorf("item %q: unknown parent %q", it.ID, it.Parent))
		}
	}

	types := make(map[string]bool, len(sc.Cursors))
	for i, c := range sc.Cursors {
		if c.Type == "" {
			errs = append(errs, fmt.Errorf("cursor %d: missing type", i))
		} else if types[c.Type] {
			errs = append(errs, fmt.Errorf("cursor %q: duplicate type", c.Type))
		}
		types[c.Type] = true

		for j, k := range c.Path {
			if _, ok := easings[k.Ease]; !ok {
				errs = append(errs, fmt.Errorf("cursor %q keyframe %d: unknown ease %q", c.Type, j, k.Ease))
			}
			if k.Seconds < 0 {
				errs = append(errs, fmt.Errorf("cursor %q keyframe %d: negative duration", c.Type, j))
			}
		}
	}

	for i, ev := range sc.Events {
		if !ids[ev.Item] {
			errs = append(errs, fmt.Errorf("event %d: unknown item %q", i, ev.Item))
		}
	}

	return errors.Join(errs...)
}
