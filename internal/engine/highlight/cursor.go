// Package highlight computes per-item cursor proximity and arbitrates, per
// cursor type, the single item nearest to each cursor across the whole UI.
//
// A frame runs in two phases. First every item's State.Update builds that
// item's highlight records from scratch. Then a Registry sweep marks the
// globally nearest record for each cursor type.
package highlight

import (
	"github.com/Faultbox/hoverkit/pkg/geom"
	"github.com/Faultbox/hoverkit/pkg/math"
)

// CursorType identifies a cursor across frames, e.g. "left-index" or "gaze".
type CursorType string

// Cursor is a per-frame snapshot of a tracked pointer.
type Cursor struct {
	Type                  CursorType `yaml:"type"`
	WorldPosition         math.Vec3  `yaml:"position"`
	WorldRotation         math.Quat  `yaml:"rotation"`
	IsRaycast             bool       `yaml:"raycast"`
	RaycastLocalDirection math.Vec3  `yaml:"ray_direction"`
	CanCauseSelections    bool       `yaml:"can_select"`
}

// WorldRay returns the cursor's ray: from its position along its rotated
// local ray direction.
func (c *Cursor) WorldRay() geom.Ray {
	rot := c.WorldRotation
	if rot.IsZero() {
		rot = math.QuatIdentity()
	}
	return geom.Ray{
		Origin:    c.WorldPosition,
		Direction: rot.Rotate(c.RaycastLocalDirection).Normalize(),
	}
}

// Settings are the distance thresholds that map distance to progress.
type Settings struct {
	DistanceMin float32 `yaml:"highlight_distance_min"` // progress is 1 at or below
	DistanceMax float32 `yaml:"highlight_distance_max"` // progress is 0 at or above
}

// DefaultSettings returns the stock thresholds in world units.
func DefaultSettings() Settings {
	return Settings{DistanceMin: 0.03, DistanceMax: 0.07}
}

// Progress maps a distance to [0, 1], falling from 1 at DistanceMin to 0 at
// DistanceMax. Distances at or below DistanceMin are always 1, even when
// both thresholds are equal.
func (s Settings) Progress(distance float32) float32 {
	if distance <= s.DistanceMin {
		return 1
	}
	return math.InverseLerp(s.DistanceMax, s.DistanceMin, distance)
}
