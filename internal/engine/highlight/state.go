package highlight

import (
	"errors"
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/hoverkit/internal/logger"
	"github.com/Faultbox/hoverkit/pkg/geom"
	"github.com/Faultbox/hoverkit/pkg/math"
)

// ErrNoHighlight is returned when a state is asked to mark a cursor type it
// holds no record for.
var ErrNoHighlight = errors.New("no highlight for cursor type")

// ProximityProvider finds the nearest point on an item's surface.
type ProximityProvider interface {
	NearestWorldPosition(from math.Vec3) math.Vec3
	NearestWorldPositionAlongRay(ray geom.Ray) (math.Vec3, geom.RaycastResult)
}

// Subject is the item data that decides whether highlights are allowed.
type Subject interface {
	IsSelectable() bool
	IsEnabled() bool
	IsAncestryEnabled() bool
	IsActiveInHierarchy() bool
}

// Highlight is one cursor's proximity to one item for the current frame.
type Highlight struct {
	Cursor          *Cursor
	NearestWorldPos math.Vec3
	Raycast         *geom.RaycastResult // nil unless the cursor is raycast
	Distance        float32
	Progress        float32

	IsNearestAcrossAllItems bool
}

// State is one item's highlight state. Highlights and the nearest record
// are rebuilt from scratch by every Update.
type State struct {
	Name       string
	Provider   ProximityProvider
	Settings   *Settings
	Prevention Prevention

	Highlights []Highlight

	nearest    int
	prevented  bool
	anyNearest bool
	warned     bool
	log        *zap.Logger
}

// NewState creates a state reading geometry from provider. A nil log uses
// the "highlight" component logger.
func NewState(name string, provider ProximityProvider, settings *Settings, log *zap.Logger) *State {
	if log == nil {
		log = logger.Named("highlight")
	}
	return &State{
		Name:     name,
		Provider: provider,
		Settings: settings,
		nearest:  -1,
		log:      log,
	}
}

// Update rebuilds the highlight records for cursors. A prevented subject,
// or a state missing its provider or settings, ends up with no records.
func (s *State) Update(subject Subject, cursors []Cursor) {
	s.Highlights = s.Highlights[:0]
	s.nearest = -1
	s.anyNearest = false

	s.prevented = s.isPrevented(subject)
	if s.prevented {
		return
	}

	if s.Provider == nil || s.Settings == nil {
		if !s.warned {
			s.warned = true
			s.logger().Warn("item has no proximity provider or settings; highlights disabled",
				zap.String("item", s.Name),
				zap.Bool("provider", s.Provider != nil),
				zap.Bool("settings", s.Settings != nil))
		}
		return
	}

	minDist := float32(gomath.MaxFloat32)
	for i := range cursors {
		cursor := &cursors[i]
		if !cursor.CanCauseSelections {
			continue
		}

		s.Highlights = append(s.Highlights, s.calculate(cursor))
		high := &s.Highlights[len(s.Highlights)-1]

		if high.Distance >= minDist {
			continue
		}
		minDist = high.Distance
		s.nearest = len(s.Highlights) - 1
	}
}

func (s *State) isPrevented(subject Subject) bool {
	return subject == nil ||
		!subject.IsSelectable() ||
		!subject.IsEnabled() ||
		!subject.IsAncestryEnabled() ||
		!subject.IsActiveInHierarchy() ||
		s.Prevention.IsPreventedViaAny()
}

func (s *State) calculate(cursor *Cursor) Highlight {
	high := Highlight{Cursor: cursor}
	query := cursor.WorldPosition

	if cursor.IsRaycast {
		nearest, hit := s.Provider.NearestWorldPositionAlongRay(cursor.WorldRay())
		high.NearestWorldPos = nearest
		high.Raycast = &hit
		query = hit.WorldPosition
	} else {
		high.NearestWorldPos = s.Provider.NearestWorldPosition(cursor.WorldPosition)
	}

	high.Distance = query.Distance(high.NearestWorldPos)
	high.Progress = s.Settings.Progress(high.Distance)
	return high
}

func (s *State) logger() *zap.Logger {
	if s.log == nil {
		s.log = logger.Named("highlight")
	}
	return s.log
}

// IsHighlightPrevented reports whether the last Update was prevented.
func (s *State) IsHighlightPrevented() bool {
	return s.prevented
}

// NearestHighlight returns the record with the smallest distance. On ties
// the earliest cursor wins.
func (s *State) NearestHighlight() (Highlight, bool) {
	if s.nearest < 0 || s.nearest >= len(s.Highlights) {
		return Highlight{}, false
	}
	return s.Highlights[s.nearest], true
}

// GetHighlight returns the record for cursor type t.
func (s *State) GetHighlight(t CursorType) (Highlight, bool) {
	i := s.indexOf(t)
	if i < 0 {
		return Highlight{}, false
	}
	return s.Highlights[i], true
}

func (s *State) indexOf(t CursorType) int {
	for i := range s.Highlights {
		if s.Highlights[i].Cursor.Type == t {
			return i
		}
	}
	return -1
}

// MaxHighlightProgress is the progress to display: 1 while the item is
// sticky-selected, otherwise the nearest record's progress.
func (s *State) MaxHighlightProgress(stickySelected bool) float32 {
	if stickySelected {
		return 1
	}
	if high, ok := s.NearestHighlight(); ok {
		return high.Progress
	}
	return 0
}

// IsNearestAcrossAllItemsForAnyCursor reports whether arbitration marked
// any of this item's records.
func (s *State) IsNearestAcrossAllItemsForAnyCursor() bool {
	return s.anyNearest
}

// ResetAllNearestStates clears every arbitration flag.
func (s *State) ResetAllNearestStates() {
	for i := range s.Highlights {
		s.Highlights[i].IsNearestAcrossAllItems = false
	}
	s.anyNearest = false
}

// SetNearestAcrossAllItemsForCursor marks the record for cursor type t as
// the globally nearest one.
func (s *State) SetNearestAcrossAllItemsForCursor(t CursorType) error {
	i := s.indexOf(t)
	if i < 0 {
		return fmt.Errorf("item %q, cursor %q: %w", s.Name, t, ErrNoHighlight)
	}
	s.Highlights[i].IsNearestAcrossAllItems = true
	s.anyNearest = true
	return nil
}
