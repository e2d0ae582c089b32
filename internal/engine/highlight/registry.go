package highlight

import (
	"errors"
	"fmt"
)

// ErrUnknownCursorType is returned when arbitration is requested for a
// cursor type that did not take part in the current frame.
var ErrUnknownCursorType = errors.New("cursor type did not run this frame")

// Registry holds every item's State and runs cross-item arbitration once
// all of them have been updated for the frame.
type Registry struct {
	states []*State
	frame  map[CursorType]struct{}
	order  []CursorType
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{frame: make(map[CursorType]struct{})}
}

// Add registers s. Registration order breaks arbitration ties.
func (r *Registry) Add(s *State) {
	r.states = append(r.states, s)
}

// Remove unregisters s. Removing an unknown state does nothing.
func (r *Registry) Remove(s *State) {
	for i, st := range r.states {
		if st == s {
			r.states = append(r.states[:i], r.states[i+1:]...)
			return
		}
	}
}

// States returns the registered states in registration order.
func (r *Registry) States() []*State {
	return r.states
}

// BeginFrame records which selection-capable cursor types run this frame.
// Only those types may be arbitrated.
func (r *Registry) BeginFrame(cursors []Cursor) {
	if r.frame == nil {
		r.frame = make(map[CursorType]struct{})
	}
	clear(r.frame)
	r.order = r.order[:0]
	for i := range cursors {
		c := &cursors[i]
		if !c.CanCauseSelections {
			continue
		}
		if _, seen := r.frame[c.Type]; seen {
			continue
		}
		r.frame[c.Type] = struct{}{}
		r.order = append(r.order, c.Type)
	}
}

// ResetAllNearestStates clears the arbitration flags on every state.
func (r *Registry) ResetAllNearestStates() {
	for _, s := range r.states {
		s.ResetAllNearestStates()
	}
}

// Arbitrate marks the record with the smallest distance for cursor type t
// across all non-prevented states. If no state holds a record for t nothing
// is marked. Ties go to the earliest registered state.
func (r *Registry) Arbitrate(t CursorType) error {
	if _, ok := r.frame[t]; !ok {
		return fmt.Errorf("arbitrate %q: %w", t, ErrUnknownCursorType)
	}

	var (
		best     *State
		bestDist float32
	)
	for _, s := range r.states {
		if s.IsHighlightPrevented() {
			continue
		}
		high, ok := s.GetHighlight(t)
		if !ok {
			continue
		}
		if best == nil || high.Distance < bestDist {
			best = s
			bestDist = high.Distance
		}
	}

	if best == nil {
		return nil
	}
	return best.SetNearestAcrossAllItemsForCursor(t)
}

// ArbitrateAll runs a full arbitration sweep: BeginFrame, a reset, then
// one Arbitrate per distinct selection-capable cursor type, in cursor order.
func (r *Registry) ArbitrateAll(cursors []Cursor) error {
	r.BeginFrame(cursors)
	r.ResetAllNearestStates()

	for _, t := range r.order {
		if err := r.Arbitrate(t); err != nil {
			return err
		}
	}
	return nil
}

// Nearest returns the state marked nearest for cursor type t, if any.
func (r *Registry) Nearest(t CursorType) (*State, bool) {
	for _, s := range r.states {
		if high, ok := s.GetHighlight(t); ok && high.IsNearestAcrossAllItems {
			return s, true
		}
	}
	return nil, false
}
