package scenario

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/hoverkit/internal/engine/frame"
	"github.com/Faultbox/hoverkit/internal/engine/highlight"
	"github.com/Faultbox/hoverkit/internal/engine/slider"
	"github.com/Faultbox/hoverkit/internal/item"
)

// writer is the controller name events use when changing item fields.
const writer = "scenario"

// Runner drives a frame updater from a scenario's cursor tracks and events.
type Runner struct {
	Updater *frame.Updater

	items  map[string]*item.Item
	tracks []*CursorTrack
	events []Event
	time   float32
	log    *zap.Logger
}

// NewRunner builds the scenario's items into a fresh updater.
func NewRunner(sc *Scenario, hs *highlight.Settings, fs frame.Settings, cfg slider.Config, log *zap.Logger) (*Runner, error) {
	if log == nil {
		log = zap.NewNop()
	}
	items, err := sc.Build(hs, cfg, log)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		Updater: frame.New(fs, log),
		items:   make(map[string]*item.Item, len(items)),
		events:  slices.Clone(sc.Events),
		log:     log,
	}
	r.Updater.Add(items...)
	for _, it := range items {
		r.items[it.ID] = it
	}
	for _, c := range sc.Cursors {
		r.tracks = append(r.tracks, NewCursorTrack(c))
	}
	slices.SortStableFunc(r.events, func(a, b Event) int {
		switch {
		case a.At < b.At:
			return -1
		case a.At > b.At:
			return 1
		}
		return 0
	})

	return r, nil
}

// Time returns the seconds played so far.
func (r *Runner) Time() float32 {
	return r.time
}

// Item looks up a built item by ID.
func (r *Runner) Item(id string) (*item.Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// Done reports whether every track has finished and every event has fired.
func (r *Runner) Done() bool {
	if len(r.events) > 0 {
		return false
	}
	for _, t := range r.tracks {
		if !t.Done {
			return false
		}
	}
	return true
}

// Step advances time by dt, fires due events, moves the cursors and runs
// one frame.
func (r *Runner) Step(dt float32) ([]frame.Visual, error) {
	return r.StepWith(dt, nil)
}

// StepWith is Step with extra live cursors appended after the scripted ones.
func (r *Runner) StepWith(dt float32, extra []highlight.Cursor) ([]frame.Visual, error) {
	r.time += dt
	for len(r.events) > 0 && r.events[0].At <= r.time {
		r.apply(r.events[0])
		r.events = r.events[1:]
	}

	cursors := make([]highlight.Cursor, 0, len(r.tracks)+len(extra))
	for _, t := range r.tracks {
		cursors = append(cursors, t.Update(dt))
	}
	cursors = append(cursors, extra...)
	return r.Updater.Step(dt, cursors)
}

// Run steps the given number of frames and hands each frame's visuals to
// visit, which may be nil.
func (r *Runner) Run(frames int, dt float32, visit func(frame int, visuals []frame.Visual)) error {
	for i := 0; i < frames; i++ {
		visuals, err := r.Step(dt)
		if err != nil {
			return fmt.Errorf("at %.3fs: %w", r.time, err)
		}
		if visit != nil {
			visit(i, visuals)
		}
	}
	return nil
}

func (r *Runner) apply(ev Event) {
	it, ok := r.items[ev.Item]
	if !ok {
		return
	}
	if ev.Enabled != nil {
		it.SetEnabled(*ev.Enabled, writer)
	}
	if ev.Active != nil {
		it.SetActive(*ev.Active, writer)
	}
	if ev.Prevent != "" {
		it.Highlight.Prevention.Prevent(ev.Prevent, true)
	}
	if ev.Allow != "" {
		it.Highlight.Prevention.Prevent(ev.Allow, false)
	}
	r.log.Debug("scenario event",
		zap.Float32("at", ev.At),
		zap.String("item", ev.Item),
		zap.Strings("prevented", it.Highlight.Prevention.Reasons()))
}
