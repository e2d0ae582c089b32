// Package input turns SDL2 events into viewer events and mouse state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX int
	DeltaY int
	WheelY float32
	Button uint8
}

// Mouse is the pointer state after the last Update.
type Mouse struct {
	X, Y      int
	Inside    bool // pointer is over the window
	LeftDown  bool
	RightDown bool
	DragX     int // motion accumulated this frame while the right button was held
	DragY     int
	WheelY    float32
}

// Input polls SDL and keeps the per-frame event list.
type Input struct {
	events []Event
	mouse  Mouse
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		mouse:  Mouse{Inside: true},
	}
}

// Update polls SDL events. It returns true when the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.mouse.DragX, i.mouse.DragY = 0, 0
	i.mouse.WheelY = 0

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_ENTER:
				i.mouse.Inside = true
			case sdl.WINDOWEVENT_LEAVE:
				i.mouse.Inside = false
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			t := EventKeyUp
			if e.Type == sdl.KEYDOWN {
				t = EventKeyDown
			}
			i.events = append(i.events, Event{Type: t, Key: e.Keysym.Scancode})

		case *sdl.MouseMotionEvent:
			i.mouse.X, i.mouse.Y = int(e.X), int(e.Y)
			if i.mouse.RightDown {
				i.mouse.DragX += int(e.XRel)
				i.mouse.DragY += int(e.YRel)
			}
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				DeltaX: int(e.XRel),
				DeltaY: int(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			pressed := e.Type == sdl.MOUSEBUTTONDOWN
			switch e.Button {
			case sdl.BUTTON_LEFT:
				i.mouse.LeftDown = pressed
			case sdl.BUTTON_RIGHT:
				i.mouse.RightDown = pressed
			}
			t := EventMouseUp
			if pressed {
				t = EventMouseDown
			}
			i.events = append(i.events, Event{
				Type:   t,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})

		case *sdl.MouseWheelEvent:
			i.mouse.WheelY += float32(e.Y)
			i.events = append(i.events, Event{Type: EventMouseWheel, WheelY: float32(e.Y)})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Mouse returns the pointer state from the last Update.
func (i *Input) Mouse() Mouse {
	return i.mouse
}

// IsKeyPressed reports whether scancode went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
