// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Width  int
	Height int
	MouseX int
	MouseY int
}

// Input collects the events of one frame.
type Input struct {
	events []Event
	mouseX int
	mouseY int
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events. Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := translate(event); ok {
			i.push(ev)
			if ev.Type == EventQuit || (ev.Type == EventKeyDown && ev.Key == sdl.K_ESCAPE) {
				quit = true
			}
		}
	}
	return quit
}

// translate converts the SDL events the viewer cares about.
func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return Event{Type: EventKeyDown, Key: e.Keysym.Sym}, true
		}
	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, MouseX: int(e.X), MouseY: int(e.Y)}, true
	}
	return Event{}, false
}

// push records an event and tracks the latest mouse position.
func (i *Input) push(ev Event) {
	if ev.Type == EventMouseMove {
		i.mouseX, i.mouseY = ev.MouseX, ev.MouseY
	}
	i.events = append(i.events, ev)
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Mouse returns the last known mouse position.
func (i *Input) Mouse() (int, int) {
	return i.mouseX, i.mouseY
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(key sdl.Keycode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}

// Resized returns the newest window size reported this frame.
func (i *Input) Resized() (width, height int, ok bool) {
	for _, e := range i.events {
		if e.Type == EventWindowResize {
			width, height, ok = e.Width, e.Height, true
		}
	}
	return width, height, ok
}
