package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		event  sdl.Event
		want   Event
		wantOK bool
	}{
		{"quit", &sdl.QuitEvent{}, Event{Type: EventQuit}, true},
		{
			"resize",
			&sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600},
			true,
		},
		{"focus ignored", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_GAINED}, Event{}, false},
		{
			"key down",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_t}},
			Event{Type: EventKeyDown, Key: sdl.K_t},
			true,
		},
		{"key repeat ignored", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_t}}, Event{}, false},
		{"key up ignored", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_t}}, Event{}, false},
		{"mouse", &sdl.MouseMotionEvent{X: 10, Y: 20}, Event{Type: EventMouseMove, MouseX: 10, MouseY: 20}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.wantOK {
				t.Fatalf("translate() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInputQueries(t *testing.T) {
	in := New()
	in.push(Event{Type: EventMouseMove, MouseX: 3, MouseY: 4})
	in.push(Event{Type: EventWindowResize, Width: 640, Height: 480})
	in.push(Event{Type: EventKeyDown, Key: sdl.K_a})
	in.push(Event{Type: EventWindowResize, Width: 1024, Height: 768})

	if x, y := in.Mouse(); x != 3 || y != 4 {
		t.Errorf("Mouse() = (%d, %d), want (3, 4)", x, y)
	}
	if !in.IsKeyPressed(sdl.K_a) {
		t.Error("expected K_a to be pressed")
	}
	if in.IsKeyPressed(sdl.K_t) {
		t.Error("K_t should not be pressed")
	}
	w, h, ok := in.Resized()
	if !ok || w != 1024 || h != 768 {
		t.Errorf("Resized() = (%d, %d, %v), want newest size 1024x768", w, h, ok)
	}
}
