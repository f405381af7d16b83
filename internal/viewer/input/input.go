// Package input translates SDL2 events into viewer actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Input accumulates one frame's worth of SDL events.
type Input struct {
	quit    bool
	resized bool

	// Mouse drag delta while the left button is held
	DragX, DragY float32
	// Wheel movement, positive away from the user
	Wheel float32

	pressed []sdl.Scancode
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		pressed: make([]sdl.Scancode, 0, 8),
	}
}

// Update polls pending SDL events. It returns true once the viewer should quit.
func (i *Input) Update() bool {
	i.resized = false
	i.DragX, i.DragY, i.Wheel = 0, 0, 0
	i.pressed = i.pressed[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.resized = true
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.pressed = append(i.pressed, e.Keysym.Scancode)
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					i.quit = true
				}
			}

		case *sdl.MouseMotionEvent:
			if e.State&sdl.ButtonLMask() != 0 {
				i.DragX += float32(e.XRel)
				i.DragY += float32(e.YRel)
			}

		case *sdl.MouseWheelEvent:
			i.Wheel += float32(e.Y)
		}
	}

	return i.quit
}

// Resized reports whether the window size changed this frame.
func (i *Input) Resized() bool {
	return i.resized
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, k := range i.pressed {
		if k == scancode {
			return true
		}
	}
	return false
}
