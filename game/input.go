package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputProvider reports the pointer and keyboard state for one update
type InputProvider interface {
	// CursorPosition returns the pointer position in window pixels
	CursorPosition() (int, int)

	// Focused reports whether the window has input focus
	Focused() bool

	// Clicked reports a left button press this update
	Clicked() bool

	// Wheel returns the vertical wheel delta of this update
	Wheel() float64

	// KeyJustPressed reports a key press this update
	KeyJustPressed(key ebiten.Key) bool

	// Update refreshes per-update state
	Update()
}

// WindowInput reads input from the ebiten window
type WindowInput struct {
	keys []ebiten.Key
}

// NewWindowInput creates a window input provider
func NewWindowInput() *WindowInput {
	return &WindowInput{keys: make([]ebiten.Key, 0, 10)}
}

// CursorPosition returns the pointer position
func (w *WindowInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// Focused reports window focus
func (w *WindowInput) Focused() bool {
	return ebiten.IsFocused()
}

// Clicked reports a left click
func (w *WindowInput) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Wheel returns the vertical wheel delta
func (w *WindowInput) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

// KeyJustPressed reports whether key went down this update
func (w *WindowInput) KeyJustPressed(key ebiten.Key) bool {
	for _, k := range w.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Update collects the keys pressed this update
func (w *WindowInput) Update() {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
}

// pointerInside reports whether the pointer counts as over the window. An
// unfocused window or a cursor beyond the edges is treated as leaving.
func pointerInside(x, y, width, height int, focused bool) bool {
	return focused && x >= 0 && y >= 0 && x < width && y < height
}

// digitKeys maps 1..9 to filter indices 0..8
var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}
