package render

import rl "github.com/gen2brain/raylib-go/raylib"

// Mouse reports left-button presses as pointer-down events.
type Mouse struct {
	// Blocked, when set and true, swallows presses (e.g. while the terminal has focus).
	Blocked func() bool
}

// PointerDown returns the cursor position when the left button was pressed this frame.
func (m Mouse) PointerDown() (x, y float32, ok bool) {
	if m.Blocked != nil && m.Blocked() {
		return 0, 0, false
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return 0, 0, false
	}
	p := rl.GetMousePosition()
	return p.X, p.Y, true
}
