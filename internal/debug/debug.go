package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	margin     = 12
	lineHeight = fontSize + 4
	// refreshEvery limits how often the overlay text is reformatted.
	refreshEvery = 30
)

// Overlay draws FPS, heap usage and a status line in the top-right corner. Each line is off
// until enabled.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Status, when set, supplies an extra line (e.g. the current selection).
	Status func() string

	font     rl.Font
	frame    uint32
	fpsText  string
	memText  string
	memStats runtime.MemStats
}

// New returns an overlay with every line hidden.
func New() *Overlay {
	return &Overlay{}
}

// SetShowFPS toggles the FPS line.
func (o *Overlay) SetShowFPS(show bool) { o.ShowFPS = show }

// SetShowMemAlloc toggles the heap allocation line.
func (o *Overlay) SetShowMemAlloc(show bool) { o.ShowMemAlloc = show }

// SetFont sets the overlay font. A zero texture ID selects raylib's default font.
func (o *Overlay) SetFont(font rl.Font) { o.font = font }

// Draw renders the enabled lines. Call last in the draw callback so it sits on top.
func (o *Overlay) Draw() {
	o.frame++
	refresh := o.frame%refreshEvery == 0

	y := int32(margin)
	if o.ShowFPS {
		if refresh || o.fpsText == "" {
			o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		o.line(o.fpsText, y, rl.Green)
		y += lineHeight
	}
	if o.ShowMemAlloc {
		if refresh || o.memText == "" {
			runtime.ReadMemStats(&o.memStats)
			o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
		}
		o.line(o.memText, y, rl.Green)
		y += lineHeight
	}
	if o.Status != nil {
		if s := o.Status(); s != "" {
			o.line(s, y, rl.RayWhite)
		}
	}
}

// line draws right-aligned text at height y.
func (o *Overlay) line(text string, y int32, c rl.Color) {
	screenW := float32(rl.GetScreenWidth())
	if o.font.Texture.ID != 0 {
		w := rl.MeasureTextEx(o.font, text, fontSize, 1).X
		rl.DrawTextEx(o.font, text, rl.NewVector2(screenW-w-margin, float32(y)), fontSize, 1, c)
		return
	}
	w := float32(rl.MeasureText(text, fontSize))
	rl.DrawText(text, int32(screenW-w-margin), y, fontSize, c)
}
