package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNoCanvas is returned when raylib could not open a window (no display or GL context).
// It is fatal: nothing else can run without a surface to draw on.
var ErrNoCanvas = errors.New("no canvas found")

// Options configures the window.
type Options struct {
	Title     string
	Width     int32
	Height    int32
	TargetFPS int32
	// Setup runs once the window and GL context exist, before the first frame.
	Setup func()
	// Shutdown runs after the last frame while the GL context is still alive.
	Shutdown func()
}

// Run opens a resizable window and drives the main loop until the window is closed. Each frame
// it calls update (input), then clears the screen and calls draw between BeginDrawing and
// EndDrawing. ESC is left to the terminal overlay; close the window to quit.
func Run(opts Options, update func(), draw func()) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	if !rl.IsWindowReady() {
		return ErrNoCanvas
	}
	defer rl.CloseWindow()
	if opts.Shutdown != nil {
		defer opts.Shutdown()
	}

	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}
	if opts.Setup != nil {
		opts.Setup()
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(51, 51, 76, 255))
		draw()
		rl.EndDrawing()
	}
	return nil
}

// FrameTimeMs is the duration of the last frame in milliseconds.
func FrameTimeMs() float32 {
	return rl.GetFrameTime() * 1000
}
