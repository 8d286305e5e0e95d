package ui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LoadFont loads a TTF or OTF file for the overlays. Call it once the window exists.
func LoadFont(path string) (rl.Font, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Font{}, fmt.Errorf("ui: %w", err)
	}
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return rl.Font{}, fmt.Errorf("ui: %s: not a font", path)
	}
	return f, nil
}

// UnloadFont releases a font returned by LoadFont. The zero font is ignored.
func UnloadFont(f rl.Font) {
	if f.Texture.ID != 0 {
		rl.UnloadFont(f)
	}
}
