package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bounce-demo/internal/entity"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Box", cfg.Selection)
	assert.Equal(t, []entity.Params{
		entity.BoxParams{Width: 1, Height: 1, Depth: 1},
		entity.CylinderParams{Diameter: 1, Height: 2},
		entity.IcoSphereParams{Diameter: 1, Subdivisions: 15},
	}, cfg.Params())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	yml := `
selection: Cylinder
entities:
  cylinder:
    diameter: 3
    height: 4
bounce:
  amplitude: 5
  duration_ms: 1000
  repeat: 2
  easing: linear
ui:
  css: assets/panel.css
  font: assets/Inter.ttf
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Cylinder", cfg.Selection)
	assert.Equal(t, entity.CylinderParams{Diameter: 3, Height: 4}, cfg.Entities.Cylinder)
	assert.Equal(t, entity.BoxParams{Width: 1, Height: 1, Depth: 1}, cfg.Entities.Box)
	assert.Equal(t, Bounce{Amplitude: 5, DurationMs: 1000, Repeat: 2, Easing: "linear"}, cfg.Bounce)
	assert.Equal(t, Default().Window, cfg.Window)
	assert.Equal(t, UI{CSS: "assets/panel.css", Font: "assets/Inter.ttf"}, cfg.UI)
	assert.Equal(t, UI{}, Default().UI)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad-yaml.yaml":   "window: [",
		"zero-box.yaml":   "entities:\n  box:\n    width: 0\n    height: 1\n    depth: 1\n",
		"bad-sel.yaml":    "selection: Torus\n",
		"bad-level.yaml":  "log:\n  path: x.log\n  level: loud\n",
		"inf-box.yaml":    "entities:\n  box:\n    width: .inf\n    height: 1\n    depth: 1\n",
		"nan-bounce.yaml": "bounce:\n  duration_ms: .nan\n",
		"inf-light.yaml":  "light:\n  direction: [0, .inf, 1]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			cfg, err := Load(path)
			assert.Error(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "demo.yaml")
	cfg := Default()
	cfg.View.ShowFPS = true
	cfg.View.ShowGrid = false
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	cfg.Window.Width = 0
	assert.Error(t, Save(path, cfg))
}
