package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bounce-demo/internal/entity"
)

// DefaultPath is the config file location, relative to the process working directory.
const DefaultPath = "config/demo.yaml"

// Window controls the raylib window.
type Window struct {
	Title     string `yaml:"title" validate:"required"`
	Width     int32  `yaml:"width" validate:"gt=0"`
	Height    int32  `yaml:"height" validate:"gt=0"`
	TargetFPS int32  `yaml:"target_fps" validate:"gte=0"`
}

// Camera is an orbit camera around the origin: alpha is the azimuth, beta the polar angle
// (radians), radius the distance.
type Camera struct {
	Alpha  float32 `yaml:"alpha" validate:"finite"`
	Beta   float32 `yaml:"beta" validate:"finite,gt=0,lt=3.1416"`
	Radius float32 `yaml:"radius" validate:"finite,gt=0"`
}

// Light is the direction towards the light; it is normalized by the renderer.
type Light struct {
	Direction [3]float32 `yaml:"direction" validate:"dive,finite"`
}

// Entities are the startup shape parameters.
type Entities struct {
	Box       entity.BoxParams       `yaml:"box"`
	Cylinder  entity.CylinderParams  `yaml:"cylinder"`
	IcoSphere entity.IcoSphereParams `yaml:"icosphere"`
}

// Bounce is the startup bounce animation.
type Bounce struct {
	Amplitude  float32 `yaml:"amplitude" validate:"finite"`
	DurationMs float32 `yaml:"duration_ms" validate:"finite,gt=0"`
	Repeat     int     `yaml:"repeat" validate:"gte=0"`
	Easing     string  `yaml:"easing"`
}

// View holds the overlay preferences saved by "cmd save".
type View struct {
	ShowGrid     bool `yaml:"show_grid"`
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowPanel    bool `yaml:"show_panel"`
}

// UI points the overlays at an optional stylesheet and font file. Empty keeps the built-in
// stylesheet and raylib's default font.
type UI struct {
	CSS  string `yaml:"css"`
	Font string `yaml:"font"`
}

// Log configures the log file and its rotation.
type Log struct {
	Path       string `yaml:"path" validate:"required"`
	Level      string `yaml:"level" validate:"oneof=debug info warn error"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	Console    bool   `yaml:"console"`
}

// Config is the whole demo configuration.
type Config struct {
	Window    Window   `yaml:"window"`
	Camera    Camera   `yaml:"camera"`
	Light     Light    `yaml:"light"`
	Entities  Entities `yaml:"entities"`
	Selection string   `yaml:"selection"`
	Bounce    Bounce   `yaml:"bounce"`
	View      View     `yaml:"view"`
	UI        UI       `yaml:"ui"`
	Log       Log      `yaml:"log"`
}

// Default returns the built-in configuration: a 1520x640 window, the camera at
// alpha pi/2, beta pi/2.5, radius 4, Box selected and a 10 unit, 2s bounce repeated 100 times.
func Default() Config {
	return Config{
		Window: Window{Title: "bounce demo", Width: 1520, Height: 640, TargetFPS: 60},
		Camera: Camera{Alpha: 1.5707964, Beta: 1.2566371, Radius: 4},
		Light:  Light{Direction: [3]float32{0.5, 1, 0.8}},
		Entities: Entities{
			Box:       entity.BoxParams{Width: 1, Height: 1, Depth: 1},
			Cylinder:  entity.CylinderParams{Diameter: 1, Height: 2},
			IcoSphere: entity.IcoSphereParams{Diameter: 1, Subdivisions: 15},
		},
		Selection: entity.Box.String(),
		Bounce:    Bounce{Amplitude: 10, DurationMs: 2000, Repeat: 100, Easing: "out-bounce"},
		View:      View{ShowGrid: true, ShowPanel: true},
		Log:       Log{Path: "logs/demo.log", Level: "info", MaxSizeMB: 10, MaxBackups: 3},
	}
}

var validate = entity.NewValidator()

// Validate checks field ranges and that the selection names a known entity (or is empty).
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Selection != "" {
		if _, err := entity.ParseKind(c.Selection); err != nil {
			return fmt.Errorf("config: selection: %w", err)
		}
	}
	return nil
}

// Params returns the configured entity parameters in rebuild order.
func (c Config) Params() []entity.Params {
	return []entity.Params{c.Entities.Box, c.Entities.Cylinder, c.Entities.IcoSphere}
}

// Load reads the YAML config at path on top of Default(). A missing file is not an error.
// A file that cannot be parsed or fails validation yields Default() together with the error,
// so the caller can warn and keep running.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
