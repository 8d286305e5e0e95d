package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	orbitSpeed = 0.01
	zoomSpeed  = 0.5
	minRadius  = 1
	maxRadius  = 50
	betaMargin = 0.01
)

// Orbit is a camera circling a target. Alpha is the azimuth around Y, Beta the angle from +Y,
// Radius the distance. Right mouse drag rotates, the wheel zooms; the left button stays free
// for picking.
type Orbit struct {
	Alpha  float32
	Beta   float32
	Radius float32
	Target rl.Vector3
	Fovy   float32
}

// NewOrbit returns an orbit camera looking at the origin with a 45 degree field of view.
func NewOrbit(alpha, beta, radius float32) *Orbit {
	return &Orbit{Alpha: alpha, Beta: beta, Radius: radius, Fovy: 45}
}

// Position is the eye position derived from the orbit angles.
func (o *Orbit) Position() rl.Vector3 {
	sinB := math32.Sin(o.Beta)
	return rl.NewVector3(
		o.Target.X+o.Radius*math32.Cos(o.Alpha)*sinB,
		o.Target.Y+o.Radius*math32.Cos(o.Beta),
		o.Target.Z+o.Radius*math32.Sin(o.Alpha)*sinB,
	)
}

// Camera3D builds the raylib camera for this frame.
func (o *Orbit) Camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   o.Position(),
		Target:     o.Target,
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       o.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// Update applies mouse orbit and zoom. Call once per frame before drawing.
func (o *Orbit) Update() {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		o.Alpha += d.X * orbitSpeed
		o.Beta -= d.Y * orbitSpeed
		o.Beta = clamp(o.Beta, betaMargin, math32.Pi-betaMargin)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		o.Radius = clamp(o.Radius-wheel*zoomSpeed, minRadius, maxRadius)
	}
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
