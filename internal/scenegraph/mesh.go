package scenegraph

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Shape selects which primitive builder the renderer uses for a mesh.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeCylinder
	ShapeIcoSphere
)

// Geometry describes how to tessellate a mesh. Only the fields relevant to Shape are used:
// box uses Width/Height/Depth; cylinder uses Diameter/Height; icosphere uses Diameter/Subdivisions.
type Geometry struct {
	Shape        Shape
	Width        float32
	Height       float32
	Depth        float32
	Diameter     float32
	Subdivisions int
}

// Mesh is a renderable handle: a Node plus the geometry it was built from. Geometry is fixed at
// construction; changing dimensions means building a new mesh and removing the old one.
type Mesh struct {
	*Node
	geometry Geometry
}

// Geometry returns the parameters the mesh was built with.
func (m *Mesh) Geometry() Geometry { return m.geometry }

// NewBox builds a box mesh handle centered on its origin.
func NewBox(name string, width, height, depth float32) *Mesh {
	return &Mesh{Node: NewNode(name), geometry: Geometry{Shape: ShapeBox, Width: width, Height: height, Depth: depth}}
}

// NewCylinder builds a cylinder mesh handle (same diameter top and bottom) centered on its origin.
func NewCylinder(name string, diameter, height float32) *Mesh {
	return &Mesh{Node: NewNode(name), geometry: Geometry{Shape: ShapeCylinder, Diameter: diameter, Height: height}}
}

// NewIcoSphere builds a sphere mesh handle centered on its origin.
func NewIcoSphere(name string, diameter float32, subdivisions int) *Mesh {
	return &Mesh{Node: NewNode(name), geometry: Geometry{Shape: ShapeIcoSphere, Diameter: diameter, Subdivisions: subdivisions}}
}

// FromEuler returns the rotation for Euler angles in radians, applied yaw (Y), pitch (X),
// roll (Z).
func FromEuler(x, y, z float32) mgl32.Quat {
	return mgl32.AnglesToQuat(y, x, z, mgl32.YXZ)
}

// HalfTurnY is a rotation of pi around the Y axis.
func HalfTurnY() mgl32.Quat {
	return FromEuler(0, math32.Pi, 0)
}
