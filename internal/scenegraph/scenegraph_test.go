package scenegraph

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, tol), "want %v, got %v", want, got)
}

func TestNodeParenting(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")

	assert.True(t, a.SetParent(root))
	assert.Equal(t, root, a.Parent())
	assert.Equal(t, []*Node{a}, root.Children())

	// setting the same parent twice keeps a single child entry
	assert.True(t, a.SetParent(root))
	assert.Len(t, root.Children(), 1)

	assert.True(t, b.SetParent(root))
	assert.True(t, a.SetParent(nil))
	assert.Nil(t, a.Parent())
	assert.Equal(t, []*Node{b}, root.Children())
}

func TestNodeRejectsCycles(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	assert.True(t, b.SetParent(a))
	assert.False(t, a.SetParent(b))
	assert.False(t, a.SetParent(a))
	assert.Nil(t, a.Parent())
}

func TestWorldFollowsParent(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	child.SetPosition(mgl32.Vec3{2, 0, 0})
	child.SetParent(root)

	root.SetPosition(mgl32.Vec3{0, 10, 0})
	assertVec(t, mgl32.Vec3{2, 10, 0}, child.WorldPosition())

	child.SetParent(nil)
	assertVec(t, mgl32.Vec3{2, 0, 0}, child.WorldPosition())
}

func TestHalfTurnY(t *testing.T) {
	q := HalfTurnY()
	assertVec(t, mgl32.Vec3{-1, 0, 0}, q.Rotate(mgl32.Vec3{1, 0, 0}))
	assertVec(t, mgl32.Vec3{0, 1, 0}, q.Rotate(mgl32.Vec3{0, 1, 0}))
}

func TestGraphAddRemove(t *testing.T) {
	g := NewGraph()
	root := NewNode("root")
	box := NewBox("Box", 1, 2, 3)
	box.SetParent(root)

	g.Add(box)
	g.Add(box)
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Contains(box))
	assert.Equal(t, []*Mesh{box}, g.Named("Box"))

	assert.True(t, g.Remove(box))
	assert.Nil(t, box.Parent())
	assert.Empty(t, root.Children())
	assert.False(t, g.Remove(box))
	assert.False(t, g.Remove(NewBox("never", 1, 1, 1)))
	assert.Equal(t, 0, g.Len())
}

func TestMeshGeometry(t *testing.T) {
	assert.Equal(t, Geometry{Shape: ShapeBox, Width: 1, Height: 2, Depth: 3}, NewBox("Box", 1, 2, 3).Geometry())
	assert.Equal(t, Geometry{Shape: ShapeCylinder, Diameter: 1, Height: 2}, NewCylinder("Cylinder", 1, 2).Geometry())
	assert.Equal(t, Geometry{Shape: ShapeIcoSphere, Diameter: 1, Subdivisions: 15}, NewIcoSphere("IcoSphere", 1, 15).Geometry())
}

func TestFrontFacing(t *testing.T) {
	// counter-clockwise seen from +Z, so the outward normal is +Z
	p0 := mgl32.Vec3{0, 0, 0}
	p1 := mgl32.Vec3{1, 0, 0}
	p2 := mgl32.Vec3{0, 1, 0}
	assert.True(t, FrontFacing(p0, p1, p2, mgl32.Vec3{0, 0, -1}))
	assert.False(t, FrontFacing(p0, p1, p2, mgl32.Vec3{0, 0, 1}))
	assert.False(t, FrontFacing(p0, p1, p2, mgl32.Vec3{1, 0, 0}), "grazing rays never hit")
	// reversing the winding flips the facing
	assert.True(t, FrontFacing(p0, p2, p1, mgl32.Vec3{0, 0, 1}))
}
