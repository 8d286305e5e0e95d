package scenegraph

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Node is a transform in the scene: local position, rotation, and scale, plus an optional parent.
// World transforms compose parent first (world = parent.World * local), so a child follows
// whatever its parent does. A nil parent means the node lives directly in world space.
type Node struct {
	name     string
	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3
	parent   *Node
	children []*Node
}

// NewNode returns an identity transform with the given name.
func NewNode(name string) *Node {
	return &Node{
		name:     name,
		rotation: mgl32.QuatIdent(),
		scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (n *Node) Name() string { return n.name }

func (n *Node) Position() mgl32.Vec3 { return n.position }

func (n *Node) SetPosition(p mgl32.Vec3) { n.position = p }

func (n *Node) Rotation() mgl32.Quat { return n.rotation }

func (n *Node) SetRotation(q mgl32.Quat) { n.rotation = q }

// Parent returns the parent node or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the direct children.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// SetParent moves n under p (nil detaches). Setting the current parent again does nothing.
// A parent that is n itself or one of its descendants is rejected and returns false.
func (n *Node) SetParent(p *Node) bool {
	if n.parent == p {
		return true
	}
	for a := p; a != nil; a = a.parent {
		if a == n {
			return false
		}
	}
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	n.parent = p
	if p != nil {
		p.children = append(p.children, n)
	}
	return true
}

func (n *Node) removeChild(c *Node) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Local returns T * R * S for this node alone.
func (n *Node) Local() mgl32.Mat4 {
	t := mgl32.Translate3D(n.position.X(), n.position.Y(), n.position.Z())
	r := n.rotation.Normalize().Mat4()
	s := mgl32.Scale3D(n.scale.X(), n.scale.Y(), n.scale.Z())
	return t.Mul4(r).Mul4(s)
}

// World returns the node's transform in world space.
func (n *Node) World() mgl32.Mat4 {
	if n.parent == nil {
		return n.Local()
	}
	return n.parent.World().Mul4(n.Local())
}

// WorldPosition is the world-space origin of the node.
func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.World().Col(3).Vec3()
}
