package scenegraph

import "github.com/go-gl/mathgl/mgl32"

// FrontFacing is the accept predicate used when picking. Triangles wind counter-clockwise
// when seen from outside, so the outward normal is (p1-p0) x (p2-p0); a ray only hits the
// triangle when it travels against that normal. Back faces are skipped so a click never
// selects the far side of a mesh.
func FrontFacing(p0, p1, p2, dir mgl32.Vec3) bool {
	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	return dir.Dot(normal) < 0
}
