package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"bounce-demo/internal/scenegraph"
)

// Pick casts a ray from screen position (x, y) and returns the closest mesh whose front
// faces it crosses. Meshes not yet uploaded cannot be hit.
func (r *Renderer) Pick(x, y float32) (*scenegraph.Mesh, bool) {
	ray := rl.GetScreenToWorldRay(rl.NewVector2(x, y), r.camera.Camera3D())
	dir := mgl32.Vec3{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	var best *scenegraph.Mesh
	bestDist := float32(math32.MaxFloat32)
	for _, m := range r.graph.Meshes() {
		g, ok := r.gpu[m]
		if !ok {
			continue
		}
		model := g.modelMatrix(m)
		g.triangles(func(a, b, c mgl32.Vec3) {
			p0 := mgl32.TransformCoordinate(a, model)
			p1 := mgl32.TransformCoordinate(b, model)
			p2 := mgl32.TransformCoordinate(c, model)
			if !scenegraph.FrontFacing(p0, p1, p2, dir) {
				return
			}
			hit := rl.GetRayCollisionTriangle(ray, toVector3(p0), toVector3(p1), toVector3(p2))
			if hit.Hit && hit.Distance < bestDist {
				bestDist = hit.Distance
				best = m
			}
		})
	}
	return best, best != nil
}
