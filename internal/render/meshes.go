package render

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"bounce-demo/internal/scenegraph"
)

const (
	cylinderSlices = 24
	minSphereRings = 3
)

// gpuMesh is an uploaded raylib mesh plus the offset that centers it on its node.
type gpuMesh struct {
	mesh   rl.Mesh
	offset mgl32.Vec3
}

// upload generates the raylib mesh for a geometry. Cylinders are generated with their base
// at y=0 and are shifted down by half their height so the node sits at the center.
func upload(g scenegraph.Geometry) gpuMesh {
	switch g.Shape {
	case scenegraph.ShapeCylinder:
		return gpuMesh{
			mesh:   rl.GenMeshCylinder(g.Diameter/2, g.Height, cylinderSlices),
			offset: mgl32.Vec3{0, -g.Height / 2, 0},
		}
	case scenegraph.ShapeIcoSphere:
		rings, slices := sphereResolution(g.Subdivisions)
		return gpuMesh{mesh: rl.GenMeshSphere(g.Diameter/2, rings, slices)}
	default:
		return gpuMesh{mesh: rl.GenMeshCube(g.Width, g.Height, g.Depth)}
	}
}

// sphereResolution maps a subdivision count onto raylib's ring/slice sphere.
func sphereResolution(subdivisions int) (rings, slices int) {
	rings = max(subdivisions+1, minSphereRings)
	return rings, rings * 2
}

// modelMatrix is the world transform of a mesh including its centering offset.
func (g gpuMesh) modelMatrix(m *scenegraph.Mesh) mgl32.Mat4 {
	return m.World().Mul4(mgl32.Translate3D(g.offset.X(), g.offset.Y(), g.offset.Z()))
}

// triangles calls fn for every triangle of the mesh in model space, for indexed and
// non-indexed meshes alike.
func (g gpuMesh) triangles(fn func(a, b, c mgl32.Vec3)) {
	if g.mesh.Vertices == nil || g.mesh.VertexCount == 0 {
		return
	}
	verts := unsafe.Slice(g.mesh.Vertices, int(g.mesh.VertexCount)*3)
	vertex := func(i int) mgl32.Vec3 {
		return mgl32.Vec3{verts[i*3], verts[i*3+1], verts[i*3+2]}
	}
	if g.mesh.Indices != nil {
		idx := unsafe.Slice(g.mesh.Indices, int(g.mesh.TriangleCount)*3)
		for i := 0; i+2 < len(idx); i += 3 {
			fn(vertex(int(idx[i])), vertex(int(idx[i+1])), vertex(int(idx[i+2])))
		}
		return
	}
	for i := 0; i+2 < int(g.mesh.VertexCount); i += 3 {
		fn(vertex(i), vertex(i+1), vertex(i+2))
	}
}

// toMatrix converts a column-major mgl32 matrix to raylib's field layout.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}
