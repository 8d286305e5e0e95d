package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"bounce-demo/internal/config"
	"bounce-demo/internal/scenegraph"
)

const (
	gridExtent     = 10
	gridMajorStep  = 5
	gridMinorAlpha = 60
	gridMajorAlpha = 120
	axisLineAlpha  = 200
)

var (
	shapeColors = map[scenegraph.Shape]rl.Color{
		scenegraph.ShapeBox:       rl.NewColor(200, 200, 210, 255),
		scenegraph.ShapeCylinder:  rl.NewColor(120, 170, 230, 255),
		scenegraph.ShapeIcoSphere: rl.NewColor(230, 160, 110, 255),
	}
	selectedColor = rl.NewColor(255, 214, 64, 255)
)

// Renderer draws the meshes of a scene graph with an orbit camera. GPU meshes are created
// lazily and kept in step with the graph, so rebuilt entities are re-uploaded and removed
// ones are released.
type Renderer struct {
	graph    *scenegraph.Graph
	camera   *Orbit
	lightDir rl.Vector3
	material lit
	gpu      map[*scenegraph.Mesh]gpuMesh
	showGrid bool
	selected func() *scenegraph.Mesh
	log      *zap.SugaredLogger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSelected highlights the mesh returned by fn.
func WithSelected(fn func() *scenegraph.Mesh) Option {
	return func(r *Renderer) { r.selected = fn }
}

// WithLogger routes renderer diagnostics to log.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Renderer) { r.log = log }
}

// New creates a renderer for graph using the camera and light from cfg.
func New(graph *scenegraph.Graph, cfg config.Config, opts ...Option) *Renderer {
	d := mgl32.Vec3{cfg.Light.Direction[0], cfg.Light.Direction[1], cfg.Light.Direction[2]}
	if d.Len() > 0 {
		d = d.Normalize()
	}
	r := &Renderer{
		graph:    graph,
		camera:   NewOrbit(cfg.Camera.Alpha, cfg.Camera.Beta, cfg.Camera.Radius),
		lightDir: toVector3(d),
		gpu:      make(map[*scenegraph.Mesh]gpuMesh),
		showGrid: cfg.View.ShowGrid,
		log:      zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// SetGridVisible toggles the editor grid.
func (r *Renderer) SetGridVisible(v bool) { r.showGrid = v }

// GridVisible reports whether the editor grid is drawn.
func (r *Renderer) GridVisible() bool { return r.showGrid }

// Update moves the camera from mouse input.
func (r *Renderer) Update() { r.camera.Update() }

// Render draws the scene. It must be called between BeginDrawing and EndDrawing.
func (r *Renderer) Render() {
	r.material.load()
	meshes := r.sync()

	cam := r.camera.Camera3D()
	r.material.setView(cam.Position, r.lightDir)

	var selected *scenegraph.Mesh
	if r.selected != nil {
		selected = r.selected()
	}

	rl.BeginMode3D(cam)
	if r.showGrid {
		drawGrid()
	}
	for _, m := range meshes {
		g := r.gpu[m]
		c, ok := shapeColors[m.Geometry().Shape]
		if !ok {
			c = rl.White
		}
		if m == selected {
			c = selectedColor
		}
		r.material.setColor(c)
		rl.DrawMesh(g.mesh, r.material.mtl, toMatrix(g.modelMatrix(m)))
	}
	rl.EndMode3D()
}

// sync uploads meshes new to the graph and unloads those that left it.
func (r *Renderer) sync() []*scenegraph.Mesh {
	meshes := r.graph.Meshes()
	live := make(map[*scenegraph.Mesh]struct{}, len(meshes))
	for _, m := range meshes {
		live[m] = struct{}{}
		if _, ok := r.gpu[m]; !ok {
			r.gpu[m] = upload(m.Geometry())
			r.log.Debugw("mesh uploaded", "name", m.Name())
		}
	}
	for m, g := range r.gpu {
		if _, ok := live[m]; ok {
			continue
		}
		rl.UnloadMesh(&g.mesh)
		delete(r.gpu, m)
		r.log.Debugw("mesh released", "name", m.Name())
	}
	return meshes
}

// Close releases every GPU resource owned by the renderer.
func (r *Renderer) Close() {
	for m, g := range r.gpu {
		rl.UnloadMesh(&g.mesh)
		delete(r.gpu, m)
	}
	r.material.unload()
}

// drawGrid draws the XZ grid with colored axis lines through the origin.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	for i := -gridExtent; i <= gridExtent; i++ {
		c := minor
		if i%gridMajorStep == 0 {
			c = major
		}
		f := float32(i)
		rl.DrawLine3D(rl.NewVector3(f, 0, -gridExtent), rl.NewVector3(f, 0, gridExtent), c)
		rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, f), rl.NewVector3(gridExtent, 0, f), c)
	}
	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), rl.NewColor(220, 80, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), rl.NewColor(80, 220, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), rl.NewColor(80, 80, 220, axisLineAlpha))
}
