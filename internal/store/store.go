package store

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"bounce-demo/internal/entity"
	"bounce-demo/internal/scenegraph"
	"bounce-demo/internal/tween"
)

// SharedTransformName is the name of the node the selected mesh is parented under.
const SharedTransformName = "root"

// Bounce holds the parameters of the bounce animation.
type Bounce struct {
	Amplitude  float32
	DurationMs float32
	Repeat     int
	Easing     string
}

// DefaultBounce is amplitude 10, 2000ms, 100 repeats, out-bounce easing.
func DefaultBounce() Bounce {
	return Bounce{Amplitude: 10, DurationMs: 2000, Repeat: 100, Easing: tween.DefaultEasing}
}

type slot struct {
	params entity.Params
	mesh   *scenegraph.Mesh
}

// Store is the scene state: entity parameters, their materialized meshes, the current
// selection, the shared transform, dirty flags, and the bounce tween.
// It is not safe for concurrent use; every call happens on the render thread.
type Store struct {
	log    *zap.SugaredLogger
	graph  *scenegraph.Graph
	shared *scenegraph.Node
	slots  map[entity.Kind]*slot
	owners map[*scenegraph.Mesh]entity.Kind

	selected    entity.Kind
	hasSelected bool

	sceneDirty bool
	guiDirty   bool

	bounce Bounce
	anim   *tween.Vec3
}

// Option configures a Store at construction.
type Option func(*Store)

// WithLogger sets the logger used for rebuild and selection events.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithParams replaces the default parameters of the given kinds. Invalid parameter sets are
// reported by New.
func WithParams(params ...entity.Params) Option {
	return func(s *Store) {
		for _, p := range params {
			if p == nil {
				continue
			}
			if sl, ok := s.slots[p.Kind()]; ok {
				sl.params = p
			}
		}
	}
}

// WithSelection sets the initial selection (Box unless configured otherwise).
func WithSelection(kind entity.Kind) Option {
	return func(s *Store) {
		s.selected = kind
		s.hasSelected = true
	}
}

// WithoutSelection starts with nothing selected.
func WithoutSelection() Option {
	return func(s *Store) {
		s.selected = 0
		s.hasSelected = false
	}
}

// WithBounce sets the bounce settings used by Restart and reported by Bounce.
func WithBounce(b Bounce) Option {
	return func(s *Store) {
		s.bounce = b
	}
}

// New returns a store with default parameters for every kind, Box selected, no meshes, and
// clean flags. The graph receives the meshes the store builds.
func New(graph *scenegraph.Graph, opts ...Option) (*Store, error) {
	if graph == nil {
		graph = scenegraph.NewGraph()
	}
	s := &Store{
		log:         zap.NewNop().Sugar(),
		graph:       graph,
		shared:      scenegraph.NewNode(SharedTransformName),
		slots:       make(map[entity.Kind]*slot),
		owners:      make(map[*scenegraph.Mesh]entity.Kind),
		selected:    entity.Box,
		hasSelected: true,
		bounce:      DefaultBounce(),
	}
	for _, k := range entity.Kinds() {
		p, err := entity.DefaultParams(k)
		if err != nil {
			return nil, err
		}
		s.slots[k] = &slot{params: p}
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, k := range entity.Kinds() {
		if err := entity.Validate(s.slots[k].params); err != nil {
			return nil, err
		}
	}
	if s.hasSelected && !s.selected.Valid() {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidEntityKind, s.selected)
	}
	if _, err := tween.Easing(s.bounce.Easing); err != nil {
		return nil, err
	}
	return s, nil
}

// Graph returns the live mesh set.
func (s *Store) Graph() *scenegraph.Graph { return s.graph }

// SharedTransform returns the node the selected mesh is parented under.
func (s *Store) SharedTransform() *scenegraph.Node { return s.shared }

// Params returns the stored parameters for kind.
func (s *Store) Params(kind entity.Kind) (entity.Params, error) {
	sl, ok := s.slots[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidEntityKind, kind)
	}
	return sl.params, nil
}

// Mesh returns the materialized mesh for kind, or nil before the first rebuild.
func (s *Store) Mesh(kind entity.Kind) *scenegraph.Mesh {
	if sl, ok := s.slots[kind]; ok {
		return sl.mesh
	}
	return nil
}

// KindOf maps a live mesh back to the entity that owns it. Meshes that were replaced by a
// rebuild, or that the store never built, report false.
func (s *Store) KindOf(m *scenegraph.Mesh) (entity.Kind, bool) {
	k, ok := s.owners[m]
	return k, ok
}

// Selection returns the selected kind; ok is false when nothing is selected.
func (s *Store) Selection() (kind entity.Kind, ok bool) {
	return s.selected, s.hasSelected
}

// SetEntityParameters replaces the parameters of p.Kind() and marks the scene dirty.
// Geometry is rebuilt on the next render loop tick, so rapid edits collapse into one rebuild.
func (s *Store) SetEntityParameters(p entity.Params) error {
	if err := entity.Validate(p); err != nil {
		return err
	}
	sl, ok := s.slots[p.Kind()]
	if !ok {
		return fmt.Errorf("%w: %v", entity.ErrInvalidEntityKind, p.Kind())
	}
	sl.params = p
	s.sceneDirty = true
	return nil
}

// RebuildEntity releases the current mesh of kind (if any) and builds a new one from the
// stored parameters. The new mesh is parented under the shared transform when kind is selected.
func (s *Store) RebuildEntity(kind entity.Kind) error {
	sl, ok := s.slots[kind]
	if !ok {
		return fmt.Errorf("rebuild: %w: %v", entity.ErrInvalidEntityKind, kind)
	}
	s.release(sl)

	m, err := build(kind, sl.params)
	if err != nil {
		return fmt.Errorf("rebuild %s: %w", kind, err)
	}
	sl.mesh = m
	s.owners[m] = kind
	s.graph.Add(m)
	if s.hasSelected && s.selected == kind {
		m.SetParent(s.shared)
	}
	s.log.Debugw("rebuilt entity", "kind", kind, "params", sl.params)
	return nil
}

func (s *Store) release(sl *slot) {
	if sl.mesh == nil {
		return
	}
	s.graph.Remove(sl.mesh)
	sl.mesh.SetParent(nil)
	delete(s.owners, sl.mesh)
	sl.mesh = nil
}

// build constructs the mesh for kind with the demo placement: the box is turned half way
// around Y, the cylinder sits at x=2 and the sphere at x=-2.
func build(kind entity.Kind, p entity.Params) (*scenegraph.Mesh, error) {
	switch kind {
	case entity.Box:
		bp, ok := p.(entity.BoxParams)
		if !ok {
			return nil, fmt.Errorf("%w: %T", entity.ErrInvalidParameters, p)
		}
		m := scenegraph.NewBox(kind.String(), bp.Width, bp.Height, bp.Depth)
		m.SetRotation(scenegraph.HalfTurnY())
		return m, nil
	case entity.Cylinder:
		cp, ok := p.(entity.CylinderParams)
		if !ok {
			return nil, fmt.Errorf("%w: %T", entity.ErrInvalidParameters, p)
		}
		m := scenegraph.NewCylinder(kind.String(), cp.Diameter, cp.Height)
		m.SetPosition(mgl32.Vec3{2, 0, 0})
		return m, nil
	case entity.IcoSphere:
		ip, ok := p.(entity.IcoSphereParams)
		if !ok {
			return nil, fmt.Errorf("%w: %T", entity.ErrInvalidParameters, p)
		}
		m := scenegraph.NewIcoSphere(kind.String(), ip.Diameter, ip.Subdivisions)
		m.SetPosition(mgl32.Vec3{-2, 0, 0})
		return m, nil
	}
	return nil, fmt.Errorf("%w: %v", entity.ErrInvalidEntityKind, kind)
}

// SetSelection makes kind the current selection. The previously selected mesh is detached from
// the shared transform and the new one attached (if it has been built). Selecting the current
// selection again changes nothing.
func (s *Store) SetSelection(kind entity.Kind) error {
	if _, ok := s.slots[kind]; !ok {
		return fmt.Errorf("select: %w: %v", entity.ErrInvalidEntityKind, kind)
	}
	if s.hasSelected && s.selected == kind {
		return nil
	}
	s.detachSelected()
	s.selected = kind
	s.hasSelected = true
	if m := s.slots[kind].mesh; m != nil {
		m.SetParent(s.shared)
	}
	s.guiDirty = true
	s.log.Infow("selection changed", "kind", kind)
	return nil
}

// ClearSelection detaches the selected mesh and leaves nothing selected.
func (s *Store) ClearSelection() {
	if !s.hasSelected {
		return
	}
	s.detachSelected()
	s.selected = 0
	s.hasSelected = false
	s.guiDirty = true
	s.log.Infow("selection cleared")
}

func (s *Store) detachSelected() {
	if !s.hasSelected {
		return
	}
	if sl, ok := s.slots[s.selected]; ok && sl.mesh != nil {
		sl.mesh.SetParent(nil)
	}
}
