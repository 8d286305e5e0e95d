package selection

import (
	"go.uber.org/zap"

	"bounce-demo/internal/entity"
	"bounce-demo/internal/scenegraph"
)

// Picker finds the nearest mesh under a screen position. Tie-breaking and occlusion are up to
// the implementation; ok is false on a miss.
type Picker interface {
	Pick(x, y float32) (mesh *scenegraph.Mesh, ok bool)
}

// Store is the part of the scene store the controller mutates.
type Store interface {
	KindOf(m *scenegraph.Mesh) (entity.Kind, bool)
	Selection() (entity.Kind, bool)
	SetSelection(kind entity.Kind) error
}

// Pointer reports a pointer-down event for this frame.
type Pointer interface {
	PointerDown() (x, y float32, ok bool)
}

// Controller turns pointer-down events into selection changes.
type Controller struct {
	picker Picker
	store  Store
	log    *zap.SugaredLogger
}

// New returns a controller that picks with picker and selects in store. log may be nil.
func New(picker Picker, store Store, log *zap.SugaredLogger) *Controller {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Controller{picker: picker, store: store, log: log}
}

// PointerDown handles a click at (x, y). A miss, a mesh the store does not own (e.g. one that
// was just replaced), and a click on the current selection leave the selection unchanged.
// Returns the selected kind and whether the selection changed.
func (c *Controller) PointerDown(x, y float32) (entity.Kind, bool, error) {
	m, ok := c.picker.Pick(x, y)
	if !ok || m == nil {
		return 0, false, nil
	}
	c.log.Infow("picked", "mesh", m.Name())
	kind, ok := c.store.KindOf(m)
	if !ok {
		return 0, false, nil
	}
	if cur, ok := c.store.Selection(); ok && cur == kind {
		return kind, false, nil
	}
	if err := c.store.SetSelection(kind); err != nil {
		return 0, false, err
	}
	return kind, true, nil
}

// Update polls p once per frame and forwards a pointer-down, if any.
func (c *Controller) Update(p Pointer) error {
	x, y, ok := p.PointerDown()
	if !ok {
		return nil
	}
	_, _, err := c.PointerDown(x, y)
	return err
}
