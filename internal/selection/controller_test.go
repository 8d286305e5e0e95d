package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bounce-demo/internal/entity"
	"bounce-demo/internal/scenegraph"
	"bounce-demo/internal/store"
)

// stubPicker returns whatever mesh it was told to hit.
type stubPicker struct {
	hit *scenegraph.Mesh
}

func (p *stubPicker) Pick(x, y float32) (*scenegraph.Mesh, bool) {
	return p.hit, p.hit != nil
}

type stubPointer struct {
	down bool
}

func (p stubPointer) PointerDown() (float32, float32, bool) { return 10, 20, p.down }

func setup(t *testing.T) (*store.Store, *stubPicker, *Controller) {
	t.Helper()
	s, err := store.New(scenegraph.NewGraph())
	require.NoError(t, err)
	for _, k := range entity.Kinds() {
		require.NoError(t, s.RebuildEntity(k))
	}
	s.ConsumeGuiDirty()
	p := &stubPicker{}
	return s, p, New(p, s, nil)
}

func TestPickCylinder(t *testing.T) {
	s, p, c := setup(t)
	p.hit = s.Mesh(entity.Cylinder)

	kind, changed, err := c.PointerDown(100, 100)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, entity.Cylinder, kind)

	sel, ok := s.Selection()
	assert.True(t, ok)
	assert.Equal(t, entity.Cylinder, sel)
	assert.Nil(t, s.Mesh(entity.Box).Parent())
	assert.Equal(t, s.SharedTransform(), s.Mesh(entity.Cylinder).Parent())
	assert.True(t, s.GuiDirty())
}

func TestMissIsIgnored(t *testing.T) {
	s, _, c := setup(t)
	_, changed, err := c.PointerDown(0, 0)
	require.NoError(t, err)
	assert.False(t, changed)
	sel, _ := s.Selection()
	assert.Equal(t, entity.Box, sel)
	assert.False(t, s.GuiDirty())
}

func TestStaleMeshIsIgnored(t *testing.T) {
	s, p, c := setup(t)
	stale := s.Mesh(entity.IcoSphere)
	require.NoError(t, s.RebuildEntity(entity.IcoSphere))
	p.hit = stale

	_, changed, err := c.PointerDown(1, 1)
	require.NoError(t, err)
	assert.False(t, changed)

	p.hit = scenegraph.NewBox("Box", 1, 1, 1)
	_, changed, err = c.PointerDown(1, 1)
	require.NoError(t, err)
	assert.False(t, changed, "a foreign mesh named Box is not the Box entity")
}

func TestReselectIsNoop(t *testing.T) {
	s, p, c := setup(t)
	p.hit = s.Mesh(entity.Box)
	kind, changed, err := c.PointerDown(1, 1)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, entity.Box, kind)
	assert.False(t, s.GuiDirty())
}

func TestFirstClickWithoutSelection(t *testing.T) {
	s, err := store.New(scenegraph.NewGraph(), store.WithoutSelection())
	require.NoError(t, err)
	for _, k := range entity.Kinds() {
		require.NoError(t, s.RebuildEntity(k))
	}
	p := &stubPicker{hit: s.Mesh(entity.IcoSphere)}
	c := New(p, s, nil)

	require.NoError(t, c.Update(stubPointer{down: true}))
	sel, ok := s.Selection()
	assert.True(t, ok)
	assert.Equal(t, entity.IcoSphere, sel)
	assert.Equal(t, s.SharedTransform(), s.Mesh(entity.IcoSphere).Parent())
}

func TestUpdateWithoutPointer(t *testing.T) {
	s, p, c := setup(t)
	p.hit = s.Mesh(entity.Cylinder)
	require.NoError(t, c.Update(stubPointer{down: false}))
	sel, _ := s.Selection()
	assert.Equal(t, entity.Box, sel)
}
