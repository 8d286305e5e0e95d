package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bounce-demo/internal/entity"
	"bounce-demo/internal/scenegraph"
	"bounce-demo/internal/store"
)

func TestRefreshFollowsGuiDirty(t *testing.T) {
	s, err := store.New(scenegraph.NewGraph())
	require.NoError(t, err)
	p := New()

	changed, err := p.Refresh(s)
	require.NoError(t, err)
	assert.True(t, changed, "first refresh always builds")
	assert.Equal(t, []string{
		"Name: Box",
		"Width: 1.00",
		"Height: 1.00",
		"Depth: 1.00",
		"Edit: cmd box --width W --height H --depth D",
	}, p.Lines())

	changed, err = p.Refresh(s)
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, s.SetSelection(entity.IcoSphere))
	changed, err = p.Refresh(s)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, s.GuiDirty(), "the panel consumes the flag")
	assert.Equal(t, Row{Label: "Subdivisions", Value: "15"}, p.Rows()[2])
	assert.Equal(t, 2, p.Refreshes())
}

func TestRefreshShowsEdits(t *testing.T) {
	s, err := store.New(scenegraph.NewGraph(), store.WithSelection(entity.Cylinder))
	require.NoError(t, err)
	p := New()
	_, err = p.Refresh(s)
	require.NoError(t, err)

	require.NoError(t, s.SetEntityParameters(entity.CylinderParams{Diameter: 2.5, Height: 3}))
	s.MarkGuiDirty()
	_, err = p.Refresh(s)
	require.NoError(t, err)
	assert.Equal(t, Row{Label: "Diameter", Value: "2.50"}, p.Rows()[1])
}

func TestRefreshWithoutSelection(t *testing.T) {
	s, err := store.New(scenegraph.NewGraph(), store.WithoutSelection())
	require.NoError(t, err)
	p := New()
	_, err = p.Refresh(s)
	require.NoError(t, err)
	assert.Equal(t, "Name: none", p.Lines()[0])
	assert.Equal(t, "Selection", p.Title())
}
