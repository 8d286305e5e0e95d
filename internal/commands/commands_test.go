package commands

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bounce-demo/internal/entity"
	"bounce-demo/internal/scenegraph"
	"bounce-demo/internal/store"
)

func TestParse(t *testing.T) {
	args, ok := Parse("cmd box --width 2")
	assert.True(t, ok)
	assert.Equal(t, []string{"box", "--width", "2"}, args)

	args, ok = Parse("cmd   ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("hello there")
	assert.False(t, ok)
	_, ok = Parse("CMD box")
	assert.False(t, ok)
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	r.Register("noop", "", func(fs *flag.FlagSet) func() error {
		return func() error { return nil }
	})
	assert.Error(t, r.Execute(nil))
	assert.EqualError(t, r.Execute([]string{"fly"}), "unknown command: fly")
	assert.Error(t, r.Execute([]string{"noop", "--bogus"}))
	assert.NoError(t, r.Execute([]string{"noop"}))
	assert.Equal(t, []string{"noop"}, r.Names())
}

func newScene(t *testing.T) (*store.Store, *Registry) {
	t.Helper()
	s, err := store.New(scenegraph.NewGraph())
	require.NoError(t, err)
	r := NewRegistry()
	RegisterScene(r, s)
	return s, r
}

func run(t *testing.T, r *Registry, line string) error {
	t.Helper()
	args, ok := Parse(line)
	require.True(t, ok)
	return r.Execute(args)
}

func TestBoxCommandKeepsUnsetFlags(t *testing.T) {
	s, r := newScene(t)
	require.NoError(t, run(t, r, "cmd box --width 2"))
	require.NoError(t, run(t, r, "cmd box --height 3"))

	p, err := s.Params(entity.Box)
	require.NoError(t, err)
	assert.Equal(t, entity.BoxParams{Width: 2, Height: 3, Depth: 1}, p)
	assert.True(t, s.SceneDirty())
	assert.True(t, s.GuiDirty(), "editing the selected entity refreshes the panel")
}

func TestShapeCommands(t *testing.T) {
	s, r := newScene(t)
	require.NoError(t, run(t, r, "cmd cylinder --diameter 1.5"))
	require.NoError(t, run(t, r, "cmd icosphere --subdivisions 4 --diameter 2"))

	p, _ := s.Params(entity.Cylinder)
	assert.Equal(t, entity.CylinderParams{Diameter: 1.5, Height: 2}, p)
	p, _ = s.Params(entity.IcoSphere)
	assert.Equal(t, entity.IcoSphereParams{Diameter: 2, Subdivisions: 4}, p)
	assert.False(t, s.GuiDirty(), "edits to unselected entities leave the panel alone")

	err := run(t, r, "cmd box --width -1")
	assert.True(t, errors.Is(err, entity.ErrInvalidParameters))
}

func TestSelectCommand(t *testing.T) {
	s, r := newScene(t)
	require.NoError(t, run(t, r, "cmd select cylinder"))
	kind, ok := s.Selection()
	assert.True(t, ok)
	assert.Equal(t, entity.Cylinder, kind)

	require.NoError(t, run(t, r, "cmd select none"))
	_, ok = s.Selection()
	assert.False(t, ok)

	assert.ErrorIs(t, run(t, r, "cmd select torus"), entity.ErrInvalidEntityKind)
	assert.Error(t, run(t, r, "cmd select"))
}

func TestBounceCommand(t *testing.T) {
	s, r := newScene(t)
	require.NoError(t, run(t, r, "cmd bounce --amplitude 4 --duration 500 --repeat 1 --easing linear"))
	assert.Equal(t, store.Bounce{Amplitude: 4, DurationMs: 500, Repeat: 1, Easing: "linear"}, s.Bounce())
	assert.True(t, s.Animating())
	assert.InDelta(t, 4, s.SharedTransform().Position().Y(), 1e-6)

	require.NoError(t, run(t, r, "cmd bounce --stop"))
	assert.False(t, s.Animating())

	assert.Error(t, run(t, r, "cmd bounce --easing wobble"))
}

func TestFailedBounceChangesNothing(t *testing.T) {
	s, r := newScene(t)
	require.NoError(t, s.StartBounce(10, 2000, 0))
	s.AdvanceAnimation(500)
	before := s.Bounce()
	y := s.SharedTransform().Position().Y()

	assert.Error(t, run(t, r, "cmd bounce --easing linear --duration -5"))
	assert.Error(t, run(t, r, "cmd bounce --duration NaN"))
	assert.Error(t, run(t, r, "cmd box --width Inf"))

	assert.Equal(t, before, s.Bounce())
	assert.Equal(t, y, s.SharedTransform().Position().Y(), "the running bounce was not restarted")
	assert.True(t, s.Animating())
	assert.Equal(t, entity.BoxParams{Width: 1, Height: 1, Depth: 1}, currentParams[entity.BoxParams](s, entity.Box))
}

func TestRebuildCommand(t *testing.T) {
	s, r := newScene(t)
	require.NoError(t, run(t, r, "cmd rebuild"))
	assert.True(t, s.SceneDirty())
}

type fakeView struct {
	grid, fps, mem, panel bool
}

func (v *fakeView) SetGridVisible(b bool)  { v.grid = b }
func (v *fakeView) SetShowFPS(b bool)      { v.fps = b }
func (v *fakeView) SetShowMemAlloc(b bool) { v.mem = b }
func (v *fakeView) SetPanelVisible(b bool) { v.panel = b }

func TestViewCommands(t *testing.T) {
	v := &fakeView{grid: true}
	saved := 0
	r := NewRegistry()
	RegisterView(r, v, func() error { saved++; return nil })

	require.NoError(t, run(t, r, "cmd grid --hide"))
	require.NoError(t, run(t, r, "cmd fps --show"))
	require.NoError(t, run(t, r, "cmd memalloc --show"))
	require.NoError(t, run(t, r, "cmd panel --show"))
	assert.Equal(t, fakeView{grid: false, fps: true, mem: true, panel: true}, *v)

	assert.Error(t, run(t, r, "cmd grid"))
	assert.Error(t, run(t, r, "cmd grid --show --hide"))

	require.NoError(t, run(t, r, "cmd save"))
	assert.Equal(t, 1, saved)
}

func TestHelpListsEveryCommand(t *testing.T) {
	_, r := newScene(t)
	var out []string
	RegisterHelp(r, func(line string) { out = append(out, line) })

	require.NoError(t, run(t, r, "cmd help"))
	assert.Len(t, out, len(r.Names()))
	assert.Contains(t, out, "cmd rebuild")
	assert.Contains(t, out, "cmd help")
	for _, line := range out {
		assert.NotContains(t, line, "  ")
	}
}
