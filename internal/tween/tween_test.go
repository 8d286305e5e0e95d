package tween

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBounce(t *testing.T, repeat int, out *mgl32.Vec3) *Vec3 {
	t.Helper()
	fn, err := Easing("out-bounce")
	require.NoError(t, err)
	return New(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{}, 2000, fn).
		Repeat(repeat).
		OnUpdate(func(v mgl32.Vec3) { *out = v })
}

func TestStartEmitsStartValue(t *testing.T) {
	var pos mgl32.Vec3
	tw := newBounce(t, 0, &pos)
	assert.False(t, tw.Active())
	assert.False(t, tw.Update(16))

	tw.Start()
	assert.True(t, tw.Active())
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, pos)
}

func TestCycleConvergesThenRestarts(t *testing.T) {
	var pos mgl32.Vec3
	tw := newBounce(t, 100, &pos)
	tw.Start()

	assert.True(t, tw.Update(2000))
	assert.InDelta(t, 0, pos.Y(), 1e-4)
	assert.Equal(t, 99, tw.RepeatsLeft())

	assert.True(t, tw.Update(1))
	assert.InDelta(t, 10, pos.Y(), 0.01)
}

func TestBounceStaysWithinRange(t *testing.T) {
	var pos mgl32.Vec3
	tw := newBounce(t, 0, &pos)
	tw.Start()
	for i := 0; i < 125; i++ {
		tw.Update(16)
		assert.GreaterOrEqual(t, pos.Y(), float32(-1e-4))
		assert.LessOrEqual(t, pos.Y(), float32(10+1e-4))
		assert.Zero(t, pos.X())
		assert.Zero(t, pos.Z())
	}
}

func TestFinishesAfterRepeats(t *testing.T) {
	var pos mgl32.Vec3
	tw := newBounce(t, 2, &pos)
	tw.Start()
	assert.True(t, tw.Update(2500))
	assert.True(t, tw.Update(2500))
	assert.False(t, tw.Update(2000))
	assert.False(t, tw.Active())
	assert.Equal(t, mgl32.Vec3{}, pos)

	// finished tweens ignore further steps
	pos = mgl32.Vec3{1, 1, 1}
	assert.False(t, tw.Update(100))
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, pos)
	assert.Equal(t, mgl32.Vec3{}, tw.Value())
}

func TestLargeStepSpansSeveralCycles(t *testing.T) {
	var pos mgl32.Vec3
	tw := newBounce(t, 5, &pos)
	tw.Start()
	assert.True(t, tw.Update(2000*3+500))
	assert.Equal(t, 2, tw.RepeatsLeft())
}

func TestLinear(t *testing.T) {
	var pos mgl32.Vec3
	fn, err := Easing("linear")
	require.NoError(t, err)
	tw := New(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 20, 30}, 100, fn).OnUpdate(func(v mgl32.Vec3) { pos = v })
	tw.Start()
	tw.Update(50)
	assert.True(t, mgl32.Vec3{5, 10, 15}.ApproxEqualThreshold(pos, 1e-4))
}

func TestEasingLookup(t *testing.T) {
	fn, err := Easing("")
	require.NoError(t, err)
	assert.NotNil(t, fn)
	_, err = Easing("wobble")
	assert.Error(t, err)
	assert.Contains(t, EasingNames(), DefaultEasing)
}
