package tween

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Vec3 interpolates a 3-component value from one state to another over a fixed duration.
// Time is in whatever unit the caller steps with (the demo uses milliseconds).
// After reaching the end it replays from the start Repeat more times; the update callback
// receives the end value on every cycle boundary before the next cycle begins.
type Vec3 struct {
	axes     [3]*gween.Tween
	from     mgl32.Vec3
	to       mgl32.Vec3
	duration float32
	repeat   int
	left     int
	elapsed  float32
	started  bool
	done     bool
	onUpdate func(v mgl32.Vec3)
}

// New returns a tween from -> to over duration. It does nothing until Start.
// A non-positive duration jumps straight to the end on the first Update.
func New(from, to mgl32.Vec3, duration float32, easing ease.TweenFunc) *Vec3 {
	if easing == nil {
		easing = ease.Linear
	}
	t := &Vec3{from: from, to: to, duration: duration}
	d := duration
	if d <= 0 {
		d = 1
	}
	for i := range t.axes {
		t.axes[i] = gween.New(from[i], to[i], d, easing)
	}
	return t
}

// Repeat sets how many extra cycles run after the first one.
func (t *Vec3) Repeat(n int) *Vec3 {
	if n < 0 {
		n = 0
	}
	t.repeat = n
	t.left = n
	return t
}

// OnUpdate registers the callback that receives each interpolated value.
func (t *Vec3) OnUpdate(fn func(v mgl32.Vec3)) *Vec3 {
	t.onUpdate = fn
	return t
}

// Start (re)starts the tween from the beginning with the full repeat count and emits the
// start value.
func (t *Vec3) Start() {
	t.started = true
	t.done = false
	t.elapsed = 0
	t.left = t.repeat
	t.emit(t.sample(0))
}

// Active reports whether Update still has work to do.
func (t *Vec3) Active() bool {
	return t.started && !t.done
}

// RepeatsLeft is the number of cycles remaining after the current one.
func (t *Vec3) RepeatsLeft() int { return t.left }

// Value returns the current interpolated value without advancing.
func (t *Vec3) Value() mgl32.Vec3 {
	if t.done {
		return t.to
	}
	return t.sample(t.elapsed)
}

// Update advances the tween by dt. Returns false once the tween has finished (or was never
// started); calling it afterwards is a no-op.
func (t *Vec3) Update(dt float32) bool {
	if !t.Active() {
		return false
	}
	if dt < 0 {
		dt = 0
	}
	t.elapsed += dt
	for t.duration <= 0 || t.elapsed >= t.duration {
		t.emit(t.to)
		if t.left == 0 {
			t.done = true
			return false
		}
		t.left--
		if t.duration <= 0 {
			t.elapsed = 0
			continue
		}
		t.elapsed -= t.duration
		if t.elapsed == 0 {
			// landed exactly on the boundary: the end value stays visible until the next step
			return true
		}
	}
	t.emit(t.sample(t.elapsed))
	return true
}

func (t *Vec3) sample(at float32) mgl32.Vec3 {
	var v mgl32.Vec3
	for i, a := range t.axes {
		v[i], _ = a.Set(at)
	}
	return v
}

func (t *Vec3) emit(v mgl32.Vec3) {
	if t.onUpdate != nil {
		t.onUpdate(v)
	}
}
