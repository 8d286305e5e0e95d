package store

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"bounce-demo/internal/entity"
	"bounce-demo/internal/tween"
)

// StartBounce throws away any running animation and starts a new one that drops the shared
// transform from (0, amplitude, 0) to the origin over durationMs, replaying repeat more times.
// Every step writes the value straight into the shared transform's position, so whichever
// mesh is selected bounces with it.
func (s *Store) StartBounce(amplitude, durationMs float32, repeat int) error {
	b := s.bounce
	b.Amplitude = amplitude
	b.DurationMs = durationMs
	b.Repeat = repeat
	return s.startBounce(b)
}

// Configure replaces every bounce setting at once and restarts the animation. On error
// nothing changes and the running bounce keeps going.
func (s *Store) Configure(b Bounce) error {
	return s.startBounce(b)
}

// Restart starts the bounce again with the current settings.
func (s *Store) Restart() error {
	return s.startBounce(s.bounce)
}

func (s *Store) startBounce(b Bounce) error {
	if !entity.Finite(b.Amplitude, b.DurationMs) {
		return fmt.Errorf("bounce: amplitude %v and duration %v must be finite", b.Amplitude, b.DurationMs)
	}
	if b.DurationMs < 0 {
		return fmt.Errorf("bounce: negative duration %v", b.DurationMs)
	}
	if b.Repeat < 0 {
		return fmt.Errorf("bounce: negative repeat count %d", b.Repeat)
	}
	fn, err := tween.Easing(b.Easing)
	if err != nil {
		return fmt.Errorf("bounce: %w", err)
	}
	s.anim = nil
	s.bounce = b
	node := s.shared
	s.anim = tween.New(mgl32.Vec3{0, b.Amplitude, 0}, mgl32.Vec3{}, b.DurationMs, fn).
		Repeat(b.Repeat).
		OnUpdate(func(v mgl32.Vec3) {
			node.SetPosition(v)
		})
	s.anim.Start()
	s.log.Debugw("bounce started", "amplitude", b.Amplitude, "duration_ms", b.DurationMs, "repeat", b.Repeat, "easing", b.Easing)
	return nil
}

// StopBounce drops the animation, leaving the shared transform where it is.
func (s *Store) StopBounce() {
	s.anim = nil
}

// AdvanceAnimation steps the bounce by dtMs milliseconds. Without a running animation, or
// after it has completed, nothing happens.
func (s *Store) AdvanceAnimation(dtMs float32) {
	if s.anim == nil {
		return
	}
	s.anim.Update(dtMs)
}

// Animating reports whether a bounce is in progress.
func (s *Store) Animating() bool {
	return s.anim != nil && s.anim.Active()
}

// Bounce returns the settings of the current (or last) bounce.
func (s *Store) Bounce() Bounce { return s.bounce }
