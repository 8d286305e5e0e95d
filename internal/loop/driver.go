package loop

import (
	"fmt"

	"go.uber.org/zap"

	"bounce-demo/internal/entity"
)

// Scene is the part of the store the driver needs each frame.
type Scene interface {
	AdvanceAnimation(dtMs float32)
	SceneDirty() bool
	ClearSceneDirty()
	RebuildEntity(kind entity.Kind) error
}

// Frame submits one frame to the renderer.
type Frame interface {
	Render()
}

// FrameFunc adapts a plain function to Frame.
type FrameFunc func()

func (f FrameFunc) Render() { f() }

// Driver runs the per-frame work: step the animation, rebuild geometry when the scene is
// dirty, then render. Each tick does a fixed amount of work and never blocks.
type Driver struct {
	scene    Scene
	frame    Frame
	log      *zap.SugaredLogger
	frames   uint64
	rebuilds uint64
}

// New returns a driver for scene that submits frames to frame. log may be nil.
func New(scene Scene, frame Frame, log *zap.SugaredLogger) *Driver {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Driver{scene: scene, frame: frame, log: log}
}

// Tick advances one frame by dtMs milliseconds. When a rebuild fails the dirty flag stays set
// and the error is returned; the frame is still rendered with whatever geometry exists.
func (d *Driver) Tick(dtMs float32) error {
	d.scene.AdvanceAnimation(dtMs)

	var err error
	if d.scene.SceneDirty() {
		err = d.rebuild()
		if err == nil {
			d.scene.ClearSceneDirty()
			d.rebuilds++
		}
	}

	if d.frame != nil {
		d.frame.Render()
	}
	d.frames++
	return err
}

func (d *Driver) rebuild() error {
	for _, k := range entity.Kinds() {
		if err := d.scene.RebuildEntity(k); err != nil {
			return fmt.Errorf("frame %d: %w", d.frames, err)
		}
	}
	d.log.Debugw("scene rebuilt", "frame", d.frames)
	return nil
}

// Frames is the number of frames submitted so far.
func (d *Driver) Frames() uint64 { return d.frames }

// Rebuilds is the number of completed scene rebuilds.
func (d *Driver) Rebuilds() uint64 { return d.rebuilds }
