package commands

import (
	"flag"
	"fmt"

	"bounce-demo/internal/entity"
	"bounce-demo/internal/store"
)

// RegisterScene adds the commands that edit the store: box, cylinder, icosphere, select,
// bounce, and rebuild. Shape flags that are not given keep the entity's current value.
func RegisterScene(r *Registry, s *store.Store) {
	r.Register("box", "[--width W] [--height H] [--depth D]", func(fs *flag.FlagSet) func() error {
		cur := currentParams[entity.BoxParams](s, entity.Box)
		w := fs.Float64("width", float64(cur.Width), "box width")
		h := fs.Float64("height", float64(cur.Height), "box height")
		d := fs.Float64("depth", float64(cur.Depth), "box depth")
		return func() error {
			return apply(s, entity.BoxParams{Width: float32(*w), Height: float32(*h), Depth: float32(*d)})
		}
	})
	r.Register("cylinder", "[--diameter D] [--height H]", func(fs *flag.FlagSet) func() error {
		cur := currentParams[entity.CylinderParams](s, entity.Cylinder)
		d := fs.Float64("diameter", float64(cur.Diameter), "cylinder diameter")
		h := fs.Float64("height", float64(cur.Height), "cylinder height")
		return func() error {
			return apply(s, entity.CylinderParams{Diameter: float32(*d), Height: float32(*h)})
		}
	})
	r.Register("icosphere", "[--diameter D] [--subdivisions N]", func(fs *flag.FlagSet) func() error {
		cur := currentParams[entity.IcoSphereParams](s, entity.IcoSphere)
		d := fs.Float64("diameter", float64(cur.Diameter), "sphere diameter")
		n := fs.Int("subdivisions", cur.Subdivisions, "subdivision count")
		return func() error {
			return apply(s, entity.IcoSphereParams{Diameter: float32(*d), Subdivisions: *n})
		}
	})
	r.Register("select", "box|cylinder|icosphere|none", func(fs *flag.FlagSet) func() error {
		return func() error {
			if fs.NArg() != 1 {
				return fmt.Errorf("select: expected one of box, cylinder, icosphere, none")
			}
			if fs.Arg(0) == "none" {
				s.ClearSelection()
				return nil
			}
			kind, err := entity.ParseKind(fs.Arg(0))
			if err != nil {
				return err
			}
			return s.SetSelection(kind)
		}
	})
	r.Register("bounce", "[--amplitude A] [--duration MS] [--repeat N] [--easing NAME] [--stop]", func(fs *flag.FlagSet) func() error {
		cur := s.Bounce()
		a := fs.Float64("amplitude", float64(cur.Amplitude), "drop height")
		d := fs.Float64("duration", float64(cur.DurationMs), "cycle length in milliseconds")
		n := fs.Int("repeat", cur.Repeat, "extra cycles after the first")
		e := fs.String("easing", cur.Easing, "easing curve")
		stop := fs.Bool("stop", false, "stop the animation")
		return func() error {
			if *stop {
				s.StopBounce()
				return nil
			}
			return s.Configure(store.Bounce{
				Amplitude:  float32(*a),
				DurationMs: float32(*d),
				Repeat:     *n,
				Easing:     *e,
			})
		}
	})
	r.Register("rebuild", "", func(fs *flag.FlagSet) func() error {
		return func() error {
			s.MarkSceneDirty()
			return nil
		}
	})
}

// currentParams returns the stored parameters of kind as P, or P's zero value.
func currentParams[P entity.Params](s *store.Store, kind entity.Kind) P {
	var zero P
	p, err := s.Params(kind)
	if err != nil {
		return zero
	}
	if v, ok := p.(P); ok {
		return v
	}
	return zero
}

func apply(s *store.Store, p entity.Params) error {
	if err := s.SetEntityParameters(p); err != nil {
		return err
	}
	if kind, ok := s.Selection(); ok && kind == p.Kind() {
		s.MarkGuiDirty()
	}
	return nil
}

// View is the set of overlay switches the view commands toggle.
type View interface {
	SetGridVisible(bool)
	SetShowFPS(bool)
	SetShowMemAlloc(bool)
	SetPanelVisible(bool)
}

// RegisterView adds grid, fps, memalloc, and panel (each --show or --hide) plus save, which
// calls save to persist the current view preferences.
func RegisterView(r *Registry, v View, save func() error) {
	toggle := func(name string, set func(bool)) {
		r.Register(name, "--show|--hide", func(fs *flag.FlagSet) func() error {
			show := fs.Bool("show", false, "show "+name)
			hide := fs.Bool("hide", false, "hide "+name)
			return func() error {
				switch {
				case *show && *hide:
					return fmt.Errorf("%s: --show and --hide are exclusive", name)
				case *show:
					set(true)
				case *hide:
					set(false)
				default:
					return fmt.Errorf("%s: expected --show or --hide", name)
				}
				return nil
			}
		})
	}
	toggle("grid", v.SetGridVisible)
	toggle("fps", v.SetShowFPS)
	toggle("memalloc", v.SetShowMemAlloc)
	toggle("panel", v.SetPanelVisible)

	r.Register("save", "", func(fs *flag.FlagSet) func() error {
		return func() error {
			if save == nil {
				return fmt.Errorf("save: not available")
			}
			return save()
		}
	})
}
