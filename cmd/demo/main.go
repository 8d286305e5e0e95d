package main

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"bounce-demo/internal/commands"
	"bounce-demo/internal/config"
	"bounce-demo/internal/debug"
	"bounce-demo/internal/entity"
	"bounce-demo/internal/graphics"
	"bounce-demo/internal/logger"
	"bounce-demo/internal/loop"
	"bounce-demo/internal/panel"
	"bounce-demo/internal/render"
	"bounce-demo/internal/scenegraph"
	"bounce-demo/internal/selection"
	"bounce-demo/internal/store"
	"bounce-demo/internal/terminal"
	"bounce-demo/internal/ui"
)

func main() {
	cfg, cfgErr := config.Load(config.DefaultPath)

	log, err := logger.New(logger.Options{
		Path:       cfg.Log.Path,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Console:    cfg.Log.Console,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Close()
	if cfgErr != nil {
		log.Warnw("using default config", "path", config.DefaultPath, "error", cfgErr)
	}

	if err := run(cfg, log); err != nil {
		if errors.Is(err, graphics.ErrNoCanvas) {
			log.Errorw("fatal", "error", err)
		}
		log.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	opts := []store.Option{
		store.WithLogger(log.SugaredLogger),
		store.WithParams(cfg.Params()...),
		store.WithBounce(store.Bounce{
			Amplitude:  cfg.Bounce.Amplitude,
			DurationMs: cfg.Bounce.DurationMs,
			Repeat:     cfg.Bounce.Repeat,
			Easing:     cfg.Bounce.Easing,
		}),
	}
	if cfg.Selection == "" {
		opts = append(opts, store.WithoutSelection())
	} else {
		kind, err := entity.ParseKind(cfg.Selection)
		if err != nil {
			return err
		}
		opts = append(opts, store.WithSelection(kind))
	}
	graph := scenegraph.NewGraph()
	st, err := store.New(graph, opts...)
	if err != nil {
		return err
	}
	st.MarkSceneDirty()
	if err := st.Restart(); err != nil {
		return err
	}

	renderer := render.New(graph, cfg,
		render.WithLogger(log.SugaredLogger),
		render.WithSelected(func() *scenegraph.Mesh {
			if kind, ok := st.Selection(); ok {
				return st.Mesh(kind)
			}
			return nil
		}),
	)
	driver := loop.New(st, renderer, log.SugaredLogger)
	picker := selection.New(renderer, st, log.SugaredLogger)

	model := panel.New()
	view := ui.NewPanelView(model)
	view.SetPanelVisible(cfg.View.ShowPanel)
	engine := ui.New()
	if cfg.UI.CSS != "" {
		if err := engine.LoadCSS(cfg.UI.CSS); err != nil {
			log.Warnw("using built-in stylesheet", "error", err)
		}
	}

	overlay := debug.New()
	overlay.SetShowFPS(cfg.View.ShowFPS)
	overlay.SetShowMemAlloc(cfg.View.ShowMemAlloc)
	overlay.Status = func() string {
		b := st.Bounce()
		state := "idle"
		if st.Animating() {
			state = b.Easing
		}
		return fmt.Sprintf("bounce: %s, y=%.2f", state, st.SharedTransform().Position().Y())
	}

	reg := commands.NewRegistry()
	commands.RegisterScene(reg, st)
	commands.RegisterView(reg, viewSwitches{renderer, overlay, view}, func() error {
		cfg.View = config.View{
			ShowGrid:     renderer.GridVisible(),
			ShowFPS:      overlay.ShowFPS,
			ShowMemAlloc: overlay.ShowMemAlloc,
			ShowPanel:    view.Visible(),
		}
		if err := config.Save(config.DefaultPath, cfg); err != nil {
			return err
		}
		log.Infow("view saved", "path", config.DefaultPath)
		return nil
	})
	commands.RegisterHelp(reg, log.Log)
	term := terminal.New(log, reg)
	mouse := render.Mouse{Blocked: term.IsOpen}

	update := func() {
		term.Update()
		if !term.IsOpen() {
			renderer.Update()
		}
		if err := picker.Update(mouse); err != nil {
			log.Warnw("pick failed", "error", err)
		}
		if _, err := model.Refresh(st); err != nil {
			log.Warnw("panel refresh failed", "error", err)
		}
	}
	var nodes []*ui.Node
	draw := func() {
		if err := driver.Tick(graphics.FrameTimeMs()); err != nil {
			log.Errorw("frame failed", "error", err)
		}
		nodes = view.Nodes(nodes[:0])
		engine.SetNodes(nodes)
		engine.Draw()
		term.Draw()
		overlay.Draw()
	}

	var font rl.Font
	setup := func() {
		if cfg.UI.Font == "" {
			return
		}
		f, err := ui.LoadFont(cfg.UI.Font)
		if err != nil {
			log.Warnw("using default font", "error", err)
			return
		}
		font = f
		engine.SetFont(font)
		term.SetFont(font)
		overlay.SetFont(font)
	}
	shutdown := func() {
		renderer.Close()
		ui.UnloadFont(font)
	}

	log.Infow("starting", "window", cfg.Window.Title, "selection", cfg.Selection)
	return graphics.Run(graphics.Options{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		TargetFPS: cfg.Window.TargetFPS,
		Setup:     setup,
		Shutdown:  shutdown,
	}, update, draw)
}

// viewSwitches routes the view commands to the components that own each overlay.
type viewSwitches struct {
	*render.Renderer
	*debug.Overlay
	*ui.PanelView
}
