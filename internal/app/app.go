package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/orbs/internal/render"
	"github.com/irfansharif/orbs/internal/scene"
)

var sceneLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("ORBS_DEBUG_SCENE") == "1" {
		sceneLogger = log.New(os.Stdout, "[scene] ", log.Ltime|log.Lmsgprefix)
	}
}

// App encapsulates the main application state and logic.
type App struct {
	Window   *glfw.Window
	Renderer *render.Renderer
	Scene    *scene.Scene
	View     *View

	opts   scene.Options
	resize *scene.Debouncer
	dirty  bool // scene geometry needs re-uploading
}

// NewApp creates a new application instance with a freshly generated scene.
func NewApp(window *glfw.Window, renderer *render.Renderer, view *View, opts scene.Options) (*App, error) {
	app := &App{
		Window:   window,
		Renderer: renderer,
		View:     view,
		opts:     opts,
		resize:   scene.NewDebouncer(scene.DefaultResizeDelay, nil),
	}
	if err := app.buildScene(opts.Seed); err != nil {
		return nil, err
	}
	renderer.SetView(view.Width, view.Height)
	return app, nil
}

// buildScene replaces the scene with one built from the given seed. The
// current scene and seed are left alone if that fails.
func (app *App) buildScene(seed int64) error {
	opts := app.opts
	opts.Seed = seed
	sc, err := scene.New(opts, app.View.Width, app.View.Height)
	if err != nil {
		return fmt.Errorf("building scene (seed %d): %w", seed, err)
	}
	app.Scene = sc
	app.opts = opts
	app.dirty = true

	sceneLogger.Printf("seed %d, palette hues %v (%v)", seed, sc.Palette.Hues(), sc.Palette.Hex())
	for i, orb := range sc.Orbs {
		sceneLogger.Printf("orb %d: %s", i, orb)
	}
	return nil
}

// Regenerate replaces the scene with one built from the next seed. The
// current pause state carries over. On failure (e.g. while minimized) the
// current scene stays up and the seed doesn't advance.
func (app *App) Regenerate() error {
	paused := app.Scene.Paused()
	if err := app.buildScene(app.opts.Seed + 1); err != nil {
		return err
	}
	if paused {
		app.Scene.TogglePause()
	}
	return nil
}

// Seed returns the seed of the current scene.
func (app *App) Seed() int64 { return app.opts.Seed }

// HandleResize is called for every framebuffer size change. The renderer
// follows immediately; the orbs' bounds follow once resizing settles.
func (app *App) HandleResize(width, height int) {
	app.View.SetViewport(width, height)
	app.Renderer.SetView(width, height)
	app.resize.Trigger(width, height)
	app.dirty = true
}

// Frame advances the scene and prepares the renderer if anything changed.
// It's called once per iteration of the main loop, before drawing.
func (app *App) Frame() {
	if !app.View.Valid() {
		return // minimized
	}

	if w, h, ok := app.resize.Poll(); ok {
		if err := app.Scene.Resize(w, h); err != nil {
			log.Printf("WARNING: ignoring resize to %dx%d: %v", w, h, err)
		} else {
			sceneLogger.Printf("resized orb bounds to %dx%d", w, h)
		}
	}

	if app.Scene.Tick() {
		app.dirty = true
	}
	if !app.dirty {
		return
	}
	if err := app.Renderer.Prepare(app.Scene.RenderData(app.View.Box())); err != nil {
		log.Fatalf("Failed to prepare renderer: %v", err)
	}
	app.dirty = false
}
