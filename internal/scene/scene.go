// Package scene holds the state of an orbs session: the palette, the orbs
// and the resize debouncing. It doesn't touch the window or GL; the app
// package feeds it viewport sizes and hands its RenderData to the renderer.
package scene

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/irfansharif/orbs/internal/geom"
	"github.com/irfansharif/orbs/internal/motion"
	"github.com/irfansharif/orbs/internal/noise"
	"github.com/irfansharif/orbs/internal/palette"
	"github.com/irfansharif/orbs/internal/render"
)

const (
	DefaultOrbCount     = 3
	DefaultMaskFraction = 0.8
)

var (
	backgroundColor = color.RGBA{R: 0xff, G: 0x87, B: 0x66, A: 0xff}
	maskColor       = color.RGBA{R: 0xff, G: 0xbd, B: 0x38, A: 0xff}
)

// Options configures the scene.
type Options struct {
	Seed          int64   // drives the palette, the orbs and the noise field
	Orbs          int     // number of orbs, DefaultOrbCount if zero
	Noise         string  // noise source name, see noise.ByName
	ReducedMotion bool    // draw a single static frame instead of animating
	MaskFraction  float64 // fraction of the viewport the mask covers
}

// Scene owns the palette and the orbs for a session.
type Scene struct {
	Palette palette.Palette
	Orbs    []*motion.Orb

	opts     Options
	advanced bool // whether any Advance has happened yet
	paused   bool
}

// New builds the palette and the orbs for a viewport of the given size.
// Everything random is derived from opts.Seed, so equal options produce
// equal scenes.
func New(opts Options, width, height int) (*Scene, error) {
	if opts.Orbs <= 0 {
		opts.Orbs = DefaultOrbCount
	}
	if opts.MaskFraction <= 0 || opts.MaskFraction > 1 {
		opts.MaskFraction = DefaultMaskFraction
	}

	n, err := noise.ByName(opts.Noise, opts.Seed)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	s := &Scene{
		Palette: palette.Generate(rng),
		Orbs:    make([]*motion.Orb, 0, opts.Orbs),
		opts:    opts,
	}
	for i := 0; i < opts.Orbs; i++ {
		orb, err := motion.New(rng, n, float64(width), float64(height), s.Palette.PickRandom(rng))
		if err != nil {
			return nil, fmt.Errorf("creating orb %d: %w", i, err)
		}
		s.Orbs = append(s.Orbs, orb)
	}
	return s, nil
}

// Tick advances every orb by one step and reports whether anything moved.
// With reduced motion only the first tick advances, producing a static
// frame; a paused scene doesn't advance at all.
func (s *Scene) Tick() bool {
	if s.paused || (s.opts.ReducedMotion && s.advanced) {
		return false
	}
	for _, orb := range s.Orbs {
		orb.Advance()
	}
	s.advanced = true
	return true
}

// TogglePause stops or resumes the animation and returns the new state.
func (s *Scene) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Paused reports whether the animation is paused.
func (s *Scene) Paused() bool { return s.paused }

// Resize recomputes every orb's bounds for a new viewport size.
func (s *Scene) Resize(width, height int) error {
	for i, orb := range s.Orbs {
		if err := orb.OnResize(float64(width), float64(height)); err != nil {
			return fmt.Errorf("resizing orb %d: %w", i, err)
		}
	}
	return nil
}

// RenderData describes the current frame for the renderer.
func (s *Scene) RenderData(viewport geom.Box) render.Scene {
	orbs := make([]render.OrbRenderData, len(s.Orbs))
	for i, orb := range s.Orbs {
		x, y := orb.Position()
		orbs[i] = render.OrbRenderData{
			Center: geom.MakePoint(x, y),
			Radius: orb.Radius(),
			Scale:  orb.Scale(),
			Fill:   orb.Fill(),
		}
	}
	return render.Scene{
		Viewport:   viewport,
		Background: backgroundColor,
		Mask:       viewport.Fit(s.opts.MaskFraction),
		MaskFill:   maskColor,
		Orbs:       orbs,
	}
}
