package scene

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/irfansharif/orbs/internal/geom"
	"github.com/irfansharif/orbs/internal/motion"
	"github.com/irfansharif/orbs/internal/noise"
)

func TestNew(t *testing.T) {
	s, err := New(Options{Seed: 42}, 800, 600)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Orbs) != DefaultOrbCount {
		t.Fatalf("got %d orbs, want %d", len(s.Orbs), DefaultOrbCount)
	}
	for i, orb := range s.Orbs {
		fill := orb.Fill()
		if fill != s.Palette.Colors[0] && fill != s.Palette.Colors[1] && fill != s.Palette.Colors[2] {
			t.Errorf("orb %d fill %v not drawn from the palette", i, fill)
		}
	}
}

func TestNewOptions(t *testing.T) {
	s, err := New(Options{Seed: 1, Orbs: 7, Noise: noise.Perlin}, 640, 480)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Orbs) != 7 {
		t.Errorf("got %d orbs, want 7", len(s.Orbs))
	}

	if _, err := New(Options{Seed: 1, Noise: "value"}, 640, 480); !errors.Is(err, noise.ErrUnknownNoise) {
		t.Errorf("err = %v, want ErrUnknownNoise", err)
	}
	if _, err := New(Options{Seed: 1}, 640, 0); !errors.Is(err, motion.ErrInvalidDimension) {
		t.Errorf("err = %v, want ErrInvalidDimension", err)
	}
}

func TestSceneIsDeterministic(t *testing.T) {
	a, _ := New(Options{Seed: 2024}, 1280, 720)
	b, _ := New(Options{Seed: 2024}, 1280, 720)
	if a.Palette != b.Palette {
		t.Fatalf("palettes differ: %+v vs %+v", a.Palette, b.Palette)
	}
	for frame := 0; frame < 300; frame++ {
		a.Tick()
		b.Tick()
		for i := range a.Orbs {
			ax, ay := a.Orbs[i].Position()
			bx, by := b.Orbs[i].Position()
			if ax != bx || ay != by || a.Orbs[i].Scale() != b.Orbs[i].Scale() {
				t.Fatalf("frame %d orb %d diverged", frame, i)
			}
		}
	}
}

func TestSceneTick(t *testing.T) {
	s, _ := New(Options{Seed: 3}, 800, 600)
	before := s.Orbs[0].Phase()
	for i := 0; i < 10; i++ {
		if !s.Tick() {
			t.Fatalf("tick %d did not advance", i)
		}
	}
	if got := s.Orbs[0].Phase().XOff - before.XOff; math.Abs(got-10*motion.Step) > 1e-9 {
		t.Errorf("phase advanced by %v over 10 ticks, want %v", got, 10*motion.Step)
	}

	if !s.TogglePause() {
		t.Fatal("TogglePause did not pause")
	}
	paused := s.Orbs[0].Phase()
	if s.Tick() {
		t.Error("paused scene advanced")
	}
	if s.Orbs[0].Phase() != paused {
		t.Error("paused scene moved its orbs")
	}
	s.TogglePause()
	if !s.Tick() {
		t.Error("resumed scene did not advance")
	}
}

func TestSceneReducedMotion(t *testing.T) {
	s, _ := New(Options{Seed: 5, ReducedMotion: true}, 800, 600)
	if !s.Tick() {
		t.Fatal("first tick should produce the static frame")
	}
	frame := s.Orbs[0].Phase()
	for i := 0; i < 100; i++ {
		if s.Tick() {
			t.Fatalf("tick %d advanced under reduced motion", i)
		}
	}
	if s.Orbs[0].Phase() != frame {
		t.Error("orbs moved after the static frame")
	}

	// The static frame is the same as the first animated frame.
	animated, _ := New(Options{Seed: 5}, 800, 600)
	animated.Tick()
	for i := range s.Orbs {
		sx, sy := s.Orbs[i].Position()
		ax, ay := animated.Orbs[i].Position()
		if sx != ax || sy != ay {
			t.Errorf("orb %d static frame (%v, %v) != first animated frame (%v, %v)", i, sx, sy, ax, ay)
		}
	}
}

func TestSceneResize(t *testing.T) {
	s, _ := New(Options{Seed: 6}, 1200, 900)
	if err := s.Resize(400, 300); err != nil {
		t.Fatal(err)
	}
	want, _ := motion.ComputeBounds(400, 300)
	for i, orb := range s.Orbs {
		if orb.Bounds() != want {
			t.Errorf("orb %d bounds = %+v, want %+v", i, orb.Bounds(), want)
		}
	}
	if err := s.Resize(0, 300); !errors.Is(err, motion.ErrInvalidDimension) {
		t.Errorf("err = %v, want ErrInvalidDimension", err)
	}
}

func TestSceneRenderData(t *testing.T) {
	s, _ := New(Options{Seed: 8, MaskFraction: 0.5}, 400, 200)
	s.Tick()
	viewport := geom.MakeBox(0, 0, 400, 200)
	rs := s.RenderData(viewport)

	if rs.Viewport != viewport {
		t.Errorf("viewport = %+v", rs.Viewport)
	}
	if rs.Mask != geom.MakeBox(100, 50, 200, 100) {
		t.Errorf("mask = %+v", rs.Mask)
	}
	if rs.Background != backgroundColor || rs.MaskFill != maskColor {
		t.Error("unexpected fill colors")
	}
	if len(rs.Orbs) != len(s.Orbs) {
		t.Fatalf("got %d orbs, want %d", len(rs.Orbs), len(s.Orbs))
	}
	for i, o := range rs.Orbs {
		x, y := s.Orbs[i].Position()
		if o.Center != geom.MakePoint(x, y) || o.Scale != s.Orbs[i].Scale() || o.Radius != s.Orbs[i].Radius() {
			t.Errorf("orb %d render data %+v doesn't match motion state", i, o)
		}
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestDebouncer(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	d := NewDebouncer(250*time.Millisecond, clock.now)

	if _, _, ok := d.Poll(); ok {
		t.Fatal("poll with nothing pending returned a size")
	}

	// A burst of resizes, each arriving before the quiet period ends.
	for i := 0; i < 5; i++ {
		d.Trigger(800+i*10, 600+i*10)
		clock.advance(100 * time.Millisecond)
		if _, _, ok := d.Poll(); ok {
			t.Fatalf("delivered mid-burst at event %d", i)
		}
	}
	clock.advance(150 * time.Millisecond)
	w, h, ok := d.Poll()
	if !ok {
		t.Fatal("resize not delivered after the quiet period")
	}
	if w != 840 || h != 640 {
		t.Errorf("delivered %dx%d, want the last size 840x640", w, h)
	}
	if _, _, ok := d.Poll(); ok {
		t.Error("burst delivered twice")
	}
}
