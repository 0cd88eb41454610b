// Package motion drives the orbs. Each Orb walks two phase accumulators
// through a 2D coherent noise field and maps the samples onto a position
// within its bounds and a scale in [0.5, 1].
//
// Orbs are frame-count agnostic: the host calls Advance once per frame to
// animate, or just once for a static frame (reduced motion). Calling it more
// or less often only changes the apparent speed.
package motion

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"
)

const (
	// Step is how far both phase accumulators move per Advance.
	Step = 0.0015

	maxPhase = 1000.0 // initial phase offsets are drawn from [0, maxPhase)

	minScale = 0.5
	maxScale = 1.0

	// Viewports shorter than this get proportionally more vertical travel.
	shortViewportHeight = 360.0
	shortTravelDivisor  = 1.6755
	tallTravelDivisor   = 3.0
	originYDivisor      = 2.5

	minRadiusDivisor = 4.0 // radius in [h/4, h/2.5)
	maxRadiusDivisor = 2.5
)

// ErrInvalidDimension is returned when a viewport dimension is non-positive
// or not finite.
var ErrInvalidDimension = errors.New("invalid viewport dimension")

// Noise is a 2D coherent noise function. Eval2 must return values in [-1, 1]
// and be a pure function of its arguments.
type Noise interface {
	Eval2(x, y float64) float64
}

// Sample is the result of a single Advance.
type Sample struct {
	X, Y  float64
	Scale float64
}

// Phase holds an orb's two noise accumulators.
type Phase struct {
	XOff, YOff float64
}

// Orb is the motion state of a single orb.
type Orb struct {
	noise  Noise
	bounds Bounds

	x, y   float64
	scale  float64
	phase  Phase
	step   float64
	radius float64
	fill   color.RGBA
}

// New constructs an orb for a viewport of the given size. All random draws
// (initial position, phase offsets, radius) come from r, so identically
// seeded sources produce identical orbs.
func New(r *rand.Rand, noise Noise, width, height float64, fill color.RGBA) (*Orb, error) {
	bounds, err := ComputeBounds(width, height)
	if err != nil {
		return nil, err
	}

	o := &Orb{
		noise:  noise,
		bounds: bounds,
		scale:  1,
		step:   Step,
		fill:   fill,
	}
	o.x = RandomIn(r, bounds.X.Min, bounds.X.Max)
	o.y = RandomIn(r, bounds.Y.Min, bounds.Y.Max)
	o.radius = RandomIn(r, height/minRadiusDivisor, height/maxRadiusDivisor)
	o.phase = Phase{
		XOff: RandomIn(r, 0, maxPhase),
		YOff: RandomIn(r, 0, maxPhase),
	}
	return o, nil
}

// Advance samples the noise field at the current phase, updates the orb's
// position and scale, and steps the phase forward.
//
// The scale sample pairs (XOff, YOff) while x and y use (XOff, XOff) and
// (YOff, YOff) respectively. This pairing changes the visual character of
// the motion and is kept as is.
func (o *Orb) Advance() Sample {
	xNoise := clampUnit(o.noise.Eval2(o.phase.XOff, o.phase.XOff))
	yNoise := clampUnit(o.noise.Eval2(o.phase.YOff, o.phase.YOff))
	scaleNoise := clampUnit(o.noise.Eval2(o.phase.XOff, o.phase.YOff))

	// Clamp away rounding at the range ends.
	o.x = o.bounds.X.Clamp(Map(xNoise, -1, 1, o.bounds.X.Min, o.bounds.X.Max))
	o.y = o.bounds.Y.Clamp(Map(yNoise, -1, 1, o.bounds.Y.Min, o.bounds.Y.Max))
	o.scale = Map(scaleNoise, -1, 1, minScale, maxScale)

	o.phase.XOff += o.step
	o.phase.YOff += o.step

	return Sample{X: o.x, Y: o.y, Scale: o.scale}
}

// OnResize recomputes the orb's bounds for a new viewport size and pulls the
// current position into them. On error the previous bounds are kept.
func (o *Orb) OnResize(width, height float64) error {
	bounds, err := ComputeBounds(width, height)
	if err != nil {
		return err
	}
	o.bounds = bounds
	o.x = bounds.X.Clamp(o.x)
	o.y = bounds.Y.Clamp(o.y)
	return nil
}

func (o *Orb) Bounds() Bounds { return o.bounds }
func (o *Orb) Position() (x, y float64) { return o.x, o.y }
func (o *Orb) Scale() float64 { return o.scale }
func (o *Orb) Radius() float64 { return o.radius }
func (o *Orb) Fill() color.RGBA { return o.fill }
func (o *Orb) Phase() Phase { return o.phase }

// String implements fmt.Stringer.
func (o *Orb) String() string {
	return fmt.Sprintf("orb(pos=(%.1f,%.1f) scale=%.3f radius=%.1f phase=(%.4f,%.4f))",
		o.x, o.y, o.scale, o.radius, o.phase.XOff, o.phase.YOff)
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
