// Package palette provides color palette generation for the orbs. It picks a
// base hue in the blue range and two harmonics 60° to either side, all at a
// fixed (muted) saturation and lightness.
package palette

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	minBaseHue = 210 // inclusive
	maxBaseHue = 230 // exclusive
	hueOffset  = 60  // distance of each harmonic from the base hue

	saturation = 30 // percent
	lightness  = 30 // percent
)

// Palette holds the three harmonically related colors for a session. It's
// immutable once generated.
type Palette struct {
	BaseHue           int // degrees, in [210, 230)
	ComplementaryHue1 int // BaseHue - 60, not normalized
	ComplementaryHue2 int // BaseHue + 60, not normalized

	Saturation, Lightness float64 // percent

	Colors [3]color.RGBA // base, complementary 1, complementary 2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalizeHue folds a hue in degrees into [0, 360).
func normalizeHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

// hsl converts a (degrees, percent, percent) triple to an opaque RGBA color
// using go-colorful.
func hsl(h int, s, l float64) color.RGBA {
	c := colorful.Hsl(float64(normalizeHue(h)), clamp(s/100.0, 0, 1), clamp(l/100.0, 0, 1))
	red, green, blue := c.Clamped().RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}

// Generate returns a new palette with a base hue drawn uniformly from
// [210, 230).
func Generate(r *rand.Rand) Palette {
	return FromBaseHue(minBaseHue + r.Intn(maxBaseHue-minBaseHue))
}

// FromBaseHue builds the palette for a given base hue.
func FromBaseHue(hue int) Palette {
	p := Palette{
		BaseHue:           hue,
		ComplementaryHue1: hue - hueOffset,
		ComplementaryHue2: hue + hueOffset,
		Saturation:        saturation,
		Lightness:         lightness,
	}
	for i, h := range p.Hues() {
		p.Colors[i] = hsl(h, p.Saturation, p.Lightness)
	}
	return p
}

// Hues returns the base and complementary hues, in color order.
func (p Palette) Hues() [3]int {
	return [3]int{p.BaseHue, p.ComplementaryHue1, p.ComplementaryHue2}
}

// PickRandom returns one of the palette's colors, chosen uniformly. Draws are
// independent; the same color may be picked repeatedly.
func (p Palette) PickRandom(r *rand.Rand) color.RGBA {
	return p.Colors[r.Intn(len(p.Colors))]
}

// Hex returns the "#rrggbb" form of each color.
func (p Palette) Hex() [3]string {
	var out [3]string
	for i, c := range p.Colors {
		cf, _ := colorful.MakeColor(c)
		out[i] = cf.Hex()
	}
	return out
}
