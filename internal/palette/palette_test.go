package palette

import (
	"image/color"
	"math/rand"
	"strings"
	"testing"
)

func TestGenerateHueRange(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		p := Generate(r)
		if p.BaseHue < 210 || p.BaseHue >= 230 {
			t.Fatalf("draw %d: base hue %d outside [210, 230)", i, p.BaseHue)
		}
		if p.ComplementaryHue1 != p.BaseHue-60 {
			t.Fatalf("draw %d: complementary hue 1 = %d, want %d", i, p.ComplementaryHue1, p.BaseHue-60)
		}
		if p.ComplementaryHue2 != p.BaseHue+60 {
			t.Fatalf("draw %d: complementary hue 2 = %d, want %d", i, p.ComplementaryHue2, p.BaseHue+60)
		}
		if len(p.Colors) != 3 {
			t.Fatalf("draw %d: got %d colors, want 3", i, len(p.Colors))
		}
	}
}

func TestFromBaseHue(t *testing.T) {
	p := FromBaseHue(220)
	if got, want := p.Hues(), [3]int{220, 160, 280}; got != want {
		t.Fatalf("hues = %v, want %v", got, want)
	}
	if p.Saturation != 30 || p.Lightness != 30 {
		t.Errorf("saturation/lightness = %v/%v, want 30/30", p.Saturation, p.Lightness)
	}
	for i, c := range p.Colors {
		if c.A != 255 {
			t.Errorf("color %d: alpha = %d, want 255", i, c.A)
		}
	}

	// hsl(220, 30%, 30%): C = 0.18, m = 0.21, blue-dominant.
	base := p.Colors[0]
	if !(base.B > base.G && base.G > base.R) {
		t.Errorf("base color %v is not a blue hue", base)
	}
	if !near(base, color.RGBA{R: 54, G: 69, B: 99, A: 255}, 1) {
		t.Errorf("base color = %v, want ~{54 69 99}", base)
	}
	// hsl(160, 30%, 30%) is green-dominant, hsl(280, 30%, 30%) is violet.
	if c := p.Colors[1]; !(c.G > c.B && c.B > c.R) {
		t.Errorf("complementary color 1 %v is not a green-cyan hue", c)
	}
	if c := p.Colors[2]; !(c.B > c.R && c.R > c.G) {
		t.Errorf("complementary color 2 %v is not a violet hue", c)
	}
}

func TestFromBaseHueWrapsNegative(t *testing.T) {
	// Hues outside [0, 360) are folded before conversion.
	if got, want := FromBaseHue(30).Colors[1], FromBaseHue(390).Colors[1]; got != want {
		t.Errorf("hue -30 and 330 differ: %v vs %v", got, want)
	}
}

func TestSeededPaletteIsDeterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(7)))
	b := Generate(rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("same seed produced different palettes: %+v vs %+v", a, b)
	}
}

func TestPickRandom(t *testing.T) {
	p := FromBaseHue(215)
	r := rand.New(rand.NewSource(1))

	counts := make(map[color.RGBA]int)
	const trials = 10000
	for i := 0; i < trials; i++ {
		counts[p.PickRandom(r)]++
	}

	for c := range counts {
		if c != p.Colors[0] && c != p.Colors[1] && c != p.Colors[2] {
			t.Fatalf("picked %v, not in palette", c)
		}
	}
	for i, c := range p.Colors {
		// Expect ~3333 each; a loose bound is plenty.
		if n := counts[c]; n < trials/4 || n > trials/2 {
			t.Errorf("color %d picked %d/%d times", i, n, trials)
		}
	}
}

func TestHex(t *testing.T) {
	p := FromBaseHue(220)
	for i, h := range p.Hex() {
		if len(h) != 7 || h[0] != '#' {
			t.Errorf("hex %d = %q, want #rrggbb", i, h)
		}
	}
}

func TestSwatches(t *testing.T) {
	p := FromBaseHue(220)
	out := Swatches(p)
	if n := strings.Count(out, "\n"); n != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", n, out)
	}
	for _, h := range p.Hex() {
		if !strings.Contains(out, h) {
			t.Errorf("swatches missing %s:\n%s", h, out)
		}
	}
	if !strings.Contains(out, "hue=160") || !strings.Contains(out, "hue=280") {
		t.Errorf("swatches missing complementary hues:\n%s", out)
	}
}

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool {
		v := int(x) - int(y)
		return v <= tol && v >= -tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B)
}

func TestSeededPaletteEndToEnd(t *testing.T) {
	// Find a seed whose first draw lands on 220, then check it reproduces.
	var seed int64 = -1
	for s := int64(0); s < 1000; s++ {
		if Generate(rand.New(rand.NewSource(s))).BaseHue == 220 {
			seed = s
			break
		}
	}
	if seed < 0 {
		t.Fatal("no seed in [0, 1000) produced base hue 220")
	}

	p := Generate(rand.New(rand.NewSource(seed)))
	if p.ComplementaryHue1 != 160 || p.ComplementaryHue2 != 280 {
		t.Errorf("complementary hues = %d, %d, want 160, 280", p.ComplementaryHue1, p.ComplementaryHue2)
	}
	if p != FromBaseHue(220) {
		t.Errorf("seeded palette %+v differs from FromBaseHue(220)", p)
	}
}
