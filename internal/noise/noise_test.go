package noise

import (
	"errors"
	"math"
	"testing"
)

func TestSourcesStayInRange(t *testing.T) {
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			n, err := ByName(name, 1234)
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 20000; i++ {
				x := float64(i)*0.0137 + 3.5
				y := float64(i)*0.0071 + 900
				v := n.Eval2(x, y)
				if math.IsNaN(v) || v < -1 || v > 1 {
					t.Fatalf("Eval2(%v, %v) = %v, outside [-1, 1]", x, y, v)
				}
			}
		})
	}
}

func TestSourcesAreDeterministic(t *testing.T) {
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			a, _ := ByName(name, 99)
			b, _ := ByName(name, 99)
			for i := 0; i < 100; i++ {
				x, y := float64(i)*0.37, float64(i)*0.11+500
				if va, vb := a.Eval2(x, y), b.Eval2(x, y); va != vb {
					t.Fatalf("Eval2(%v, %v): %v != %v", x, y, va, vb)
				}
			}
		})
	}
}

func TestSimplexIsSmooth(t *testing.T) {
	// Successive frames step the phase by a tiny amount; the sampled values
	// should move by a similarly tiny amount.
	n := NewSimplex(5)
	const step = 0.0015
	prev := n.Eval2(100, 100)
	for i := 1; i < 1000; i++ {
		off := 100 + float64(i)*step
		v := n.Eval2(off, off)
		if math.Abs(v-prev) > 0.05 {
			t.Fatalf("step %d jumped from %v to %v", i, prev, v)
		}
		prev = v
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "simplex", "SIMPLEX", " perlin "} {
		if _, err := ByName(name, 1); err != nil {
			t.Errorf("ByName(%q) = %v", name, err)
		}
	}
	if _, err := ByName("worley", 1); !errors.Is(err, ErrUnknownNoise) {
		t.Errorf("ByName(worley) err = %v, want ErrUnknownNoise", err)
	}
}
