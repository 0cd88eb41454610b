// Package noise provides the coherent noise sources that drive orb motion.
package noise

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"github.com/irfansharif/orbs/internal/motion"
)

// ErrUnknownNoise is returned by ByName for an unrecognized source name.
var ErrUnknownNoise = errors.New("unknown noise source")

const (
	Simplex = "simplex"
	Perlin  = "perlin"
)

// Names lists the available noise sources, default first.
var Names = []string{Simplex, Perlin}

// Perlin parameters: smoothing, frequency and octave count.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

type simplexSource struct {
	noise opensimplex.Noise
}

// NewSimplex returns OpenSimplex noise for the given seed.
func NewSimplex(seed int64) motion.Noise {
	return simplexSource{noise: opensimplex.New(seed)}
}

func (s simplexSource) Eval2(x, y float64) float64 {
	return clamp(s.noise.Eval2(x, y))
}

type perlinSource struct {
	noise *perlin.Perlin
}

// NewPerlin returns multi-octave Perlin noise for the given seed. Octave sums
// can overshoot [-1, 1] slightly, so the output is clamped.
func NewPerlin(seed int64) motion.Noise {
	return perlinSource{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

func (p perlinSource) Eval2(x, y float64) float64 {
	return clamp(p.noise.Noise2D(x, y))
}

// ByName returns the named noise source; the empty string selects the
// default (simplex).
func ByName(name string, seed int64) (motion.Noise, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Simplex:
		return NewSimplex(seed), nil
	case Perlin:
		return NewPerlin(seed), nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownNoise, name, strings.Join(Names, ", "))
	}
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
