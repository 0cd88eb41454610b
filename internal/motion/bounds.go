package motion

import (
	"fmt"
	"math"
)

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

// Clamp returns v limited to the range.
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Bounds is the rectangle an orb's center is allowed to move within.
type Bounds struct {
	X, Y Range
}

// ComputeBounds returns the movement bounds for a viewport. Orbs only travel
// vertically: the horizontal extent is a single point at the viewport's
// center, and the vertical extent is centered on h/2.5.
func ComputeBounds(width, height float64) (Bounds, error) {
	if err := validateDimensions(width, height); err != nil {
		return Bounds{}, err
	}

	const maxDistX = 0.0
	maxDistY := height / tallTravelDivisor
	if height < shortViewportHeight {
		maxDistY = height / shortTravelDivisor
	}

	originX := width / 2
	originY := height / originYDivisor
	return Bounds{
		X: Range{Min: originX - maxDistX, Max: originX + maxDistX},
		Y: Range{Min: originY - maxDistY, Max: originY + maxDistY},
	}, nil
}

func validateDimensions(width, height float64) error {
	for _, d := range []float64{width, height} {
		if !(d > 0) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: %vx%v", ErrInvalidDimension, width, height)
		}
	}
	return nil
}
