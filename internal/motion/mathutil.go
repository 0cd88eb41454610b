package motion

import "math/rand"

// Map linearly remaps n from [a0, a1] onto [b0, b1]. a0 == a1 is a caller
// error and yields NaN or ±Inf.
func Map(n, a0, a1, b0, b1 float64) float64 {
	return (n-a0)/(a1-a0)*(b1-b0) + b0
}

// RandomIn returns a uniform value in [min, max). It returns min when the
// range is empty.
func RandomIn(r *rand.Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}
