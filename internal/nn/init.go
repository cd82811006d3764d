package nn

import (
	"math"
	"math/rand"
)

// Xavier (Glorot) initialization for weights.
//
// Returns n values drawn from the uniform distribution
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))), which keeps
// activation variance stable across layers for tanh-like nonlinearities.
//
// The random source is passed in explicitly rather than read from global
// state so a run is reproducible from its configured seed.
func Xavier(fanIn, fanOut, n int, rng *rand.Rand) []float64 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	values := make([]float64, n)
	for i := range values {
		values[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return values
}

// Zeros returns n zero values, the usual bias initialization.
func Zeros(n int) []float64 {
	return make([]float64, n)
}
