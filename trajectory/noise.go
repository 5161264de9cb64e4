package trajectory

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NoiseModel transforms a per-state emission-rate row into the observed
// row for one simulation step. Implementations must return a fresh slice
// and must not retain or mutate rates.
type NoiseModel interface {
	Observe(rng *rand.Rand, rates []float64) []float64
}

// NoNoise emits the raw rate row unchanged (copied).
type NoNoise struct{}

// Observe returns a copy of rates.
func (NoNoise) Observe(_ *rand.Rand, rates []float64) []float64 {
	return append([]float64(nil), rates...)
}

// PoissonNoise replaces each channel with an independent Poisson count
// using that channel's rate as λ, modeling shot noise on photon counts.
// A zero rate always observes zero.
type PoissonNoise struct{}

// Observe draws one Poisson count per channel.
func (PoissonNoise) Observe(rng *rand.Rand, rates []float64) []float64 {
	out := make([]float64, len(rates))
	for i, lambda := range rates {
		out[i] = distuv.Poisson{Lambda: lambda, Src: rng}.Rand()
	}

	return out
}
