package model

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Random builds a random model with the given number of states and
// observable channels, drawing integer emission rates uniformly in
// [0, opts.MaxEmission) before delegating to RandomFromEmissions.
func Random(rng *rand.Rand, nStates, nObs int, opts RandomOptions) (*Model, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if nStates < 1 || nObs < 1 {
		return nil, fmt.Errorf("%w: nStates=%d, nObs=%d", ErrInvalidShape, nStates, nObs)
	}

	maxEmission := opts.MaxEmission
	if maxEmission <= 0 {
		maxEmission = DefaultMaxEmission
	}

	emissions := mat.NewDense(nStates, nObs, nil)
	for i := 0; i < nStates; i++ {
		for j := 0; j < nObs; j++ {
			emissions.Set(i, j, float64(rng.Intn(maxEmission)))
		}
	}

	return RandomFromEmissions(rng, emissions)
}

// RandomFromRates builds a random model from a flat vector of per-state
// emission rates, treated as an NStates×1 matrix (one observable channel).
func RandomFromRates(rng *rand.Rand, rates []float64) (*Model, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: empty rate vector", ErrInvalidShape)
	}

	emissions := mat.NewDense(len(rates), 1, append([]float64(nil), rates...))

	return RandomFromEmissions(rng, emissions)
}

// RandomFromEmissions builds a random model around a caller-supplied
// NStates×NObs emission matrix:
//
//   - StartProb: NStates uniform draws in [0,1), normalized by their sum.
//   - TransProb row i: a stay probability s drawn uniformly in [0,1);
//     NStates uniform draws each scaled by s; position i overwritten with
//     s itself; the row normalized by its sum. Scaling the off-diagonal
//     mass by s biases each row toward self-transition without
//     guaranteeing a dominant diagonal.
//
// The emission matrix is copied; the result passes full validation before
// being returned. Given an identically seeded rng, the output is
// bit-identical across calls.
func RandomFromEmissions(rng *rand.Rand, emissions *mat.Dense) (*Model, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if emissions == nil {
		return nil, fmt.Errorf("%w: emissions matrix is nil", ErrInvalidShape)
	}
	nStates, nObs := emissions.Dims()
	if nStates < 1 || nObs < 1 {
		return nil, fmt.Errorf("%w: emissions matrix is %dx%d", ErrInvalidShape, nStates, nObs)
	}

	startProb := make([]float64, nStates)
	for i := range startProb {
		startProb[i] = rng.Float64()
	}
	floats.Scale(1/floats.Sum(startProb), startProb)

	transProb := mat.NewDense(nStates, nStates, nil)
	row := make([]float64, nStates)
	for i := 0; i < nStates; i++ {
		stay := rng.Float64()
		for j := range row {
			row[j] = stay * rng.Float64()
		}
		row[i] = stay
		floats.Scale(1/floats.Sum(row), row)
		transProb.SetRow(i, row)
	}

	return New(startProb, transProb, emissions)
}
