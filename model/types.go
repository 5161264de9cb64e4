// Package model defines the Model value, options, and sentinel errors.
package model

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for model construction and validation.
var (
	// ErrInvalidShape indicates empty or dimensionally inconsistent
	// parameters: a nil or zero-sized emission matrix, a StartProb whose
	// length differs from NStates, or a non-square TransProb.
	ErrInvalidShape = errors.New("model: invalid parameter dimensions")

	// ErrInvalidModel indicates parameter values that fail validation:
	// a negative, NaN or non-finite entry, or a probability vector/row
	// whose sum deviates from 1 by more than Tolerance.
	ErrInvalidModel = errors.New("model: invalid probability parameters")

	// ErrNilRand indicates a stochastic constructor was called without a
	// random source.
	ErrNilRand = errors.New("model: rng is required")
)

// Tolerance is the permitted absolute deviation of a probability vector's
// sum from 1. Vectors produced by normalizing uniform draws land well
// inside it; anything beyond it is a construction bug, not rounding.
const Tolerance = 1e-9

// DefaultMaxEmission is the exclusive upper bound for randomly drawn
// integer emission rates, sized to a photon-count scale.
const DefaultMaxEmission = 1500

// Model is a discrete-state stochastic model: NStates hidden states, each
// emitting an NObs-channel signal. Constructed by New or the Random*
// factories and immutable afterwards — callers must treat every field as
// read-only. Use Clone before handing a copy to anything that mutates.
type Model struct {
	// NStates is the number of hidden states.
	NStates int
	// NObs is the number of observable channels per state.
	NObs int
	// StartProb holds the initial-state distribution, length NStates.
	StartProb []float64
	// TransProb is the NStates×NStates row-stochastic transition matrix.
	TransProb *mat.Dense
	// Emissions is the NStates×NObs matrix of non-negative emission rates.
	Emissions *mat.Dense
}

// RandomOptions contains tunable parameters for the Random constructor.
type RandomOptions struct {
	// MaxEmission is the exclusive upper bound for uniformly drawn integer
	// emission rates. Values ≤ 0 fall back to DefaultMaxEmission.
	MaxEmission int
}

// DefaultRandomOptions returns RandomOptions with MaxEmission set to
// DefaultMaxEmission.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{MaxEmission: DefaultMaxEmission}
}
