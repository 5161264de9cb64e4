package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// New assembles a Model from explicit parameters and validates it.
//
// The inputs are copied, so the caller may reuse or mutate its slices and
// matrices afterwards without affecting the returned Model.
//
// Returns ErrInvalidShape for dimensional inconsistencies and
// ErrInvalidModel for value-level violations (see Validate).
func New(startProb []float64, transProb, emissions *mat.Dense) (*Model, error) {
	if emissions == nil {
		return nil, fmt.Errorf("%w: emissions matrix is nil", ErrInvalidShape)
	}
	nStates, nObs := emissions.Dims()
	if nStates < 1 || nObs < 1 {
		return nil, fmt.Errorf("%w: emissions matrix is %dx%d", ErrInvalidShape, nStates, nObs)
	}
	if transProb == nil {
		return nil, fmt.Errorf("%w: transition matrix is nil", ErrInvalidShape)
	}

	m := &Model{
		NStates:   nStates,
		NObs:      nObs,
		StartProb: append([]float64(nil), startProb...),
		TransProb: mat.DenseCopyOf(transProb),
		Emissions: mat.DenseCopyOf(emissions),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate re-checks every structural invariant of the Model:
//
//   - StartProb has length NStates; TransProb is NStates×NStates;
//     Emissions is NStates×NObs (ErrInvalidShape otherwise);
//   - StartProb and every TransProb row are non-negative, finite, and sum
//     to 1 within Tolerance; every emission rate is non-negative and
//     finite (ErrInvalidModel otherwise).
//
// Consumers validate once at their public entry point and assume the
// invariants hold thereafter.
func (m *Model) Validate() error {
	if m.NStates < 1 || m.NObs < 1 {
		return fmt.Errorf("%w: NStates=%d, NObs=%d", ErrInvalidShape, m.NStates, m.NObs)
	}
	if len(m.StartProb) != m.NStates {
		return fmt.Errorf("%w: len(StartProb)=%d, want %d", ErrInvalidShape, len(m.StartProb), m.NStates)
	}
	if m.TransProb == nil {
		return fmt.Errorf("%w: transition matrix is nil", ErrInvalidShape)
	}
	if r, c := m.TransProb.Dims(); r != m.NStates || c != m.NStates {
		return fmt.Errorf("%w: transition matrix is %dx%d, want %dx%d", ErrInvalidShape, r, c, m.NStates, m.NStates)
	}
	if m.Emissions == nil {
		return fmt.Errorf("%w: emissions matrix is nil", ErrInvalidShape)
	}
	if r, c := m.Emissions.Dims(); r != m.NStates || c != m.NObs {
		return fmt.Errorf("%w: emissions matrix is %dx%d, want %dx%d", ErrInvalidShape, r, c, m.NStates, m.NObs)
	}

	if err := checkDistribution(m.StartProb); err != nil {
		return fmt.Errorf("%w: StartProb: %v", ErrInvalidModel, err)
	}
	for i := 0; i < m.NStates; i++ {
		if err := checkDistribution(m.TransProb.RawRowView(i)); err != nil {
			return fmt.Errorf("%w: TransProb row %d: %v", ErrInvalidModel, i, err)
		}
	}
	for i := 0; i < m.NStates; i++ {
		for j := 0; j < m.NObs; j++ {
			if v := m.Emissions.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return fmt.Errorf("%w: Emissions[%d,%d] = %v", ErrInvalidModel, i, j, v)
			}
		}
	}

	return nil
}

// Clone returns a deep copy. Useful when a trainer mutates its model
// in place and a pristine reference copy must survive.
func (m *Model) Clone() *Model {
	return &Model{
		NStates:   m.NStates,
		NObs:      m.NObs,
		StartProb: append([]float64(nil), m.StartProb...),
		TransProb: mat.DenseCopyOf(m.TransProb),
		Emissions: mat.DenseCopyOf(m.Emissions),
	}
}

// checkDistribution verifies one probability vector: entries finite and
// non-negative, sum within Tolerance of 1.
func checkDistribution(p []float64) error {
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("entry %d = %v", i, v)
		}
	}
	if s := floats.Sum(p); math.Abs(s-1) > Tolerance {
		return fmt.Errorf("sums to %v", s)
	}

	return nil
}
