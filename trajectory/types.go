// Package trajectory defines the Trajectory value, options, and sentinel
// errors for simulation.
package trajectory

import "errors"

// Sentinel errors for trajectory simulation.
var (
	// ErrInvalidLength indicates a non-positive trajectory length.
	ErrInvalidLength = errors.New("trajectory: length must be positive")

	// ErrInvalidModel indicates a nil model or one that failed validation
	// at the Simulate entry point.
	ErrInvalidModel = errors.New("trajectory: invalid model")

	// ErrNilRand indicates Simulate was called without a random source.
	ErrNilRand = errors.New("trajectory: rng is required")
)

// Trajectory is the product of one simulation run. It is created fresh per
// Simulate call and owned exclusively by the caller afterwards.
type Trajectory struct {
	// Observations holds one NObs-channel emission row per step,
	// already passed through the noise strategy.
	Observations [][]float64

	// States holds the hidden-state index visited at each step.
	States []int

	// Dwells holds, per state, the completed dwell run-lengths: the number
	// of consecutive steps the chain spent in that state before moving
	// away. By default the run still in progress at the end of the
	// trajectory is not included (see Options.IncludePartialFinalRun).
	Dwells [][]int
}

// Options contains tunable parameters for Simulate.
type Options struct {
	// Noise transforms each step's emission-rate row into the observed
	// row. Nil means NoNoise.
	Noise NoiseModel

	// IncludePartialFinalRun, when set, flushes the dwell run still in
	// progress at the last step into the final state's dwell list.
	// The default (false) drops it, matching the historical semantics of
	// this generator; with the default, the dwell lists undercount the
	// state sequence by exactly the trailing run.
	IncludePartialFinalRun bool
}

// DefaultOptions returns Options with noiseless emissions and the
// drop-final-run dwell accounting.
func DefaultOptions() Options {
	return Options{Noise: NoNoise{}}
}
