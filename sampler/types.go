// Package sampler defines sentinel errors for categorical sampling.
package sampler

import "errors"

// Sentinel errors for sampler operations.
var (
	// ErrInvalidDistribution indicates a malformed weight vector: empty,
	// containing a negative or NaN entry, or all zeros.
	ErrInvalidDistribution = errors.New("sampler: invalid probability weights")

	// ErrNilRand indicates a stochastic call was made without a random source.
	ErrNilRand = errors.New("sampler: rng is required")
)
