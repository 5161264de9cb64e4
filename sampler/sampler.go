package sampler

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Index — categorical draw over a weight vector.
//
// Description:
//
//	Index selects one index in [0, len(weights)) with probability
//	proportional to weights[i]. The weights are intended to sum to 1;
//	vectors whose sum falls slightly short of 1 due to floating-point
//	rounding are legitimate inputs and never fail.
//
// Algorithm Outline:
//  1. Validate: rng non-nil; weights non-empty; every entry finite and
//     non-negative; at least one entry positive.
//  2. Draw a uniform r in [0, 1).
//  3. Walk the weights accumulating a running sum; return the first index
//     whose cumulative sum exceeds r.
//  4. If rounding residue exhausts the walk (sum < 1 and r landed in the
//     residue), return the last index with positive weight.
//
// Step 4 is what makes a near-normalized vector safe: the draw is clamped
// onto the final positive outcome instead of failing.
//
// Complexity:
//
//	Time = O(n), Memory = O(1).
func Index(rng *rand.Rand, weights []float64) (int, error) {
	if rng == nil {
		return 0, ErrNilRand
	}
	if len(weights) == 0 {
		return 0, fmt.Errorf("%w: empty weight vector", ErrInvalidDistribution)
	}

	// Validate once; the walk below assumes clean weights.
	last := -1 // last index carrying positive weight, the clamp target
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, fmt.Errorf("%w: weight[%d] = %v", ErrInvalidDistribution, i, w)
		}
		if w > 0 {
			last = i
		}
	}
	if last < 0 {
		return 0, fmt.Errorf("%w: all weights are zero", ErrInvalidDistribution)
	}

	r := rng.Float64()
	cum := 0.0
	for i, w := range weights {
		cum += w
		if r < cum {
			return i, nil
		}
	}

	// r fell into the rounding residue above the cumulative sum.
	return last, nil
}
