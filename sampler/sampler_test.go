package sampler_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/hmmgen/sampler"
)

// TestIndex_NilRand verifies that a missing random source errors ErrNilRand.
func TestIndex_NilRand(t *testing.T) {
	_, err := sampler.Index(nil, []float64{1})
	assert.ErrorIs(t, err, sampler.ErrNilRand, "nil rng must error ErrNilRand")
}

// TestIndex_EmptyWeights verifies that an empty vector errors ErrInvalidDistribution.
func TestIndex_EmptyWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := sampler.Index(rng, nil)
	assert.ErrorIs(t, err, sampler.ErrInvalidDistribution, "empty weights must error")
}

// TestIndex_BadWeights covers negative, NaN, infinite and all-zero vectors.
func TestIndex_BadWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for name, weights := range map[string][]float64{
		"negative": {0.5, -0.5, 1.0},
		"nan":      {0.5, math.NaN(), 0.5},
		"inf":      {0.5, math.Inf(1)},
		"allZero":  {0, 0, 0},
	} {
		_, err := sampler.Index(rng, weights)
		assert.ErrorIs(t, err, sampler.ErrInvalidDistribution, "%s weights must error", name)
	}
}

// TestIndex_NeverFailsNearNormalized pins the clamp guarantee: a vector whose
// sum falls slightly short of 1 never errors over many draws, and always
// yields an in-range index.
func TestIndex_NeverFailsNearNormalized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// Three thirds: 3 * (1.0/3.0) != 1 exactly in float64.
	third := 1.0 / 3.0
	weights := []float64{third, third, third}

	for i := 0; i < 10_000; i++ {
		idx, err := sampler.Index(rng, weights)
		require.NoError(t, err, "near-normalized vector must never fail")
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(weights))
	}
}

// TestIndex_ClampsResidueToLastPositive verifies that when the draw lands in
// the rounding residue, the final positive-weight index absorbs it — even
// when a trailing zero weight follows it.
func TestIndex_ClampsResidueToLastPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// Deliberately under-normalized: sum = 0.5, so roughly half of all draws
	// land above the cumulative sum and must clamp onto index 0.
	weights := []float64{0.5, 0}
	for i := 0; i < 1_000; i++ {
		idx, err := sampler.Index(rng, weights)
		require.NoError(t, err)
		assert.Equal(t, 0, idx, "index 1 carries zero weight and must never be drawn")
	}
}

// TestIndex_EmpiricalFrequencies checks convergence of outcome frequencies
// toward the input weights over 10,000 seeded draws.
func TestIndex_EmpiricalFrequencies(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	weights := []float64{0.1, 0.2, 0.7}

	const draws = 10_000
	counts := make([]int, len(weights))
	for i := 0; i < draws; i++ {
		idx, err := sampler.Index(rng, weights)
		require.NoError(t, err)
		counts[idx]++
	}

	for i, w := range weights {
		freq := float64(counts[i]) / draws
		assert.InDelta(t, w, freq, 0.02, "frequency of index %d should approach its weight", i)
	}
}

// TestIndex_Deterministic verifies that identically seeded generators yield
// identical draw sequences.
func TestIndex_Deterministic(t *testing.T) {
	weights := []float64{0.25, 0.25, 0.5}

	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		ia, errA := sampler.Index(a, weights)
		ib, errB := sampler.Index(b, weights)
		require.NoError(t, errA)
		require.NoError(t, errB)
		require.Equal(t, ia, ib, "identically seeded sources must agree at draw %d", i)
	}
}
