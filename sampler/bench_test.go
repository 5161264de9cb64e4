package sampler_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/hmmgen/sampler"
)

// benchmarkIndex draws repeatedly from a uniform vector of n weights.
func benchmarkIndex(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1))
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampler.Index(rng, weights); err != nil {
			b.Fatalf("Index failed: %v", err)
		}
	}
}

// BenchmarkIndex_Small draws from a 4-state vector.
func BenchmarkIndex_Small(b *testing.B) { benchmarkIndex(b, 4) }

// BenchmarkIndex_Medium draws from a 64-state vector.
func BenchmarkIndex_Medium(b *testing.B) { benchmarkIndex(b, 64) }

// BenchmarkIndex_Large draws from a 1024-state vector.
func BenchmarkIndex_Large(b *testing.B) { benchmarkIndex(b, 1024) }
