package trajectory_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/hmmgen/model"
	"github.com/katalvlaran/hmmgen/trajectory"
)

// benchmarkSimulate runs Simulate over a random nStates-state model for
// trajectories of the given length.
func benchmarkSimulate(b *testing.B, nStates, length int, noise trajectory.NoiseModel) {
	rng := rand.New(rand.NewSource(1))
	m, err := model.Random(rng, nStates, 2, model.DefaultRandomOptions())
	if err != nil {
		b.Fatalf("Random failed: %v", err)
	}

	opts := trajectory.DefaultOptions()
	opts.Noise = noise

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := trajectory.Simulate(rng, m, length, opts); err != nil {
			b.Fatalf("Simulate failed: %v", err)
		}
	}
}

// BenchmarkSimulate_ShortClean benchmarks a 1k-step noiseless run.
func BenchmarkSimulate_ShortClean(b *testing.B) {
	benchmarkSimulate(b, 6, 1_000, trajectory.NoNoise{})
}

// BenchmarkSimulate_ShortPoisson benchmarks a 1k-step Poisson-noised run.
func BenchmarkSimulate_ShortPoisson(b *testing.B) {
	benchmarkSimulate(b, 6, 1_000, trajectory.PoissonNoise{})
}

// BenchmarkSimulate_LongClean benchmarks a 100k-step noiseless run, the
// sequence length the training harness typically generates.
func BenchmarkSimulate_LongClean(b *testing.B) {
	benchmarkSimulate(b, 6, 100_000, trajectory.NoNoise{})
}

// BenchmarkSimulate_LongPoisson benchmarks a 100k-step Poisson-noised run.
func BenchmarkSimulate_LongPoisson(b *testing.B) {
	benchmarkSimulate(b, 6, 100_000, trajectory.PoissonNoise{})
}
