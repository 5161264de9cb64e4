package trajectory

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/hmmgen/model"
	"github.com/katalvlaran/hmmgen/sampler"
)

// Simulate drives the Markov chain defined by m for length steps and
// returns the resulting Trajectory.
//
// Validation happens once at entry (length, model); after that the loop
// assumes the model invariants hold and never re-checks per step, since
// length may be large. Given an identically seeded rng and identical
// inputs, the output is bit-identical across calls.
func Simulate(rng *rand.Rand, m *model.Model, length int, opts Options) (*Trajectory, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: model is nil", ErrInvalidModel)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}

	noise := opts.Noise
	if noise == nil {
		noise = NoNoise{}
	}

	traj := &Trajectory{
		Observations: make([][]float64, 0, length),
		States:       make([]int, 0, length),
		Dwells:       make([][]int, m.NStates),
	}
	for s := range traj.Dwells {
		traj.Dwells[s] = []int{}
	}

	state, err := sampler.Index(rng, m.StartProb)
	if err != nil {
		// Unreachable after Validate; kept as a guard against future drift
		// between the model and sampler contracts.
		return nil, fmt.Errorf("%w: start draw: %v", ErrInvalidModel, err)
	}

	dwell := 0
	for i := 0; i < length; i++ {
		traj.States = append(traj.States, state)
		traj.Observations = append(traj.Observations, noise.Observe(rng, m.Emissions.RawRowView(state)))
		dwell++

		next, err := sampler.Index(rng, m.TransProb.RawRowView(state))
		if err != nil {
			return nil, fmt.Errorf("%w: transition draw from state %d: %v", ErrInvalidModel, state, err)
		}
		if next != state {
			traj.Dwells[state] = append(traj.Dwells[state], dwell)
			dwell = 0
		}
		state = next
	}

	// dwell now counts the trailing run of States[length-1]; it is dropped
	// unless the caller opted into the corrected accounting. When the last
	// step transitioned away, dwell is 0 and there is nothing to flush.
	if opts.IncludePartialFinalRun && dwell > 0 {
		last := traj.States[length-1]
		traj.Dwells[last] = append(traj.Dwells[last], dwell)
	}

	return traj, nil
}
