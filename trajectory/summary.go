package trajectory

import "gonum.org/v1/gonum/stat"

// StateSummary aggregates one state's share of a trajectory.
type StateSummary struct {
	// Visits counts steps the chain spent in the state.
	Visits int
	// DwellCount counts completed dwell runs.
	DwellCount int
	// DwellMean and DwellStdDev describe the completed run lengths.
	// Zero when fewer than one (respectively two) runs completed.
	DwellMean   float64
	DwellStdDev float64
}

// ChannelSummary aggregates one observation channel across a trajectory.
type ChannelSummary struct {
	Mean   float64
	StdDev float64
}

// Summary holds per-state and per-channel statistics of one trajectory,
// in the flat numeric form a plotting collaborator consumes.
type Summary struct {
	States   []StateSummary
	Channels []ChannelSummary
}

// Summarize reduces the trajectory to summary statistics: per-state
// occupancy and dwell moments, per-channel observation moments.
func (t *Trajectory) Summarize() Summary {
	s := Summary{States: make([]StateSummary, len(t.Dwells))}

	for _, state := range t.States {
		s.States[state].Visits++
	}
	for state, runs := range t.Dwells {
		s.States[state].DwellCount = len(runs)
		if len(runs) == 0 {
			continue
		}
		lengths := make([]float64, len(runs))
		for i, r := range runs {
			lengths[i] = float64(r)
		}
		s.States[state].DwellMean = stat.Mean(lengths, nil)
		if len(lengths) > 1 {
			s.States[state].DwellStdDev = stat.StdDev(lengths, nil)
		}
	}

	if len(t.Observations) == 0 {
		return s
	}
	nObs := len(t.Observations[0])
	s.Channels = make([]ChannelSummary, nObs)
	for c := 0; c < nObs; c++ {
		col := t.Channel(c)
		s.Channels[c].Mean = stat.Mean(col, nil)
		if len(col) > 1 {
			s.Channels[c].StdDev = stat.StdDev(col, nil)
		}
	}

	return s
}

// Channel flattens one observation channel into a fresh []float64, the
// shape histogramming collaborators expect.
func (t *Trajectory) Channel(c int) []float64 {
	col := make([]float64, len(t.Observations))
	for i, row := range t.Observations {
		col[i] = row[c]
	}

	return col
}

// StateCounts returns the per-state occupancy of the state sequence.
func (t *Trajectory) StateCounts() []int {
	counts := make([]int, len(t.Dwells))
	for _, state := range t.States {
		counts[state]++
	}

	return counts
}
