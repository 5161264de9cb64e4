// Package trajectory simulates observation sequences from a discrete-state
// stochastic model: the hidden-state stream, the (optionally noised)
// emission stream, and per-state dwell-time statistics.
//
// What:
//
//   - Simulate drives the Markov chain defined by a model.Model for a fixed
//     number of steps, returning a Trajectory.
//   - Emission noise is a pluggable NoiseModel strategy: NoNoise emits the
//     raw per-state rates, PoissonNoise replaces each channel with an
//     independent Poisson count at that channel's rate.
//   - Summarize reduces a Trajectory to per-state and per-channel summary
//     statistics for histogramming and plotting collaborators.
//
// Why:
//
//   - HMM training algorithms are validated against synthetic sequences
//     with known ground truth; this package is the generator of those
//     bounded-length test sequences (photon-counting / FRET-style series).
//
// Algorithm (per Simulate call):
//
//  1. Validate once: length > 0, model passes model.Validate. Internal
//     steps then assume the invariants and never re-check.
//  2. Sample the initial state from StartProb.
//  3. Per step: record the state; pass its emission-rate row through the
//     noise strategy and record the result; bump the running dwell counter;
//     sample the next state from the state's transition row; on a state
//     change, flush the counter into Dwells[state] and reset it.
//  4. The run still in progress when the trajectory ends is dropped — a
//     deliberate modeling decision, kept from the system this generator
//     reproduces. Options.IncludePartialFinalRun flushes it instead, as an
//     explicitly separate mode.
//
// Complexity:
//
//   - Simulate: O(L × NStates) time, O(L × NObs + NStates) memory.
//
// Errors:
//
//   - ErrInvalidLength: non-positive length.
//   - ErrInvalidModel: nil model, or model fails validation at entry.
//   - ErrNilRand: no random source supplied.
//
// The random source is an explicit *rand.Rand parameter: independent
// generators never interfere, a fixed seed reproduces a run bit-for-bit,
// and tests inject deterministic sequences.
package trajectory
