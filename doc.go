// Package hmmgen generates synthetic trajectories from discrete-state
// Markov processes with stochastic emissions — ground-truth test data for
// validating hidden-Markov-model training algorithms (photon-counting /
// FRET-style time series).
//
// 🎲 What is hmmgen?
//
//	A small, pure, in-memory library that brings together:
//		• Categorical sampling: one draw from a probability-weight vector
//		• Random model construction: valid start/transition/emission blocks
//		• Trajectory simulation: observation stream, hidden-state stream,
//		  and per-state dwell-time statistics, with pluggable count noise
//
// ✨ Why choose hmmgen?
//
//   - Deterministic by construction – every stochastic call takes an
//     explicit seedable generator handle; a fixed seed reproduces a run
//     bit-for-bit, and independent generators never interfere
//   - Validated models – distributions are checked once at construction,
//     then trusted; malformed inputs fail fast with sentinel errors
//   - gonum-native – matrices and statistics use gonum types, so training
//     and plotting collaborators consume results without conversion
//
// Everything is organized under three subpackages:
//
//	sampler/    — categorical draws over weight vectors
//	model/      — the validated Model value and its random factories
//	trajectory/ — the simulation loop, noise strategies, summaries
//
// Training (Baum-Welch, likelihood scoring) and plotting are external
// collaborators: this library hands them plain gonum matrices and flat
// numeric sequences and never calls into them.
package hmmgen
