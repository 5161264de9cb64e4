// Package sampler draws discrete outcomes from probability-weight vectors.
//
// What:
//
//   - Index picks one index in [0, len(weights)) with probability
//     proportional to its weight, consuming a single uniform draw from an
//     injected generator.
//
// Why:
//
//   - Categorical draws are the primitive behind every stochastic step of a
//     Markov chain: initial-state selection and per-step transitions.
//
// Guarantees:
//
//   - The cumulative-sum walk clamps its final comparison, so a weight
//     vector summing to 1 ± ε (floating-point rounding residue) always
//     yields a valid index — the walk can never run off the end of a
//     near-normalized vector.
//
// Complexity:
//
//   - Index: O(n) time, O(1) memory (n = len(weights)).
//
// Errors:
//
//   - ErrInvalidDistribution: empty weights, a negative or NaN weight, or an
//     all-zero vector.
//   - ErrNilRand: no random source supplied.
package sampler
