// Package model builds and validates discrete-state stochastic models:
// an initial-state distribution, a row-stochastic transition matrix, and
// per-state emission rate parameters.
//
// What:
//
//   - Model wraps the three parameter blocks as a single validated value,
//     constructed once and treated as read-only afterwards.
//   - New validates explicit parameters; Random, RandomFromEmissions and
//     RandomFromRates draw structurally valid models at random, biased
//     toward self-transition, for use as synthetic-data generators.
//
// Why:
//
//   - HMM training harnesses need ground-truth models to generate test
//     sequences from, and randomly initialized models to train; both must
//     be valid distributions or downstream algorithms silently misbehave.
//
// Construction of a random model, given an NStates×NObs emission matrix:
//
//  1. StartProb: NStates independent uniform draws, normalized by their sum.
//  2. TransProb row i: draw a stay probability s in [0,1); draw NStates
//     uniforms scaled by s; overwrite position i with s itself; normalize.
//     The diagonal is stochastically favored but not guaranteed dominant —
//     the only guarantee is that each row is a valid distribution.
//  3. Assemble and validate.
//
// Complexity:
//
//   - Random*: O(NStates² + NStates×NObs) time and memory.
//   - Validate: O(NStates² + NStates×NObs) time, O(1) memory.
//
// Errors:
//
//   - ErrInvalidShape: empty or dimensionally inconsistent parameters.
//   - ErrInvalidModel: a probability vector/row fails the non-negativity or
//     normalization tolerance check, or an emission rate is negative.
//   - ErrNilRand: a stochastic constructor called without a random source.
//
// Matrices are gonum *mat.Dense values so that a training collaborator can
// consume them without conversion loss.
package model
