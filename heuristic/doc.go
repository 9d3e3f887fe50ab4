// Package heuristic implements the anytime upper-bound portfolio (spec
// component H): greedy-degree, greedy-fill-in, Maximum Cardinality
// Search, and a tabu local search over permutations. Every strategy
// produces a permutation; elimination.Decompose turns it into a
// TreeDecomposition and reports its width.
//
// Tie-breaking throughout is a seeded shuffle of the tied candidate set
// (internal/rng.ShuffleInts) rather than map iteration order, so runs
// with the same seed are bit-stable.
package heuristic
