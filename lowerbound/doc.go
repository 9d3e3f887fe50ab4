// Package lowerbound computes cheap lower bounds on a graph's treewidth
// (spec component L): degeneracy, minor-min-width, and a SAT-backed
// clique bound. Every bound returns -1 on failure (empty graph, exhausted
// budget) rather than a panic, so callers can race several bounds and
// keep the best that actually finished.
//
// Degree-bucket bookkeeping follows the teacher's precomputed min-array
// technique from tsp/bound_onetree.go: bucket vertices by current degree
// in a slice-of-slices so repeatedly finding "a minimum-degree vertex"
// never falls back to a linear scan of all vertices.
package lowerbound
