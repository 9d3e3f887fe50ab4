// Package elimination implements the canonical bridge between a vertex
// permutation and a tree decomposition (spec component E): walking a
// permutation left to right on a mutable working copy of the graph,
// eliminating each head vertex and attaching its bag to the bag of the
// earliest not-yet-eliminated vertex it was adjacent to.
//
// The walk is iterative rather than recursive (design notes: recursion
// depth over the permutation can reach tens of thousands) — bag index i
// is exactly the loop index at which vertex π[i] is processed, so the
// "attach to the bag of the earliest surviving neighbor" step is
// resolved with a flat slice of pending targets instead of unwinding a
// call stack.
package elimination
