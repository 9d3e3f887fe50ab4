// Package graph implements the mutable, simple, undirected graph that the
// elimination-order engine, heuristics, and exact decomposer all operate
// on (spec component G).
//
// Vertices carry an int identity (the PACE/DIMACS front-end is the only
// practical producer of graphs in this module, so the generic vertex
// identity described by the design notes is specialized directly to int
// rather than routed through a comparable-vertex trait).
//
// Concurrency: a single sync.RWMutex guards the adjacency structure.
// Mutating decomposers each own an exclusive Copy of the input graph, so
// contention in practice is limited to concurrent read-only queries (e.g.
// lower-bound and upper-bound computation racing over the same graph
// before either one takes its working copy).
//
// Invariants: no self-loops, no parallel edges, adjacency is always
// symmetric. Structural mutation referencing a missing vertex is a
// programmer error and panics with a diagnostic; all query operations
// are total and never panic.
package graph
