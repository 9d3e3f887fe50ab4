// Package exact computes a provably optimal tree decomposition by
// encoding "does a width-k decomposition exist?" as a sequence of
// monotonically tightened SAT instances (spec component X).
//
// All three clausal encodings (Base, Improved, Ladder) share one
// variable family: ord[i][j] for i<j means "vertex at position i is
// eliminated before the vertex at position j" in some total order, and
// arc[i][j] means "the elimination order orients a fill edge from i to
// j" (i.e. i is eliminated while adjacent to j). A model's ord variables
// induce a total order on V; decoding that order through the
// elimination engine (package elimination) yields the decomposition
// itself — ord/arc only ever certify that SOME order achieves width k,
// they don't carry the bags.
//
// Base is the Samer-Veith encoding: ord is a full strict total order
// (transitivity enforced on every index-sorted triple), every graph edge
// induces an arc oriented by ord, and the elimination-closure axiom
// propagates arcs through ord explicitly. Improved drops the ord term
// from elimination closure (replacing it with a plain "common
// predecessor implies the two successors are arc-adjacent in one
// direction or the other" clause) at the cost of two extra consistency
// axioms tying arc back to ord. Ladder reuses Improved's axioms
// unchanged but always encodes the per-vertex width constraint with the
// cardinality package's sequential-counter strategy — "ladder" being
// that encoding's other name in the cardinality literature, and the
// encoding family spec §4.6 describes as differing from Improved "by
// clause count/propagation behavior" rather than by axiom.
//
// Embedding (exact/embedding.go) takes a different route entirely: it
// fixes a path-shaped tree topology of n bag slots up front and encodes
// bag membership directly — one boolean per (bag, vertex) pair, an
// interval constraint forcing each vertex's occupied slots to form a
// contiguous run (the standard clausal rendering of subtree
// connectedness along a fixed topology), and a width cardinality
// constraint per slot — rather than deriving bags from an order. It
// never touches the elimination engine, at the cost of a larger, denser
// formula. Because the slots form a path, the smallest width this
// encoding can certify is the graph's pathwidth, which can exceed its
// tree-width; for such graphs the Embedding result is a valid tree
// decomposition but not an optimal one.
package exact
