// Package decomposition implements the TreeDecomposition data structure
// (spec component D): an arena of bags plus a tree of bag-indices over
// them, with on-demand structural validation and a PACE text writer.
//
// Bags and the decomposition that owns them would naturally form a
// cyclic reference (bag -> decomposition, decomposition -> bags); this is
// resolved with an arena: bags live in a single []*Bag slice owned by the
// TreeDecomposition, and tree edges are stored as adjacency between bag
// indices rather than pointers, per the design notes.
package decomposition
