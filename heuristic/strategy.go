package heuristic

import (
	"math/rand"

	"github.com/katalvlaran/treewidth/graph"
)

// Strategy builds a vertex permutation for g, consuming r for every
// tie-break so identical (g, r-state) pairs are bit-stable.
type Strategy interface {
	BuildPermutation(g *graph.Graph, r *rand.Rand) []int
	Name() string
}
