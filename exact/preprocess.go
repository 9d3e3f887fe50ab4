package exact

import "github.com/katalvlaran/treewidth/graph"

// Preprocess strips simplicial vertices from g, repeating until none
// remain. A vertex is simplicial when its neighborhood already forms a
// clique: eliminating it adds no fill edges, so it never hurts the
// optimal width to eliminate it first and it never needs the SAT search
// to reason about it at all (grounded on Jdrasil's SimplicialRule /
// Bodlaender's classic "remove a simplicial vertex" reduction, recovered
// from original_source since the distilled spec dropped it).
//
// Returns the reduced graph (the induced subgraph on the vertices that
// remain), the elimination order of the stripped vertices (always a
// valid prefix of some optimal order for the whole graph), and the
// largest bag size that prefix alone forces.
func Preprocess(g *graph.Graph) (reduced *graph.Graph, prefix []int, floorBagSize int) {
	working := g.Copy()
	for {
		progressed := false
		for _, v := range working.Vertices() {
			if !working.HasVertex(v) {
				continue // already eliminated earlier in this pass
			}
			if !isSimplicial(working, v) {
				continue
			}
			bagSize := working.Degree(v) + 1
			if bagSize > floorBagSize {
				floorBagSize = bagSize
			}
			working.EliminateVertex(v)
			prefix = append(prefix, v)
			progressed = true
		}
		if !progressed {
			break
		}
	}
	return working, prefix, floorBagSize
}

func isSimplicial(g *graph.Graph, v int) bool {
	nbrs := g.Neighbors(v)
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if !g.IsAdjacent(nbrs[i], nbrs[j]) {
				return false
			}
		}
	}
	return true
}
