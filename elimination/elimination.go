package elimination

import (
	"fmt"

	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
)

// Decompose turns permutation perm (a vertex ordering of g) into a
// TreeDecomposition tagged with quality, following spec §4.3:
//
//  1. Walk perm left to right on a working copy of g.
//  2. For the current head v, the bag is {v} ∪ N_working(v); eliminate v
//     (fill N(v) into a clique, then delete v).
//  3. Attach the new bag to the bag of the earliest not-yet-eliminated
//     vertex w that was in N_working(v) at the moment of elimination
//     (i.e. the first later position in perm whose vertex is adjacent to
//     v); if v had no such neighbor (v starts a new component in perm's
//     order), the bag is left unattached and ConnectComponents stitches
//     it in afterward.
//
// Returns an error if perm is not a permutation of exactly g's vertices.
//
// Determinism: identical g and perm always produce a bit-identical
// decomposition (bag contents and tree-edge set).
//
// Complexity: O(n) eliminations, each O(deg^2); O(n) total for the
// attachment resolution pass.
func Decompose(g *graph.Graph, perm []int, quality config.Quality) (*decomposition.TreeDecomposition, error) {
	if err := validatePermutation(g, perm); err != nil {
		return nil, err
	}

	td := decomposition.New(g, true)
	n := len(perm)
	if n == 0 {
		return td, nil
	}

	working := g.Copy()
	pos := make(map[int]int, n)
	for i, v := range perm {
		pos[v] = i
	}

	// attachTo[i] is the vertex id bag i should attach to, or -1 if none
	// (resolved to a bag index, not a vertex id, once all bags exist —
	// every target vertex's own bag index equals its position in perm).
	attachTo := make([]int, n)

	for i, v := range perm {
		bag := working.EliminateVertex(v)

		target := -1
		for _, u := range bag {
			if u == v {
				continue
			}
			if pos[u] > i && (target == -1 || pos[u] < pos[target]) {
				target = u
			}
		}
		if target == -1 {
			attachTo[i] = -1
		} else {
			attachTo[i] = pos[target]
		}

		td.CreateBag(bag)
	}

	for i, target := range attachTo {
		if target == -1 {
			continue
		}
		td.AddTreeEdge(i, target)
	}

	td.ConnectComponents()
	_ = quality // quality is carried by the caller's bookkeeping; TreeDecomposition itself only tracks fromPermutation.

	return td, nil
}

func validatePermutation(g *graph.Graph, perm []int) error {
	verts := g.Vertices()
	if len(perm) != len(verts) {
		return fmt.Errorf("elimination: permutation has %d vertices, graph has %d", len(perm), len(verts))
	}
	seen := make(map[int]bool, len(perm))
	for _, v := range perm {
		if seen[v] {
			return fmt.Errorf("elimination: permutation contains duplicate vertex %d", v)
		}
		seen[v] = true
	}
	for _, v := range verts {
		if !seen[v] {
			return fmt.Errorf("elimination: permutation is missing graph vertex %d", v)
		}
	}
	return nil
}
