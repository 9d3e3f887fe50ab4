package lowerbound

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/internal/rng"
)

// MinorMinWidth computes the Gogate–Dechter minor-min-width bound, a
// lower bound at least as tight as Degeneracy (spec §4.4): repeatedly
// remove a minimum-degree vertex v, but instead of simply deleting it,
// contract it into a minimum-degree neighbor so later rounds see the
// minor, not just the induced subgraph. r breaks ties among
// equally-minimal vertices v and among equally-minimal neighbors u; pass
// nil for a fixed deterministic (smallest-id) tie-break.
//
// Complexity: O(n^2) — this package favors a tight bound over the
// asymptotics Degeneracy gets from bucket bookkeeping.
func MinorMinWidth(g *graph.Graph, r *rand.Rand) (int, error) {
	verts := g.Vertices()
	n := len(verts)
	if n == 0 {
		return -1, ErrEmptyGraph
	}

	adj := make(map[int]map[int]struct{}, n)
	alive := make(map[int]bool, n)
	for _, v := range verts {
		nbrs := g.Neighbors(v)
		set := make(map[int]struct{}, len(nbrs))
		for _, u := range nbrs {
			set[u] = struct{}{}
		}
		adj[v] = set
		alive[v] = true
	}

	best := 0
	remaining := n
	for remaining > 0 {
		minDeg := -1
		for v, a := range alive {
			if !a {
				continue
			}
			if d := len(adj[v]); minDeg == -1 || d < minDeg {
				minDeg = d
			}
		}

		candidates := make([]int, 0, remaining)
		for v, a := range alive {
			if a && len(adj[v]) == minDeg {
				candidates = append(candidates, v)
			}
		}
		sort.Ints(candidates)
		if r != nil {
			rng.ShuffleInts(candidates, r)
		}
		minV := candidates[0]

		if minDeg > best {
			best = minDeg
		}
		if minDeg == 0 {
			alive[minV] = false
			remaining--
			continue
		}

		nbrs := make([]int, 0, len(adj[minV]))
		for u := range adj[minV] {
			nbrs = append(nbrs, u)
		}
		sort.Ints(nbrs)
		if r != nil {
			rng.ShuffleInts(nbrs, r)
		}

		target, targetDeg := -1, -1
		for _, u := range nbrs {
			d := len(adj[u])
			if targetDeg == -1 || d < targetDeg {
				targetDeg = d
				target = u
			}
		}

		contractInto(adj, minV, target)
		alive[minV] = false
		remaining--
	}

	return best, nil
}

// contractInto merges v's neighborhood into u and removes v, mirroring
// graph.Graph.Contract's semantics on the package-local adjacency copy.
func contractInto(adj map[int]map[int]struct{}, v, u int) {
	for w := range adj[v] {
		if w == u {
			continue
		}
		delete(adj[w], v)
		adj[u][w] = struct{}{}
		adj[w][u] = struct{}{}
	}
	delete(adj[u], v)
	delete(adj, v)
}
