package heuristic

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/internal/rng"
)

// MCSStrategy is Maximum Cardinality Search (spec §4.5): assign the
// permutation right to left, always picking the unlabeled vertex with
// the most already-labeled neighbors.
type MCSStrategy struct{}

func (MCSStrategy) Name() string { return "mcs" }

func (MCSStrategy) BuildPermutation(g *graph.Graph, r *rand.Rand) []int {
	verts := g.Vertices()
	n := len(verts)
	if n == 0 {
		return nil
	}

	perm := make([]int, n)
	labeled := make(map[int]bool, n)
	weight := make(map[int]int, n)

	start := verts[r.Intn(n)]
	perm[n-1] = start
	labeled[start] = true
	for _, u := range g.Neighbors(start) {
		weight[u]++
	}

	for pos := n - 2; pos >= 0; pos-- {
		best := -1
		var candidates []int
		for _, v := range verts {
			if labeled[v] {
				continue
			}
			w := weight[v]
			if w > best {
				best = w
				candidates = candidates[:0]
				candidates = append(candidates, v)
			} else if w == best {
				candidates = append(candidates, v)
			}
		}
		sort.Ints(candidates)
		rng.ShuffleInts(candidates, r)
		chosen := candidates[0]

		perm[pos] = chosen
		labeled[chosen] = true
		for _, u := range g.Neighbors(chosen) {
			if !labeled[u] {
				weight[u]++
			}
		}
	}

	return perm
}
