package heuristic

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/internal/rng"
)

// GreedyStrategy repeatedly eliminates the surviving vertex minimizing
// score, breaking ties via a seeded shuffle (spec §4.5: "greedy-degree /
// greedy-fill-in").
type GreedyStrategy struct {
	name  string
	score func(g *graph.Graph, v int) int
}

// GreedyDegree scores a vertex by its current degree (min-degree
// heuristic).
func GreedyDegree() *GreedyStrategy {
	return &GreedyStrategy{
		name:  "greedy-degree",
		score: func(g *graph.Graph, v int) int { return g.Degree(v) },
	}
}

// GreedyFillIn scores a vertex by the number of fill edges its
// elimination would introduce (min-fill heuristic).
func GreedyFillIn() *GreedyStrategy {
	return &GreedyStrategy{name: "greedy-fill-in", score: fillInCount}
}

func (g *GreedyStrategy) Name() string { return g.name }

func (g *GreedyStrategy) BuildPermutation(orig *graph.Graph, r *rand.Rand) []int {
	working := orig.Copy()
	n := working.NumVertices()
	perm := make([]int, 0, n)

	for len(perm) < n {
		verts := working.Vertices()
		best := -1
		var candidates []int
		for _, v := range verts {
			s := g.score(working, v)
			if best == -1 || s < best {
				best = s
				candidates = candidates[:0]
				candidates = append(candidates, v)
			} else if s == best {
				candidates = append(candidates, v)
			}
		}
		sort.Ints(candidates)
		rng.ShuffleInts(candidates, r)
		chosen := candidates[0]
		working.EliminateVertex(chosen)
		perm = append(perm, chosen)
	}

	return perm
}

// fillInCount counts the non-adjacent pairs within N(v): the number of
// fill edges eliminating v right now would introduce.
func fillInCount(g *graph.Graph, v int) int {
	nbrs := g.Neighbors(v)
	count := 0
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if !g.IsAdjacent(nbrs[i], nbrs[j]) {
				count++
			}
		}
	}
	return count
}
