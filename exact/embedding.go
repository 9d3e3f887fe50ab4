package exact

import (
	"context"

	"github.com/katalvlaran/treewidth/cardinality"
	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/sat"
)

// solveEmbedding implements config.EncodingEmbedding: a direct bag
// encoding over a fixed n-node path topology, searched by tightening k
// the same way the ord/arc encoders do (see package doc).
func solveEmbedding(ctx context.Context, g *graph.Graph, cfg *config.Config, ub int, newSolver func() sat.Solver) (*decomposition.TreeDecomposition, error) {
	verts := g.Vertices()
	n := len(verts)
	if n == 0 {
		return decomposition.New(g, false), nil
	}
	if ub <= 0 || ub >= n {
		ub = n - 1
	}

	var best *decomposition.TreeDecomposition
	for k := ub; k >= 0; k-- {
		td, ok := tryEmbeddingWidth(ctx, g, verts, k, cfg.CardStrategy, newSolver())
		if !ok {
			break
		}
		best = td
	}
	if best == nil {
		return trivialDecomposition(g), nil
	}
	return best, nil
}

// tryEmbeddingWidth asks: does a width-k decomposition with n bag slots
// laid out on a path exist? mem[i][p] means "bag i holds the vertex at
// position p".
func tryEmbeddingWidth(ctx context.Context, g *graph.Graph, verts []int, k int, cardStrat config.CardinalityStrategy, s sat.Solver) (*decomposition.TreeDecomposition, bool) {
	n := len(verts)
	idx := make(map[int]int, n)
	for i, v := range verts {
		idx[v] = i
	}

	mem := make([][]int, n)
	for i := range mem {
		mem[i] = make([]int, n)
		for p := range mem[i] {
			mem[i][p] = s.NewVar()
		}
	}

	// Coverage: every vertex sits in at least one bag.
	for p := 0; p < n; p++ {
		lits := make([]int, n)
		for i := 0; i < n; i++ {
			lits[i] = mem[i][p]
		}
		s.AddClause(lits...)
	}

	// Edge coverage: every edge shares some bag, via a Tseitin variable
	// per (bag, edge) pair standing for "this bag holds both endpoints".
	for _, e := range g.Edges() {
		up, vp := idx[e[0]], idx[e[1]]
		lits := make([]int, n)
		for i := 0; i < n; i++ {
			y := s.NewVar()
			s.AddClause(-y, mem[i][up])
			s.AddClause(-y, mem[i][vp])
			s.AddClause(-mem[i][up], -mem[i][vp], y)
			lits[i] = y
		}
		s.AddClause(lits...)
	}

	// Connectedness: each vertex's occupied slots form a contiguous run
	// along the path (the interval/window rendering of subtree
	// connectedness for a fixed topology).
	for p := 0; p < n; p++ {
		for i := 0; i < n; i++ {
			for l := i + 2; l < n; l++ {
				for j := i + 1; j < l; j++ {
					s.AddClause(-mem[i][p], -mem[l][p], mem[j][p])
				}
			}
		}
	}

	// Width: at most k+1 vertices per bag.
	for i := 0; i < n; i++ {
		strat, err := cardinality.New(cardStrat)
		if err != nil {
			return nil, false
		}
		if err := strat.Init(s, mem[i], k+1); err != nil {
			return nil, false
		}
	}

	if s.Solve(ctx) != sat.StatusSat {
		return nil, false
	}

	td := decomposition.New(g, false)
	for i := 0; i < n; i++ {
		var bag []int
		for p := 0; p < n; p++ {
			if s.Val(mem[i][p]) {
				bag = append(bag, verts[p])
			}
		}
		td.CreateBag(bag)
	}
	for i := 0; i+1 < n; i++ {
		td.AddTreeEdge(i, i+1)
	}
	return td, true
}
