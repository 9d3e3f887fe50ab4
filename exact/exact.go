package exact

import (
	"context"
	"sort"

	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/elimination"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/sat"
)

// Solve computes a provably optimal tree decomposition of g (spec
// component X). ub is the best upper bound already known (typically
// from the heuristic portfolio or a lower-bound routine); the SAT search
// starts there and tightens until UNSAT.
//
// On any solver failure — an empty clique/twin pass notwithstanding —
// Solve falls back to the trivial one-bag decomposition rather than
// erroring, since that is always a valid (if useless) upper bound (spec
// §4.6: "Error handling").
func Solve(ctx context.Context, g *graph.Graph, cfg *config.Config, ub int, newSolver func() sat.Solver) (*decomposition.TreeDecomposition, error) {
	if g.NumVertices() == 0 {
		return decomposition.New(g, false), nil
	}
	if cfg.Encoding == config.EncodingEmbedding {
		return solveEmbedding(ctx, g, cfg, ub, newSolver)
	}

	reduced, prefix, floor := Preprocess(g)
	if reduced.NumVertices() == 0 {
		return elimination.Decompose(g, prefix, config.Exact)
	}

	n := reduced.NumVertices()
	remainderUB := ub
	if remainderUB <= 0 || remainderUB >= n {
		remainderUB = n - 1
	}

	s := newSolver()
	enc := newEncoder(reduced, s, cfg.Encoding)
	enc.buildClosure()

	clique := reduced.MaximumClique(cfg.CliqueBudget)
	enc.breakCliqueSymmetry(clique)
	for _, class := range reduced.TwinDecomposition() {
		enc.breakTwinSymmetry(class)
	}

	k := remainderUB
	if err := enc.initWidthConstraint(cfg.CardStrategy, k); err != nil {
		return trivialFallback(g, prefix, floor)
	}

	var lastPerm []int
	for {
		status := s.Solve(ctx)
		if status != sat.StatusSat {
			break
		}
		lastPerm = enc.extractPermutation(s)
		k--
		if k < 0 {
			break
		}
		if err := enc.tightenWidthConstraint(k); err != nil {
			break
		}
	}

	if lastPerm == nil {
		return trivialFallback(g, prefix, floor)
	}

	fullPerm := append(append([]int(nil), prefix...), lastPerm...)
	td, err := elimination.Decompose(g, fullPerm, config.Exact)
	if err != nil {
		return trivialFallback(g, prefix, floor)
	}
	return td, nil
}

// trivialFallback prefers prefix ++ (whatever's left in arbitrary
// order) over a single all-vertex bag when the simplicial preprocessing
// pass already made progress, since that is still a strictly better
// upper bound in general; it falls back further to the single-bag
// decomposition only if even that fails to validate.
//
// floor is Preprocess's largest forced bag size: once it already reaches
// g.NumVertices(), some prefix vertex's bag already spans the entire
// graph, so prefix ++ rest cannot beat (and costs strictly more to
// build than) the single all-vertex bag — skip straight to it.
func trivialFallback(g *graph.Graph, prefix []int, floor int) (*decomposition.TreeDecomposition, error) {
	if floor >= g.NumVertices() {
		return trivialDecomposition(g), nil
	}
	if len(prefix) > 0 && len(prefix) < g.NumVertices() {
		remaining := make(map[int]bool)
		for _, v := range g.Vertices() {
			remaining[v] = true
		}
		for _, v := range prefix {
			remaining[v] = false
		}
		rest := make([]int, 0, g.NumVertices()-len(prefix))
		for _, v := range g.Vertices() {
			if remaining[v] {
				rest = append(rest, v)
			}
		}
		perm := append(append([]int(nil), prefix...), rest...)
		if td, err := elimination.Decompose(g, perm, config.Exact); err == nil {
			return td, nil
		}
	}
	return trivialDecomposition(g), nil
}

func trivialDecomposition(g *graph.Graph) *decomposition.TreeDecomposition {
	td := decomposition.New(g, false)
	if g.NumVertices() == 0 {
		return td
	}
	td.CreateBag(g.Vertices())
	return td
}

// extractPermutation sorts the encoder's positions by the total order
// the solved model's ord variables induce, then maps back to vertex ids.
func (e *encoder) extractPermutation(s sat.Solver) []int {
	n := e.vt.n
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if i == j {
			return false
		}
		return s.Val(e.vt.ordLit(i, j))
	})
	perm := make([]int, n)
	for pos, i := range order {
		perm[pos] = e.vt.verts[i]
	}
	return perm
}
