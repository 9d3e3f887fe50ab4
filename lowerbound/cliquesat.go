package lowerbound

import (
	"context"

	"github.com/katalvlaran/treewidth/cardinality"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/sat"
)

// CliqueLowerBoundSAT finds a maximum clique via incremental SAT search
// (spec §4.4: "Clique via SAT"): one boolean variable per vertex, a
// clause ¬u∨¬v forbidding every non-edge pair from being selected
// together, and an at-least-k cardinality constraint over all vertex
// variables tightened upward from k=1 until the formula turns UNSAT.
// The last satisfiable k is the clique size found; the bound returned
// is k-1.
//
// newSolver is called once to build the backing solver; strat supplies
// the cardinality encoding (its Init/Step are driven directly, so the
// same Strategy value must not be reused across calls).
func CliqueLowerBoundSAT(ctx context.Context, g *graph.Graph, newSolver func() sat.Solver, strat cardinality.Strategy) (int, error) {
	verts := g.Vertices()
	n := len(verts)
	if n == 0 {
		return -1, ErrEmptyGraph
	}

	s := newSolver()
	vars := make([]int, n)
	for i := range verts {
		vars[i] = s.NewVar()
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.IsAdjacent(verts[i], verts[j]) {
				s.AddClause(-vars[i], -vars[j])
			}
		}
	}

	negated := cardinality.Negate(vars)
	best := 0
	for k := 1; k <= n; k++ {
		atMostBound := n - k
		var err error
		if k == 1 {
			err = strat.Init(s, negated, atMostBound)
		} else {
			err = strat.Step(s, atMostBound)
		}
		if err != nil {
			return best - 1, err
		}
		if s.Solve(ctx) != sat.StatusSat {
			break
		}
		best = k
	}

	return best - 1, nil
}
