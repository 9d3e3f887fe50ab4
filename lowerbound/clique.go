package lowerbound

import (
	"errors"
	"time"

	"github.com/katalvlaran/treewidth/graph"
)

// ErrCliqueBudgetExhausted is returned when budget elapses before any
// clique at all is found, and also for a graph with no vertices; callers
// fall back to a weaker bound.
var ErrCliqueBudgetExhausted = errors.New("lowerbound: clique search exhausted its budget")

// CliqueLowerBound bounds treewidth below by |clique| - 1 (spec §4.4): any
// bag containing a clique must contain every vertex of it. budget caps
// the Bron-Kerbosch search; a zero budget means unbounded.
func CliqueLowerBound(g *graph.Graph, budget time.Duration) (int, error) {
	clique := g.MaximumClique(budget)
	if len(clique) == 0 {
		return -1, ErrCliqueBudgetExhausted
	}
	return len(clique) - 1, nil
}
