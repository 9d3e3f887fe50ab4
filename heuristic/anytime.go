package heuristic

import (
	"sync"

	"github.com/katalvlaran/treewidth/decomposition"
)

// AnytimeTracker holds the best decomposition observed so far across an
// anytime search (spec §4.5: "Anytime contract"). Safe for concurrent
// Publish/GetCurrentSolution from a parallel worker pool.
type AnytimeTracker struct {
	mu    sync.Mutex
	best  *decomposition.TreeDecomposition
	width int
}

// NewAnytimeTracker returns an empty tracker.
func NewAnytimeTracker() *AnytimeTracker {
	return &AnytimeTracker{width: -1}
}

// Publish records td if it strictly improves on the best width seen so
// far.
func (a *AnytimeTracker) Publish(td *decomposition.TreeDecomposition) {
	w := td.Width()
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.best == nil || w < a.width {
		a.best = td
		a.width = w
	}
}

// GetCurrentSolution returns the best decomposition published so far, or
// nil if none has been.
func (a *AnytimeTracker) GetCurrentSolution() *decomposition.TreeDecomposition {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.best
}
