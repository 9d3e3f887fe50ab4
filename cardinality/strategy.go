package cardinality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/treewidth/config"
)

// ErrNotATightening is returned by Step when the requested bound does
// not strictly tighten the strategy's current bound.
var ErrNotATightening = errors.New("cardinality: Step requires a strictly smaller k than the current bound")

var errNegativeBound = errors.New("cardinality: k must be >= 0")

// Strategy is the unified at-most-k encoder contract (spec §4.8).
// Init(vars, k) emits the base "at most k of vars are true" encoding.
// Step(k) re-tightens a previously Init'd strategy to a smaller bound,
// reusing whatever auxiliary structure the strategy retained.
type Strategy interface {
	Init(sink ClauseSink, vars []int, k int) error
	Step(sink ClauseSink, k int) error
}

// New builds the Strategy implementation selected by strat.
func New(strat config.CardinalityStrategy) (Strategy, error) {
	switch strat {
	case config.Binomial:
		return &BinomialStrategy{}, nil
	case config.Sequential:
		return &SequentialStrategy{}, nil
	case config.Binary:
		return &BinaryStrategy{}, nil
	case config.Commander:
		return &CommanderStrategy{}, nil
	case config.IncrementalExternal:
		return &ExternalStrategy{}, nil
	default:
		return nil, fmt.Errorf("cardinality: unknown strategy %d", strat)
	}
}
