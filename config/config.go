// Package config carries the immutable run-time configuration threaded
// explicitly through every constructor in this module, replacing the
// global parameter map and process-wide RNG the source implementation
// relied on (spec §9: "Global mutable state").
package config

import (
	"io"
	"time"

	"github.com/katalvlaran/treewidth/internal/rng"
)

// Quality tags the decomposition a decomposer produces.
type Quality int

const (
	// Heuristic marks a decomposition with no optimality guarantee.
	Heuristic Quality = iota
	// Exact marks a decomposition proven optimal by the SAT pipeline.
	Exact
)

func (q Quality) String() string {
	if q == Exact {
		return "exact"
	}
	return "heuristic"
}

// Encoding selects the exact decomposer's SAT encoding (-e flag).
type Encoding int

const (
	// EncodingBase is the Samer-Veith base encoder.
	EncodingBase Encoding = iota
	// EncodingImproved replaces the closure axioms with the tighter set.
	EncodingImproved
	// EncodingLadder is a clause-count/propagation variant of Improved.
	EncodingLadder
	// EncodingEmbedding is the direct bag-embedding encoding over a
	// path of bag slots.
	EncodingEmbedding
)

// CardinalityStrategy selects a cardinality-encoder implementation (C).
type CardinalityStrategy int

const (
	// Binomial emits Θ(n^(k+1)) clauses, no auxiliary variables.
	Binomial CardinalityStrategy = iota
	// Sequential is the monotone-tightening sequential counter.
	Sequential
	// Binary is the Bailleux-Boufkhad encoding.
	Binary
	// Commander is the commander-variable encoding.
	Commander
	// IncrementalExternal delegates to the SAT backend's own
	// pseudo-boolean constraint builder (PBLib-style).
	IncrementalExternal
)

// SolverBackend selects the SAT solver implementation (S).
type SolverBackend int

const (
	// BackendDPLL uses the built-in, dependency-free DPLL solver.
	BackendDPLL SolverBackend = iota
	// BackendGophersat uses the gophersat CDCL solver (a module dependency).
	BackendGophersat
)

// Config is passed by pointer into constructors across the module. It is
// never mutated after construction; callers that need a variant build a
// new Config via With* helpers.
type Config struct {
	// Seed feeds internal/rng.New; 0 normalizes to a fixed default.
	Seed int64

	// Workers bounds the parallel worker pool size. <= 0 means
	// runtime.GOMAXPROCS(0).
	Workers int

	// TabuQueueLen is the tabu-search recency-queue capacity (spec §9:
	// Open Question 2). Default 7, preserved from the literature.
	TabuQueueLen int

	// TabuRounds and TabuSteps bound the local-search budget (spec
	// §4.5: R rounds of up to S steps).
	TabuRounds int
	TabuSteps  int

	// Encoding selects the exact SAT encoding family.
	Encoding Encoding

	// CardStrategy selects the cardinality-encoder family.
	CardStrategy CardinalityStrategy

	// SolverBackend selects the SAT solver implementation.
	SolverBackend SolverBackend

	// CliqueBudget bounds getMaximumClique's time/size budget.
	CliqueBudget time.Duration

	// TimeBudget is the overall soft deadline for a single decomposition
	// run; zero means unbounded (the caller's context still governs
	// cancellation).
	TimeBudget time.Duration

	// Heuristic, when true, makes the orchestrator skip the exact
	// pipeline entirely and return the best heuristic decomposition.
	Heuristic bool

	// Parallel enables the parallel heuristic portfolio / concurrent
	// lb-ub computation.
	Parallel bool

	// Log receives comment-log lines when non-nil (-log flag).
	Log io.Writer
}

// Default returns the module's baseline configuration.
func Default() *Config {
	return &Config{
		Seed:          0,
		Workers:       0,
		TabuQueueLen:  7,
		TabuRounds:    64,
		TabuSteps:     64,
		Encoding:      EncodingImproved,
		CardStrategy:  Sequential,
		SolverBackend: BackendGophersat,
		CliqueBudget:  2 * time.Second,
	}
}

// RNG builds the rng.Handle this Config's Seed implies. Each call returns
// a fresh Handle over the same deterministic seed.
func (c *Config) RNG() *rng.Handle {
	return rng.New(c.Seed)
}
