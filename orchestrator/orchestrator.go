package orchestrator

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/elimination"
	"github.com/katalvlaran/treewidth/exact"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/heuristic"
	"github.com/katalvlaran/treewidth/internal/rng"
	"github.com/katalvlaran/treewidth/internal/xlog"
	"github.com/katalvlaran/treewidth/lowerbound"
	"github.com/katalvlaran/treewidth/sat"
	"github.com/katalvlaran/treewidth/sat/dpll"
	"github.com/katalvlaran/treewidth/sat/gophersolver"
)

// Result is the outcome of a full Decompose run.
type Result struct {
	Decomposition *decomposition.TreeDecomposition
	Quality       config.Quality
	LowerBound    int
}

// newSolverFactory returns the sat.Solver constructor cfg.SolverBackend
// selects.
func newSolverFactory(cfg *config.Config) func() sat.Solver {
	if cfg.SolverBackend == config.BackendDPLL {
		return func() sat.Solver { return dpll.New() }
	}
	return func() sat.Solver { return gophersolver.New() }
}

// Decompose runs the pipeline described in the package doc. ctx governs
// the whole run; cfg.TimeBudget, if set, additionally bounds it.
func Decompose(ctx context.Context, g *graph.Graph, cfg *config.Config) (*Result, error) {
	if cfg.TimeBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.TimeBudget)
		defer cancel()
	}
	log := xlog.New(cfg.Log)

	if g.NumVertices() == 0 {
		return &Result{Decomposition: decomposition.New(g, false), Quality: config.Exact, LowerBound: -1}, nil
	}

	handle := cfg.RNG()
	tracker := heuristic.NewAnytimeTracker()

	var lb int
	if cfg.Parallel {
		grp, gctx := errgroup.WithContext(ctx)
		grp.Go(func() error {
			lb = computeLowerBound(g, cfg, handle)
			return nil
		})
		grp.Go(func() error {
			runHeuristicPortfolio(gctx, g, cfg, handle, tracker, log)
			return nil
		})
		_ = grp.Wait()
	} else {
		lb = computeLowerBound(g, cfg, handle)
		runHeuristicPortfolio(ctx, g, cfg, handle, tracker, log)
	}

	best := tracker.GetCurrentSolution()
	if best == nil {
		td, err := elimination.Decompose(g, g.Vertices(), config.Heuristic)
		if err != nil {
			return nil, err
		}
		best = td
	}
	log.Commentf("heuristic portfolio settled at width %d", best.Width())

	if cfg.Heuristic {
		return &Result{Decomposition: best, Quality: config.Heuristic, LowerBound: lb}, nil
	}
	if lb >= 0 && lb >= best.Width() {
		// The heuristic already matches the lower bound: provably
		// optimal without paying for the SAT search at all.
		return &Result{Decomposition: best, Quality: config.Exact, LowerBound: lb}, nil
	}

	newSolver := newSolverFactory(cfg)
	td, err := exact.Solve(ctx, g, cfg, best.Width(), newSolver)

	// Open Question 3 (spec §9): a verdict observed after cancellation
	// was requested is discarded in favor of the best-known
	// decomposition, never reported as optimal.
	if ctx.Err() != nil {
		log.Commentf("exact search cancelled, reporting heuristic best")
		return &Result{Decomposition: best, Quality: config.Heuristic, LowerBound: lb}, nil
	}
	if err != nil || td == nil || td.Width() > best.Width() {
		return &Result{Decomposition: best, Quality: config.Heuristic, LowerBound: lb}, nil
	}

	log.Commentf("exact search confirmed width %d", td.Width())
	return &Result{Decomposition: td, Quality: config.Exact, LowerBound: lb}, nil
}

// computeLowerBound takes the strongest of the three cheap bounds;
// errors (empty graph, exhausted clique budget) just drop that bound's
// contribution.
func computeLowerBound(g *graph.Graph, cfg *config.Config, handle *rng.Handle) int {
	best := -1
	if d, err := lowerbound.Degeneracy(g); err == nil && d > best {
		best = d
	}
	if m, err := lowerbound.MinorMinWidth(g, handle.Derive("minorminwidth")); err == nil && m > best {
		best = m
	}
	if c, err := lowerbound.CliqueLowerBound(g, cfg.CliqueBudget); err == nil && c > best {
		best = c
	}
	return best
}

// runHeuristicPortfolio runs every heuristic strategy, each followed by
// a tabu-search refinement pass, bounded by cfg.Workers concurrent
// workers; every improvement is published to tracker as it's found.
func runHeuristicPortfolio(ctx context.Context, g *graph.Graph, cfg *config.Config, handle *rng.Handle, tracker *heuristic.AnytimeTracker, log *xlog.Logger) {
	strategies := []heuristic.Strategy{
		heuristic.GreedyDegree(),
		heuristic.GreedyFillIn(),
		heuristic.MCSStrategy{},
	}

	runStrategy := func(ctx context.Context, i int, strat heuristic.Strategy) {
		select {
		case <-ctx.Done():
			return
		default:
		}

		seedRand := handle.Derive(strat.Name())
		perm := strat.BuildPermutation(g, seedRand)
		td, err := elimination.Decompose(g, perm, config.Heuristic)
		if err != nil {
			return
		}
		tracker.Publish(td)
		log.Statusf(td.Width(), time.Now().UnixMilli())

		ts := heuristic.NewTabuLocalSearch(cfg)
		ts.Run(g, perm, handle.DeriveIndex(i), func(p []int, width int) {
			refined, err := elimination.Decompose(g, p, config.Heuristic)
			if err != nil {
				return
			}
			tracker.Publish(refined)
			log.Statusf(refined.Width(), time.Now().UnixMilli())
		})
	}

	if !cfg.Parallel {
		// Sequential, deterministic order: every tie between strategies
		// is broken by this fixed ordering, never by goroutine scheduling.
		for i, strat := range strategies {
			runStrategy(ctx, i, strat)
		}
		return
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i, strat := range strategies {
		i, strat := i, strat
		grp.Go(func() error {
			runStrategy(gctx, i, strat)
			return nil
		})
	}
	_ = grp.Wait()
}
