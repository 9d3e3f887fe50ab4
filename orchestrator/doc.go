// Package orchestrator drives a full decomposition run (spec component
// O): read a graph, compute a lower bound and an upper-bound heuristic
// portfolio, then dispatch to the exact SAT pipeline unless the caller
// opted out, always returning the best decomposition found — even on
// cancellation or solver failure.
//
// cfg.Parallel selects between the two modes spec.md names as distinct
// binaries: when false, the lower bound and the heuristic portfolio run
// sequentially, and the portfolio's three strategies run one after
// another in a fixed order — so with a fixed seed the result is
// bit-stable, since no goroutine-scheduling race can decide a tie. When
// true, lb/ub run concurrently and the portfolio fans out across
// cfg.Workers goroutines via golang.org/x/sync/errgroup (spec §5, §9),
// the same fan-out/fan-in helper this module's dependency-graph lineage
// uses for concurrent SAT and graph work, rather than hand-rolled
// sync.WaitGroup bookkeeping.
package orchestrator
