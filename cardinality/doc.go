// Package cardinality implements the at-most-k / at-least-k clausal
// encoders shared by the exact SAT decomposer's width constraint and the
// clique-via-SAT lower bound (spec component C): Binomial, Sequential
// counter (Sinz), Binary (Bailleux-Boufkhad, via a balanced totalizer),
// Commander, and an IncrementalExternal adapter over a solver's own
// pseudo-boolean constraint builder.
//
// Every strategy implements the same two-call incremental-tightening
// contract: Init lays down the base encoding at the starting bound k;
// Step re-tightens to a strictly smaller k. Strategies documented as
// non-incremental (Binomial, Commander) simply discard their prior state
// and re-emit a full encoding from scratch on every Step — correct, just
// not clause-count-optimal across repeated tightenings.
//
// At-least-k is not a separate code path: "at least k of vars true" is
// De Morgan-equivalent to "at most len(vars)-k of the negated vars
// true", so callers needing it negate their literals and invert k
// themselves (see Negate).
package cardinality
