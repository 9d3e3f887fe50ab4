// Package sat defines the solver abstraction the exact decomposer's SAT
// encoders drive (spec component S): an IPASIR-shaped three-state
// machine (INPUT, SAT, UNSAT) with Add/Assume/Solve/Val/Failed/
// Terminate; each backend's New constructor takes the place of init. Two backends implement it — sat/dpll, a dependency-free
// recursive DPLL solver, and sat/gophersolver, an adapter over
// github.com/crillab/gophersat/solver's CDCL implementation.
package sat

import "context"

// Status is a solver's outcome, numbered to match the IPASIR convention
// used across SAT tooling (10 = SAT, 20 = UNSAT, 0 = unknown/interrupted).
type Status int

const (
	StatusUnknown Status = 0
	StatusSat     Status = 10
	StatusUnsat   Status = 20
)

func (s Status) String() string {
	switch s {
	case StatusSat:
		return "SAT"
	case StatusUnsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Solver is the IPASIR-style incremental SAT solver contract (spec
// §4.7). A literal is a nonzero int: positive for the variable id,
// negative for its negation.
//
// State transitions: Add and Assume always return to (or stay in)
// INPUT. Solve moves to SAT, UNSAT, or back to INPUT if interrupted
// before a verdict. Val is only meaningful right after a SAT Solve;
// Failed only right after an UNSAT one.
type Solver interface {
	// Add appends lit to the clause under construction; lit == 0 closes
	// it and asserts it against the formula.
	Add(lit int)

	// AddClause asserts the disjunction of lits in one call, satisfying
	// cardinality.ClauseSink.
	AddClause(lits ...int)

	// Assume registers a single-shot unit assumption consumed by the
	// next Solve call only.
	Assume(lit int)

	// Solve runs the solver to a verdict or until ctx is done / Terminate
	// is called, whichever comes first.
	Solve(ctx context.Context) Status

	// Val reports lit's truth value in the last SAT model. Undefined
	// outside a SAT state.
	Val(lit int) bool

	// Failed reports whether the assumption lit participated in the last
	// UNSAT core. Undefined outside an UNSAT state.
	Failed(lit int) bool

	// Terminate requests the in-flight Solve call to abort cooperatively.
	// Solve clears the request on entry, so a Terminate issued before
	// Solve starts has no effect. Safe to call concurrently from another
	// goroutine.
	Terminate()

	// NumVars reports the highest variable id introduced so far via Add
	// or NewVar.
	NumVars() int

	// NewVar allocates and returns a fresh variable id, satisfying
	// cardinality.ClauseSink.
	NewVar() int
}

// AddClauseViaAdd is shared by backends whose native API is the
// IPASIR Add(lit)/Add(0) form: it replays lits through Add, followed by
// the closing 0.
func AddClauseViaAdd(s Solver, lits ...int) {
	for _, l := range lits {
		s.Add(l)
	}
	s.Add(0)
}
