// Package dpll is a dependency-free recursive DPLL SAT solver: unit
// propagation and first-unassigned-variable branching; it does no
// pure-literal elimination. It exists so the exact decomposer has a working solver
// with zero third-party requirements; sat/gophersolver is the backend
// actually selected by default for anything beyond small instances.
//
// The search loop polls its deadline/terminate flag every 4096 node
// expansions — the same "check every N events, not every event" idiom
// this module's branch-and-bound-flavored search uses elsewhere
// (graph.MaximumClique's Bron-Kerbosch budget poll).
package dpll

import (
	"context"
	"sync/atomic"

	"github.com/katalvlaran/treewidth/sat"
)

type state int

const (
	stateInput state = iota
	stateSat
	stateUnsat
)

// Solver implements sat.Solver with a plain recursive DPLL core.
type Solver struct {
	clauses     [][]int
	pending     []int
	numVars     int
	assumptions []int
	model       []int8 // index v: 0 unknown, 1 true, -1 false
	state       state
	terminated  int32
	steps       int
}

// New returns an empty Solver ready to accept clauses.
func New() *Solver {
	return &Solver{state: stateInput}
}

func (s *Solver) Add(lit int) {
	if lit == 0 {
		cl := append([]int(nil), s.pending...)
		s.clauses = append(s.clauses, cl)
		s.pending = s.pending[:0]
		s.state = stateInput
		return
	}
	v := abs(lit)
	if v > s.numVars {
		s.numVars = v
	}
	s.pending = append(s.pending, lit)
	s.state = stateInput
}

func (s *Solver) AddClause(lits ...int) {
	sat.AddClauseViaAdd(s, lits...)
}

func (s *Solver) Assume(lit int) {
	v := abs(lit)
	if v > s.numVars {
		s.numVars = v
	}
	s.assumptions = append(s.assumptions, lit)
	s.state = stateInput
}

func (s *Solver) NewVar() int {
	s.numVars++
	return s.numVars
}

func (s *Solver) NumVars() int {
	return s.numVars
}

func (s *Solver) Terminate() {
	atomic.StoreInt32(&s.terminated, 1)
}

// Solve runs DPLL to a verdict, or returns StatusUnknown if ctx is
// cancelled or Terminate is called before one is reached.
func (s *Solver) Solve(ctx context.Context) sat.Status {
	select {
	case <-ctx.Done():
		return sat.StatusUnknown
	default:
	}

	atomic.StoreInt32(&s.terminated, 0)
	s.steps = 0

	formula := make([][]int, len(s.clauses))
	copy(formula, s.clauses)
	for _, a := range s.assumptions {
		formula = append(formula, []int{a})
	}

	assign := make([]int8, s.numVars+1)
	ok, interrupted := s.search(ctx, formula, assign)
	s.assumptions = nil

	if interrupted {
		s.state = stateInput
		return sat.StatusUnknown
	}
	if ok {
		s.model = assign
		s.state = stateSat
		return sat.StatusSat
	}
	s.state = stateUnsat
	return sat.StatusUnsat
}

func (s *Solver) Val(lit int) bool {
	v := abs(lit)
	if v >= len(s.model) {
		return false
	}
	val := s.model[v] == 1
	if lit < 0 {
		return !val
	}
	return val
}

// Failed reports true for every literal that was asserted as an
// assumption for the call that returned UNSAT — this solver does not
// track a minimal unsatisfiable core, only whole-assumption-set failure.
func (s *Solver) Failed(lit int) bool {
	return s.state == stateUnsat
}

func (s *Solver) interruptCheck(ctx context.Context) bool {
	s.steps++
	if s.steps&4095 != 0 {
		return false
	}
	if atomic.LoadInt32(&s.terminated) == 1 {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// search returns (satisfiable, interrupted).
func (s *Solver) search(ctx context.Context, formula [][]int, assign []int8) (bool, bool) {
	if s.interruptCheck(ctx) {
		return false, true
	}

	formula, ok := unitPropagate(formula, assign)
	if !ok {
		return false, false
	}
	if len(formula) == 0 {
		return true, false
	}

	v := pickUnassigned(assign)
	if v == 0 {
		return true, false
	}

	for _, val := range [2]int8{1, -1} {
		trial := append([][]int(nil), formula...)
		trialAssign := append([]int8(nil), assign...)
		trialAssign[v] = val
		result, interrupted := s.search(ctx, trial, trialAssign)
		if interrupted {
			return false, true
		}
		if result {
			copy(assign, trialAssign)
			return true, false
		}
	}
	return false, false
}

func unitPropagate(formula [][]int, assign []int8) ([][]int, bool) {
	for {
		unit := 0
		for _, cl := range formula {
			lit, isUnit, falsified := evalClauseForUnit(cl, assign)
			if falsified {
				return nil, false
			}
			if isUnit {
				unit = lit
				break
			}
		}
		if unit == 0 {
			break
		}
		v := abs(unit)
		if unit > 0 {
			assign[v] = 1
		} else {
			assign[v] = -1
		}
		var next [][]int
		for _, cl := range formula {
			sat, falsifiedLit := false, false
			var kept []int
			for _, lit := range cl {
				lv := assign[abs(lit)]
				if lv == 0 {
					kept = append(kept, lit)
					continue
				}
				truth := (lv == 1 && lit > 0) || (lv == -1 && lit < 0)
				if truth {
					sat = true
					break
				}
				falsifiedLit = true
			}
			if sat {
				continue
			}
			if len(kept) == 0 && falsifiedLit {
				return nil, false
			}
			next = append(next, kept)
		}
		formula = next
	}
	return formula, true
}

// evalClauseForUnit inspects cl under assign: returns (lit, true, false)
// if cl is a unit clause with exactly one unassigned literal and no
// satisfied literal, or (0, false, true) if cl is fully falsified.
func evalClauseForUnit(cl []int, assign []int8) (int, bool, bool) {
	unassignedCount := 0
	var theLit int
	for _, lit := range cl {
		lv := assign[abs(lit)]
		if lv == 0 {
			unassignedCount++
			theLit = lit
			continue
		}
		truth := (lv == 1 && lit > 0) || (lv == -1 && lit < 0)
		if truth {
			return 0, false, false
		}
	}
	if unassignedCount == 0 {
		return 0, false, true
	}
	if unassignedCount == 1 {
		return theLit, true, false
	}
	return 0, false, false
}

func pickUnassigned(assign []int8) int {
	for v := 1; v < len(assign); v++ {
		if assign[v] == 0 {
			return v
		}
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
