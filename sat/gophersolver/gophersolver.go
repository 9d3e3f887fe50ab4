// Package gophersolver adapts github.com/crillab/gophersat/solver's CDCL
// solver to the sat.Solver contract. gophersat builds an immutable
// solver.Problem from a batch of pseudo-boolean constraints rather than
// accepting clauses incrementally after a Solve, so this adapter
// accumulates constraints across calls and rebuilds a fresh
// solver.Problem + solver.Solver on every Solve — the formula grows
// monotonically (callers only ever add clauses or tighten an existing
// at-most-k), so re-parsing is wasted work, not wrong work.
//
// solver.Var is 0-indexed internally; Var.Int() yields the 1-indexed
// signed-literal form this module's IPASIR-style convention already
// uses, so translating a literal is just a var-id shift through it.
package gophersolver

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/treewidth/sat"
)

type state int

const (
	stateInput state = iota
	stateSat
	stateUnsat
)

type atMostEntry struct {
	vars []int
	k    int
}

// Solver adapts gophersat's solver.Solver to sat.Solver and additionally
// implements cardinality.PBSink via AddAtMostKNative.
type Solver struct {
	numVars     int
	pending     []int
	constrs     []solver.PBConstr
	atMosts     map[string]atMostEntry
	atMostOrder []string
	assumptions []int
	model       []bool
	state       state
	terminated  int32
}

// New returns an empty Solver.
func New() *Solver {
	return &Solver{atMosts: make(map[string]atMostEntry)}
}

func (s *Solver) NewVar() int {
	s.numVars++
	return s.numVars
}

func (s *Solver) NumVars() int {
	return s.numVars
}

func (s *Solver) translate(lit int) int {
	v := abs(lit)
	if v > s.numVars {
		s.numVars = v
	}
	theirLit := int(solver.Var(v - 1).Int())
	if lit < 0 {
		return -theirLit
	}
	return theirLit
}

func (s *Solver) Add(lit int) {
	s.pending = append(s.pending, lit)
	if lit == 0 {
		lits := make([]int, 0, len(s.pending)-1)
		for _, l := range s.pending[:len(s.pending)-1] {
			lits = append(lits, s.translate(l))
		}
		s.constrs = append(s.constrs, solver.PropClause(lits...))
		s.pending = s.pending[:0]
	}
}

func (s *Solver) AddClause(lits ...int) {
	translated := make([]int, len(lits))
	for i, l := range lits {
		translated[i] = s.translate(l)
	}
	s.constrs = append(s.constrs, solver.PropClause(translated...))
}

// AddAtMostKNative satisfies cardinality.PBSink: repeated calls with the
// same vars slice (by content) retighten the same constraint in place —
// this is how ExternalStrategy.Step behaves — while a new vars slice
// registers an independent constraint.
func (s *Solver) AddAtMostKNative(vars []int, k int) bool {
	key := fmt.Sprint(vars)
	if _, exists := s.atMosts[key]; !exists {
		s.atMostOrder = append(s.atMostOrder, key)
	}
	s.atMosts[key] = atMostEntry{vars: vars, k: k}
	return true
}

func (s *Solver) Assume(lit int) {
	s.assumptions = append(s.assumptions, lit)
}

func (s *Solver) Terminate() {
	atomic.StoreInt32(&s.terminated, 1)
}

func (s *Solver) Failed(lit int) bool {
	return s.state == stateUnsat
}

func (s *Solver) Val(lit int) bool {
	v := abs(lit) - 1
	if v < 0 || v >= len(s.model) {
		return false
	}
	val := s.model[v]
	if lit < 0 {
		return !val
	}
	return val
}

// Solve rebuilds a gophersat Problem from every clause and at-most-k
// constraint accumulated so far (plus this call's single-shot
// assumptions) and runs it to completion on a background goroutine;
// ctx cancellation or Terminate abandons waiting on that goroutine
// rather than truly interrupting gophersat mid-search, since the
// upstream solver exposes no cooperative cancellation hook.
func (s *Solver) Solve(ctx context.Context) sat.Status {
	select {
	case <-ctx.Done():
		return sat.StatusUnknown
	default:
	}
	atomic.StoreInt32(&s.terminated, 0)

	constrs := append([]solver.PBConstr(nil), s.constrs...)
	for _, lit := range s.assumptions {
		constrs = append(constrs, solver.PropClause(s.translate(lit)))
	}
	for _, key := range s.atMostOrder {
		e := s.atMosts[key]
		lits := make([]int, len(e.vars))
		for i, v := range e.vars {
			lits[i] = s.translate(v)
		}
		constrs = append(constrs, solver.AtMost(lits, e.k))
	}
	s.assumptions = nil

	prob := solver.ParsePBConstrs(constrs)
	inner := solver.New(prob)

	type result struct {
		status solver.Status
		model  []bool
	}
	done := make(chan result, 1)
	go func() {
		st := inner.Solve()
		done <- result{status: st, model: inner.Model()}
	}()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case r := <-done:
			switch r.status {
			case solver.Sat:
				s.model = r.model
				s.state = stateSat
				return sat.StatusSat
			case solver.Unsat:
				s.state = stateUnsat
				return sat.StatusUnsat
			default:
				s.state = stateInput
				return sat.StatusUnknown
			}
		case <-ctx.Done():
			s.state = stateInput
			return sat.StatusUnknown
		case <-ticker.C:
			if atomic.LoadInt32(&s.terminated) == 1 {
				s.state = stateInput
				return sat.StatusUnknown
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
