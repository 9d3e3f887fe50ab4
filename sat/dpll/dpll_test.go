package dpll_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/sat"
	"github.com/katalvlaran/treewidth/sat/dpll"
)

func TestSolvesSimpleSatisfiableFormula(t *testing.T) {
	r := require.New(t)
	s := dpll.New()
	// (x1 ∨ x2) ∧ (¬x1 ∨ x2) ∧ (x1 ∨ ¬x2) -- satisfied by x1=x2=true
	s.AddClause(1, 2)
	s.AddClause(-1, 2)
	s.AddClause(1, -2)

	status := s.Solve(context.Background())
	r.Equal(sat.StatusSat, status)
	r.True(s.Val(1))
	r.True(s.Val(2))
}

func TestDetectsUnsatisfiableFormula(t *testing.T) {
	r := require.New(t)
	s := dpll.New()
	s.AddClause(1)
	s.AddClause(-1)

	status := s.Solve(context.Background())
	r.Equal(sat.StatusUnsat, status)
}

func TestAssumeIsSingleShot(t *testing.T) {
	r := require.New(t)
	s := dpll.New()
	s.AddClause(1, 2)

	s.Assume(-1)
	s.Assume(-2)
	r.Equal(sat.StatusUnsat, s.Solve(context.Background()))

	// assumptions were single-shot; without them the clause is satisfiable again
	r.Equal(sat.StatusSat, s.Solve(context.Background()))
}

func TestContextCancellationInterruptsSolve(t *testing.T) {
	s := dpll.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.AddClause(1)

	status := s.Solve(ctx)
	require.Equal(t, sat.StatusUnknown, status)
}

func TestNewVarAllocatesIncreasingIds(t *testing.T) {
	r := require.New(t)
	s := dpll.New()
	v1 := s.NewVar()
	v2 := s.NewVar()
	r.Equal(v1+1, v2)
	r.Equal(v2, s.NumVars())
}
