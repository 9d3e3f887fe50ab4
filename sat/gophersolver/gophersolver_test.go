package gophersolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/sat"
	"github.com/katalvlaran/treewidth/sat/gophersolver"
)

func TestSolvesSimpleSatisfiableFormula(t *testing.T) {
	r := require.New(t)
	s := gophersolver.New()
	v1 := s.NewVar()
	v2 := s.NewVar()
	s.AddClause(v1, v2)
	s.AddClause(-v1, v2)
	s.AddClause(v1, -v2)

	status := s.Solve(context.Background())
	r.Equal(sat.StatusSat, status)
	r.True(s.Val(v1))
	r.True(s.Val(v2))
}

func TestDetectsUnsatisfiableFormula(t *testing.T) {
	r := require.New(t)
	s := gophersolver.New()
	v1 := s.NewVar()
	s.AddClause(v1)
	s.AddClause(-v1)

	r.Equal(sat.StatusUnsat, s.Solve(context.Background()))
}

func TestAddAtMostKNativeRetightensSameConstraint(t *testing.T) {
	r := require.New(t)
	s := gophersolver.New()
	vars := []int{s.NewVar(), s.NewVar(), s.NewVar()}

	r.True(s.AddAtMostKNative(vars, 2))
	r.Equal(sat.StatusSat, s.Solve(context.Background()))

	r.True(s.AddAtMostKNative(vars, 0))
	r.Equal(sat.StatusSat, s.Solve(context.Background()))
	for _, v := range vars {
		r.False(s.Val(v))
	}
}
