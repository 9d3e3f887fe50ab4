package lowerbound_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/cardinality"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/lowerbound"
	"github.com/katalvlaran/treewidth/sat"
	"github.com/katalvlaran/treewidth/sat/dpll"
)

func k4() *graph.Graph {
	g := graph.New()
	vs := []int{1, 2, 3, 4}
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			g.AddEdge(vs[i], vs[j])
		}
	}
	return g
}

func path5() *graph.Graph {
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	return g
}

func TestDegeneracyOnPathIsOne(t *testing.T) {
	r := require.New(t)
	d, err := lowerbound.Degeneracy(path5())
	r.NoError(err)
	r.Equal(1, d)
}

func TestDegeneracyOnK4IsThree(t *testing.T) {
	r := require.New(t)
	d, err := lowerbound.Degeneracy(k4())
	r.NoError(err)
	r.Equal(3, d)
}

func TestDegeneracyEmptyGraph(t *testing.T) {
	_, err := lowerbound.Degeneracy(graph.New())
	require.ErrorIs(t, err, lowerbound.ErrEmptyGraph)
}

func TestMinorMinWidthOnK4IsThree(t *testing.T) {
	r := require.New(t)
	w, err := lowerbound.MinorMinWidth(k4(), nil)
	r.NoError(err)
	r.Equal(3, w)
}

func TestMinorMinWidthAtLeastDegeneracy(t *testing.T) {
	r := require.New(t)
	g := path5()
	deg, err := lowerbound.Degeneracy(g)
	r.NoError(err)
	mmw, err := lowerbound.MinorMinWidth(g, nil)
	r.NoError(err)
	r.GreaterOrEqual(mmw, deg)
}

func TestCliqueLowerBoundOnK4(t *testing.T) {
	r := require.New(t)
	c, err := lowerbound.CliqueLowerBound(k4(), time.Second)
	r.NoError(err)
	r.Equal(3, c)
}

func TestCliqueLowerBoundEmptyGraphExhausts(t *testing.T) {
	_, err := lowerbound.CliqueLowerBound(graph.New(), time.Second)
	require.Error(t, err)
}

func TestCliqueLowerBoundSATOnK4(t *testing.T) {
	r := require.New(t)
	newSolver := func() sat.Solver { return dpll.New() }
	bound, err := lowerbound.CliqueLowerBoundSAT(context.Background(), k4(), newSolver, &cardinality.SequentialStrategy{})
	r.NoError(err)
	r.Equal(3, bound)
}

func TestCliqueLowerBoundSATOnPathIsOne(t *testing.T) {
	r := require.New(t)
	newSolver := func() sat.Solver { return dpll.New() }
	bound, err := lowerbound.CliqueLowerBoundSAT(context.Background(), path5(), newSolver, &cardinality.SequentialStrategy{})
	r.NoError(err)
	r.Equal(1, bound)
}
