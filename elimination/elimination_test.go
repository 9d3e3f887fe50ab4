package elimination_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/elimination"
	"github.com/katalvlaran/treewidth/graph"
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

func TestDecomposeK4WidthThree(t *testing.T) {
	r := require.New(t)
	g := k4()
	td, err := elimination.Decompose(g, []int{1, 2, 3, 4}, config.Exact)
	r.NoError(err)
	r.NoError(td.IsValid())
	r.Equal(3, td.Width())
}

func TestDecomposePathWidthOne(t *testing.T) {
	r := require.New(t)
	g := path5()
	td, err := elimination.Decompose(g, []int{1, 2, 3, 4, 5}, config.Heuristic)
	r.NoError(err)
	r.NoError(td.IsValid())
	r.Equal(1, td.Width())
}

func TestDecomposeRejectsBadPermutation(t *testing.T) {
	g := path5()
	_, err := elimination.Decompose(g, []int{1, 2, 3}, config.Heuristic)
	require.Error(t, err)

	_, err = elimination.Decompose(g, []int{1, 1, 2, 3, 4}, config.Heuristic)
	require.Error(t, err)
}

func TestDecomposeMultiComponentIsStitchedToATree(t *testing.T) {
	r := require.New(t)
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)
	td, err := elimination.Decompose(g, []int{1, 2, 3, 4}, config.Heuristic)
	r.NoError(err)
	r.NoError(td.IsValid())
}

func TestDecomposeEmptyGraph(t *testing.T) {
	r := require.New(t)
	g := graph.New()
	td, err := elimination.Decompose(g, nil, config.Heuristic)
	r.NoError(err)
	r.NoError(td.IsValid())
}
