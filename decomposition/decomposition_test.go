package decomposition_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
)

func path5() *graph.Graph {
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	return g
}

func TestPathDecompositionValid(t *testing.T) {
	r := require.New(t)
	g := path5()
	td := decomposition.New(g, true)
	b1 := td.CreateBag([]int{1, 2})
	b2 := td.CreateBag([]int{2, 3})
	b3 := td.CreateBag([]int{3, 4})
	b4 := td.CreateBag([]int{4, 5})
	td.AddTreeEdge(b1.Index, b2.Index)
	td.AddTreeEdge(b2.Index, b3.Index)
	td.AddTreeEdge(b3.Index, b4.Index)

	r.NoError(td.IsValid())
	r.Equal(1, td.Width())
}

func TestConnectComponentsStitchesForest(t *testing.T) {
	r := require.New(t)
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)
	td := decomposition.New(g, true)
	b0 := td.CreateBag([]int{1, 2})
	b1 := td.CreateBag([]int{3, 4})
	_ = b0
	_ = b1

	require.Error(t, td.IsValid()) // forest: two components, not yet a tree
	td.ConnectComponents()
	r.NoError(td.IsValid())
}

func TestMissingVertexFailsValidation(t *testing.T) {
	g := path5()
	td := decomposition.New(g, true)
	td.CreateBag([]int{1, 2})
	require.Error(t, td.IsValid())
}

func TestTreeEdgesReturnsCanonicalPairs(t *testing.T) {
	r := require.New(t)
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	td := decomposition.New(g, true)
	td.CreateBag([]int{1, 2})
	td.CreateBag([]int{2, 3})
	td.AddTreeEdge(1, 0)

	r.Equal([][2]int{{0, 1}}, td.TreeEdges())
}

func TestWriteToProducesPaceFormat(t *testing.T) {
	r := require.New(t)
	g := graph.New()
	g.AddEdge(1, 2)
	td := decomposition.New(g, true)
	td.CreateBag([]int{1, 2})

	var sb strings.Builder
	r.NoError(td.WriteTo(&sb))
	out := sb.String()
	r.True(strings.HasPrefix(out, "s td 1 2 2\n"))
	r.Contains(out, "b 1 1 2\n")
}
