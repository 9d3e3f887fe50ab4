package graph_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/graph"
)

func k4() *graph.Graph {
	g := graph.New()
	verts := []int{1, 2, 3, 4}
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			g.AddEdge(verts[i], verts[j])
		}
	}
	return g
}

func TestAddEdgeAutoAddsVertices(t *testing.T) {
	r := require.New(t)
	g := graph.New()
	g.AddEdge(1, 2)
	r.True(g.HasVertex(1))
	r.True(g.HasVertex(2))
	r.True(g.IsAdjacent(1, 2))
	r.True(g.IsAdjacent(2, 1))
}

func TestAddEdgeSelfLoopPanics(t *testing.T) {
	g := graph.New()
	require.Panics(t, func() { g.AddEdge(1, 1) })
}

func TestDeleteVertexMissingPanics(t *testing.T) {
	g := graph.New()
	require.Panics(t, func() { g.DeleteVertex(42) })
}

func TestDeleteVertexRemovesIncidentEdges(t *testing.T) {
	r := require.New(t)
	g := k4()
	g.DeleteVertex(1)
	r.False(g.HasVertex(1))
	r.Equal(3, g.NumVertices())
	r.Equal(3, g.NumEdges())
}

func TestEliminateVertexFillsInClique(t *testing.T) {
	r := require.New(t)
	g := graph.New()
	// star: center 0 connected to 1,2,3; N(0) has no edges among {1,2,3}.
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)

	bag := g.EliminateVertex(0)
	r.Equal([]int{0, 1, 2, 3}, bag)
	r.False(g.HasVertex(0))
	r.True(g.IsAdjacent(1, 2))
	r.True(g.IsAdjacent(1, 3))
	r.True(g.IsAdjacent(2, 3))
}

func TestContractMergesNeighborhoods(t *testing.T) {
	r := require.New(t)
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(1, 4)

	g.Contract(1, 2) // merge 1 into 2: N(2) gets N(1)\{2} = {4}
	r.False(g.HasVertex(1))
	r.True(g.IsAdjacent(2, 3))
	r.True(g.IsAdjacent(2, 4))
}

func TestConnectedComponents(t *testing.T) {
	r := require.New(t)
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddVertex(5)
	g.AddEdge(3, 4)

	comps := g.ConnectedComponents()
	r.Len(comps, 3)
	r.Equal([]int{1, 2}, comps[0])
	r.Equal([]int{3, 4}, comps[1])
	r.Equal([]int{5}, comps[2])
}

func TestMaximumCliqueOnK4(t *testing.T) {
	r := require.New(t)
	g := k4()
	clique := g.MaximumClique(time.Second)
	r.Equal([]int{1, 2, 3, 4}, clique)
}

func TestTwinDecompositionNonAdjacentTwins(t *testing.T) {
	r := require.New(t)
	g := graph.New()
	// 1 and 2 both connect only to 3: non-adjacent (false) twins.
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)

	classes := g.TwinDecomposition()
	r.Len(classes, 1)
	r.Equal([]int{1, 2}, classes[0])
}

func TestTwinDecompositionAdjacentTwins(t *testing.T) {
	r := require.New(t)
	g := k4()
	// every pair in K4 is a true (closed) twin of every other.
	classes := g.TwinDecomposition()
	found := false
	for _, c := range classes {
		if len(c) == 4 {
			found = true
		}
	}
	r.True(found)
}

func TestCopyIsIndependent(t *testing.T) {
	r := require.New(t)
	g := k4()
	cp := g.Copy()
	cp.DeleteVertex(1)
	r.True(g.HasVertex(1))
	r.False(cp.HasVertex(1))
}

func TestSubgraphInducesOnlyGivenVertices(t *testing.T) {
	r := require.New(t)
	g := k4()
	sub := g.Subgraph([]int{1, 2, 5})
	r.True(sub.HasVertex(5))
	r.True(sub.IsAdjacent(1, 2))
	r.False(sub.IsAdjacent(1, 5))
}
