package exact_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/exact"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/sat"
	"github.com/katalvlaran/treewidth/sat/dpll"
)

func newDPLL() sat.Solver { return dpll.New() }

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

func cycle5() *graph.Graph {
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	g.AddEdge(5, 1)
	return g
}

// cycle5 has no simplicial vertex (every vertex's two neighbors are
// never adjacent to each other), so Preprocess leaves it untouched and
// Solve genuinely has to drive the SAT search below — unlike k4/path5,
// which preprocessing alone peels down to nothing.

func TestSolveBaseEncodingOnCycleFindsWidthTwo(t *testing.T) {
	cfg := config.Default()
	cfg.Encoding = config.EncodingBase
	td, err := exact.Solve(context.Background(), cycle5(), cfg, 4, newDPLL)
	require.NoError(t, err)
	require.NoError(t, td.IsValid())
	require.Equal(t, 2, td.Width())
}

func TestSolveImprovedEncodingOnCycleFindsWidthTwo(t *testing.T) {
	cfg := config.Default()
	cfg.Encoding = config.EncodingImproved
	td, err := exact.Solve(context.Background(), cycle5(), cfg, 4, newDPLL)
	require.NoError(t, err)
	require.NoError(t, td.IsValid())
	require.Equal(t, 2, td.Width())
}

func TestSolveLadderEncodingOnCycleFindsWidthTwo(t *testing.T) {
	cfg := config.Default()
	cfg.Encoding = config.EncodingLadder
	td, err := exact.Solve(context.Background(), cycle5(), cfg, 4, newDPLL)
	require.NoError(t, err)
	require.NoError(t, td.IsValid())
	require.Equal(t, 2, td.Width())
}

func TestSolveEmbeddingEncodingOnCycleFindsWidthTwo(t *testing.T) {
	cfg := config.Default()
	cfg.Encoding = config.EncodingEmbedding
	td, err := exact.Solve(context.Background(), cycle5(), cfg, 4, newDPLL)
	require.NoError(t, err)
	require.NoError(t, td.IsValid())
	require.Equal(t, 2, td.Width())
}

func TestSolvePreprocessingShortCircuitsOnAFullyChordalGraph(t *testing.T) {
	cfg := config.Default()
	cfg.Encoding = config.EncodingBase
	td, err := exact.Solve(context.Background(), k4(), cfg, 3, newDPLL)
	require.NoError(t, err)
	require.NoError(t, td.IsValid())
	require.Equal(t, 3, td.Width())
}

func TestSolveImprovedEncodingOnPathFindsWidthOne(t *testing.T) {
	cfg := config.Default()
	cfg.Encoding = config.EncodingImproved
	td, err := exact.Solve(context.Background(), path5(), cfg, 4, newDPLL)
	require.NoError(t, err)
	require.NoError(t, td.IsValid())
	require.Equal(t, 1, td.Width())
}

func TestSolveEmptyGraphReturnsEmptyDecomposition(t *testing.T) {
	cfg := config.Default()
	td, err := exact.Solve(context.Background(), graph.New(), cfg, 0, newDPLL)
	require.NoError(t, err)
	require.Equal(t, 0, len(td.Bags))
}

func TestPreprocessStripsSimplicialVerticesOnAChordalGraph(t *testing.T) {
	reduced, prefix, floor := exact.Preprocess(k4())
	// K4 is entirely simplicial-peelable down to nothing: every vertex's
	// neighborhood in the remainder is always a clique.
	require.Equal(t, 0, reduced.NumVertices())
	require.Len(t, prefix, 4)
	require.Equal(t, 4, floor)
}

func TestPreprocessLeavesACycleUntouched(t *testing.T) {
	reduced, prefix, _ := exact.Preprocess(cycle5())
	require.Empty(t, prefix)
	require.Equal(t, 5, reduced.NumVertices())
}
