package orchestrator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/orchestrator"
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

func cycle5() *graph.Graph {
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	g.AddEdge(5, 1)
	return g
}

func TestDecomposeOnEmptyGraph(t *testing.T) {
	cfg := config.Default()
	res, err := orchestrator.Decompose(context.Background(), graph.New(), cfg)
	require.NoError(t, err)
	require.Equal(t, config.Exact, res.Quality)
	require.Equal(t, 0, len(res.Decomposition.Bags))
}

func TestDecomposeHeuristicOnlySkipsExact(t *testing.T) {
	cfg := config.Default()
	cfg.Heuristic = true
	cfg.SolverBackend = config.BackendDPLL
	res, err := orchestrator.Decompose(context.Background(), cycle5(), cfg)
	require.NoError(t, err)
	require.Equal(t, config.Heuristic, res.Quality)
	require.NoError(t, res.Decomposition.IsValid())
}

func TestDecomposeExactOnK4FindsWidthThree(t *testing.T) {
	cfg := config.Default()
	cfg.SolverBackend = config.BackendDPLL
	cfg.Encoding = config.EncodingImproved
	res, err := orchestrator.Decompose(context.Background(), k4(), cfg)
	require.NoError(t, err)
	require.NoError(t, res.Decomposition.IsValid())
	require.Equal(t, 3, res.Decomposition.Width())
	require.Equal(t, 3, res.LowerBound)
}

func TestDecomposeExactOnCycleFindsWidthTwo(t *testing.T) {
	cfg := config.Default()
	cfg.SolverBackend = config.BackendDPLL
	cfg.Encoding = config.EncodingBase
	res, err := orchestrator.Decompose(context.Background(), cycle5(), cfg)
	require.NoError(t, err)
	require.NoError(t, res.Decomposition.IsValid())
	require.Equal(t, 2, res.Decomposition.Width())
}

func TestDecomposeParallelModeStillFindsOptimalWidth(t *testing.T) {
	cfg := config.Default()
	cfg.SolverBackend = config.BackendDPLL
	cfg.Encoding = config.EncodingImproved
	cfg.Parallel = true
	res, err := orchestrator.Decompose(context.Background(), k4(), cfg)
	require.NoError(t, err)
	require.NoError(t, res.Decomposition.IsValid())
	require.Equal(t, 3, res.Decomposition.Width())
}

func TestDecomposeRespectsAlreadyCancelledContext(t *testing.T) {
	cfg := config.Default()
	cfg.SolverBackend = config.BackendDPLL
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	res, err := orchestrator.Decompose(ctx, cycle5(), cfg)
	require.NoError(t, err)
	require.NotNil(t, res.Decomposition)
	require.NoError(t, res.Decomposition.IsValid())
}
