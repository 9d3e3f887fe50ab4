package heuristic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/elimination"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/heuristic"
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

func checkValidPermutation(t *testing.T, g *graph.Graph, perm []int) *decompositionWidth {
	t.Helper()
	td, err := elimination.Decompose(g, perm, config.Heuristic)
	require.NoError(t, err)
	require.NoError(t, td.IsValid())
	return &decompositionWidth{width: td.Width()}
}

type decompositionWidth struct{ width int }

func TestGreedyDegreeProducesValidPermutation(t *testing.T) {
	g := cycle5()
	r := rand.New(rand.NewSource(1))
	perm := heuristic.GreedyDegree().BuildPermutation(g, r)
	require.Len(t, perm, 5)
	checkValidPermutation(t, g, perm)
}

func TestGreedyFillInProducesValidPermutation(t *testing.T) {
	g := k4()
	r := rand.New(rand.NewSource(1))
	perm := heuristic.GreedyFillIn().BuildPermutation(g, r)
	require.Len(t, perm, 4)
	result := checkValidPermutation(t, g, perm)
	require.Equal(t, 3, result.width)
}

func TestMCSProducesValidPermutation(t *testing.T) {
	g := cycle5()
	r := rand.New(rand.NewSource(2))
	perm := heuristic.MCSStrategy{}.BuildPermutation(g, r)
	require.Len(t, perm, 5)
	result := checkValidPermutation(t, g, perm)
	require.LessOrEqual(t, result.width, 3)
}

func TestTabuLocalSearchNeverWorsensWidth(t *testing.T) {
	r := require.New(t)
	g := cycle5()
	seed := []int{1, 2, 3, 4, 5}
	seedTD, err := elimination.Decompose(g, seed, config.Heuristic)
	r.NoError(err)
	seedWidth := seedTD.Width()

	cfg := config.Default()
	cfg.TabuRounds = 4
	cfg.TabuSteps = 8
	ts := heuristic.NewTabuLocalSearch(cfg)

	var improvements []int
	result := ts.Run(g, seed, rand.New(rand.NewSource(3)), func(perm []int, width int) {
		improvements = append(improvements, width)
	})

	resultWidth := checkValidPermutation(t, g, result).width
	r.LessOrEqual(resultWidth, seedWidth)
	r.NotEmpty(improvements)
	for i := 1; i < len(improvements); i++ {
		r.LessOrEqual(improvements[i], improvements[i-1]) // anytime monotonicity
	}
}

func TestAnytimeTrackerReturnsNilBeforeFirstPublish(t *testing.T) {
	tr := heuristic.NewAnytimeTracker()
	require.Nil(t, tr.GetCurrentSolution())
}

func TestAnytimeTrackerKeepsBestWidth(t *testing.T) {
	r := require.New(t)
	g := cycle5()
	tr := heuristic.NewAnytimeTracker()

	wide, err := elimination.Decompose(g, []int{1, 2, 3, 4, 5}, config.Heuristic)
	r.NoError(err)
	tr.Publish(wide)

	narrow, err := elimination.Decompose(g, []int{1, 3, 5, 2, 4}, config.Heuristic)
	r.NoError(err)
	tr.Publish(narrow)

	best := tr.GetCurrentSolution()
	r.NotNil(best)
	r.LessOrEqual(best.Width(), wide.Width())
}
