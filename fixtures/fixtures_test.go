package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/fixtures"
)

func TestCompleteHasAllPairsAdjacent(t *testing.T) {
	g := fixtures.Complete(5)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, 10, g.NumEdges())
}

func TestPathIsALine(t *testing.T) {
	g := fixtures.Path(5)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, 4, g.NumEdges())
}

func TestCycleIsARing(t *testing.T) {
	g := fixtures.Cycle(6)
	require.Equal(t, 6, g.NumVertices())
	require.Equal(t, 6, g.NumEdges())
	for _, v := range g.Vertices() {
		require.Equal(t, 2, g.Degree(v))
	}
}

func TestPetersenIsThreeRegularWithFifteenEdges(t *testing.T) {
	g := fixtures.Petersen()
	require.Equal(t, 10, g.NumVertices())
	require.Equal(t, 15, g.NumEdges())
	for _, v := range g.Vertices() {
		require.Equal(t, 3, g.Degree(v))
	}
}

func TestClebschIsFiveRegularWithFortyEdges(t *testing.T) {
	g := fixtures.Clebsch()
	require.Equal(t, 16, g.NumVertices())
	require.Equal(t, 40, g.NumEdges())
	for _, v := range g.Vertices() {
		require.Equal(t, 5, g.Degree(v))
	}
}

func TestNauruIsThreeRegularWithThirtySixEdges(t *testing.T) {
	g := fixtures.Nauru()
	require.Equal(t, 24, g.NumVertices())
	require.Equal(t, 36, g.NumEdges())
	for _, v := range g.Vertices() {
		require.Equal(t, 3, g.Degree(v))
	}
}
