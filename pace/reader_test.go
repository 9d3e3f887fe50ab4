package pace_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/pace"
)

func TestReadGraphParsesGRFormat(t *testing.T) {
	input := "c a comment\np tw 4 5\n1 2\n2 3\n3 4\n4 1\n1 3\n"
	g, err := pace.ReadGraph(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 5, g.NumEdges())
}

func TestReadGraphParsesDGFFormat(t *testing.T) {
	input := "p edge 3 2\ne 1 2\ne 2 3\n"
	g, err := pace.ReadGraph(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())
}

func TestReadGraphRejectsMissingHeader(t *testing.T) {
	_, err := pace.ReadGraph(strings.NewReader("1 2\n"))
	require.Error(t, err)
}

func TestReadGraphRejectsSelfLoop(t *testing.T) {
	_, err := pace.ReadGraph(strings.NewReader("p tw 2 1\n1 1\n"))
	require.Error(t, err)
}

func TestReadGraphKeepsIsolatedDeclaredVertices(t *testing.T) {
	g, err := pace.ReadGraph(strings.NewReader("p tw 5 1\n1 2\n"))
	require.NoError(t, err)
	require.Equal(t, 5, g.NumVertices())
}

func TestReadGraphSkipsTolerableDIMACSLinesInGRFormat(t *testing.T) {
	input := "p tw 3 2\nn 1 foo\nd some data\n1 2\n2 3\n"
	g, err := pace.ReadGraph(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())
}

func TestReadGraphSkipsTolerableDIMACSLinesInDGFFormat(t *testing.T) {
	input := "p edge 3 2\nv 1 0 0\nx extra stuff\nb comment\nl layout\ne 1 2\ne 2 3\n"
	g, err := pace.ReadGraph(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())
}
