package graph_test

import (
	"testing"

	"github.com/arwald/centra/graph"
	"github.com/stretchr/testify/require"
)

func TestBuilder_UndirectedInsertsBothDirections(t *testing.T) {
	b, err := graph.NewBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 2))
	g := b.Build()

	require.Equal(t, 3, g.N())
	require.False(t, g.Directed())
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 1, g.Degree(1))
	require.Equal(t, int32(1), g.Neighbor(0, 0).To)
	require.Equal(t, int32(0), g.Neighbor(1, 0).To)
}

func TestBuilder_DirectedInsertsOneDirection(t *testing.T) {
	b, err := graph.NewBuilder(2, graph.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 5))
	g := b.Build()

	require.True(t, g.Directed())
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 0, g.Degree(1))
}

func TestBuilder_UnweightedFastPath(t *testing.T) {
	b, err := graph.NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 1))
	g := b.Build()

	require.True(t, g.Unweighted())
	require.Equal(t, 1.0, g.WMin())
	require.Equal(t, 1.0, g.WMax())
}

func TestBuilder_WeightedGraphIsNotUnweighted(t *testing.T) {
	b, err := graph.NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 2.5))
	g := b.Build()

	require.False(t, g.Unweighted())
}

func TestBuilder_RejectsNegativeWeight(t *testing.T) {
	b, err := graph.NewBuilder(2)
	require.NoError(t, err)
	err = b.AddEdge(0, 1, -1)
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestBuilder_RejectsOutOfRangeVertex(t *testing.T) {
	b, err := graph.NewBuilder(2)
	require.NoError(t, err)
	err = b.AddEdge(0, 5, 1)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestBuilder_AllowsSelfLoopsAndParallelEdges(t *testing.T) {
	b, err := graph.NewBuilder(1)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 0, 1))
	require.NoError(t, b.AddEdge(0, 0, 1))
	g := b.Build()
	require.Equal(t, 2, g.Degree(0))
}

func TestNewBuilder_RejectsNegativeN(t *testing.T) {
	_, err := graph.NewBuilder(-1)
	require.ErrorIs(t, err, graph.ErrTooManyVertices)
}
