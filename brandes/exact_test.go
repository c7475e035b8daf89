package brandes_test

import (
	"testing"

	"github.com/arwald/centra/brandes"
	"github.com/arwald/centra/graph"
	"github.com/stretchr/testify/require"
)

func buildUndirected(t *testing.T, n int, edges [][3]float64) *graph.Graph {
	t.Helper()
	b, err := graph.NewBuilder(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, b.AddEdge(int(e[0]), int(e[1]), e[2]))
	}
	return b.Build()
}

// Scenario 1 from spec §8: a 5-vertex path graph 0-1-2-3-4.
func TestExact_PathGraph(t *testing.T) {
	g := buildUndirected(t, 5, [][3]float64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 4, 1}})

	c, _, err := brandes.Exact(g)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 6, 8, 6, 0}, c)
}

// Scenario 2 from spec §8: a 5-vertex star centered on vertex 0.
func TestExact_StarGraph(t *testing.T) {
	g := buildUndirected(t, 5, [][3]float64{{0, 1, 1}, {0, 2, 1}, {0, 3, 1}, {0, 4, 1}})

	c, _, err := brandes.Exact(g)
	require.NoError(t, err)
	require.Equal(t, []float64{24, 0, 0, 0, 0}, c)
}

// The parallel-sources path must agree with the sequential path on the
// same graph (spec §5's determinism-up-to-reduction-order guarantee).
func TestExact_ParallelAgreesWithSequential(t *testing.T) {
	g := buildUndirected(t, 5, [][3]float64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 4, 1}, {0, 4, 1}})

	seq, _, err := brandes.Exact(g)
	require.NoError(t, err)

	par, _, err := brandes.Exact(g, brandes.WithWorkers(3))
	require.NoError(t, err)

	require.InDeltaSlice(t, seq, par, 1e-9)
}

// Invariant 1 from spec §8: no vertex has negative betweenness.
func TestExact_NonNegative(t *testing.T) {
	g := buildUndirected(t, 5, [][3]float64{{0, 1, 1}, {1, 2, 2}, {2, 3, 1}, {3, 4, 3}, {0, 4, 1}})

	c, _, err := brandes.Exact(g)
	require.NoError(t, err)
	for v, val := range c {
		require.GreaterOrEqual(t, val, 0.0, "vertex %d", v)
	}
}

// Invariant 2 from spec §8: a source vertex never receives a
// contribution from its own traversal.
func TestExact_SourceExcluded(t *testing.T) {
	g := buildUndirected(t, 3, [][3]float64{{0, 1, 1}, {1, 2, 1}})

	c, _, err := brandes.Exact(g)
	require.NoError(t, err)
	// Endpoints 0 and 2 stay at zero although each is a source; middle
	// vertex 1 lies on the only shortest path between 0 and 2, counted
	// once from each endpoint.
	require.Equal(t, []float64{0, 2, 0}, c)
}
