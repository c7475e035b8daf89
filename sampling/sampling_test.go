package sampling_test

import (
	"testing"

	"github.com/arwald/centra/graph"
	"github.com/arwald/centra/sampling"
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

func starGraph(t *testing.T) *graph.Graph {
	return buildUndirected(t, 5, [][3]float64{{0, 1, 1}, {0, 2, 1}, {0, 3, 1}, {0, 4, 1}})
}

func TestRandomized_RejectsInvalidEpsilon(t *testing.T) {
	g := starGraph(t)
	_, _, err := sampling.Randomized(g, 0, sampling.WithSeed(1))
	require.ErrorIs(t, err, sampling.ErrInvalidEpsilon)

	_, _, err = sampling.Randomized(g, 1.5, sampling.WithSeed(1))
	require.ErrorIs(t, err, sampling.ErrInvalidEpsilon)
}

// Invariant 1: no vertex has negative betweenness.
func TestRandomized_NonNegative(t *testing.T) {
	g := starGraph(t)
	c, stats, err := sampling.Randomized(g, 0.3, sampling.WithSeed(42))
	require.NoError(t, err)
	require.Greater(t, stats.Samples, 0)
	for v, val := range c {
		require.GreaterOrEqual(t, val, 0.0, "vertex %d", v)
	}
}

// Invariant 9: fixing the seed yields identical samples and results.
func TestRandomized_DeterministicWithSeed(t *testing.T) {
	g := starGraph(t)
	c1, _, err := sampling.Randomized(g, 0.3, sampling.WithSeed(7))
	require.NoError(t, err)
	c2, _, err := sampling.Randomized(g, 0.3, sampling.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}

// Invariant 6: over many runs the sample mean converges toward exact.
func TestRandomized_ConvergesTowardExact(t *testing.T) {
	g := starGraph(t)
	// Exact betweenness of the center of a 5-vertex star is 24 (scenario 2).
	const trials = 200
	var sum float64
	for seed := int64(1); seed <= trials; seed++ {
		c, _, err := sampling.Randomized(g, 0.5, sampling.WithSeed(seed))
		require.NoError(t, err)
		sum += c[0]
	}
	mean := sum / trials
	require.InDelta(t, 24.0, mean, 6.0)
}

func TestAdaptive_RejectsInvalidParams(t *testing.T) {
	g := starGraph(t)
	_, _, err := sampling.Adaptive(g, 1, 20, sampling.WithSeed(1))
	require.ErrorIs(t, err, sampling.ErrInvalidThreshold)

	_, _, err = sampling.Adaptive(g, 5, 10, sampling.WithSeed(1))
	require.ErrorIs(t, err, sampling.ErrInvalidSup)
}

// Invariant 1: no vertex has negative betweenness under adaptive sampling.
func TestAdaptive_NonNegative(t *testing.T) {
	g := buildUndirected(t, 10, [][3]float64{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 4, 1}, {4, 5, 1},
		{5, 6, 1}, {6, 7, 1}, {7, 8, 1}, {8, 9, 1}, {9, 0, 1},
	})
	c, stats, err := sampling.Adaptive(g, 2, 20, sampling.WithSeed(3))
	require.NoError(t, err)
	require.Greater(t, stats.Samples, 0)
	for v, val := range c {
		require.GreaterOrEqual(t, val, 0.0, "vertex %d", v)
	}
}

func TestAdaptive_DeterministicWithSeed(t *testing.T) {
	g := buildUndirected(t, 10, [][3]float64{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 4, 1}, {4, 5, 1},
		{5, 6, 1}, {6, 7, 1}, {7, 8, 1}, {8, 9, 1}, {9, 0, 1},
	})
	c1, _, err := sampling.Adaptive(g, 2, 20, sampling.WithSeed(9))
	require.NoError(t, err)
	c2, _, err := sampling.Adaptive(g, 2, 20, sampling.WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}

func TestAdaptive_SamplesAtLeastOneOnSmallGraphs(t *testing.T) {
	g := starGraph(t)
	_, stats, err := sampling.Adaptive(g, 2, 20, sampling.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, 1, stats.Samples)
}
