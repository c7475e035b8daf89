package kpath

import (
	"math/rand"
	"testing"

	"github.com/arwald/centra/graph"
	"github.com/stretchr/testify/require"
)

// Scenario 6: on a pendant edge, a walk that draws a length of 2 or
// more always truncates after its first (and only possible) step, and
// rollback must decrement visits for every vertex pushed onto the walk
// stack, including the start vertex even though its own visits counter
// was never incremented.
func TestWalker_TruncatedWalkRollsBackStartVisitsToNegative(t *testing.T) {
	b, err := graph.NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(0, 1, 1))
	g := b.Build()

	sawCompleted := false
	sawTruncated := false

	for seed := int64(1); seed <= 200 && !(sawCompleted && sawTruncated); seed++ {
		w := newWalker(g, rand.New(rand.NewSource(seed)))
		before := append([]int64(nil), w.visits...)

		w.run(2)

		require.Equal(t, []bool{false, false}, w.explored, "every vertex must be unexplored once the walk rolls back")
		require.Empty(t, w.stack, "the walk stack must be fully drained after rollback")

		var delta [2]int64
		for v := range delta {
			delta[v] = w.visits[v] - before[v]
		}

		switch {
		case delta[0] == -1 || delta[1] == -1:
			// Truncated: the walk took its one possible step then had
			// nowhere left to go, so rollback decremented visits for
			// both the start vertex (never incremented) and the one
			// vertex it moved to (incremented then undone).
			sawTruncated = true
			startIdx, otherIdx := 0, 1
			if delta[1] == -1 {
				startIdx, otherIdx = 1, 0
			}
			require.Equal(t, int64(-1), delta[startIdx])
			require.Equal(t, int64(0), delta[otherIdx])
		case delta[0] == 1 || delta[1] == 1:
			// Completed: the drawn length was 1, the single step
			// succeeded, and no rollback of visits occurred.
			sawCompleted = true
			require.True(t, delta[0] == 0 || delta[1] == 0)
		default:
			t.Fatalf("unexpected visit delta %v for seed %d", delta, seed)
		}
	}

	require.True(t, sawTruncated, "expected at least one truncated walk across the seed sweep")
	require.True(t, sawCompleted, "expected at least one completed walk across the seed sweep")
}
