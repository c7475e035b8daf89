package sssp

import "math"

// Result is a single source's shortest-path view: distances, shortest-path
// counts, predecessor sets, and discovery order, as required by the
// Brandes accumulator (spec §3/§4.D). It aliases a Kernel's internal
// arrays — see the package doc comment for its lifetime contract.
type Result struct {
	// Source is the vertex this result was computed from.
	Source int32

	// Dist[v] is the shortest distance from Source to v, or +Inf if v is
	// unreachable.
	Dist []float64

	// Sigma[v] is the number of distinct shortest paths from Source to
	// v. Saturates at math.MaxUint64 rather than wrapping; see Saturated.
	Sigma []uint64

	// Saturated[v] is true if Sigma[v] hit the uint64 ceiling and no
	// longer reflects the true path count.
	Saturated []bool

	// Pred[v] holds the immediate predecessors of v on some shortest
	// path from Source, in the order they were discovered (which, since
	// graph.Graph preserves edge insertion order, is deterministic).
	Pred [][]int32

	// Order lists every reachable vertex in non-decreasing distance from
	// Source, i.e. finalization order. Traversed back-to-front it is a
	// valid reverse-topological order of the shortest-path DAG (spec
	// §4.C's ordering invariant).
	Order []int32
}

// Option configures a Kernel at construction time.
type Option func(*Kernel)

// WithStrictOverflow makes Run return ErrSigmaOverflow, wrapped with the
// offending vertex, the first time a sigma addition would overflow
// uint64, instead of the default behavior of saturating at MaxUint64 and
// continuing (spec §4.C: "saturation or reported error, not silent
// wrap" — both are conforming; this option selects the latter).
func WithStrictOverflow() Option {
	return func(k *Kernel) { k.strictOverflow = true }
}

// WithForceWeighted makes the Kernel always run the weighted (Dijkstra)
// phase, even when graph.Graph.Unweighted() reports the fast-path
// condition. This exists to validate spec §8 invariant 5 (weighted and
// unweighted phases must agree on all-weight-1 graphs) by letting a
// caller run the same graph through both phases explicitly, and is
// otherwise unnecessary: Kernel.Run already auto-dispatches to the
// cheaper unweighted phase whenever it is safe to.
func WithForceWeighted() Option {
	return func(k *Kernel) { k.forceWeighted = true }
}

// addSigma adds b to a, saturating at math.MaxUint64 on overflow and
// reporting whether saturation occurred.
func addSigma(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a { // wrapped
		return math.MaxUint64, true
	}
	return sum, false
}
