// Package pqueue implements a mergeable min-priority queue with O(1)
// amortized decrease-key: a Fibonacci heap, keyed by vertex index and a
// float64 key.
//
// What
//
//   - Insert, ExtractMin, DecreaseKey, Size, Empty — the contract in
//     spec §4.B.
//   - One handle per vertex, not a pointer-based node: FibHeap is
//     constructed once per program with capacity N and indexes its
//     internal arrays by vertex id directly, so there is no separate
//     "handle" type for callers to manage and no per-insert allocation.
//
// Why a Fibonacci heap and not container/heap
//
//	Dijkstra's relaxation step wants to lower a vertex's key in place.
//	container/heap has no decrease-key primitive; the common workaround
//	(push a duplicate, skip stale pops) costs O(log n) per relaxation
//	and inflates heap size to O(E). A Fibonacci heap keeps relaxation at
//	O(1) amortized, at the cost of a more involved consolidate step on
//	ExtractMin. Correctness of the SSSP kernel does not depend on which
//	amortization class is used (spec §4.B) — this module picks the
//	Fibonacci heap because it is the structure the original algorithm
//	was built around (see the retained fibheap.h in original_source/),
//	and because index-based arrays make it a clean, allocation-light Go
//	translation of that design.
//
// Reuse across sources
//
//	A FibHeap is allocated once and reset between source iterations via
//	ResetTouched, which only clears the entries a prior run actually
//	wrote (tracked by the caller's discovery order), not the full
//	capacity — the arena-reuse pattern from spec §9.
package pqueue
