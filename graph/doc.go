// Package graph defines the immutable, index-based graph model shared by
// every centrality algorithm in this module.
//
// What
//
//   - Vertices are the contiguous range [0, N). There is no vertex-ID type:
//     callers index directly into N.
//   - Each vertex stores an ordered slice of outgoing edges; insertion order
//     is preserved and defines neighbor-iteration order, which in turn
//     determines predecessor tie-breaking in the Brandes accumulator.
//   - Edges carry a non-negative float64 weight. Parallel edges and
//     self-loops are permitted and never rejected.
//   - A Graph is built once via Builder and is read-only afterward: no
//     method on Graph mutates it, so a *Graph may be shared freely across
//     goroutines without locking.
//
// Why
//
//   - The SSSP kernel (package sssp) and every driver built on top of it
//     read the same Graph concurrently, one per source vertex; a
//     read-only, lock-free model removes an entire class of contention
//     and data-race bugs that a mutable, mutex-guarded model would need to
//     pay for on every read.
//
// Unweighted fast path
//
//	WMin and WMax are computed once, from every edge seen during
//	construction. A Graph is considered unweighted iff WMin == WMax == 1;
//	sssp dispatches on this flag to choose BFS over Dijkstra.
package graph
