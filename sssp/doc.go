// Package sssp implements the single-source shortest-path kernel shared
// by every betweenness driver: a weighted phase (Dijkstra, via package
// pqueue's Fibonacci heap) and an unweighted phase (BFS), both tracking
// the full set of predecessors along shortest paths and the number of
// shortest paths (sigma) to each vertex, per spec §4.C.
//
// What
//
//   - Kernel.Run(source) computes dist, sigma, pred, and discovery order
//     from one source vertex over a shared, read-only *graph.Graph.
//   - Dispatch between the weighted and unweighted phase is automatic,
//     based on graph.Graph.Unweighted().
//   - A Kernel owns one scratch arena (dist/sigma/pred slices, a BFS
//     queue, and — for weighted graphs — a Fibonacci heap) allocated
//     once at NewKernel and reset between sources in O(reached vertices)
//     time rather than O(N), by only touching what the prior run wrote.
//
// Result lifetime
//
//	The *Result returned by Run aliases the Kernel's internal arrays. It
//	is valid until the next call to Run on the same Kernel, at which
//	point it is overwritten in place. Callers (package brandes) must
//	finish consuming one Result (the accumulation pass) before calling
//	Run again — this is the "scratch belongs exclusively to the kernel
//	invocation" ownership rule from spec §3.
//
// Sigma overflow
//
//	Sigma can grow combinatorially on highly symmetric graphs. Run
//	saturates at the uint64 maximum rather than silently wrapping, and
//	records which vertices saturated in Result.Saturated. Callers that
//	need overflow to be fatal instead of saturating should construct the
//	Kernel with WithStrictOverflow.
package sssp
