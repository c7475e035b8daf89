// Package brandes implements the dependency accumulator (spec §4.D) and
// the exact betweenness driver (spec §4.E) built on top of package sssp.
//
// What
//
//   - Accumulate runs one source's reverse-discovery-order dependency
//     back-propagation into a shared centrality vector, given the
//     *sssp.Result for that source.
//   - Exact iterates every vertex as a source, invoking the sssp kernel
//     and Accumulate once per source, with no scaling — the convention
//     from spec §4.E: undirected graphs are left unnormalized (each pair
//     contributes from both endpoints, no division by 2).
//
// Parallel sources
//
//	Exact accepts WithWorkers(k) to fan sources out across k goroutines
//	via golang.org/x/sync/errgroup, each with its own *sssp.Kernel and
//	delta scratch and a private partial centrality vector; partials are
//	summed into the caller's output vector in worker-index order once
//	every worker finishes. This satisfies spec §5's requirement of
//	determinism up to floating-point associativity — not a fixed global
//	accumulation order, but a fixed *reduction* order.
package brandes
