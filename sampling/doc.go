// Package sampling implements the randomized (spec §4.F) and
// adaptive-sampling (spec §4.G) approximate betweenness drivers, both
// built on top of package sssp and package brandes's accumulator.
//
// What
//
//   - Randomized draws K = floor(2 ln n / ε²) sources uniformly with
//     replacement, accumulates each into a shared vector via
//     brandes.Accumulate, then scales the result by n/K.
//   - Adaptive draws K = max(1, floor(n/sup)) sources, tracking a
//     running per-vertex estimate A and a frozen set: once A[v] crosses
//     c_thr·n it is rescaled by the current sample count t and frozen,
//     skipping all further updates; unfrozen vertices are scaled by
//     n/K at the end.
//
// Both drivers build their sample vectors with make([]int32, 0, K)
// followed by exactly K appends — never a sized constructor later
// extended by append, which would silently prepend K zero entries (see
// the known defect in the original implementation these drivers were
// derived from).
//
// RNG
//
//	Sources are drawn from a *rand.Rand obtained via internal/rng,
//	seeded deterministically so that WithSeed(s) reproduces identical
//	samples across runs. Randomized draws all K sources from the base
//	stream before any worker split. Adaptive with WithWorkers(k > 1)
//	hands each worker its own derived stream
//	(internal/rng.Streams.Worker) rather than sharing one Rand across
//	goroutines.
package sampling
