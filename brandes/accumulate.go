package brandes

import "github.com/arwald/centra/sssp"

// Accumulate performs the reverse-discovery-order dependency
// back-propagation from spec §4.D for one source's *sssp.Result, adding
// the resulting per-vertex dependency into c (the caller's centrality
// vector). delta is caller-owned scratch, sized to at least the graph's
// vertex count; Accumulate clears only the entries named in res.Order
// before using them, so the same delta slice can be reused across
// sources without a full-length reset.
//
// The source vertex itself never receives a contribution (spec §8
// invariant 2: "the contribution added to C[s] from a source s is
// zero"), since the accumulation loop skips it explicitly.
func Accumulate(res *sssp.Result, c []float64, delta []float64) {
	for _, v := range res.Order {
		delta[v] = 0
	}

	for i := len(res.Order) - 1; i >= 0; i-- {
		u := res.Order[i]
		sigmaU := float64(res.Sigma[u])
		coeff := 1 + delta[u]
		for _, p := range res.Pred[u] {
			delta[p] += (float64(res.Sigma[p]) / sigmaU) * coeff
		}
		if u != res.Source {
			c[u] += delta[u]
		}
	}
}
