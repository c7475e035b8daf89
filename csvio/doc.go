// Package csvio writes the per-vertex centrality score CSV described in
// spec §6.3: a header block recording the input file, graph size,
// directedness, weight range, algorithm parameters and timings,
// followed by a "Vertex,Algo1,Algo2,..." column header and one row per
// vertex in ascending order. An optional WithSummary footer reports
// mean/stddev per algorithm column via gonum.org/v1/gonum/stat.
package csvio
