// Package gmlio reads the GML-like textual graph format described in
// spec §6.1: a graph block containing an optional directed flag,
// node records, and edge records. Node ids need not be contiguous;
// the reader remaps them to [0, n) in first-seen order before handing
// the edge list to graph.Builder.
package gmlio
