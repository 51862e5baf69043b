// Package csr provides the immutable, cache-friendly compressed-sparse-row
// adjacency used at query time (spec component B): flat edge arrays plus
// a prefix-sum offset array, built once from a digraph.Graph and never
// mutated afterward. Two parallel CSR structures exist per Graph — one
// keyed on tail (out-edges), one on head (in-edges) — both exposed as
// zero-copy slices.
package csr
