// Package chquery answers point-to-point and one-to-many shortest-path
// queries over a contractor.ContractedGraph, per spec.md §4.H: a forward
// Dijkstra relaxing only upward out-edges from source, a backward
// Dijkstra relaxing only upward out-edges of the reversed graph (i.e.
// in-edges) from target, meeting in the middle.
//
// Every exported function here is read-only over the contracted graph
// and therefore safe to call concurrently from any number of goroutines,
// as long as each call uses its own search.State (spec.md §5 "Query
// phase").
package chquery
