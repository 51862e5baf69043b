// Package cpq implements the contraction priority queue (spec component
// E): a lazy min-heap over as-yet-uncontracted vertices, ordered by a
// weighted sum of pluggable importance terms, supporting both single-
// vertex popping and independent (2-hop) batch popping for parallel
// contraction.
//
// Each importance Term supplies Score(v) and OnContract(v); the Queue
// owns a []WeightedTerm and sums weight*Score(v) into one key per
// vertex, per spec.md §4.E/§9 ("no inheritance hierarchy, no dynamic
// dispatch per edge — only per pop").
package cpq
