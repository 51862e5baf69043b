// Package contractor drives Contraction-Hierarchy construction (spec
// component F): it repeatedly pops a vertex (or an independent batch of
// vertices) from a cpq.Queue, generates required shortcuts via witness
// search, installs them into a live working copy of the graph, assigns
// contraction levels, and removes contracted vertices — then, once the
// queue is exhausted, restores the original adjacency, reinstalls every
// collected shortcut, and filters each vertex's edges down to the
// upward-only property queries rely on.
//
// Build runs the single-vertex loop; BuildParallel pops independent
// (2-hop) batches and computes each batch member's shortcuts
// concurrently via golang.org/x/sync/errgroup, applying the installs and
// removals for the whole batch only once every member's shortcuts are
// known — matching spec.md §5's "mutable graph is written only between
// batches, never during parallel shortcut generation".
package contractor
