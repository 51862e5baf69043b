// Package chrouter is your point-to-point shortest-path engine for large
// sparse, non-negatively-weighted road networks.
//
// 🚀 What is chrouter?
//
//	A dense-vertex, CSR-backed router that brings together:
//
//	  • Contraction Hierarchies: parallel batch contraction, shortcut
//	    bookkeeping, and witness search over the working graph
//	  • Bidirectional CH queries: upward forward/backward search meeting
//	    in the middle, with shortcut-aware path unpacking
//	  • Hub Labelling: top-down label construction with forward/backward
//	    pruning, for sub-millisecond repeated queries
//
// ✨ Why choose chrouter?
//
//   - Dense uint32 vertex ids — no hashing, no pointer chasing
//   - Read-only CSR query graph — safe for any number of concurrent readers
//   - Parallel preprocessing — golang.org/x/sync/errgroup fans out
//     independent-set contraction batches and per-level label construction
//   - Pluggable importance terms — edge difference, deleted-neighbor
//     count, search-space estimate, Voronoi region size
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	digraph/    — mutable working graph, cleaning, k-hop neighborhoods
//	csr/        — frozen compressed-sparse-row query graph
//	witness/    — bounded witness search, required-shortcut computation
//	cpq/        — lazy contraction priority queue and importance terms
//	shortcut/   — middle-vertex table and path unpacking
//	contractor/ — the CH builder (serial and parallel)
//	chquery/    — bidirectional CH distance/path/one-to-many queries
//	hublabel/   — hub-label construction and merge-intersection queries
//	ptconfig/   — build configuration
//
// Quick ASCII example, a diamond where the cheap side wins:
//
//	    0
//	   ╱ ╲
//	  1   2
//	   ╲ ╱
//	    3
//
//	Router.Path(0, 3) returns [0,1,3] if 0→1→3 is cheaper than 0→2→3,
//	with any contraction shortcut transparently unpacked back to it.
//
//	go get github.com/katalvlaran/chrouter
package chrouter
