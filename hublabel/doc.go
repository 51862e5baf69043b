// Package hublabel builds and queries hub labels derived from a
// contractor.ContractedGraph, per spec.md §4.I/§4.J: every vertex gets a
// forward label (hubs reachable via upward out-edges) and a backward
// label (hubs reachable via upward in-edges), each a sorted, deduplicated
// list of (hub, distance, predecessor-index) entries. A shortest s->t
// distance is the minimum d_f+d_b over any hub common to L_f[s] and
// L_b[t].
//
// Build is the documented, authoritative construction mode (top-down
// level sweep). BuildFromCappedSearch is a second, non-equivalent mode
// retained from the original implementation's alternate builder — see
// its doc comment before using it in place of Build.
package hublabel
