// Package digraph implements the mutable, vertex-indexed weighted directed
// graph used as the live working copy during contraction (spec component
// A). It keeps two adjacency views, out[v] and in[v], and maintains the
// invariant that every stored out-edge on v has a matching in-edge on its
// head and vice versa — mutation methods update both views atomically
// under a single lock, rather than the teacher's split muVert/muEdgeAdj
// locking, because edge insertion here always touches both views together
// and a single lock is enough to keep that pairing atomic.
//
// Vertices are dense uint32 identifiers in [0,N); N is fixed at
// construction (see FromEdges) and does not grow. RemoveVertex detaches a
// vertex from both views but does not compact or renumber the remaining
// vertex space — levels and CSR offsets index by the original uint32, not
// by a post-removal dense re-ordering.
package digraph
