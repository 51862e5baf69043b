package csr

import (
	"sort"

	"github.com/katalvlaran/chrouter/digraph"
)

// Entry is one CSR adjacency slot: the neighbor vertex and edge weight.
type Entry struct {
	Other  uint32
	Weight uint32
}

// side is one direction's flat adjacency: offsets[v]..offsets[v+1]
// indexes the contiguous block of entries for vertex v.
type side struct {
	offsets []uint32
	entries []Entry
}

func (s side) of(v uint32) []Entry {
	return s.entries[s.offsets[v]:s.offsets[v+1]]
}

// Graph is the read-only, post-construction adjacency used by chquery and
// hublabel. It is safe for concurrent read-only use by any number of
// goroutines, since nothing ever mutates it after From*.
type Graph struct {
	n   int
	out side
	in  side
}

// N returns the vertex-space size.
func (g *Graph) N() int { return g.n }

// OutEdges returns a zero-copy slice of v's out-adjacency.
func (g *Graph) OutEdges(v uint32) []Entry { return g.out.of(v) }

// InEdges returns a zero-copy slice of v's in-adjacency.
func (g *Graph) InEdges(v uint32) []Entry { return g.in.of(v) }

// FromEdges builds a Graph over n vertices from a flat edge list: sorts
// by tail (stable, so equal-tail order is otherwise insertion order),
// computes offsets such that offsets[v] is the index of the first edge
// with tail==v, with missing tails copying the previous offset. The
// mirror in-adjacency is built the same way, sorted by head.
//
// Complexity: O(n + E log E) for the two sorts.
func FromEdges(n int, edges []digraph.EdgeTuple) *Graph {
	return &Graph{
		n:   n,
		out: buildSide(n, edges, func(e digraph.EdgeTuple) uint32 { return e.Tail }, func(e digraph.EdgeTuple) uint32 { return e.Head }),
		in:  buildSide(n, edges, func(e digraph.EdgeTuple) uint32 { return e.Head }, func(e digraph.EdgeTuple) uint32 { return e.Tail }),
	}
}

// FromDirectedSets builds a Graph whose out-side and in-side come from
// two independently filtered edge sets rather than a single shared list
// — used by contractor after the upward-edge filter, where a retained
// out-edge and a retained in-edge are no longer guaranteed to mirror each
// other (spec.md §4.F step 8 / §3 "Contracted graph").
//
// outEdges populate the out-side keyed by Tail; inEdges populate the
// in-side keyed by Head, with Other set to each edge's Tail.
//
// Complexity: O(n + len(outEdges) log len(outEdges) + len(inEdges) log len(inEdges)).
func FromDirectedSets(n int, outEdges, inEdges []digraph.EdgeTuple) *Graph {
	return &Graph{
		n:   n,
		out: buildSide(n, outEdges, func(e digraph.EdgeTuple) uint32 { return e.Tail }, func(e digraph.EdgeTuple) uint32 { return e.Head }),
		in:  buildSide(n, inEdges, func(e digraph.EdgeTuple) uint32 { return e.Head }, func(e digraph.EdgeTuple) uint32 { return e.Tail }),
	}
}

// FromAdjacency builds a Graph directly from per-vertex adjacency vectors
// (as produced by a digraph.Graph snapshot): the vectors are concatenated
// in vertex order and offsets are the running prefix sum of their
// lengths — no sort required, since each vector is already grouped by its
// own vertex.
//
// Complexity: O(n + E).
func FromAdjacency(outAdj, inAdj [][]digraph.HalfEdge) *Graph {
	n := len(outAdj)

	return &Graph{
		n:   n,
		out: concatAdjacency(outAdj),
		in:  concatAdjacency(inAdj),
	}
}

func concatAdjacency(adj [][]digraph.HalfEdge) side {
	n := len(adj)
	offsets := make([]uint32, n+1)
	var total uint32
	for v := 0; v < n; v++ {
		offsets[v] = total
		total += uint32(len(adj[v]))
	}
	offsets[n] = total

	entries := make([]Entry, 0, total)
	for v := 0; v < n; v++ {
		for _, he := range adj[v] {
			entries = append(entries, Entry{Other: he.Other, Weight: he.Weight})
		}
	}

	return side{offsets: offsets, entries: entries}
}

func buildSide(n int, edges []digraph.EdgeTuple, key, other func(digraph.EdgeTuple) uint32) side {
	sorted := make([]digraph.EdgeTuple, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool { return key(sorted[i]) < key(sorted[j]) })

	offsets := make([]uint32, n+1)
	entries := make([]Entry, len(sorted))
	for i, e := range sorted {
		entries[i] = Entry{Other: other(e), Weight: e.Weight}
	}

	idx := 0
	for v := 0; v < n; v++ {
		offsets[v] = uint32(idx)
		for idx < len(sorted) && key(sorted[idx]) == uint32(v) {
			idx++
		}
	}
	offsets[n] = uint32(len(sorted))

	return side{offsets: offsets, entries: entries}
}
