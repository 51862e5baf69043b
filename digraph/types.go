package digraph

import (
	"fmt"
	"sync"
)

// EdgeTuple is the shape a raw edge stream (parsed by an external
// collaborator — see spec.md §6) is handed to this package in.
type EdgeTuple struct {
	Tail   uint32
	Head   uint32
	Weight uint32
}

// HalfEdge is one endpoint of an adjacency entry: the neighbor vertex and
// the edge weight. out[v] stores HalfEdge{Head, Weight}; in[v] stores
// HalfEdge{Tail, Weight}.
type HalfEdge struct {
	Other  uint32
	Weight uint32
}

// Graph is the mutable, vertex-indexed weighted directed graph used as
// the live working copy during contraction. The vertex set [0,N) is
// fixed at construction; RemoveVertex empties a vertex's adjacency but
// does not shrink N or renumber other vertices.
//
// A single RWMutex guards both adjacency views because every mutation
// here (AddEdge, RemoveEdge, RemoveVertex, InstallShortcut) must update
// out[] and in[] together — the teacher's split muVert/muEdgeAdj locking
// (core/types.go) exists because lvlath's vertex catalog and edge catalog
// can change independently; here they never do.
type Graph struct {
	mu  sync.RWMutex
	n   int
	out [][]HalfEdge
	in  [][]HalfEdge
}

// NewEmpty allocates a Graph over n vertices with no edges.
//
// Complexity: O(n).
func NewEmpty(n int) *Graph {
	return &Graph{
		n:   n,
		out: make([][]HalfEdge, n),
		in:  make([][]HalfEdge, n),
	}
}

// FromEdges builds a Graph over n vertices from a flat edge list. Edges
// are inserted as-is: parallel edges and self-loops survive FromEdges and
// must be removed by Clean before contraction (spec.md §3).
//
// Complexity: O(n + len(edges)).
func FromEdges(n int, edges []EdgeTuple) (*Graph, error) {
	g := NewEmpty(n)
	for _, e := range edges {
		if err := g.AddEdge(e.Tail, e.Head, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// N returns the fixed vertex-space size.
func (g *Graph) N() int { return g.n }

func (g *Graph) inRange(v uint32) bool { return int(v) < g.n }

// AddEdge appends a new out/in pair for (tail, head, weight). It permits
// parallel edges and self-loops; reducing those is Clean's job, not
// AddEdge's, so that FromEdges faithfully reflects whatever the caller's
// raw edge stream contained.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(tail, head, weight uint32) error {
	if !g.inRange(tail) || !g.inRange(head) {
		return fmt.Errorf("digraph: edge %d->%d: %w", tail, head, ErrVertexOutOfRange)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.out[tail] = append(g.out[tail], HalfEdge{Other: head, Weight: weight})
	g.in[head] = append(g.in[head], HalfEdge{Other: tail, Weight: weight})

	return nil
}

// RemoveEdge removes the first out/in pair exactly matching
// (tail, head, weight), reporting whether one was found.
//
// Complexity: O(deg(tail) + deg(head)).
func (g *Graph) RemoveEdge(tail, head, weight uint32) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	removedOut := removeFirst(&g.out[tail], head, weight)
	removedIn := removeFirst(&g.in[head], tail, weight)

	return removedOut && removedIn
}

func removeFirst(list *[]HalfEdge, other, weight uint32) bool {
	for i, he := range *list {
		if he.Other == other && he.Weight == weight {
			(*list)[i] = (*list)[len(*list)-1]
			*list = (*list)[:len(*list)-1]

			return true
		}
	}

	return false
}

// InstallShortcut upserts an edge (tail, head, weight): if (tail, head)
// already exists, the lower weight wins and no duplicate is created;
// otherwise a new edge is appended. This is the idempotent-on-reinstall
// contract spec.md §4.F requires of shortcut installation.
//
// Complexity: O(deg(tail)).
func (g *Graph) InstallShortcut(tail, head, weight uint32) error {
	if !g.inRange(tail) || !g.inRange(head) {
		return fmt.Errorf("digraph: shortcut %d->%d: %w", tail, head, ErrVertexOutOfRange)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, he := range g.out[tail] {
		if he.Other == head {
			if weight < he.Weight {
				g.out[tail][i].Weight = weight
				for j, rhe := range g.in[head] {
					if rhe.Other == tail {
						g.in[head][j].Weight = weight

						break
					}
				}
			}

			return nil
		}
	}
	g.out[tail] = append(g.out[tail], HalfEdge{Other: head, Weight: weight})
	g.in[head] = append(g.in[head], HalfEdge{Other: tail, Weight: weight})

	return nil
}

// RemoveVertex detaches every edge incident to v from both adjacency
// views: out[v] and in[v] become empty, and v is removed from every
// neighbor's opposite view. v itself remains a valid (isolated) vertex id
// — the vertex space never shrinks.
//
// Complexity: O(deg(v)) amortized across both views.
func (g *Graph) RemoveVertex(v uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, he := range g.out[v] {
		removeFirst(&g.in[he.Other], v, he.Weight)
	}
	for _, he := range g.in[v] {
		removeFirst(&g.out[he.Other], v, he.Weight)
	}
	g.out[v] = nil
	g.in[v] = nil
}

// OutEdges returns a snapshot slice of v's out-adjacency.
func (g *Graph) OutEdges(v uint32) []HalfEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]HalfEdge(nil), g.out[v]...)
}

// InEdges returns a snapshot slice of v's in-adjacency.
func (g *Graph) InEdges(v uint32) []HalfEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]HalfEdge(nil), g.in[v]...)
}

// OutDegree and InDegree report adjacency sizes without copying.
func (g *Graph) OutDegree(v uint32) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out[v])
}

func (g *Graph) InDegree(v uint32) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.in[v])
}

// Edges returns every (tail, head, weight) triple currently in the graph,
// in vertex-then-insertion order. Used by contractor and by tests.
//
// Complexity: O(n + E).
func (g *Graph) Edges() []EdgeTuple {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var edges []EdgeTuple
	for tail := 0; tail < g.n; tail++ {
		for _, he := range g.out[tail] {
			edges = append(edges, EdgeTuple{Tail: uint32(tail), Head: he.Other, Weight: he.Weight})
		}
	}

	return edges
}
