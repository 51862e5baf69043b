package witness

import (
	"container/heap"

	"github.com/katalvlaran/chrouter/digraph"
	"github.com/katalvlaran/chrouter/search"
)

// DefaultHopLimit is the hop ceiling H used when a caller does not
// override it via ptconfig (spec.md §4.D default).
const DefaultHopLimit = 10

// entry is one (vertex, cost, hops) heap item for the bounded search.
type entry struct {
	vertex uint32
	cost   uint32
	hops   int
}

type entryHeap []entry

func (h entryHeap) Len() int            { return len(h) }
func (h entryHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h entryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Search runs a forward Dijkstra from u over g, ignoring the forbidden
// vertex entirely (forbidden is never settled, never relaxed through),
// bounded by costCeiling and hopLimit. It returns the best u->w cost
// found for every settled w, among paths of at most hopLimit hops and
// cost no greater than costCeiling.
//
// Used by contractor to decide shortcut necessity: a shortcut u->w of
// weight c is needed iff Search's result for w is strictly greater than
// c (ties must not produce a shortcut — spec.md §4.D).
//
// Complexity: bounded by the local search space, not O(V log V) — the
// hop and cost ceilings keep it cheap and local, per spec.md §4.D.
func Search(g *digraph.Graph, u, forbidden uint32, costCeiling uint32, hopLimit int) map[uint32]uint32 {
	result := make(map[uint32]uint32)
	best := map[uint32]uint32{u: 0}
	expanded := make(map[uint32]bool)

	h := &entryHeap{}
	heap.Init(h)
	heap.Push(h, entry{vertex: u, cost: 0, hops: 0})

	for h.Len() > 0 {
		e := heap.Pop(h).(entry)
		if expanded[e.vertex] {
			continue
		}
		if e.vertex == forbidden {
			continue
		}
		expanded[e.vertex] = true
		result[e.vertex] = e.cost

		if e.hops >= hopLimit {
			continue
		}
		for _, he := range g.OutEdges(e.vertex) {
			if he.Other == forbidden {
				continue
			}
			candidate := search.SaturatingAdd(e.cost, he.Weight)
			if candidate > costCeiling {
				continue
			}
			if bc, ok := best[he.Other]; ok && candidate >= bc {
				continue
			}
			best[he.Other] = candidate
			heap.Push(h, entry{vertex: he.Other, cost: candidate, hops: e.hops + 1})
		}
	}

	return result
}
