package search

import "math"

// NoVertex is the sentinel predecessor value meaning "no predecessor".
const NoVertex = math.MaxUint32

// Inf is the saturating "unreachable" cost.
const Inf = math.MaxUint32

// SaturatingAdd returns a+b clamped to math.MaxUint32 on overflow.
//
// Complexity: O(1).
func SaturatingAdd(a, b uint32) uint32 {
	sum := uint64(a) + uint64(b)
	if sum > math.MaxUint32 {
		return math.MaxUint32
	}

	return uint32(sum)
}

// item is a (vertex, key) pair stored in the lazy heap. Stale entries
// (superseded by a cheaper relax) are left in place and discarded on pop
// by checking State.expanded.
type item struct {
	vertex uint32
	key    uint32
}

// heapSlice implements container/heap.Interface over []item, ordered by
// ascending key. It never shrinks its backing array below what's needed;
// callers drive it through container/heap.Push/Pop.
type heapSlice []item

func (h heapSlice) Len() int            { return len(h) }
func (h heapSlice) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h heapSlice) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *heapSlice) Push(x interface{}) { *h = append(*h, x.(item)) }
func (h *heapSlice) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// State is the per-vertex bookkeeping for one Dijkstra-shaped search over
// a graph of N dense vertices: best-known cost, predecessor vertex (or
// NoVertex), and whether the vertex has been finalized (expanded).
//
// State is not safe for concurrent use by multiple goroutines; each
// in-flight search (forward, backward, or witness) owns its own State.
type State struct {
	n        int
	bestCost []uint32
	pred     []uint32
	expanded []bool
	heap     heapSlice
}

// NewState allocates a State sized for n vertices, with every vertex at
// Inf cost, no predecessor, and not expanded.
//
// Complexity: O(n) time and space.
func NewState(n int) *State {
	s := &State{
		n:        n,
		bestCost: make([]uint32, n),
		pred:     make([]uint32, n),
		expanded: make([]bool, n),
		heap:     make(heapSlice, 0, 16),
	}
	s.Reset()

	return s
}

// Reset restores s to its just-allocated state in O(n), so it can be
// reused across repeated searches (e.g. one witness search per
// contraction candidate) without re-allocating its slices.
func (s *State) Reset() {
	for i := range s.bestCost {
		s.bestCost[i] = Inf
		s.pred[i] = NoVertex
		s.expanded[i] = false
	}
	s.heap = s.heap[:0]
}

// BestCost returns the current best-known cost to v (Inf if unreached).
func (s *State) BestCost(v uint32) uint32 { return s.bestCost[v] }

// Expanded reports whether v has been finalized by Pop.
func (s *State) Expanded(v uint32) bool { return s.expanded[v] }

// Predecessor returns the predecessor of v on the current shortest-known
// path, or NoVertex if v has no predecessor (source, or unreached).
func (s *State) Predecessor(v uint32) uint32 { return s.pred[v] }

// Push seeds v into the heap at the given cost without relaxing against
// an existing best cost; used to initialize source vertices.
func (s *State) Push(v uint32, cost uint32) {
	if cost < s.bestCost[v] {
		s.bestCost[v] = cost
	}
	pushItem(&s.heap, item{vertex: v, key: cost})
}

// Relax attempts to improve the cost to target via source, whose best
// cost is already finalized, across an edge of the given weight. It
// reports whether the relaxation improved target's cost.
//
// Complexity: O(log h) for the heap push, where h is heap size.
func (s *State) Relax(source, target, edgeWeight uint32) bool {
	candidate := SaturatingAdd(s.bestCost[source], edgeWeight)
	if candidate >= s.bestCost[target] {
		return false
	}
	s.bestCost[target] = candidate
	s.pred[target] = source
	pushItem(&s.heap, item{vertex: target, key: candidate})

	return true
}

// Pop discards stale (already-expanded) heap entries, then returns the
// vertex with the smallest key, marking it expanded. ok is false once the
// heap is empty.
//
// Complexity: amortized O(log h) per call.
func (s *State) Pop() (vertex uint32, key uint32, ok bool) {
	for len(s.heap) > 0 {
		it := popItem(&s.heap)
		if s.expanded[it.vertex] {
			continue
		}
		s.expanded[it.vertex] = true

		return it.vertex, it.key, true
	}

	return 0, 0, false
}

// PeekKey returns the smallest key currently in the heap without popping,
// used by bidirectional search's stopping rule. ok is false if empty.
func (s *State) PeekKey() (key uint32, ok bool) {
	for len(s.heap) > 0 {
		if s.expanded[s.heap[0].vertex] {
			popItem(&s.heap)
			continue
		}

		return s.heap[0].key, true
	}

	return 0, false
}

// Empty reports whether the heap holds no live (non-stale) entries.
func (s *State) Empty() bool {
	_, ok := s.PeekKey()

	return !ok
}

// ReconstructPath chases predecessors from target back to the source
// (the vertex whose predecessor is NoVertex), returning vertices in
// source-to-target order. ok is false if target was never relaxed (no
// finite cost recorded and target isn't itself a pushed source).
func (s *State) ReconstructPath(target uint32) (vertices []uint32, ok bool) {
	if s.bestCost[target] == Inf {
		return nil, false
	}
	var rev []uint32
	v := target
	for {
		rev = append(rev, v)
		p := s.pred[v]
		if p == NoVertex {
			break
		}
		v = p
	}
	vertices = make([]uint32, len(rev))
	for i, vv := range rev {
		vertices[len(rev)-1-i] = vv
	}

	return vertices, true
}
