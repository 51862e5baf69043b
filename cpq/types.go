package cpq

import (
	"container/heap"
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chrouter/digraph"
)

// Term is one pluggable importance-score contributor (spec.md §4.E): edge
// difference, deleted-neighbor count, search-space estimate, Voronoi
// region size, or any future term a caller registers. Score must be safe
// to call repeatedly against the live graph between pops; OnContract is
// called exactly once per vertex, right before it is detached from the
// live graph, so terms can update their internal counters from its
// still-intact adjacency.
type Term interface {
	Score(v uint32, g *digraph.Graph) int64
	OnContract(v uint32, g *digraph.Graph)
}

// WeightedTerm pairs a Term with its integer multiplier in the summed
// importance score.
type WeightedTerm struct {
	Weight int64
	Term   Term
}

type qitem struct {
	vertex uint32
	key    int64
}

type qheap []qitem

func (h qheap) Len() int            { return len(h) }
func (h qheap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h qheap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *qheap) Push(x interface{}) { *h = append(*h, x.(qitem)) }
func (h *qheap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Queue is the lazy contraction priority queue: a binary min-heap whose
// entries may be stale, verified and, if necessary, re-scored and
// re-pushed at pop time (spec.md §4.E "Lazy popping").
//
// Queue is single-threaded by contract (spec.md §5: "Priority queue is
// single-threaded; only scoring callbacks fan out in parallel") — only
// NewQueue's initial scoring pass runs terms concurrently.
type Queue struct {
	g          *digraph.Graph
	terms      []WeightedTerm
	heap       qheap
	contracted []bool
}

// NewQueue scores every vertex of g in parallel (one goroutine per vertex
// in a single errgroup, bounded by GOMAXPROCS) and builds the initial heap. ctx cancellation
// aborts the scoring fan-out and returns ctx.Err().
//
// Complexity: O(n * Σ term cost) wall-clock work, parallelized; O(n) heap
// construction.
func NewQueue(ctx context.Context, g *digraph.Graph, terms []WeightedTerm) (*Queue, error) {
	n := g.N()
	q := &Queue{
		g:          g,
		terms:      terms,
		heap:       make(qheap, n),
		contracted: make([]bool, n),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for v := 0; v < n; v++ {
		v := v
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			q.heap[v] = qitem{vertex: uint32(v), key: q.score(uint32(v))}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	heap.Init(&q.heap)

	return q, nil
}

func (q *Queue) score(v uint32) int64 {
	var total int64
	for _, wt := range q.terms {
		total += wt.Weight * wt.Term.Score(v, q.g)
	}

	return total
}

// popCandidate pops the heap's current minimum, lazily re-validating its
// score: if the live score now exceeds the stored key, it is pushed back
// with the fresh key and popping retries. Entries for already-contracted
// vertices, should any be present, are discarded outright. Returns
// ok=false once the heap is exhausted.
func (q *Queue) popCandidate() (vertex uint32, ok bool) {
	for len(q.heap) > 0 {
		top := heap.Pop(&q.heap).(qitem)
		if q.contracted[top.vertex] {
			continue
		}
		fresh := q.score(top.vertex)
		if fresh > top.key {
			heap.Push(&q.heap, qitem{vertex: top.vertex, key: fresh})

			continue
		}

		return top.vertex, true
	}

	return 0, false
}

// Pop returns the single next vertex to contract, per spec.md §4.E/§4.F.
// It does not call OnContract — the caller (contractor) must call
// NotifyContract once it has generated v's shortcuts but before it
// detaches v from the live graph.
func (q *Queue) Pop() (vertex uint32, ok bool) {
	v, ok := q.popCandidate()
	if !ok {
		return 0, false
	}
	q.contracted[v] = true

	return v, true
}

// PopBatch returns a maximal prefix of independent (no two within 2 hops
// of each other) vertices, per spec.md §4.E "Independent-set pop": the
// first candidate that collides with the growing set's 2-hop
// neighborhood is pushed back and stops the batch.
func (q *Queue) PopBatch() []uint32 {
	var batch []uint32
	blocked := make(map[uint32]struct{})

	for {
		v, ok := q.popCandidate()
		if !ok {
			break
		}
		if _, collides := blocked[v]; collides {
			// Not committed: restore its heap entry with its last-known
			// (already freshly verified) key so the next PopBatch/Pop
			// call sees it again.
			heap.Push(&q.heap, qitem{vertex: v, key: q.score(v)})

			break
		}
		batch = append(batch, v)
		q.contracted[v] = true
		for nb := range q.g.Neighborhood(v, 2) {
			blocked[nb] = struct{}{}
		}
	}

	return batch
}

// NotifyContract invokes every term's OnContract(v) hook, in registration
// order, against the live graph (still including v's adjacency).
func (q *Queue) NotifyContract(v uint32) {
	for _, wt := range q.terms {
		wt.Term.OnContract(v, q.g)
	}
}

// Len reports how many not-yet-contracted vertices remain reachable from
// the heap (an upper bound — stale entries may still be counted).
func (q *Queue) Len() int { return len(q.heap) }
