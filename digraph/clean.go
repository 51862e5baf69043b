package digraph

// Clean reduces g to the form contraction requires (spec.md §3): every
// self-loop is dropped, and every group of parallel edges sharing
// (tail, head) is collapsed to its single minimum-weight representative.
//
// Grounded on original_source/src/routing/ch/graph_cleaner.rs, which
// performs the same two passes before handing the graph to the
// contractor; spec.md names the invariant (§3, §8 scenarios S3/S4) but
// not an entry point, so this module supplements it with one explicit,
// testable function.
//
// Clean rebuilds g's adjacency in place and returns the number of edges
// dropped (self-loops removed plus parallel duplicates collapsed).
//
// Complexity: O(n + E).
func Clean(g *Graph) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	dropped := 0
	for tail := 0; tail < g.n; tail++ {
		best := make(map[uint32]uint32, len(g.out[tail]))
		order := make([]uint32, 0, len(g.out[tail]))
		for _, he := range g.out[tail] {
			if he.Other == uint32(tail) {
				dropped++

				continue
			}
			if w, ok := best[he.Other]; !ok {
				best[he.Other] = he.Weight
				order = append(order, he.Other)
			} else if he.Weight < w {
				best[he.Other] = he.Weight
				dropped++
			} else {
				dropped++
			}
		}
		cleaned := make([]HalfEdge, 0, len(order))
		for _, head := range order {
			cleaned = append(cleaned, HalfEdge{Other: head, Weight: best[head]})
		}
		g.out[tail] = cleaned
	}

	// Rebuild in[] from the cleaned out[] to guarantee the adjacency
	// symmetry invariant (spec.md §8 property 1) rather than trying to
	// patch in[] incrementally while out[] is being collapsed.
	for v := 0; v < g.n; v++ {
		g.in[v] = g.in[v][:0]
	}
	for tail := 0; tail < g.n; tail++ {
		for _, he := range g.out[tail] {
			g.in[he.Other] = append(g.in[he.Other], HalfEdge{Other: uint32(tail), Weight: he.Weight})
		}
	}

	return dropped
}
