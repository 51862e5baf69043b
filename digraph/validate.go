package digraph

// ValidatePath reports whether vertices is a connected path in g (every
// consecutive pair joined by an existing out-edge) and whether the sum of
// those out-edge weights equals wantWeight. It is a test helper, not a
// hot-path routine — see spec.md §4.A "validation helper".
//
// Complexity: O(len(vertices) * average out-degree).
func (g *Graph) ValidatePath(vertices []uint32, wantWeight uint32) bool {
	if len(vertices) == 0 {
		return wantWeight == 0
	}
	var total uint32
	for i := 0; i+1 < len(vertices); i++ {
		tail, head := vertices[i], vertices[i+1]
		found := false
		for _, he := range g.OutEdges(tail) {
			if he.Other == head {
				total += he.Weight
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return total == wantWeight
}
