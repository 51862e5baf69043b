package shortcut

// edge is an internal (a,b) adjacency pair pending resolution during
// Unpack; it never escapes this file.
type edge struct{ a, b uint32 }

// Unpack expands path — a sequence of vertices possibly joined by
// shortcut edges — into the sequence of vertices joined only by original
// (non-shortcut) edges, preserving total weight by construction (every
// shortcut's weight equals its two constituent edges' weights summed at
// insertion time — spec.md §8 property 3).
//
// Implemented with an explicit stack rather than recursion or a
// graph-of-pointers, per spec.md §9's design note; each expansion
// strictly reduces to edges whose middle vertex has a lower contraction
// level, so the stack is guaranteed to drain.
//
// Complexity: O(len of the fully unpacked path).
func (t *Table) Unpack(path []uint32) []uint32 {
	if len(path) < 2 {
		return append([]uint32(nil), path...)
	}

	stack := make([]edge, 0, len(path))
	for i := len(path) - 2; i >= 0; i-- {
		stack = append(stack, edge{path[i], path[i+1]})
	}

	out := make([]uint32, 0, len(path))
	out = append(out, path[0])

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if m, ok := t.Middle(e.a, e.b); ok {
			stack = append(stack, edge{m, e.b})
			stack = append(stack, edge{e.a, m})

			continue
		}
		out = append(out, e.b)
	}

	return out
}
