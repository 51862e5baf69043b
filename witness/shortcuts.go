package witness

import "github.com/katalvlaran/chrouter/digraph"

// Shortcut is a candidate shortcut edge discovered while evaluating
// contraction of v: Tail and Head are v's neighbors, Weight is the
// through-v cost Tail->v->Head. The middle vertex is always v and is not
// stored here; the caller records it, since RequiredShortcuts only
// returns what's necessary, not who introduces it.
type Shortcut struct {
	Tail, Head uint32
	Weight     uint32
}

// RequiredShortcuts computes the shortcuts needed if v were contracted
// right now, per spec.md §4.D/§4.F: for every in-neighbor u of v, one
// bounded witness search from u avoiding v (ceiling = the largest
// through-v cost over any out-neighbor) decides, for every out-neighbor
// w != u, whether u->w needs a shortcut of weight c(u,v)+c(v,w). Ties
// (witness cost == proposed) do not produce a shortcut.
//
// This single-witness-search-per-in-neighbor structure (rather than one
// search per (u,w) pair) is what keeps contraction's per-vertex cost
// proportional to in-degree, not in-degree*out-degree searches.
//
// Complexity: O(in-degree(v)) witness searches, each bounded by hopLimit.
func RequiredShortcuts(g *digraph.Graph, v uint32, hopLimit int) []Shortcut {
	outEdges := g.OutEdges(v)
	if len(outEdges) == 0 {
		return nil
	}

	var shortcuts []Shortcut
	for _, inEdge := range g.InEdges(v) {
		u := inEdge.Other
		if u == v {
			continue
		}

		var ceiling uint32
		for _, outEdge := range outEdges {
			if outEdge.Other == v {
				continue
			}
			through := satAdd(inEdge.Weight, outEdge.Weight)
			if through > ceiling {
				ceiling = through
			}
		}

		result := Search(g, u, v, ceiling, hopLimit)
		for _, outEdge := range outEdges {
			w := outEdge.Other
			if w == v || w == u {
				continue
			}
			proposed := satAdd(inEdge.Weight, outEdge.Weight)
			witnessCost, reached := result[w]
			if reached && witnessCost <= proposed {
				continue
			}
			shortcuts = append(shortcuts, Shortcut{Tail: u, Head: w, Weight: proposed})
		}
	}

	return shortcuts
}

func satAdd(a, b uint32) uint32 {
	sum := uint64(a) + uint64(b)
	if sum > 0xFFFFFFFF {
		return 0xFFFFFFFF
	}

	return uint32(sum)
}
