package hublabel

import (
	"fmt"

	"github.com/katalvlaran/chrouter/search"
	"github.com/katalvlaran/chrouter/shortcut"
)

// Path is the result of a successful hub-labelling Path query.
type Path struct {
	Vertices []uint32
	Weight   uint32
}

func checkRange(labels *Labels, vs ...uint32) error {
	n := uint32(len(labels.Forward))
	for _, v := range vs {
		if v >= n {
			return fmt.Errorf("hublabel: vertex %d: %w", v, ErrVertexOutOfRange)
		}
	}

	return nil
}

// intersect performs the linear merge-intersection of two hub-sorted
// labels (spec.md §4.J), returning the minimum d_f+d_b over common hubs
// and the winning entry's index in each label.
func intersect(f, b Label) (best uint32, fi, bi int, found bool) {
	best = search.Inf
	i, j := 0, 0
	for i < len(f) && j < len(b) {
		switch {
		case f[i].Hub < b[j].Hub:
			i++
		case f[i].Hub > b[j].Hub:
			j++
		default:
			sum := search.SaturatingAdd(f[i].Weight, b[j].Weight)
			if sum < best {
				best = sum
				fi, bi = i, j
				found = true
			}
			i++
			j++
		}
	}

	return best, fi, bi, found
}

// Query returns the shortest-path distance between source and target
// using label merge-intersection, or ok=false if no common hub exists
// (they are disconnected).
//
// Complexity: O(|L_f[source]| + |L_b[target]|).
func Query(labels *Labels, source, target uint32) (distance uint32, ok bool, err error) {
	if err := checkRange(labels, source, target); err != nil {
		return 0, false, err
	}
	if source == target {
		return 0, true, nil
	}

	best, _, _, found := intersect(labels.Forward[source], labels.Backward[target])
	if !found {
		return 0, false, nil
	}

	return best, true, nil
}

// Path reconstructs the shortest path between source and target: it
// finds the optimal common hub, walks L_f[source]'s predecessor chain
// from that hub's entry to the root source, walks L_b[target]'s
// predecessor chain from that hub's entry to the root target, splices
// the two (sharing the hub exactly once), and unpacks every shortcut via
// tbl.
func Path(labels *Labels, tbl *shortcut.Table, source, target uint32) (p Path, ok bool, err error) {
	if err := checkRange(labels, source, target); err != nil {
		return Path{}, false, err
	}
	if source == target {
		return Path{Vertices: []uint32{source}, Weight: 0}, true, nil
	}

	fLabel, bLabel := labels.Forward[source], labels.Backward[target]
	best, fi, bi, found := intersect(fLabel, bLabel)
	if !found {
		return Path{}, false, nil
	}

	fwdChain, err := walkChain(fLabel, fi)
	if err != nil {
		return Path{}, false, err
	}
	bwdChain, err := walkChain(bLabel, bi)
	if err != nil {
		return Path{}, false, err
	}

	// fwdChain is hub..source order (root last); reverse to source..hub.
	contracted := make([]uint32, 0, len(fwdChain)+len(bwdChain)-1)
	for i := len(fwdChain) - 1; i >= 0; i-- {
		contracted = append(contracted, fwdChain[i])
	}
	// bwdChain is hub..target order (root last); drop the shared hub and
	// append target-ward.
	contracted = append(contracted, bwdChain[1:]...)

	return Path{Vertices: tbl.Unpack(contracted), Weight: best}, true, nil
}

// walkChain follows entry indices' Pred pointers from startIdx to the
// label's root, returning hub ids in start..root order. A visited-set
// guards against a cyclic chain, which is always a construction bug
// (spec.md §8 "Cycle in label predecessor chain"), never a recoverable
// runtime condition.
func walkChain(label Label, startIdx int) ([]uint32, error) {
	visited := make(map[int]bool, 8)
	chain := make([]uint32, 0, 8)

	idx := startIdx
	for {
		if visited[idx] {
			return nil, ErrPredecessorCycle
		}
		visited[idx] = true
		chain = append(chain, label[idx].Hub)

		pred := label[idx].Pred
		if pred < 0 {
			break
		}
		idx = int(pred)
	}

	return chain, nil
}
