package chquery

import (
	"fmt"

	"github.com/katalvlaran/chrouter/contractor"
	"github.com/katalvlaran/chrouter/search"
	"github.com/katalvlaran/chrouter/shortcut"
)

// Path is the result of a successful Path query: the full vertex
// sequence in the original (pre-contraction) graph and its total weight.
type Path struct {
	Vertices []uint32
	Weight   uint32
}

func checkRange(cg *contractor.ContractedGraph, vs ...uint32) error {
	n := uint32(cg.CSR.N())
	for _, v := range vs {
		if v >= n {
			return fmt.Errorf("chquery: vertex %d: %w", v, ErrVertexOutOfRange)
		}
	}

	return nil
}

// runBidirectional drives the forward/backward pair to completion per
// spec.md §4.H's stopping rule ("both tops ≥ μ"), returning the best
// distance found and the vertex where it was achieved (NoVertex if
// source and target never meet).
//
// fwd relaxes g's out-edges from source; bwd relaxes g's out-edges from
// target over the reversed adjacency (i.e. g's in-edges) — both walk
// upward-only edges by construction, since the contracted CSR retains
// only those (spec.md §3).
func runBidirectional(cg *contractor.ContractedGraph, source, target uint32) (mu uint32, meet uint32, fwd, bwd *search.State) {
	n := cg.CSR.N()
	fwd = search.NewState(n)
	bwd = search.NewState(n)
	fwd.Push(source, 0)
	bwd.Push(target, 0)

	mu = search.Inf
	meet = search.NoVertex

	for {
		fwdTop, fwdOk := fwd.PeekKey()
		bwdTop, bwdOk := bwd.PeekKey()
		if !fwdOk && !bwdOk {
			break
		}
		fwdDone := !fwdOk || (mu != search.Inf && fwdTop >= mu)
		bwdDone := !bwdOk || (mu != search.Inf && bwdTop >= mu)
		if fwdDone && bwdDone {
			break
		}

		// Interleave: pop whichever side currently holds the smaller top
		// key, breaking ties toward the forward side.
		popForward := fwdOk && (!bwdOk || fwdTop <= bwdTop)

		if popForward {
			v, cost, ok := fwd.Pop()
			if !ok {
				continue
			}
			for _, e := range cg.CSR.OutEdges(v) {
				fwd.Relax(v, e.Other, e.Weight)
			}
			if bwd.Expanded(v) {
				if cand := search.SaturatingAdd(cost, bwd.BestCost(v)); cand < mu {
					mu = cand
					meet = v
				}
			}
		} else {
			v, cost, ok := bwd.Pop()
			if !ok {
				continue
			}
			for _, e := range cg.CSR.InEdges(v) {
				bwd.Relax(v, e.Other, e.Weight)
			}
			if fwd.Expanded(v) {
				if cand := search.SaturatingAdd(cost, fwd.BestCost(v)); cand < mu {
					mu = cand
					meet = v
				}
			}
		}
	}

	return mu, meet, fwd, bwd
}

// Query returns the shortest-path distance between source and target, or
// ok=false if they are not connected.
//
// Complexity: O((n + m) log n) worst case, bounded in practice by CH's
// small search space.
func Query(cg *contractor.ContractedGraph, source, target uint32) (distance uint32, ok bool, err error) {
	if err := checkRange(cg, source, target); err != nil {
		return 0, false, err
	}
	if source == target {
		return 0, true, nil
	}

	mu, _, _, _ := runBidirectional(cg, source, target)
	if mu == search.Inf {
		return 0, false, nil
	}

	return mu, true, nil
}

// Path returns the shortest path between source and target as a full
// vertex sequence in the original graph, unpacking every shortcut edge
// via tbl (spec.md §4.H / §4.G).
func Path(cg *contractor.ContractedGraph, tbl *shortcut.Table, source, target uint32) (p Path, ok bool, err error) {
	if err := checkRange(cg, source, target); err != nil {
		return Path{}, false, err
	}
	if source == target {
		return Path{Vertices: []uint32{source}, Weight: 0}, true, nil
	}

	mu, meet, fwd, bwd := runBidirectional(cg, source, target)
	if mu == search.Inf {
		return Path{}, false, nil
	}

	fwdHalf, ok := fwd.ReconstructPath(meet)
	if !ok {
		return Path{}, false, nil
	}
	bwdHalf, ok := bwd.ReconstructPath(meet)
	if !ok {
		return Path{}, false, nil
	}

	contracted := make([]uint32, 0, len(fwdHalf)+len(bwdHalf)-1)
	contracted = append(contracted, fwdHalf...)
	for i := len(bwdHalf) - 2; i >= 0; i-- {
		contracted = append(contracted, bwdHalf[i])
	}

	return Path{Vertices: tbl.Unpack(contracted), Weight: mu}, true, nil
}

// OneToMany computes the shortest distance from source to every vertex
// in targets, sharing one full forward settle of source across all
// targets and running one full backward settle per target — the pattern
// retained from the original implementation's one-to-many CH query mode
// (spec.md supplemented operation; see SPEC_FULL.md, SUPPLEMENTED FEATURES).
//
// Unlike Query/Path, both searches always settle to exhaustion (no
// early-exit stopping rule), since the forward tree is reused across
// every target in targets.
func OneToMany(cg *contractor.ContractedGraph, source uint32, targets []uint32) (map[uint32]uint32, error) {
	if err := checkRange(cg, source); err != nil {
		return nil, err
	}
	if err := checkRange(cg, targets...); err != nil {
		return nil, err
	}

	n := cg.CSR.N()
	fwd := search.NewState(n)
	fwd.Push(source, 0)
	for {
		v, _, ok := fwd.Pop()
		if !ok {
			break
		}
		for _, e := range cg.CSR.OutEdges(v) {
			fwd.Relax(v, e.Other, e.Weight)
		}
	}

	result := make(map[uint32]uint32, len(targets))
	for _, t := range targets {
		if t == source {
			result[t] = 0

			continue
		}

		bwd := search.NewState(n)
		bwd.Push(t, 0)
		mu := search.Inf
		for {
			v, cost, ok := bwd.Pop()
			if !ok {
				break
			}
			if fwd.BestCost(v) != search.Inf {
				if cand := search.SaturatingAdd(cost, fwd.BestCost(v)); cand < mu {
					mu = cand
				}
			}
			for _, e := range cg.CSR.InEdges(v) {
				bwd.Relax(v, e.Other, e.Weight)
			}
		}
		if mu != search.Inf {
			result[t] = mu
		}
	}

	return result, nil
}
