package hublabel

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chrouter/contractor"
	"github.com/katalvlaran/chrouter/csr"
	"github.com/katalvlaran/chrouter/search"
)

// Build constructs labels top-down by contraction rank (spec.md §4.I):
// highest rank first, each vertex's raw label merged from the already-
// complete raw labels of its strictly-higher-level upward neighbors,
// then a separate embarrassingly-parallel pruning pass drops any entry
// whose distance is strictly beaten by a composition through another
// common hub of the raw labels (keeping every entry a surviving
// predecessor chain still needs, so path reconstruction never walks off
// a pruned entry).
//
// Complexity: O(n * average label size) merge work, parallelized within
// each rank and across the prune pass; see cg.LevelsByRank for the rank
// grouping this walks.
func Build(ctx context.Context, cg *contractor.ContractedGraph) (*Labels, error) {
	n := cg.CSR.N()
	rawF := make([]map[uint32]rawEntry, n)
	rawB := make([]map[uint32]rawEntry, n)

	for rank := len(cg.LevelsByRank) - 1; rank >= 0; rank-- {
		verts := cg.LevelsByRank[rank]
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(runtime.GOMAXPROCS(0))
		for _, v := range verts {
			v := v
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				rawF[v] = mergeRaw(v, cg.CSR.OutEdges(v), rawF)
				rawB[v] = mergeRaw(v, cg.CSR.InEdges(v), rawB)

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	forward := make([]Label, n)
	backward := make([]Label, n)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for v := 0; v < n; v++ {
		v := v
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			forward[v] = pruneAndFinalize(uint32(v), rawF[v], rawB)
			backward[v] = pruneAndFinalize(uint32(v), rawB[v], rawF)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Labels{Forward: forward, Backward: backward}, nil
}

// mergeRaw computes v's raw (unpruned) label over one direction: a
// self-entry plus, for each edge (v, w, c) in that direction, every
// entry of w's already-complete raw label in the same direction, offset
// by c. The entry whose hub equals w has its predecessor re-keyed to v
// (spec.md §4.I); every other entry's predecessor hub id is carried over
// unchanged, which is what keeps every predecessor hub guaranteed present
// as its own entry in the result (the chain-integrity property the
// pruning pass's closure walk relies on).
func mergeRaw(v uint32, edges []csr.Entry, rawSide []map[uint32]rawEntry) map[uint32]rawEntry {
	out := map[uint32]rawEntry{v: {Hub: v, Weight: 0, PredHub: noPred}}

	for _, e := range edges {
		w, c := e.Other, e.Weight
		for _, re := range rawSide[w] {
			predHub := re.PredHub
			if re.Hub == w {
				predHub = v
			}
			weight := search.SaturatingAdd(re.Weight, c)
			if existing, ok := out[re.Hub]; !ok || weight < existing.Weight {
				out[re.Hub] = rawEntry{Hub: re.Hub, Weight: weight, PredHub: predHub}
			}
		}
	}

	return out
}

// pruneAndFinalize drops any entry (h, d) from raw for which some common
// hub between raw and otherSide[h] gives a distance strictly smaller
// than d (spec.md §4.I "forward/backward pruning"), then restores
// every hub a surviving entry's predecessor chain still needs (so the
// result never contains a dangling predecessor), sorts by hub ascending,
// and converts predecessor hub ids to in-label indices.
func pruneAndFinalize(v uint32, raw map[uint32]rawEntry, otherSide []map[uint32]rawEntry) Label {
	keep := map[uint32]bool{v: true}
	for h, e := range raw {
		if h == v {
			continue
		}
		if isShortestComposition(raw, otherSide[h], e.Weight) {
			keep[h] = true
		}
	}

	queue := make([]uint32, 0, len(keep))
	for h := range keep {
		queue = append(queue, h)
	}
	for len(queue) > 0 {
		h := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		p := raw[h].PredHub
		if p == noPred || keep[p] {
			continue
		}
		keep[p] = true
		queue = append(queue, p)
	}

	hubs := make([]uint32, 0, len(keep))
	for h := range keep {
		hubs = append(hubs, h)
	}
	sort.Slice(hubs, func(i, j int) bool { return hubs[i] < hubs[j] })

	indexOf := make(map[uint32]int, len(hubs))
	for i, h := range hubs {
		indexOf[h] = i
	}

	label := make(Label, len(hubs))
	for i, h := range hubs {
		e := raw[h]
		pred := int32(-1)
		if e.PredHub != noPred {
			pred = int32(indexOf[e.PredHub])
		}
		label[i] = Entry{Hub: h, Weight: e.Weight, Pred: pred}
	}

	return label
}

// isShortestComposition reports whether no hub common to a and b beats
// target — i.e. entry (h, target) is not dominated by any cheaper
// composition through a different common hub. h's own self-match (a[h]
// against b's self-entry) always yields target, so the check is really
// "is target the minimum", not merely "is target achievable".
func isShortestComposition(a, b map[uint32]rawEntry, target uint32) bool {
	for hub, be := range b {
		if ae, ok := a[hub]; ok {
			if search.SaturatingAdd(ae.Weight, be.Weight) < target {
				return false
			}
		}
	}

	return true
}
