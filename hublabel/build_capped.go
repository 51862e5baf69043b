package hublabel

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chrouter/contractor"
	"github.com/katalvlaran/chrouter/csr"
	"github.com/katalvlaran/chrouter/ptconfig"
	"github.com/katalvlaran/chrouter/search"
)

// BuildFromCappedSearch derives every vertex's forward and backward
// labels from one Dijkstra search over the contracted CSR, capped at
// cfg.HLDepthLimit hops (0 means unbounded), instead of Build's top-down
// merge-and-prune sweep.
//
// NOT semantically equivalent to Build: a hop cap can exclude a hub that
// the true shortest path needs, so the cover property (spec.md §8
// property 5) only holds for pairs whose shortest path stays within the
// cap on both sides. Use this only when the caller has independently
// verified the cap is large enough for its query workload, or is
// deliberately trading completeness for a bounded build cost — spec.md
// §9 names this as an open question this module resolves by keeping
// both variants and documenting the difference rather than picking one.
func BuildFromCappedSearch(ctx context.Context, cg *contractor.ContractedGraph, cfg *ptconfig.Config) (*Labels, error) {
	n := cg.CSR.N()
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
			forward[v] = cappedSearchLabel(cg, uint32(v), cfg.HLDepthLimit, true)
			backward[v] = cappedSearchLabel(cg, uint32(v), cfg.HLDepthLimit, false)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Labels{Forward: forward, Backward: backward}, nil
}

// cappedSearchLabel runs a single Dijkstra from v (over out-edges if
// forward, in-edges otherwise), tracking each settled vertex's hop depth
// from v and refusing to relax past hopLimit hops (hopLimit<=0 means
// unbounded). The search-tree parent of every settled vertex is itself
// settled at a hop depth one less, so it is always present as its own
// entry — predecessor indices never dangle.
func cappedSearchLabel(cg *contractor.ContractedGraph, v uint32, hopLimit int, forward bool) Label {
	n := cg.CSR.N()
	parentHub := make([]uint32, n)
	hopDepth := make([]int, n)
	for i := range parentHub {
		parentHub[i] = noPred
	}

	st := search.NewState(n)
	st.Push(v, 0)

	for {
		u, _, ok := st.Pop()
		if !ok {
			break
		}
		if hopLimit > 0 && hopDepth[u] >= hopLimit {
			continue
		}

		var edges []csr.Entry
		if forward {
			edges = cg.CSR.OutEdges(u)
		} else {
			edges = cg.CSR.InEdges(u)
		}
		for _, e := range edges {
			if st.Relax(u, e.Other, e.Weight) {
				parentHub[e.Other] = u
				hopDepth[e.Other] = hopDepth[u] + 1
			}
		}
	}

	var hubs []uint32
	for h := 0; h < n; h++ {
		if st.BestCost(uint32(h)) != search.Inf {
			hubs = append(hubs, uint32(h))
		}
	}
	sort.Slice(hubs, func(i, j int) bool { return hubs[i] < hubs[j] })

	indexOf := make(map[uint32]int, len(hubs))
	for i, h := range hubs {
		indexOf[h] = i
	}

	label := make(Label, len(hubs))
	for i, h := range hubs {
		pred := int32(-1)
		if h != v {
			if idx, ok := indexOf[parentHub[h]]; ok {
				pred = int32(idx)
			}
		}
		label[i] = Entry{Hub: h, Weight: st.BestCost(h), Pred: pred}
	}

	return label
}
