package contractor

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chrouter/cpq"
	"github.com/katalvlaran/chrouter/csr"
	"github.com/katalvlaran/chrouter/digraph"
	"github.com/katalvlaran/chrouter/ptconfig"
	"github.com/katalvlaran/chrouter/shortcut"
	"github.com/katalvlaran/chrouter/witness"
)

// Build runs the single-vertex contraction loop (spec.md §4.F) over g —
// which must already be cleaned (digraph.Clean) — and returns the frozen
// ContractedGraph. g itself is never mutated; Build works against its own
// copy.
//
// Complexity: O(n) pops, each driving O(in-degree) witness searches
// bounded by cfg.WitnessHopLimit.
func Build(ctx context.Context, g *digraph.Graph, cfg *ptconfig.Config) (*ContractedGraph, error) {
	n := g.N()
	origEdges := g.Edges()

	live, err := digraph.FromEdges(n, origEdges)
	if err != nil {
		return nil, err
	}

	pq, err := cpq.NewQueue(ctx, live, defaultTerms(cfg, n))
	if err != nil {
		return nil, err
	}

	level := make([]uint32, n)
	var installed []pendingShortcut
	var rank uint32

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, ok := pq.Pop()
		if !ok {
			break
		}

		for _, sc := range witness.RequiredShortcuts(live, v, cfg.WitnessHopLimit) {
			if err := live.InstallShortcut(sc.Tail, sc.Head, sc.Weight); err != nil {
				return nil, err
			}
			installed = append(installed, pendingShortcut{tail: sc.Tail, head: sc.Head, weight: sc.Weight, middle: v})
		}

		pq.NotifyContract(v)
		live.RemoveVertex(v)
		level[v] = rank
		rank++
	}

	return finalize(n, origEdges, installed, level)
}

// BuildParallel pops independent (2-hop) batches via cpq.Queue.PopBatch
// and computes every batch member's required shortcuts concurrently with
// golang.org/x/sync/errgroup, applying installs and vertex removal for
// the whole batch only after every member's shortcut computation has
// completed — the read phase (witness search) and the write phase
// (InstallShortcut/RemoveVertex) never overlap, per spec.md §5.
//
// Batch members share one contraction level (ties permitted — levels are
// only a topological rank, spec.md §4.F).
func BuildParallel(ctx context.Context, g *digraph.Graph, cfg *ptconfig.Config) (*ContractedGraph, error) {
	n := g.N()
	origEdges := g.Edges()

	live, err := digraph.FromEdges(n, origEdges)
	if err != nil {
		return nil, err
	}

	pq, err := cpq.NewQueue(ctx, live, defaultTerms(cfg, n))
	if err != nil {
		return nil, err
	}

	level := make([]uint32, n)
	var installed []pendingShortcut
	var rank uint32

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		batch := pq.PopBatch()
		if len(batch) == 0 {
			break
		}

		results := make([][]witness.Shortcut, len(batch))
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(runtime.GOMAXPROCS(0))
		for i, v := range batch {
			i, v := i, v
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				results[i] = witness.RequiredShortcuts(live, v, cfg.WitnessHopLimit)

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}

		for i, v := range batch {
			for _, sc := range results[i] {
				if err := live.InstallShortcut(sc.Tail, sc.Head, sc.Weight); err != nil {
					return nil, err
				}
				installed = append(installed, pendingShortcut{tail: sc.Tail, head: sc.Head, weight: sc.Weight, middle: v})
			}
		}

		for _, v := range batch {
			pq.NotifyContract(v)
			live.RemoveVertex(v)
			level[v] = rank
		}
		rank++
	}

	return finalize(n, origEdges, installed, level)
}

// finalize restores the original adjacency, reinstalls every collected
// shortcut (keeping the minimum weight on any duplicate — spec.md §4.F
// idempotency contract), then filters each vertex's edges down to the
// upward-only property (spec.md §4.F step 8 / §3).
func finalize(n int, origEdges []digraph.EdgeTuple, installed []pendingShortcut, level []uint32) (*ContractedGraph, error) {
	final, err := digraph.FromEdges(n, origEdges)
	if err != nil {
		return nil, err
	}

	tbl := shortcut.NewTable()
	for _, p := range installed {
		if err := final.InstallShortcut(p.tail, p.head, p.weight); err != nil {
			return nil, err
		}
		tbl.Record(p.tail, p.head, p.middle)
	}

	var outEdges, inEdges []digraph.EdgeTuple
	for v := 0; v < n; v++ {
		vv := uint32(v)
		for _, he := range final.OutEdges(vv) {
			if level[he.Other] >= level[vv] {
				outEdges = append(outEdges, digraph.EdgeTuple{Tail: vv, Head: he.Other, Weight: he.Weight})
			}
		}
		for _, he := range final.InEdges(vv) {
			if level[he.Other] >= level[vv] {
				inEdges = append(inEdges, digraph.EdgeTuple{Tail: he.Other, Head: vv, Weight: he.Weight})
			}
		}
	}

	return &ContractedGraph{
		CSR:          csr.FromDirectedSets(n, outEdges, inEdges),
		Level:        level,
		LevelsByRank: buildLevelsByRank(level),
		Shortcuts:    tbl,
	}, nil
}

// Validate checks spec.md §8 property 2 (level monotonicity post-filter):
// every retained out-edge (v -> h) must have level[h] >= level[v], and
// every retained in-edge (tail -> v) must have level[tail] >= level[v].
// Returns ErrNonTopological on the first violation found.
func Validate(cg *ContractedGraph) error {
	n := cg.CSR.N()
	for v := 0; v < n; v++ {
		vv := uint32(v)
		for _, e := range cg.CSR.OutEdges(vv) {
			if cg.Level[e.Other] < cg.Level[vv] {
				return ErrNonTopological
			}
		}
		for _, e := range cg.CSR.InEdges(vv) {
			if cg.Level[e.Other] < cg.Level[vv] {
				return ErrNonTopological
			}
		}
	}

	return nil
}
