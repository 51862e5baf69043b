package chrouter

import (
	"context"
	"fmt"

	"github.com/katalvlaran/chrouter/chquery"
	"github.com/katalvlaran/chrouter/contractor"
	"github.com/katalvlaran/chrouter/digraph"
	"github.com/katalvlaran/chrouter/hublabel"
	"github.com/katalvlaran/chrouter/ptconfig"
)

// Path is the result of a successful Router.Path query: the full vertex
// sequence in the original graph and its total weight.
type Path struct {
	Vertices []uint32
	Weight   uint32
}

// Snapshot mirrors the logical fields of the persisted state spec.md §6
// names (the contracted CSR, the shortcut middle-vertex table, the level
// arrays, and — when built — the hub labels). Byte-exact layout is left
// to the caller; Snapshot only exposes the fields a serializer would
// need.
type Snapshot struct {
	Contracted *contractor.ContractedGraph
	Labels     *hublabel.Labels // nil if the Router was built without labels
}

// Router is the frozen, query-ready engine produced by Build: a
// contracted graph plus its shortcut table, and optionally hub labels
// for sub-millisecond repeated queries.
type Router struct {
	cg     *contractor.ContractedGraph
	labels *hublabel.Labels
}

// Build cleans edges into a dense digraph.Graph, runs the parallel
// Contraction Hierarchy builder (contractor.BuildParallel, configured by
// opts), and returns a query-ready Router. Hub labels are NOT built here — call BuildLabels
// separately, since many callers only need CH query speed and HL's build
// cost is proportional to average label size, not vertex count.
func Build(ctx context.Context, n int, edges []digraph.EdgeTuple, opts ...ptconfig.Option) (*Router, error) {
	cfg := ptconfig.New(opts...)

	g, err := digraph.FromEdges(n, edges)
	if err != nil {
		return nil, fmt.Errorf("chrouter: building working graph: %w", err)
	}
	digraph.Clean(g)

	cg, err := contractor.BuildParallel(ctx, g, cfg)
	if err != nil {
		return nil, fmt.Errorf("chrouter: contracting: %w", err)
	}
	if err := contractor.Validate(cg); err != nil {
		return nil, fmt.Errorf("chrouter: validating contraction: %w", err)
	}

	return &Router{cg: cg}, nil
}

// BuildLabels constructs hub labels over an already-contracted Router,
// using cfg.Mode to select the top-down sweep (BuilderModeLevelSweep) or
// the capped-search alternate (BuilderModeCappedSearch).
func (r *Router) BuildLabels(ctx context.Context, cfg *ptconfig.Config) error {
	var labels *hublabel.Labels
	var err error

	switch cfg.Mode {
	case ptconfig.BuilderModeCappedSearch:
		labels, err = hublabel.BuildFromCappedSearch(ctx, r.cg, cfg)
	default:
		labels, err = hublabel.Build(ctx, r.cg)
	}
	if err != nil {
		return fmt.Errorf("chrouter: building labels: %w", err)
	}
	r.labels = labels

	return nil
}

// Distance returns the shortest-path weight between source and target,
// using hub labels if BuildLabels has been called, falling back to the
// bidirectional CH query otherwise.
func (r *Router) Distance(source, target uint32) (uint32, bool, error) {
	if r.labels != nil {
		return hublabel.Query(r.labels, source, target)
	}

	return chquery.Query(r.cg, source, target)
}

// Path returns the full shortest path between source and target in the
// original graph's vertex space, with every contraction shortcut
// unpacked.
func (r *Router) Path(source, target uint32) (Path, bool, error) {
	if r.labels != nil {
		p, ok, err := hublabel.Path(r.labels, r.cg.Shortcuts, source, target)

		return Path{Vertices: p.Vertices, Weight: p.Weight}, ok, err
	}

	p, ok, err := chquery.Path(r.cg, r.cg.Shortcuts, source, target)

	return Path{Vertices: p.Vertices, Weight: p.Weight}, ok, err
}

// OneToMany computes the shortest distance from source to every vertex
// in targets via the bidirectional engine's shared-forward-tree mode
// (spec.md supplemented operation; see SPEC_FULL.md, SUPPLEMENTED
// FEATURES). Hub labels, if
// built, are not used here — OneToMany is a CH-only operation.
func (r *Router) OneToMany(source uint32, targets []uint32) (map[uint32]uint32, error) {
	return chquery.OneToMany(r.cg, source, targets)
}

// Snapshot exposes the Router's persistable logical state (spec.md §6).
func (r *Router) Snapshot() Snapshot {
	return Snapshot{Contracted: r.cg, Labels: r.labels}
}
