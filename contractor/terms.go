package contractor

import (
	"github.com/katalvlaran/chrouter/cpq"
	"github.com/katalvlaran/chrouter/ptconfig"
)

// defaultTerms wires every importance term spec.md §4.E names into one
// weighted sum, using cfg's priority-term weights; a weight of 0 keeps
// the term registered but contributes nothing, per ptconfig's doc.
func defaultTerms(cfg *ptconfig.Config, n int) []cpq.WeightedTerm {
	return []cpq.WeightedTerm{
		{Weight: cfg.Weights.EdgeDifference, Term: cpq.EdgeDifferenceTerm{HopLimit: cfg.WitnessHopLimit}},
		{Weight: cfg.Weights.DeletedNeighbor, Term: cpq.NewDeletedNeighborTerm()},
		{Weight: cfg.Weights.SearchSpace, Term: cpq.SearchSpaceTerm{}},
		{Weight: cfg.Weights.VoronoiRegion, Term: cpq.NewVoronoiTerm(n)},
	}
}
