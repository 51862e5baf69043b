package contractor

import (
	"github.com/katalvlaran/chrouter/csr"
	"github.com/katalvlaran/chrouter/shortcut"
)

// ContractedGraph is the frozen output of Build/BuildParallel: the
// upward-filtered CSR used at query time, each vertex's contraction
// level, the inverse rank->vertices grouping hub-labelling's top-down
// sweep needs, and the shortcut middle-vertex table.
type ContractedGraph struct {
	CSR          *csr.Graph
	Level        []uint32
	LevelsByRank [][]uint32
	Shortcuts    *shortcut.Table
}

// pendingShortcut is a shortcut collected during the contraction loop,
// to be reinstalled into the restored original adjacency once the loop
// finishes (spec.md §4.F steps 7-8).
type pendingShortcut struct {
	tail, head, weight, middle uint32
}

func buildLevelsByRank(level []uint32) [][]uint32 {
	if len(level) == 0 {
		return nil
	}
	var maxLevel uint32
	for _, l := range level {
		if l > maxLevel {
			maxLevel = l
		}
	}
	byRank := make([][]uint32, maxLevel+1)
	for v, l := range level {
		byRank[l] = append(byRank[l], uint32(v))
	}

	return byRank
}
