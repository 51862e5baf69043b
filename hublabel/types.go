package hublabel

import "github.com/katalvlaran/chrouter/search"

// Entry is one label tuple (hub_vertex, weight, predecessor_index),
// spec.md §3 "Label entry": Pred is the index within the same Label of
// the neighbor hub one step closer to the label's root vertex, or -1 at
// the root itself.
type Entry struct {
	Hub    uint32
	Weight uint32
	Pred   int32
}

// Label is a label entry sequence, strictly increasing by Hub with no
// duplicates (spec.md §8 property 6), always including a self-entry
// (root, 0, -1).
type Label []Entry

// Labels is the complete, immutable post-build label set: Forward[v] and
// Backward[v] are vertex v's forward and backward labels.
type Labels struct {
	Forward  []Label
	Backward []Label
}

// rawEntry is the pre-prune, pre-index-conversion representation used
// internally during construction: PredHub is a hub-vertex id rather than
// an in-label index (the index space doesn't exist yet, since pruning
// may still drop entries), with noPred marking the root.
type rawEntry struct {
	Hub     uint32
	Weight  uint32
	PredHub uint32
}

// noPred mirrors search.NoVertex: the sentinel meaning "no predecessor,
// this entry is its own label's root".
const noPred = search.NoVertex
