package contractor

import "errors"

// ErrNonTopological indicates Validate found a retained edge whose head
// (out-adjacency) or tail (in-adjacency) has a strictly lower level than
// the vertex it's attached to — a violation of spec.md §8 property 2.
// This is a fatal invariant violation: correct contraction never
// produces it.
var ErrNonTopological = errors.New("contractor: level monotonicity violated after filtering")
