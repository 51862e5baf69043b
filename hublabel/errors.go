package hublabel

import "errors"

// ErrPredecessorCycle indicates a cycle was detected while walking a
// label's predecessor chain during path reconstruction — a fatal
// construction bug (spec.md §8 "Cycle in label predecessor chain"),
// never a recoverable runtime condition.
var ErrPredecessorCycle = errors.New("hublabel: cycle in label predecessor chain")

// ErrVertexOutOfRange is returned when a query names a vertex outside
// the labels' vertex space.
var ErrVertexOutOfRange = errors.New("hublabel: vertex out of range")
