package chquery

import "errors"

// ErrVertexOutOfRange is returned when a query names a vertex outside
// the contracted graph's vertex space.
var ErrVertexOutOfRange = errors.New("chquery: vertex out of range")
