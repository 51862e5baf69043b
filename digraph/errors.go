// errors.go — sentinel errors for the digraph package.
//
// Error policy (matching the teacher repo's builder/errors.go convention):
//   - Only sentinel variables are exported.
//   - Callers branch with errors.Is; sentinels are never pre-formatted.
//   - Implementations attach context with fmt.Errorf("...: %w", ..., Err).
package digraph

import "errors"

// ErrVertexOutOfRange indicates an edge or operation referenced a vertex
// id outside [0,N) for this graph.
var ErrVertexOutOfRange = errors.New("digraph: vertex out of range")

// ErrAdjacencyDesync indicates out[v]/in[v] disagree about an edge that
// mutation code believed it had updated atomically. This is a fatal
// programmer error — it should never occur in correct code. No function
// in this package returns it; the mutation methods keep both views in
// step under one lock and perform no desync check of their own.
var ErrAdjacencyDesync = errors.New("digraph: adjacency views desynchronized")
