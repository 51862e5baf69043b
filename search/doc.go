// Package search provides the Dijkstra bookkeeping shared by witness
// search, contraction-hierarchy queries, and the capped hub-labelling
// builder mode: a lazy binary min-heap keyed by best-known cost, and a
// dense per-vertex State (best cost, predecessor, expanded flag).
//
// Vertices are dense uint32 identifiers in [0,N); State is sized once for
// N and reused across searches via Reset, avoiding per-query allocation
// of O(N) maps the way a string-keyed graph would require.
//
// All cost arithmetic saturates at math.MaxUint32, which doubles as the
// "unreachable" sentinel — see SaturatingAdd.
package search
