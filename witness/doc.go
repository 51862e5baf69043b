// Package witness implements the bounded forward Dijkstra used to decide
// shortcut necessity during contraction (spec component D): a search from
// a vertex u that ignores a designated forbidden vertex, capped by a hop
// count and a cost ceiling.
package witness
