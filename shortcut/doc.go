// Package shortcut maps every shortcut edge introduced during contraction
// to its middle vertex and unpacks a path containing shortcuts into the
// sequence of original (non-shortcut) edges it represents (spec
// component G).
//
// The middle-vertex table is a flat map keyed by the packed
// (tail, head) pair, per spec.md §9's design note preferring "a flat
// sorted array... or a hash map" over a graph-of-pointers; this module
// picks the hash map for simplicity, since lookups during unpacking are
// already bounded by path length, not by graph size.
package shortcut
