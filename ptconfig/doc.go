// Package ptconfig holds the configuration recognized by the core
// (spec.md §6): the witness hop limit, the hub-labelling depth limit used
// by the alternate capped-search builder mode, and the integer weights
// assigned to each contraction importance term.
//
// It follows the teacher repo's functional-options idiom exactly
// (dijkstra.Options / builder.builderConfig): New applies WithX options
// over sensible defaults in order, later options override earlier ones,
// and option constructors panic on values that can never be meaningful
// (mirroring WithMaxDistance/WithInfEdgeThreshold's panic-on-negative
// convention) rather than threading a validation error through every
// caller.
package ptconfig
