// Package layout derives read-only placement data from an analyzed timing
// DAG for external visualizers.
//
// Levels assigns every net a non-negative integer: startpoints and
// in-degree-zero nets sit at level 0, every other net at one more than the
// deepest of its predecessors, so the graph reads left to right from
// startpoints to endpoints. Positions normalizes the levels into x
// coordinates spanning [0, 1] and spreads critical-path members into
// per-path horizontal bands on the y axis. Nothing in this package renders;
// it only computes coordinates for consumers that do.
package layout
