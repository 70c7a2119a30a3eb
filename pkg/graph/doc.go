// Package graph provides the timing DAG and its topological ordering.
//
// # Overview
//
// A Graph is a directed graph whose nodes are net names and whose edges
// carry a single float64 delay in seconds. Nets are interned into a dense
// integer table in insertion order, and every iteration the package exposes
// (node listing, fanout walking, Kahn's queue seeding) follows that order,
// so analysis results are deterministic for a given build sequence.
//
// # Topological Sort
//
// TopologicalSort implements Kahn's algorithm:
//
//  1. Compute the in-degree of every net.
//  2. Seed a FIFO queue with all in-degree-zero nets, in insertion order.
//  3. Pop, emit, and decrement the in-degree of each fanout; push fanouts
//     that reach zero.
//  4. If fewer nets were emitted than exist, the graph contains a cycle and
//     ErrCycleDetected is returned.
//
// # Mutation
//
// Graphs built by the netlist front end are treated as immutable by the
// analysis passes. The k-critical-path extractor works on a Clone, from
// which it removes already-emitted edges with RemoveEdge; node identities
// are shared between a graph and its clones.
package graph
