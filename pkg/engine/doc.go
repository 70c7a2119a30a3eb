// Package engine orchestrates the static timing analysis pipeline.
//
// # Overview
//
// An Engine owns one parsed netlist and the configuration of its analysis
// runs. Construction validates the JSON payload against an embedded schema,
// enforces the configured resource limits, parses the Verilog source into a
// timing DAG and derives the startpoint/endpoint boundary sets. Each
// constructed engine gets a unique analysis ID.
//
// Analyze runs the pipeline — topological sort, forward arrival sweep,
// backward required sweep, slack computation — and returns the result
// bundle. AnalyzeKPaths additionally extracts up to k edge-disjoint
// critical paths from a pruned working copy of the DAG.
//
// # Observability
//
// Registered observers receive events around the analysis and each of its
// stages, plus one event per extracted path. Structured logs carry the
// analysis and netlist IDs throughout.
package engine
