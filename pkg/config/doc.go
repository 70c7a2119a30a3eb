// Package config centralizes the timing engine configuration.
//
// Config carries the clock parameters (period, setup, clock-to-Q), the
// forward-sweep tie tolerance, per-net arrival/required overrides, the
// critical-path count, and the resource limits the HTTP surface enforces.
// Default, Testing, Validate and Clone follow the usual constructor set;
// LoadConstraints merges a YAML constraints file over an existing Config so
// command-line drivers can keep clock parameters next to the netlist they
// constrain.
package config
