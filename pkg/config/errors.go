package config

import "errors"

// Sentinel errors for configuration validation
var (
	ErrInvalidClockPeriod    = errors.New("clock period must be positive")
	ErrInvalidSetup          = errors.New("setup time must not be negative")
	ErrInvalidClockToQ       = errors.New("clock-to-q delay must not be negative")
	ErrInvalidEps            = errors.New("tie tolerance must not be negative")
	ErrInvalidMaxPaths       = errors.New("critical path count must be positive")
	ErrInvalidMaxNetlistSize = errors.New("netlist size limit must not be negative")
	ErrInvalidMaxNets        = errors.New("net count limit must not be negative")
	ErrInvalidMaxEdges       = errors.New("edge count limit must not be negative")

	// Constraints file errors
	ErrConstraintsUnreadable = errors.New("constraints file cannot be read")
	ErrInvalidConstraints    = errors.New("invalid constraints file")
)
