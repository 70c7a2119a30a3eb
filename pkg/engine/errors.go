package engine

import "errors"

// Sentinel errors for engine operations
var (
	// Payload validation errors
	ErrInvalidPayload  = errors.New("invalid analysis payload")
	ErrEmptyNetlist    = errors.New("netlist source is empty")
	ErrNetlistTooLarge = errors.New("netlist source exceeds size limit")

	// Resource errors
	ErrMaxNetsExceeded  = errors.New("maximum number of nets exceeded")
	ErrMaxEdgesExceeded = errors.New("maximum number of edges exceeded")

	// Analysis errors
	ErrInvalidPathCount = errors.New("requested path count must be positive")
)
