package netlist

import "errors"

// Sentinel errors for netlist operations
var (
	// File errors
	ErrFileUnreadable = errors.New("netlist file cannot be read")

	// Canonical form errors
	ErrInvalidCanonicalForm = errors.New("invalid canonical netlist form")
	ErrEmptyNetName         = errors.New("canonical form contains an empty net name")
	ErrUnknownEdgeNet       = errors.New("canonical form edge references an unknown net")
)
