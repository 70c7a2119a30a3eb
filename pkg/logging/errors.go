package logging

import "errors"

// Sentinel errors for logging operations
var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogOutput = errors.New("invalid log output")
)
