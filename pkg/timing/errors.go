package timing

import "errors"

// Sentinel errors for timing analysis
var (
	ErrInvalidClockPeriod = errors.New("clock period must be positive")
	ErrNegativeSetup      = errors.New("setup time must not be negative")
	ErrNegativeClockToQ   = errors.New("clock-to-q delay must not be negative")
	ErrNegativeEps        = errors.New("tie tolerance must not be negative")
)
