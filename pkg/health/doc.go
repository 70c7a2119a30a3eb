// Package health provides liveness and readiness checks for the timing
// engine's HTTP surface.
package health
