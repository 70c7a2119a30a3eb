// Package telemetry wires the timing engine into OpenTelemetry.
//
// Provider owns the meter/tracer setup with a Prometheus metrics exporter
// and exposes typed recording helpers for the quantities the engine cares
// about: analyses run, analysis durations, per-stage durations,
// critical paths extracted and timing violations observed. The
// TelemetryObserver bridges observer events onto those helpers so the
// engine itself stays free of any telemetry dependency.
package telemetry
