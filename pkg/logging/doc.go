// Package logging provides structured logging for the timing engine.
//
// # Overview
//
// The package is a thin layer over Go's built-in slog, shaped around what
// a timing run needs: an analysis/netlist identifier pair pinned once and
// carried on every record, a pipeline-stage marker, and plain slog-style
// key-value logging for everything else. Records are JSON on stderr by
// default — the sta command prints its report on stdout, and diagnostics
// must not interleave with it — with an optional human-readable text
// format. The logger travels through contexts so deep call sites do not
// need to thread it explicitly.
//
// # Basic Usage
//
//	logger := logging.New(logging.DefaultConfig()).WithAnalysis(id, netlistID)
//	logger.Info("analysis started", "nets", g.NodeCount(), "edges", g.EdgeCount())
//	logger.WithStage("forward").Debug("sweep done")
//	logger.WithError(err).Error("analysis failed")
package logging
