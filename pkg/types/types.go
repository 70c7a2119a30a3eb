// Package types provides shared type definitions for the timing engine.
package types

import (
	"context"
	"math"
)

// ============================================================================
// Context Keys
// ============================================================================

// contextKey is used for context keys to avoid collisions
type contextKey string

const (
	// ContextKeyAnalysisID is the context key for the unique analysis ID
	ContextKeyAnalysisID contextKey = "analysis_id"

	// ContextKeyNetlistID is the context key for the netlist ID
	ContextKeyNetlistID contextKey = "netlist_id"
)

// WithAnalysisID returns a context carrying the analysis ID.
func WithAnalysisID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyAnalysisID, id)
}

// WithNetlistID returns a context carrying the netlist ID.
func WithNetlistID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyNetlistID, id)
}

// GetAnalysisID extracts the analysis ID from context.
// Returns empty string if not found in context.
func GetAnalysisID(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyAnalysisID).(string); ok {
		return id
	}
	return ""
}

// GetNetlistID extracts the netlist ID from context.
// Returns empty string if not found in context.
func GetNetlistID(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyNetlistID).(string); ok {
		return id
	}
	return ""
}

// ============================================================================
// Core Data Structures
// ============================================================================

// Edge is a directed timing arc between two nets. Delay is in seconds.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Delay  float64 `json:"delay"`
}

// Arc identifies a directed edge without its delay. It is used as a map key
// for per-edge results such as edge slack.
type Arc struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Result is the bundle produced by one timing analysis run.
//
// AT maps each net to its arrival time (-Inf when unreachable), RT to its
// required time (+Inf when untightened). BackPred lists, for every net, the
// predecessors that witness its arrival time, in the order they were
// discovered. Topo is the topological order the sweeps used.
//
// Result has a custom JSON form (see MarshalJSON): non-finite values
// encode as null and EdgeSlack becomes a sorted list of
// {source, target, slack} entries.
type Result struct {
	AnalysisID string
	NetlistID  string
	AT         map[string]float64
	RT         map[string]float64
	BackPred   map[string][]string
	NodeSlack  map[string]float64
	EdgeSlack  map[Arc]float64
	WNS        float64
	TNS        float64
	Topo       []string
}

// Path is one extracted critical path, ordered from startpoint to endpoint.
// WNS and TNS are restricted to the slacks on this path.
type Path struct {
	Nodes []string `json:"nodes"`
	Edges []Arc    `json:"edges"`
	Delay float64  `json:"delay"`
	WNS   float64  `json:"wns"`
	TNS   float64  `json:"tns"`
}

// ============================================================================
// Extended-Real Helpers
// ============================================================================

// Unreached is the arrival time of a net no startpoint can reach.
func Unreached() float64 { return math.Inf(-1) }

// Untightened is the required time of a net no endpoint constrains.
func Untightened() float64 { return math.Inf(1) }

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
