// Package types contains the data structures shared by every stage of the
// static timing analysis pipeline.
//
// # Overview
//
// The timing engine passes three kinds of values between packages:
//
//   - Graph building blocks: Edge (a delayed arc between two nets) and Arc
//     (an edge identity used as a map key).
//   - Analysis output: Result, the per-run bundle of arrival times, required
//     times, back-predecessor witness lists, slacks, WNS/TNS and the
//     topological order used.
//   - Critical paths: Path, an ordered startpoint-to-endpoint sequence with
//     its edge list, accumulated delay and path-restricted WNS/TNS.
//
// Arrival and required times live on the extended real line: a net that no
// startpoint reaches has AT = -Inf, and a net that no endpoint constrains
// has RT = +Inf. The Unreached, Untightened and IsFinite helpers make that
// convention explicit at call sites instead of sprinkling math.Inf around.
//
// The package also defines the context keys used to carry analysis and
// netlist identifiers through logging and telemetry.
package types
