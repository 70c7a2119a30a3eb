// Package timing implements the arrival-time, required-time and slack
// computations over a delay-weighted timing DAG.
//
// # Sweeps
//
// ForwardArrivalTimes seeds every startpoint with the clock-to-Q delay (or
// a per-net override) and propagates late-mode arrival times along a
// topological order:
//
//	AT[v] = max over edges (u -> v) of AT[u] + d(u, v)
//
// Alongside the arrival times it records, for every net, the list of
// predecessors that achieve the maximum. A candidate that beats the current
// arrival by more than eps replaces the witness list; a candidate within
// eps is appended, so every tie witness stays available for path
// enumeration.
//
// BackwardRequiredTimes seeds every endpoint with Tclk - setup (or an
// override) and tightens required times in reverse topological order:
//
//	RT[u] = min over edges (u -> v) of RT[v] - d(u, v)
//
// # Slack
//
// ComputeSlacks combines the two: node slack is RT - AT, edge slack is
// RT[v] - AT[u] - d(u, v). WNS is the minimum of the finite node slacks and
// TNS the sum of the negative finite ones; infinite slacks from
// disconnected islands are excluded so they cannot poison the aggregates.
//
// Run executes the whole pipeline (topological sort included) and returns
// the per-run result bundle. All maps in the bundle are owned by the run;
// the input graph is only read.
package timing
