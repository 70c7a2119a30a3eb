// Package critical extracts the most critical timing paths from an
// analyzed DAG.
//
// ExtractSinglePath runs a full analysis, picks the endpoint with the
// worst node slack (first one in input order on ties), and walks the
// back-predecessor witness lists from there to a startpoint, always
// following the first recorded witness. The traced sequence is reversed
// into source-to-sink orientation and annotated with its accumulated delay
// and path-restricted WNS/TNS.
//
// FindKPaths repeats that extraction up to k times on a private clone of
// the DAG, removing each emitted path's edges before the next iteration and
// re-running the analysis so arrival times and witnesses reflect the pruned
// graph. Removing edges (never nodes) keeps nets available to later paths
// while guaranteeing the emitted paths are pairwise edge-disjoint. This is
// a greedy heuristic for reporting, not an exact k-shortest-paths
// enumeration.
package critical
