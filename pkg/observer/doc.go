// Package observer lets consumers watch a timing analysis as it runs.
//
// The engine emits events at analysis boundaries (start/end), around each
// pipeline stage (topological sort, forward sweep, backward sweep, slack
// computation, path extraction) and once per extracted critical path.
// Observers are notified asynchronously through a Manager; a panicking
// observer is recovered and never disturbs the analysis.
package observer
