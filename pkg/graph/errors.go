package graph

import "errors"

// Sentinel errors for graph operations
var (
	// Topological sort errors
	ErrNotDirected   = errors.New("graph is not directed")
	ErrCycleDetected = errors.New("graph contains a cycle; topological sort not possible")

	// Structure errors
	ErrNodeNotFound = errors.New("node not found in graph")
	ErrEdgeNotFound = errors.New("edge not found in graph")
	ErrEmptyNode    = errors.New("node name must not be empty")
)
