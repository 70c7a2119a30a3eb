// Package graph provides the delay-weighted DAG underlying the timing engine.
package graph

import (
	"github.com/yesoreyeram/neram/pkg/types"
)

// arc is one outgoing edge in the adjacency list.
type arc struct {
	to    int
	delay float64
}

// Graph is a directed graph of nets with float64 edge delays.
//
// Nets are interned into a dense index table; nodes and adjacency lists are
// kept in insertion order so that every sweep over the graph is
// deterministic. The zero value is not usable; call New.
type Graph struct {
	nodes []string
	index map[string]int
	succ  [][]arc
	preds [][]int
	indeg []int
	edges int
}

// New creates an empty timing graph.
func New() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}

// AddNode interns a net and returns its dense index. Adding a net that
// already exists is a no-op and returns the existing index.
func (g *Graph) AddNode(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, name)
	g.index[name] = i
	g.succ = append(g.succ, nil)
	g.preds = append(g.preds, nil)
	g.indeg = append(g.indeg, 0)
	return i
}

// AddEdge adds a directed edge u -> v with the given delay in seconds,
// interning both endpoints as needed. Adding an edge that already exists
// overwrites its delay.
func (g *Graph) AddEdge(u, v string, delay float64) {
	ui := g.AddNode(u)
	vi := g.AddNode(v)
	for i := range g.succ[ui] {
		if g.succ[ui][i].to == vi {
			g.succ[ui][i].delay = delay
			return
		}
	}
	g.succ[ui] = append(g.succ[ui], arc{to: vi, delay: delay})
	g.preds[vi] = append(g.preds[vi], ui)
	g.indeg[vi]++
	g.edges++
}

// HasNode reports whether the net is present in the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]
	return ok
}

// HasEdge reports whether the edge u -> v is present.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.Delay(u, v)
	return ok
}

// Delay returns the delay of the edge u -> v.
func (g *Graph) Delay(u, v string) (float64, bool) {
	ui, ok := g.index[u]
	if !ok {
		return 0, false
	}
	vi, ok := g.index[v]
	if !ok {
		return 0, false
	}
	for _, a := range g.succ[ui] {
		if a.to == vi {
			return a.delay, true
		}
	}
	return 0, false
}

// RemoveEdge deletes the edge u -> v, preserving the relative order of the
// remaining fanout. Returns ErrEdgeNotFound if the edge is absent.
func (g *Graph) RemoveEdge(u, v string) error {
	ui, ok := g.index[u]
	if !ok {
		return ErrEdgeNotFound
	}
	vi, ok := g.index[v]
	if !ok {
		return ErrEdgeNotFound
	}
	for i, a := range g.succ[ui] {
		if a.to == vi {
			g.succ[ui] = append(g.succ[ui][:i], g.succ[ui][i+1:]...)
			for j, p := range g.preds[vi] {
				if p == ui {
					g.preds[vi] = append(g.preds[vi][:j], g.preds[vi][j+1:]...)
					break
				}
			}
			g.indeg[vi]--
			g.edges--
			return nil
		}
	}
	return ErrEdgeNotFound
}

// NodeCount returns the number of nets.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Nodes returns the nets in insertion order. The returned slice is a copy.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns every edge with its delay, grouped by source in insertion
// order.
func (g *Graph) Edges() []types.Edge {
	out := make([]types.Edge, 0, g.edges)
	for ui, fanout := range g.succ {
		for _, a := range fanout {
			out = append(out, types.Edge{
				Source: g.nodes[ui],
				Target: g.nodes[a.to],
				Delay:  a.delay,
			})
		}
	}
	return out
}

// OutEdges calls fn for each outgoing edge of u in insertion order. The
// callback receives the target net and the edge delay.
func (g *Graph) OutEdges(u string, fn func(v string, delay float64)) {
	ui, ok := g.index[u]
	if !ok {
		return
	}
	for _, a := range g.succ[ui] {
		fn(g.nodes[a.to], a.delay)
	}
}

// Predecessors returns the source nets of v's incoming edges in the order
// the edges were added.
func (g *Graph) Predecessors(v string) []string {
	vi, ok := g.index[v]
	if !ok {
		return nil
	}
	out := make([]string, len(g.preds[vi]))
	for i, p := range g.preds[vi] {
		out[i] = g.nodes[p]
	}
	return out
}

// InDegree returns the number of incoming edges of the net, or 0 if the net
// is unknown.
func (g *Graph) InDegree(name string) int {
	i, ok := g.index[name]
	if !ok {
		return 0
	}
	return g.indeg[i]
}

// OutDegree returns the number of outgoing edges of the net, or 0 if the
// net is unknown.
func (g *Graph) OutDegree(name string) int {
	i, ok := g.index[name]
	if !ok {
		return 0
	}
	return len(g.succ[i])
}

// Clone returns a graph sharing node identities with g but owning its own
// edge set, so edges may be removed from the clone without touching g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes: make([]string, len(g.nodes)),
		index: make(map[string]int, len(g.index)),
		succ:  make([][]arc, len(g.succ)),
		preds: make([][]int, len(g.preds)),
		indeg: make([]int, len(g.indeg)),
		edges: g.edges,
	}
	copy(c.nodes, g.nodes)
	for k, v := range g.index {
		c.index[k] = v
	}
	for i, fanout := range g.succ {
		c.succ[i] = make([]arc, len(fanout))
		copy(c.succ[i], fanout)
	}
	for i, ps := range g.preds {
		c.preds[i] = make([]int, len(ps))
		copy(c.preds[i], ps)
	}
	copy(c.indeg, g.indeg)
	return c
}

// TopologicalSort orders the nets with Kahn's algorithm.
//
// The initial queue holds every in-degree-zero net in insertion order and
// is processed FIFO. If the emitted order is shorter than the node count
// the graph contains a cycle and ErrCycleDetected is returned.
func (g *Graph) TopologicalSort() ([]string, error) {
	numNodes := len(g.nodes)
	if numNodes == 0 {
		return []string{}, nil
	}

	// Working copy of the in-degrees; the graph itself is not mutated.
	indeg := make([]int, numNodes)
	copy(indeg, g.indeg)

	// Ring buffer for the FIFO queue; every node enters at most once.
	queue := make([]int, numNodes)
	queueStart, queueEnd := 0, 0
	for i := 0; i < numNodes; i++ {
		if indeg[i] == 0 {
			queue[queueEnd] = i
			queueEnd++
		}
	}

	order := make([]string, 0, numNodes)
	for queueStart < queueEnd {
		u := queue[queueStart]
		queueStart++
		order = append(order, g.nodes[u])

		for _, a := range g.succ[u] {
			indeg[a.to]--
			if indeg[a.to] == 0 {
				queue[queueEnd] = a.to
				queueEnd++
			}
		}
	}

	if len(order) != numNodes {
		return nil, ErrCycleDetected
	}
	return order, nil
}
