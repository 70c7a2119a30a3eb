package layout

import (
	"github.com/yesoreyeram/neram/pkg/graph"
	"github.com/yesoreyeram/neram/pkg/types"
)

// Point is a normalized 2D position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Levels computes a left-to-right level for each net based on its maximum
// distance from any startpoint.
//
// Startpoints and in-degree-zero nets are sources at level 0; every other
// net sits at max(level(pred)) + 1, computed in topological order so
// predecessors are settled first. If the graph has a cycle the same rule is
// applied in insertion order instead of a topological order, so a net can be
// levelled before all of its predecessors are settled.
func Levels(g *graph.Graph, startpoints []string) map[string]int {
	startSet := make(map[string]struct{}, len(startpoints))
	for _, s := range startpoints {
		startSet[s] = struct{}{}
	}

	level := make(map[string]int, g.NodeCount())
	for _, n := range g.Nodes() {
		level[n] = 0
	}

	order, err := g.TopologicalSort()
	if err != nil {
		order = g.Nodes()
	}

	for _, n := range order {
		if _, isStart := startSet[n]; isStart || g.InDegree(n) == 0 {
			level[n] = 0
			continue
		}
		max := 0
		for _, p := range g.Predecessors(n) {
			if l := level[p] + 1; l > max {
				max = l
			}
		}
		level[n] = max
	}

	return level
}

// Positions builds normalized 2D positions for every net.
//
// The x axis is the net's level scaled into [0, 1]. The y axis groups nets:
// members of a critical path are placed in that path's horizontal band
// (first path a net appears in wins), everything else in a background band
// near y = 0, with a small level-derived jitter so chains do not collapse
// into a single line.
func Positions(
	g *graph.Graph,
	startpoints []string,
	paths []types.Path,
) map[string]Point {
	levels := Levels(g, startpoints)
	if len(levels) == 0 {
		return map[string]Point{}
	}

	maxLevel := 0
	for _, l := range levels {
		if l > maxLevel {
			maxLevel = l
		}
	}
	if maxLevel == 0 {
		maxLevel = 1
	}
	xScale := 1.0 / float64(maxLevel)

	// First path each net participates in, if any.
	nodeToPath := make(map[string]int)
	for pi, p := range paths {
		for _, n := range p.Nodes {
			if _, ok := nodeToPath[n]; !ok {
				nodeToPath[n] = pi
			}
		}
	}

	numPaths := len(paths)
	totalBands := numPaths + 1
	if totalBands < 2 {
		totalBands = 2
	}

	positions := make(map[string]Point, g.NodeCount())
	for _, n := range g.Nodes() {
		l := levels[n]
		jitter := 0.02 * float64(l%5-2)

		bandCenter := 0.0
		if pi, ok := nodeToPath[n]; ok && numPaths > 0 {
			// Band 0 is reserved for nets off every critical path.
			bandCenter = float64(pi+1) / float64(totalBands)
		}

		positions[n] = Point{
			X: float64(l) * xScale,
			Y: bandCenter + jitter,
		}
	}

	return positions
}
