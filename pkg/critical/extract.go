package critical

import (
	"math"

	"github.com/yesoreyeram/neram/pkg/graph"
	"github.com/yesoreyeram/neram/pkg/timing"
	"github.com/yesoreyeram/neram/pkg/types"
)

// ExtractSinglePath runs one full timing analysis and extracts the single
// most critical path.
//
// The returned path is nil (with a non-nil result) when no endpoint exists
// in the graph or the worst endpoint has no predecessor to trace through —
// a path needs at least two nets.
func ExtractSinglePath(
	g *graph.Graph,
	startpoints, endpoints []string,
	opts timing.Options,
) (*types.Path, *types.Result, error) {
	res, err := timing.Run(g, startpoints, endpoints, opts)
	if err != nil {
		return nil, nil, err
	}

	// Endpoints without a slack entry never appeared in the netlist.
	worst := ""
	worstSlack := 0.0
	found := false
	for _, e := range endpoints {
		s, ok := res.NodeSlack[e]
		if !ok {
			continue
		}
		if !found || s < worstSlack {
			worst = e
			worstSlack = s
			found = true
		}
	}
	if !found {
		return nil, res, nil
	}

	startSet := make(map[string]struct{}, len(startpoints))
	for _, s := range startpoints {
		startSet[s] = struct{}{}
	}

	// Trace back from the worst endpoint along the first witness.
	var nodes []string
	var edges []types.Arc
	current := worst
	for {
		nodes = append(nodes, current)
		if _, isStart := startSet[current]; isStart {
			break
		}
		preds := res.BackPred[current]
		if len(preds) == 0 {
			break
		}
		pred := preds[0]
		edges = append(edges, types.Arc{Source: pred, Target: current})
		current = pred
	}

	if len(nodes) < 2 {
		return nil, res, nil
	}

	// Reverse into startpoint -> endpoint orientation.
	reverseStrings(nodes)
	reverseArcs(edges)

	totalDelay := 0.0
	for _, e := range edges {
		if d, ok := g.Delay(e.Source, e.Target); ok {
			totalDelay += d
		}
	}

	// WNS/TNS restricted to the slacks on this path.
	pathWNS := math.Inf(1)
	pathTNS := 0.0
	consider := func(s float64) {
		if s < pathWNS {
			pathWNS = s
		}
		if s < 0 {
			pathTNS += s
		}
	}
	for _, n := range nodes {
		if s, ok := res.NodeSlack[n]; ok {
			consider(s)
		} else {
			consider(math.Inf(1))
		}
	}
	for _, e := range edges {
		if s, ok := res.EdgeSlack[e]; ok {
			consider(s)
		} else {
			consider(math.Inf(1))
		}
	}

	return &types.Path{
		Nodes: nodes,
		Edges: edges,
		Delay: totalDelay,
		WNS:   pathWNS,
		TNS:   pathTNS,
	}, res, nil
}

// FindKPaths extracts up to k edge-disjoint critical paths.
//
// The extraction operates on a clone of g; the input graph is never
// mutated. After each emitted path its edges are removed from the working
// copy and the analysis is re-run, so each iteration's witnesses reflect
// the pruned graph. The loop stops early once an iteration yields no path.
func FindKPaths(
	g *graph.Graph,
	startpoints, endpoints []string,
	opts timing.Options,
	k int,
) ([]types.Path, error) {
	work := g.Clone()
	var paths []types.Path

	for i := 0; i < k; i++ {
		path, _, err := ExtractSinglePath(work, startpoints, endpoints, opts)
		if err != nil {
			return nil, err
		}
		if path == nil {
			break
		}
		paths = append(paths, *path)

		// Block this path for the next iteration by removing its edges.
		for _, e := range path.Edges {
			if work.HasEdge(e.Source, e.Target) {
				_ = work.RemoveEdge(e.Source, e.Target)
			}
		}
	}

	return paths, nil
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseArcs(s []types.Arc) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
