package timing

import (
	"github.com/yesoreyeram/neram/pkg/graph"
	"github.com/yesoreyeram/neram/pkg/types"
)

// BackwardRequiredTimes computes required times over the DAG.
//
// Every net starts untightened (+Inf). Endpoints that exist in the graph
// are seeded with Tclk - setup, then overrides are applied verbatim. The
// sweep walks topo in reverse order and tightens each net against its
// fanout:
//
//	RT[u] = min(RT[u], RT[v] - d(u, v))
func BackwardRequiredTimes(
	g *graph.Graph,
	topo []string,
	endpoints []string,
	tclk float64,
	setup float64,
	endpointOverrides map[string]float64,
) map[string]float64 {
	rt := make(map[string]float64, g.NodeCount())
	for _, n := range g.Nodes() {
		rt[n] = types.Untightened()
	}

	for _, e := range endpoints {
		if _, ok := rt[e]; ok {
			rt[e] = tclk - setup
		}
	}
	for e, v := range endpointOverrides {
		if _, ok := rt[e]; ok {
			rt[e] = v
		}
	}

	for i := len(topo) - 1; i >= 0; i-- {
		u := topo[i]
		g.OutEdges(u, func(v string, d float64) {
			if cand := rt[v] - d; cand < rt[u] {
				rt[u] = cand
			}
		})
	}

	return rt
}

// BackwardRequiredTimesAutoTopo computes the topological order internally
// and then runs BackwardRequiredTimes.
func BackwardRequiredTimesAutoTopo(
	g *graph.Graph,
	endpoints []string,
	tclk float64,
	setup float64,
	endpointOverrides map[string]float64,
) (map[string]float64, error) {
	topo, err := g.TopologicalSort()
	if err != nil {
		return nil, err
	}
	return BackwardRequiredTimes(g, topo, endpoints, tclk, setup, endpointOverrides), nil
}
