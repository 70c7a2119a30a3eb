package timing

import (
	"math"

	"github.com/yesoreyeram/neram/pkg/graph"
	"github.com/yesoreyeram/neram/pkg/types"
)

// ForwardArrivalTimes propagates late-mode arrival times over the DAG.
//
// Every net starts unreached (-Inf). Startpoints that exist in the graph
// are seeded with clockToQ, then overrides are applied verbatim (overrides
// win, also for nets that are not startpoints as long as they exist). The
// sweep walks topo in order; unreached nets push nothing to their fanout.
//
// backpred[v] holds the predecessors that realize AT[v]: a candidate more
// than eps above the current arrival replaces the list, one within eps is
// appended. With eps = 0 only exactly-equal candidates tie.
func ForwardArrivalTimes(
	g *graph.Graph,
	topo []string,
	startpoints []string,
	clockToQ float64,
	startpointOverrides map[string]float64,
	eps float64,
) (map[string]float64, map[string][]string) {
	at := make(map[string]float64, g.NodeCount())
	backpred := make(map[string][]string, g.NodeCount())
	for _, n := range g.Nodes() {
		at[n] = types.Unreached()
		backpred[n] = []string{}
	}

	for _, s := range startpoints {
		if _, ok := at[s]; ok {
			at[s] = clockToQ
		}
	}
	for s, v := range startpointOverrides {
		if _, ok := at[s]; ok {
			at[s] = v
		}
	}

	for _, u := range topo {
		au := at[u]
		if math.IsInf(au, -1) {
			// Unreachable; nothing to push to fanouts.
			continue
		}
		g.OutEdges(u, func(v string, d float64) {
			cand := au + d
			switch {
			case cand > at[v]+eps:
				at[v] = cand
				backpred[v] = []string{u}
			case math.Abs(cand-at[v]) <= eps:
				// Tie: keep every predecessor that realizes the max.
				backpred[v] = append(backpred[v], u)
			}
		})
	}

	return at, backpred
}

// ForwardArrivalTimesAutoTopo computes the topological order internally and
// then runs ForwardArrivalTimes.
func ForwardArrivalTimesAutoTopo(
	g *graph.Graph,
	startpoints []string,
	clockToQ float64,
	startpointOverrides map[string]float64,
	eps float64,
) (map[string]float64, map[string][]string, error) {
	topo, err := g.TopologicalSort()
	if err != nil {
		return nil, nil, err
	}
	at, backpred := ForwardArrivalTimes(g, topo, startpoints, clockToQ, startpointOverrides, eps)
	return at, backpred, nil
}
