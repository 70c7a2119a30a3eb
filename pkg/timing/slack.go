package timing

import (
	"math"

	"github.com/yesoreyeram/neram/pkg/graph"
	"github.com/yesoreyeram/neram/pkg/types"
)

// ComputeSlacks derives node slacks, edge slacks, WNS and TNS from the
// arrival and required times.
//
//	node slack: S[n]      = RT[n] - AT[n]
//	edge slack: S[(u,v)]  = RT[v] - AT[u] - d(u,v)
//
// Arithmetic follows the extended reals: an unreached net (AT = -Inf) under
// an untightened requirement (RT = +Inf) gets slack +Inf. WNS and TNS are
// taken over the finite node slacks only, so disconnected islands do not
// poison the aggregates; a graph with no finite slack at all reports
// WNS = +Inf and TNS = 0.
func ComputeSlacks(
	g *graph.Graph,
	at map[string]float64,
	rt map[string]float64,
) (map[string]float64, map[types.Arc]float64, float64, float64) {
	nodeSlack := make(map[string]float64, g.NodeCount())
	for _, n := range g.Nodes() {
		a, ok := at[n]
		if !ok {
			a = types.Unreached()
		}
		r, ok := rt[n]
		if !ok {
			r = types.Untightened()
		}
		nodeSlack[n] = r - a
	}

	edgeSlack := make(map[types.Arc]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		a, ok := at[e.Source]
		if !ok {
			a = types.Unreached()
		}
		r, ok := rt[e.Target]
		if !ok {
			r = types.Untightened()
		}
		edgeSlack[types.Arc{Source: e.Source, Target: e.Target}] = r - a - e.Delay
	}

	wns := math.Inf(1)
	tns := 0.0
	haveFinite := false
	for _, s := range nodeSlack {
		if !types.IsFinite(s) {
			continue
		}
		if !haveFinite || s < wns {
			wns = s
			haveFinite = true
		}
		if s < 0 {
			tns += s
		}
	}

	return nodeSlack, edgeSlack, wns, tns
}
