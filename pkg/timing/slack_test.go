package timing

import (
	"math"
	"testing"

	"github.com/yesoreyeram/neram/pkg/graph"
	"github.com/yesoreyeram/neram/pkg/types"
)

func TestComputeSlacks_Chain(t *testing.T) {
	g := chainGraph()
	topo, _ := g.TopologicalSort()
	at, _ := ForwardArrivalTimes(g, topo, []string{"a", "b", "c", "d"}, 0.0, nil, DefaultEps)
	rt := BackwardRequiredTimes(g, topo, []string{"z"}, 1.0, 0.05, nil)

	nodeSlack, edgeSlack, wns, tns := ComputeSlacks(g, at, rt)

	if !almostEqual(nodeSlack["z"], 0.89) {
		t.Errorf("nodeSlack[z] = %v, want 0.89", nodeSlack["z"])
	}
	if !almostEqual(wns, 0.89) {
		t.Errorf("WNS = %v, want 0.89", wns)
	}
	if tns != 0 {
		t.Errorf("TNS = %v, want 0", tns)
	}

	// Slack identity on every edge.
	for _, e := range g.Edges() {
		got := edgeSlack[types.Arc{Source: e.Source, Target: e.Target}]
		want := rt[e.Target] - at[e.Source] - e.Delay
		if got != want {
			t.Errorf("edgeSlack[%s->%s] = %v, want exact %v", e.Source, e.Target, got, want)
		}
	}
}

func TestComputeSlacks_NegativeSlackAggregation(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "y", 0.3)
	g.AddEdge("b", "z", 0.1)

	topo, _ := g.TopologicalSort()
	at, _ := ForwardArrivalTimes(g, topo, []string{"a", "b"}, 0.0, nil, DefaultEps)
	rt := BackwardRequiredTimes(g, topo, []string{"y", "z"}, 0.2, 0.0, nil)

	nodeSlack, _, wns, tns := ComputeSlacks(g, at, rt)

	// y misses by 0.1 (and a equally); z makes it with 0.1 to spare.
	if !almostEqual(nodeSlack["y"], -0.1) {
		t.Errorf("nodeSlack[y] = %v, want -0.1", nodeSlack["y"])
	}
	if !almostEqual(wns, -0.1) {
		t.Errorf("WNS = %v, want -0.1", wns)
	}
	// Negative contributions: a and y at -0.1 each.
	if !almostEqual(tns, -0.2) {
		t.Errorf("TNS = %v, want -0.2", tns)
	}
}

func TestComputeSlacks_InfiniteSlacksExcluded(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "y", 0.02)
	g.AddEdge("u", "v", 0.02) // island: unreached and untightened

	topo, _ := g.TopologicalSort()
	at, _ := ForwardArrivalTimes(g, topo, []string{"a"}, 0.0, nil, DefaultEps)
	rt := BackwardRequiredTimes(g, topo, []string{"y"}, 1.0, 0.0, nil)

	nodeSlack, _, wns, tns := ComputeSlacks(g, at, rt)

	if !math.IsInf(nodeSlack["u"], 1) {
		t.Errorf("nodeSlack[u] = %v, want +Inf", nodeSlack["u"])
	}
	if !almostEqual(wns, 0.98) {
		t.Errorf("WNS = %v, want 0.98 (islands excluded)", wns)
	}
	if tns != 0 {
		t.Errorf("TNS = %v, want 0", tns)
	}
}

func TestComputeSlacks_EmptyGraph(t *testing.T) {
	g := graph.New()
	nodeSlack, edgeSlack, wns, tns := ComputeSlacks(g, map[string]float64{}, map[string]float64{})

	if len(nodeSlack) != 0 || len(edgeSlack) != 0 {
		t.Error("empty graph produced slack entries")
	}
	if !math.IsInf(wns, 1) {
		t.Errorf("WNS = %v, want +Inf", wns)
	}
	if tns != 0 {
		t.Errorf("TNS = %v, want 0", tns)
	}
}
