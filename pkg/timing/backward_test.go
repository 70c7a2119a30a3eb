package timing

import (
	"math"
	"testing"

	"github.com/yesoreyeram/neram/pkg/graph"
)

func TestBackwardRequiredTimes_Chain(t *testing.T) {
	g := chainGraph()
	topo, err := g.TopologicalSort()
	if err != nil {
		t.Fatal(err)
	}

	rt := BackwardRequiredTimes(g, topo, []string{"z"}, 1.0, 0.05, nil)

	want := map[string]float64{
		"z": 0.95,
		"y": 0.93, "d": 0.93,
		"x": 0.91, "c": 0.91,
		"a": 0.89, "b": 0.89,
	}
	for n, w := range want {
		if !almostEqual(rt[n], w) {
			t.Errorf("RT[%s] = %v, want %v", n, rt[n], w)
		}
	}
}

func TestBackwardRequiredTimes_SweepTightensThroughFanout(t *testing.T) {
	// u feeds two endpoints through different delays; the tighter one
	// must win.
	g := graph.New()
	g.AddEdge("u", "e1", 0.1)
	g.AddEdge("u", "e2", 0.3)

	topo, _ := g.TopologicalSort()
	rt := BackwardRequiredTimes(g, topo, []string{"e1", "e2"}, 1.0, 0.0, nil)

	if !almostEqual(rt["e1"], 1.0) || !almostEqual(rt["e2"], 1.0) {
		t.Fatalf("endpoint seeds = %v, %v; want 1.0, 1.0", rt["e1"], rt["e2"])
	}
	if !almostEqual(rt["u"], 0.7) {
		t.Errorf("RT[u] = %v, want 0.7 (min of 0.9 and 0.7)", rt["u"])
	}
}

func TestBackwardRequiredTimes_OverridesWin(t *testing.T) {
	g := graph.New()
	g.AddEdge("u", "e", 0.1)

	topo, _ := g.TopologicalSort()
	rt := BackwardRequiredTimes(g, topo, []string{"e"}, 1.0, 0.05,
		map[string]float64{"e": 0.4, "ghost": 9.0})

	if !almostEqual(rt["e"], 0.4) {
		t.Errorf("RT[e] = %v, want override 0.4", rt["e"])
	}
	if !almostEqual(rt["u"], 0.3) {
		t.Errorf("RT[u] = %v, want 0.3", rt["u"])
	}
	if _, ok := rt["ghost"]; ok {
		t.Error("override for unknown net created an entry")
	}
}

func TestBackwardRequiredTimes_UntightenedStaysInf(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "y", 0.02)
	g.AddNode("island")

	topo, _ := g.TopologicalSort()
	rt := BackwardRequiredTimes(g, topo, []string{"y"}, 1.0, 0.0, nil)

	if !math.IsInf(rt["island"], 1) {
		t.Errorf("RT[island] = %v, want +Inf", rt["island"])
	}
}

// TestBackwardRequiredTimes_Monotonicity checks RT[u] <= RT[v] - d on every
// edge with finite endpoints.
func TestBackwardRequiredTimes_Monotonicity(t *testing.T) {
	g := chainGraph()
	topo, _ := g.TopologicalSort()
	rt := BackwardRequiredTimes(g, topo, []string{"z"}, 1.0, 0.05, nil)

	for _, e := range g.Edges() {
		ru, rv := rt[e.Source], rt[e.Target]
		if math.IsInf(ru, 1) || math.IsInf(rv, 1) {
			continue
		}
		if ru > rv-e.Delay+tol {
			t.Errorf("RT[%s] = %v > RT[%s] - %v", e.Source, ru, e.Target, e.Delay)
		}
	}
}
