package timing

import (
	"math"
	"testing"

	"github.com/yesoreyeram/neram/pkg/graph"
)

const tol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func chainGraph() *graph.Graph {
	g := graph.New()
	g.AddEdge("a", "x", 0.02)
	g.AddEdge("b", "x", 0.02)
	g.AddEdge("x", "y", 0.02)
	g.AddEdge("c", "y", 0.02)
	g.AddEdge("y", "z", 0.02)
	g.AddEdge("d", "z", 0.02)
	return g
}

func TestForwardArrivalTimes_Chain(t *testing.T) {
	g := chainGraph()
	topo, err := g.TopologicalSort()
	if err != nil {
		t.Fatal(err)
	}

	at, backpred := ForwardArrivalTimes(g, topo, []string{"a", "b", "c", "d"}, 0.0, nil, DefaultEps)

	want := map[string]float64{
		"a": 0.0, "b": 0.0, "c": 0.0, "d": 0.0,
		"x": 0.02, "y": 0.04, "z": 0.06,
	}
	for n, w := range want {
		if !almostEqual(at[n], w) {
			t.Errorf("AT[%s] = %v, want %v", n, at[n], w)
		}
	}

	// a strictly wins x first, then b ties within eps.
	if got := backpred["x"]; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("backpred[x] = %v, want [a b]", got)
	}
	if got := backpred["z"]; len(got) != 1 || got[0] != "y" {
		t.Errorf("backpred[z] = %v, want [y]", got)
	}
}

func TestForwardArrivalTimes_ClockToQSeed(t *testing.T) {
	g := graph.New()
	g.AddEdge("q", "y", 0.04)

	topo, _ := g.TopologicalSort()
	at, _ := ForwardArrivalTimes(g, topo, []string{"q"}, 0.06, nil, DefaultEps)

	if !almostEqual(at["q"], 0.06) {
		t.Errorf("AT[q] = %v, want 0.06", at["q"])
	}
	if !almostEqual(at["y"], 0.10) {
		t.Errorf("AT[y] = %v, want 0.10", at["y"])
	}
}

func TestForwardArrivalTimes_OverridesWin(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "y", 0.01)
	g.AddEdge("b", "y", 0.01)

	topo, _ := g.TopologicalSort()
	at, backpred := ForwardArrivalTimes(g, topo, []string{"a", "b"}, 0.0,
		map[string]float64{"b": 0.5, "ghost": 1.0}, DefaultEps)

	if !almostEqual(at["b"], 0.5) {
		t.Errorf("AT[b] = %v, want override 0.5", at["b"])
	}
	if _, ok := at["ghost"]; ok {
		t.Error("override for unknown net created an entry")
	}
	// b's overridden arrival dominates y.
	if !almostEqual(at["y"], 0.51) {
		t.Errorf("AT[y] = %v, want 0.51", at["y"])
	}
	if got := backpred["y"]; len(got) != 1 || got[0] != "b" {
		t.Errorf("backpred[y] = %v, want [b]", got)
	}
}

func TestForwardArrivalTimes_UnreachableStaysUnreached(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "y", 0.02)
	g.AddEdge("u", "v", 0.02) // island without a startpoint

	topo, _ := g.TopologicalSort()
	at, backpred := ForwardArrivalTimes(g, topo, []string{"a"}, 0.0, nil, DefaultEps)

	if !math.IsInf(at["u"], -1) || !math.IsInf(at["v"], -1) {
		t.Errorf("island arrivals = %v, %v; want -Inf, -Inf", at["u"], at["v"])
	}
	if len(backpred["v"]) != 0 {
		t.Errorf("backpred[v] = %v, want empty: unreached sources push nothing", backpred["v"])
	}
}

func TestForwardArrivalTimes_ZeroEpsStrictTies(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "y", 0.02)
	g.AddEdge("b", "y", 0.02)

	topo, _ := g.TopologicalSort()

	// Exactly equal candidates still append under eps = 0.
	at, backpred := ForwardArrivalTimes(g, topo, []string{"a", "b"}, 0.0, nil, 0)
	if !almostEqual(at["y"], 0.02) {
		t.Errorf("AT[y] = %v, want 0.02", at["y"])
	}
	if got := backpred["y"]; len(got) != 2 {
		t.Errorf("backpred[y] = %v, want both exact-tie witnesses", got)
	}

	// A candidate below by any amount is dropped under eps = 0.
	at, backpred = ForwardArrivalTimes(g, topo, []string{"a", "b"}, 0.0,
		map[string]float64{"b": -1e-15}, 0)
	if got := backpred["y"]; len(got) != 1 || got[0] != "a" {
		t.Errorf("backpred[y] = %v, want [a] only", got)
	}
	_ = at
}

// TestForwardArrivalTimes_Monotonicity checks AT[v] >= AT[u] + d - eps on
// every edge with finite endpoints.
func TestForwardArrivalTimes_Monotonicity(t *testing.T) {
	g := chainGraph()
	g.AddEdge("a", "z", 0.001) // shortcut that must lose

	topo, _ := g.TopologicalSort()
	at, _ := ForwardArrivalTimes(g, topo, []string{"a", "b", "c", "d"}, 0.0, nil, DefaultEps)

	for _, e := range g.Edges() {
		au, av := at[e.Source], at[e.Target]
		if math.IsInf(au, -1) || math.IsInf(av, -1) {
			continue
		}
		if av < au+e.Delay-DefaultEps {
			t.Errorf("AT[%s] = %v < AT[%s] + %v", e.Target, av, e.Source, e.Delay)
		}
	}
}

// TestForwardArrivalTimes_WitnessProperty checks that every recorded
// back-predecessor actually realizes the arrival time.
func TestForwardArrivalTimes_WitnessProperty(t *testing.T) {
	g := chainGraph()
	topo, _ := g.TopologicalSort()
	at, backpred := ForwardArrivalTimes(g, topo, []string{"a", "b", "c", "d"}, 0.0, nil, DefaultEps)

	for v, preds := range backpred {
		for _, u := range preds {
			d, ok := g.Delay(u, v)
			if !ok {
				t.Errorf("witness %s -> %s is not an edge", u, v)
				continue
			}
			if math.Abs(at[u]+d-at[v]) > DefaultEps {
				t.Errorf("witness %s does not realize AT[%s]: %v + %v != %v", u, v, at[u], d, at[v])
			}
		}
	}
}
