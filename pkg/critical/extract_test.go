package critical

import (
	"testing"

	"github.com/yesoreyeram/neram/pkg/graph"
	"github.com/yesoreyeram/neram/pkg/netlist"
	"github.com/yesoreyeram/neram/pkg/timing"
	"github.com/yesoreyeram/neram/pkg/types"
)

func mustDesign(t *testing.T, src string) *netlist.Design {
	t.Helper()
	d, err := netlist.NewParser().Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func tightOptions() timing.Options {
	return timing.Options{
		Tclk:     0.05,
		Setup:    0.0,
		ClockToQ: 0.0,
		Eps:      timing.DefaultEps,
	}
}

func TestExtractSinglePath_Chain(t *testing.T) {
	d := mustDesign(t, `
assign x = a & b;
assign y = x & c;
assign z = y & d;
`)

	path, res, err := ExtractSinglePath(d.Graph, d.Startpoints(), d.Endpoints(), timing.Options{
		Tclk: 1.0, Setup: 0.05, ClockToQ: 0.0, Eps: timing.DefaultEps,
	})
	if err != nil {
		t.Fatalf("ExtractSinglePath() error = %v", err)
	}
	if res == nil {
		t.Fatal("result bundle missing")
	}
	if path == nil {
		t.Fatal("no path extracted")
	}

	// The first strict winner into x is a, so the traced path is
	// a -> x -> y -> z.
	want := []string{"a", "x", "y", "z"}
	if !equalStrings(path.Nodes, want) {
		t.Errorf("path nodes = %v, want %v", path.Nodes, want)
	}
	if len(path.Edges) != 3 {
		t.Errorf("path edges = %v, want 3 arcs", path.Edges)
	}
	if !almostEqual(path.Delay, 0.06) {
		t.Errorf("path delay = %v, want 0.06", path.Delay)
	}
	if path.TNS != 0 {
		t.Errorf("path TNS = %v, want 0", path.TNS)
	}
}

func TestExtractSinglePath_NoEndpointInGraph(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "y", 0.02)

	path, res, err := ExtractSinglePath(g, []string{"a"}, []string{"elsewhere"}, tightOptions())
	if err != nil {
		t.Fatal(err)
	}
	if path != nil {
		t.Errorf("path = %v, want nil for unknown endpoint", path)
	}
	if res == nil {
		t.Error("result bundle missing")
	}
}

func TestExtractSinglePath_SingleNodeYieldsNoPath(t *testing.T) {
	g := graph.New()
	g.AddNode("only")

	path, _, err := ExtractSinglePath(g, []string{"only"}, []string{"only"}, tightOptions())
	if err != nil {
		t.Fatal(err)
	}
	if path != nil {
		t.Errorf("path = %v, want nil: fewer than two nodes", path)
	}
}

func TestFindKPaths_DiamondEdgeDisjoint(t *testing.T) {
	d := mustDesign(t, `
assign m1 = a & b;
assign m2 = a | b;
assign y = m1 | m2;
`)

	paths, err := FindKPaths(d.Graph, d.Startpoints(), d.Endpoints(), tightOptions(), 2)
	if err != nil {
		t.Fatalf("FindKPaths() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}

	// Both paths end at y, with pairwise disjoint edge sets.
	for i, p := range paths {
		if p.Nodes[len(p.Nodes)-1] != "y" {
			t.Errorf("path %d endpoint = %s, want y", i, p.Nodes[len(p.Nodes)-1])
		}
	}
	assertEdgeDisjoint(t, paths)

	// The original graph is untouched by the extraction.
	if got := d.Graph.EdgeCount(); got != 6 {
		t.Errorf("original EdgeCount() = %d, want 6", got)
	}
}

func TestFindKPaths_SupplyExhausted(t *testing.T) {
	d := mustDesign(t, `
assign m1 = a & b;
assign m2 = a | b;
assign y = m1 | m2;
`)

	paths, err := FindKPaths(d.Graph, d.Startpoints(), d.Endpoints(), tightOptions(), 3)
	if err != nil {
		t.Fatal(err)
	}
	// Two edge-disjoint routes into y exist; the third request comes up
	// empty and the loop stops early.
	if len(paths) != 2 {
		t.Errorf("got %d paths, want 2 (edge supply exhausted)", len(paths))
	}
	assertEdgeDisjoint(t, paths)
}

func TestFindKPaths_WorstPathFirst(t *testing.T) {
	d := mustDesign(t, `
assign m1 = a & b;
assign m2 = a | b;
assign y = m1 | m2;
`)

	paths, err := FindKPaths(d.Graph, d.Startpoints(), d.Endpoints(), tightOptions(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}

	// The OR route (0.04 + 0.04) dominates the AND route (0.02 + 0.04),
	// so the first emitted path must be the slower one.
	if paths[0].Delay < paths[1].Delay {
		t.Errorf("paths out of order: first delay %v < second %v", paths[0].Delay, paths[1].Delay)
	}
	if !almostEqual(paths[0].Delay, 0.08) {
		t.Errorf("first path delay = %v, want 0.08", paths[0].Delay)
	}
}

func TestFindKPaths_RestoredGraphReproducesWorstPath(t *testing.T) {
	d := mustDesign(t, `
assign m1 = a & b;
assign m2 = a | b;
assign y = m1 | m2;
`)
	opts := tightOptions()

	first, _, err := ExtractSinglePath(d.Graph, d.Startpoints(), d.Endpoints(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first == nil {
		t.Fatal("no path extracted")
	}

	// Remove and restore the path's edges on a clone, then re-extract:
	// the same worst path must come back.
	work := d.Graph.Clone()
	removed := make([]types.Edge, 0, len(first.Edges))
	for _, e := range first.Edges {
		delay, _ := work.Delay(e.Source, e.Target)
		removed = append(removed, types.Edge{Source: e.Source, Target: e.Target, Delay: delay})
		if err := work.RemoveEdge(e.Source, e.Target); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range removed {
		work.AddEdge(e.Source, e.Target, e.Delay)
	}

	again, _, err := ExtractSinglePath(work, d.Startpoints(), d.Endpoints(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if again == nil {
		t.Fatal("no path after restore")
	}
	if !equalStrings(first.Nodes, again.Nodes) {
		t.Errorf("worst path changed after restore: %v vs %v", first.Nodes, again.Nodes)
	}
}

func assertEdgeDisjoint(t *testing.T, paths []types.Path) {
	t.Helper()
	seen := make(map[types.Arc]int)
	for i, p := range paths {
		for _, e := range p.Edges {
			if j, ok := seen[e]; ok {
				t.Errorf("edge %v shared by paths %d and %d", e, j, i)
			}
			seen[e] = i
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= 1e-9
}
