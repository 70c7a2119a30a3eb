package netlist

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/yesoreyeram/neram/pkg/timing"
)

func TestCanonicalRoundTrip(t *testing.T) {
	src := `
assign m1 = a & b;
assign m2 = a | b;
assign y = m1 | m2;
always @(posedge clk) begin
  q <= y;
end
`
	d := mustParse(t, src)

	data, err := d.MarshalCanonical()
	if err != nil {
		t.Fatalf("MarshalCanonical() error = %v", err)
	}

	loaded, err := LoadCanonical(data)
	if err != nil {
		t.Fatalf("LoadCanonical() error = %v", err)
	}

	if !equalStrings(d.Graph.Nodes(), loaded.Graph.Nodes()) {
		t.Errorf("nodes differ after round trip: %v vs %v", d.Graph.Nodes(), loaded.Graph.Nodes())
	}
	if !reflect.DeepEqual(d.Graph.Edges(), loaded.Graph.Edges()) {
		t.Errorf("edges differ after round trip")
	}
	if !reflect.DeepEqual(d.QNets, loaded.QNets) || !reflect.DeepEqual(d.DNets, loaded.DNets) {
		t.Errorf("boundary sets differ after round trip")
	}

	// The analysis outputs of the original and the reloaded design must
	// be identical bit for bit.
	opts := timing.Options{Tclk: 0.5, Setup: 0.05, ClockToQ: 0.0, Eps: timing.DefaultEps}
	resA, err := timing.Run(d.Graph, d.Startpoints(), d.Endpoints(), opts)
	if err != nil {
		t.Fatalf("Run() original error = %v", err)
	}
	resB, err := timing.Run(loaded.Graph, loaded.Startpoints(), loaded.Endpoints(), opts)
	if err != nil {
		t.Fatalf("Run() reloaded error = %v", err)
	}

	if !reflect.DeepEqual(resA.AT, resB.AT) {
		t.Error("arrival times differ after round trip")
	}
	if !reflect.DeepEqual(resA.RT, resB.RT) {
		t.Error("required times differ after round trip")
	}
	if !reflect.DeepEqual(resA.BackPred, resB.BackPred) {
		t.Error("back-predecessors differ after round trip")
	}
	if resA.WNS != resB.WNS || resA.TNS != resB.TNS {
		t.Errorf("aggregates differ: (%v, %v) vs (%v, %v)", resA.WNS, resA.TNS, resB.WNS, resB.TNS)
	}
	if !equalStrings(resA.Topo, resB.Topo) {
		t.Error("topological orders differ after round trip")
	}
}

func TestLoadCanonical_BackfillsMissingDelay(t *testing.T) {
	data := []byte(`{
  "nets": ["a", "y"],
  "edges": [{"source": "a", "target": "y"}],
  "q_nets": [],
  "d_nets": []
}`)

	d, err := LoadCanonical(data)
	if err != nil {
		t.Fatalf("LoadCanonical() error = %v", err)
	}
	if delay, ok := d.Graph.Delay("a", "y"); !ok || delay != 0.001 {
		t.Errorf("Delay(a, y) = %v, %v; want back-filled 0.001, true", delay, ok)
	}
}

func TestLoadCanonical_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "nope"},
		{name: "empty net name", data: `{"nets": [""], "edges": []}`},
		{name: "edge to unknown net", data: `{"nets": ["a"], "edges": [{"source": "a", "target": "zzz"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadCanonical([]byte(tt.data)); err == nil {
				t.Error("LoadCanonical() succeeded on invalid input")
			}
		})
	}
}

func TestMarshalCanonical_IsValidJSON(t *testing.T) {
	d := mustParse(t, "assign y = a ^ b;\n")

	data, err := d.MarshalCanonical()
	if err != nil {
		t.Fatalf("MarshalCanonical() error = %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("canonical form is not valid JSON: %v", err)
	}
	for _, key := range []string{"nets", "edges", "q_nets", "d_nets"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("canonical form missing %q", key)
		}
	}
}
