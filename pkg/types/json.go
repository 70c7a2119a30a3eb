package types

import (
	"encoding/json"
	"sort"
)

// resultJSON mirrors Result with the extended-real values made
// JSON-representable: non-finite entries encode as null. Unreachable nets
// keep their AT = -Inf in memory, but the wire form cannot carry IEEE
// infinities. Edge slacks, keyed by an Arc struct in memory, are encoded
// as a list of {source, target, slack} entries sorted by source then
// target.
type resultJSON struct {
	AnalysisID string              `json:"analysis_id,omitempty"`
	NetlistID  string              `json:"netlist_id,omitempty"`
	AT         map[string]*float64 `json:"at"`
	RT         map[string]*float64 `json:"rt"`
	BackPred   map[string][]string `json:"backpred"`
	NodeSlack  map[string]*float64 `json:"node_slack"`
	EdgeSlack  []edgeSlackJSON     `json:"edge_slack"`
	WNS        *float64            `json:"wns"`
	TNS        float64             `json:"tns"`
	Topo       []string            `json:"topo"`
}

// edgeSlackJSON is one edge-slack entry on the wire.
type edgeSlackJSON struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Slack  *float64 `json:"slack"`
}

// MarshalJSON implements json.Marshaler for Result.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		AnalysisID: r.AnalysisID,
		NetlistID:  r.NetlistID,
		AT:         finiteOrNull(r.AT),
		RT:         finiteOrNull(r.RT),
		BackPred:   r.BackPred,
		NodeSlack:  finiteOrNull(r.NodeSlack),
		EdgeSlack:  edgeSlackList(r.EdgeSlack),
		WNS:        finitePtr(r.WNS),
		TNS:        r.TNS,
		Topo:       r.Topo,
	})
}

// edgeSlackList flattens the edge-slack map into a deterministically
// ordered list.
func edgeSlackList(m map[Arc]float64) []edgeSlackJSON {
	if m == nil {
		return nil
	}
	out := make([]edgeSlackJSON, 0, len(m))
	for arc, s := range m {
		out = append(out, edgeSlackJSON{
			Source: arc.Source,
			Target: arc.Target,
			Slack:  finitePtr(s),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}

// finiteOrNull copies a value map, replacing non-finite entries with nil.
func finiteOrNull(m map[string]float64) map[string]*float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]*float64, len(m))
	for k, v := range m {
		out[k] = finitePtr(v)
	}
	return out
}

func finitePtr(v float64) *float64 {
	if !IsFinite(v) {
		return nil
	}
	return &v
}
