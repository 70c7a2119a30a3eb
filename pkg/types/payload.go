package types

// Payload is the JSON request accepted by the analysis API. The netlist
// source is mandatory; clock parameters missing from the payload fall back
// to the engine configuration.
type Payload struct {
	NetlistID string `json:"netlist_id,omitempty"` // Optional netlist identifier
	Netlist   string `json:"netlist"`              // Verilog netlist source

	Tclk     *float64 `json:"tclk,omitempty"`
	Setup    *float64 `json:"setup,omitempty"`
	ClockToQ *float64 `json:"clock_to_q,omitempty"`
	Eps      *float64 `json:"eps,omitempty"`
	K        *int     `json:"k,omitempty"` // Critical paths to extract

	StartpointOverrides map[string]float64 `json:"startpoint_overrides,omitempty"`
	EndpointOverrides   map[string]float64 `json:"endpoint_overrides,omitempty"`
}

// AnalysisReport is the JSON response of one analysis: the result bundle,
// the boundary sets the run used, and any extracted critical paths.
type AnalysisReport struct {
	Result      *Result  `json:"result"`
	Startpoints []string `json:"startpoints"`
	Endpoints   []string `json:"endpoints"`
	Paths       []Path   `json:"paths,omitempty"`
	Nets        int      `json:"nets"`
	Edges       int      `json:"edges"`
}
