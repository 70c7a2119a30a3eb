package timing

import (
	"github.com/yesoreyeram/neram/pkg/graph"
	"github.com/yesoreyeram/neram/pkg/types"
)

// DefaultEps is the tie tolerance used when none is configured.
const DefaultEps = 1e-12

// Options carries the clock parameters and knobs of one analysis run.
type Options struct {
	// Tclk is the clock period in seconds.
	Tclk float64

	// Setup is the flip-flop setup time; endpoints are seeded with
	// Tclk - Setup.
	Setup float64

	// ClockToQ seeds every startpoint's arrival time.
	ClockToQ float64

	// StartpointOverrides replaces the arrival seed of individual nets.
	StartpointOverrides map[string]float64

	// EndpointOverrides replaces the required seed of individual nets.
	EndpointOverrides map[string]float64

	// Eps is the tie tolerance of the forward sweep. Zero means strict
	// tie-breaking: only exactly-equal candidates are recorded as ties.
	Eps float64
}

// DefaultOptions returns analysis options with the default tie tolerance
// and a one-second clock.
func DefaultOptions() Options {
	return Options{
		Tclk:     1.0,
		Setup:    0.05,
		ClockToQ: 0.05,
		Eps:      DefaultEps,
	}
}

// Validate checks the option values.
func (o Options) Validate() error {
	if o.Tclk <= 0 {
		return ErrInvalidClockPeriod
	}
	if o.Setup < 0 {
		return ErrNegativeSetup
	}
	if o.ClockToQ < 0 {
		return ErrNegativeClockToQ
	}
	if o.Eps < 0 {
		return ErrNegativeEps
	}
	return nil
}

// Run executes the full analysis pipeline on the graph: topological sort,
// forward arrival sweep, backward required sweep and slack computation.
//
// The graph is only read; every map in the returned bundle is owned by this
// run. Run fails with graph.ErrCycleDetected when the netlist is cyclic.
func Run(g *graph.Graph, startpoints, endpoints []string, opts Options) (*types.Result, error) {
	topo, err := g.TopologicalSort()
	if err != nil {
		return nil, err
	}

	at, backpred := ForwardArrivalTimes(g, topo, startpoints, opts.ClockToQ, opts.StartpointOverrides, opts.Eps)
	rt := BackwardRequiredTimes(g, topo, endpoints, opts.Tclk, opts.Setup, opts.EndpointOverrides)
	nodeSlack, edgeSlack, wns, tns := ComputeSlacks(g, at, rt)

	return &types.Result{
		AT:        at,
		RT:        rt,
		BackPred:  backpred,
		NodeSlack: nodeSlack,
		EdgeSlack: edgeSlack,
		WNS:       wns,
		TNS:       tns,
		Topo:      topo,
	}, nil
}
