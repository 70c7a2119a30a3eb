// Package engine orchestrates parsing, timing analysis and critical-path
// extraction over one netlist.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yesoreyeram/neram/pkg/config"
	"github.com/yesoreyeram/neram/pkg/critical"
	"github.com/yesoreyeram/neram/pkg/graph"
	"github.com/yesoreyeram/neram/pkg/logging"
	"github.com/yesoreyeram/neram/pkg/netlist"
	"github.com/yesoreyeram/neram/pkg/observer"
	"github.com/yesoreyeram/neram/pkg/timing"
	"github.com/yesoreyeram/neram/pkg/types"
)

// ============================================================================
// Engine Definition
// ============================================================================

// Engine runs timing analyses over one parsed netlist.
//
// The design and its boundary sets are built once at construction and are
// immutable afterwards; every Analyze call owns its own result maps, so a
// single engine may serve repeated runs.
type Engine struct {
	cfg         *config.Config
	design      *netlist.Design
	startpoints []string
	endpoints   []string

	analysisID string
	netlistID  string

	observerMgr *observer.Manager
	logger      *logging.Logger
}

// ============================================================================
// Constructor Functions
// ============================================================================

// New creates an engine from a JSON analysis payload with the default
// configuration. A unique analysis ID is generated for the engine.
func New(payloadJSON []byte) (*Engine, error) {
	return NewWithConfig(payloadJSON, config.Default())
}

// NewWithConfig creates an engine from a JSON analysis payload.
//
// The payload is validated against the embedded schema, checked against the
// configured resource limits, and its netlist source parsed into a timing
// DAG. Clock parameters present in the payload override the configuration.
func NewWithConfig(payloadJSON []byte, cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validatePayload(payloadJSON); err != nil {
		return nil, err
	}

	var payload types.Payload
	if err := json.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if cfg.MaxNetlistSize > 0 && int64(len(payload.Netlist)) > cfg.MaxNetlistSize {
		return nil, ErrNetlistTooLarge
	}

	cfg = cfg.Clone()
	if payload.Tclk != nil {
		cfg.Tclk = *payload.Tclk
	}
	if payload.Setup != nil {
		cfg.Setup = *payload.Setup
	}
	if payload.ClockToQ != nil {
		cfg.ClockToQ = *payload.ClockToQ
	}
	if payload.Eps != nil {
		cfg.Eps = *payload.Eps
	}
	if payload.K != nil {
		cfg.MaxPaths = *payload.K
	}
	if len(payload.StartpointOverrides) > 0 {
		cfg.StartpointOverrides = payload.StartpointOverrides
	}
	if len(payload.EndpointOverrides) > 0 {
		cfg.EndpointOverrides = payload.EndpointOverrides
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	design, err := netlist.NewParser().Parse(payload.Netlist)
	if err != nil {
		return nil, err
	}

	return newFromDesign(design, cfg, payload.NetlistID)
}

// NewFromFile creates an engine by reading a netlist file directly,
// bypassing the JSON payload surface. The path is parsed with the netlist
// front end; an unreadable file fails with netlist.ErrFileUnreadable.
func NewFromFile(path string, cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	design, err := netlist.NewParser().ParseFile(path)
	if err != nil {
		return nil, err
	}
	return newFromDesign(design, cfg.Clone(), path)
}

// NewFromDesign creates an engine around an already-parsed design.
func NewFromDesign(design *netlist.Design, cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return newFromDesign(design, cfg.Clone(), "")
}

func newFromDesign(design *netlist.Design, cfg *config.Config, netlistID string) (*Engine, error) {
	if cfg.MaxNets > 0 && design.Graph.NodeCount() > cfg.MaxNets {
		return nil, ErrMaxNetsExceeded
	}
	if cfg.MaxEdges > 0 && design.Graph.EdgeCount() > cfg.MaxEdges {
		return nil, ErrMaxEdgesExceeded
	}

	e := &Engine{
		cfg:         cfg,
		design:      design,
		startpoints: design.Startpoints(),
		endpoints:   design.Endpoints(),
		analysisID:  uuid.New().String(),
		netlistID:   netlistID,
		observerMgr: observer.NewManager(),
		logger:      logging.New(logging.DefaultConfig()),
	}
	e.logger = e.logger.WithAnalysis(e.analysisID, netlistID)
	return e, nil
}

// ============================================================================
// Accessors
// ============================================================================

// AnalysisID returns the unique ID generated for this engine.
func (e *Engine) AnalysisID() string { return e.analysisID }

// Graph returns the timing DAG. Callers must treat it as read-only.
func (e *Engine) Graph() *graph.Graph { return e.design.Graph }

// Startpoints returns the timing startpoints in sorted order.
func (e *Engine) Startpoints() []string { return e.startpoints }

// Endpoints returns the timing endpoints in sorted order.
func (e *Engine) Endpoints() []string { return e.endpoints }

// RegisterObserver adds an observer for analysis events.
func (e *Engine) RegisterObserver(o observer.Observer) {
	e.observerMgr.Register(o)
}

// SetLogger replaces the engine logger.
func (e *Engine) SetLogger(l *logging.Logger) {
	if l != nil {
		e.logger = l.WithAnalysis(e.analysisID, e.netlistID)
	}
}

// options assembles the sweep options from the configuration.
func (e *Engine) options() timing.Options {
	return timing.Options{
		Tclk:                e.cfg.Tclk,
		Setup:               e.cfg.Setup,
		ClockToQ:            e.cfg.ClockToQ,
		StartpointOverrides: e.cfg.StartpointOverrides,
		EndpointOverrides:   e.cfg.EndpointOverrides,
		Eps:                 e.cfg.Eps,
	}
}

// ============================================================================
// Analysis
// ============================================================================

// Analyze runs the full timing pipeline and returns the result bundle.
func (e *Engine) Analyze(ctx context.Context) (*types.Result, error) {
	ctx = types.WithAnalysisID(ctx, e.analysisID)
	start := time.Now()

	e.notify(ctx, observer.Event{
		Type:      observer.EventAnalysisStart,
		Status:    observer.StatusStarted,
		Timestamp: start,
	})
	e.logger.Info("analysis started",
		"nets", e.design.Graph.NodeCount(),
		"edges", e.design.Graph.EdgeCount(),
		"startpoints", len(e.startpoints),
		"endpoints", len(e.endpoints))

	res, err := e.runStages(ctx)
	elapsed := time.Since(start)

	if err != nil {
		e.notify(ctx, observer.Event{
			Type:        observer.EventAnalysisEnd,
			Status:      observer.StatusFailure,
			Timestamp:   time.Now(),
			ElapsedTime: elapsed,
			Error:       err,
		})
		e.logger.WithError(err).Error("analysis failed")
		return nil, err
	}

	res.AnalysisID = e.analysisID
	res.NetlistID = e.netlistID

	e.notify(ctx, observer.Event{
		Type:        observer.EventAnalysisEnd,
		Status:      observer.StatusSuccess,
		Timestamp:   time.Now(),
		ElapsedTime: elapsed,
		Metadata: map[string]interface{}{
			"nets":  e.design.Graph.NodeCount(),
			"edges": e.design.Graph.EdgeCount(),
			"wns":   res.WNS,
			"tns":   res.TNS,
		},
	})
	e.logger.Info("analysis complete",
		"wns", res.WNS,
		"tns", res.TNS,
		"duration_ms", elapsed.Milliseconds())

	return res, nil
}

// runStages executes the pipeline stage by stage so observers see each
// phase individually.
func (e *Engine) runStages(ctx context.Context) (*types.Result, error) {
	opts := e.options()

	topo, err := e.timedStage(ctx, observer.StageTopo, func() ([]string, error) {
		return e.design.Graph.TopologicalSort()
	})
	if err != nil {
		return nil, err
	}

	var at map[string]float64
	var backpred map[string][]string
	_, _ = e.timedStage(ctx, observer.StageForward, func() ([]string, error) {
		at, backpred = timing.ForwardArrivalTimes(
			e.design.Graph, topo, e.startpoints, opts.ClockToQ, opts.StartpointOverrides, opts.Eps)
		return nil, nil
	})

	var rt map[string]float64
	_, _ = e.timedStage(ctx, observer.StageBackward, func() ([]string, error) {
		rt = timing.BackwardRequiredTimes(
			e.design.Graph, topo, e.endpoints, opts.Tclk, opts.Setup, opts.EndpointOverrides)
		return nil, nil
	})

	var nodeSlack map[string]float64
	var edgeSlack map[types.Arc]float64
	var wns, tns float64
	_, _ = e.timedStage(ctx, observer.StageSlack, func() ([]string, error) {
		nodeSlack, edgeSlack, wns, tns = timing.ComputeSlacks(e.design.Graph, at, rt)
		return nil, nil
	})

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

// AnalyzeKPaths runs the full analysis and extracts up to k edge-disjoint
// critical paths. k <= 0 falls back to the configured path count.
func (e *Engine) AnalyzeKPaths(ctx context.Context, k int) (*types.Result, []types.Path, error) {
	if k <= 0 {
		k = e.cfg.MaxPaths
	}
	if k <= 0 {
		return nil, nil, ErrInvalidPathCount
	}

	res, err := e.Analyze(ctx)
	if err != nil {
		return nil, nil, err
	}

	ctx = types.WithAnalysisID(ctx, e.analysisID)
	stageStart := time.Now()
	e.notify(ctx, observer.Event{
		Type:      observer.EventStageStart,
		Status:    observer.StatusStarted,
		Timestamp: stageStart,
		Stage:     observer.StagePaths,
	})

	paths, err := critical.FindKPaths(e.design.Graph, e.startpoints, e.endpoints, e.options(), k)
	if err != nil {
		e.notify(ctx, observer.Event{
			Type:        observer.EventStageEnd,
			Status:      observer.StatusFailure,
			Timestamp:   time.Now(),
			Stage:       observer.StagePaths,
			ElapsedTime: time.Since(stageStart),
			Error:       err,
		})
		return nil, nil, err
	}

	for i, p := range paths {
		e.notify(ctx, observer.Event{
			Type:      observer.EventPathFound,
			Status:    observer.StatusSuccess,
			Timestamp: time.Now(),
			Stage:     observer.StagePaths,
			Metadata: map[string]interface{}{
				"index": i,
				"nodes": len(p.Nodes),
				"delay": p.Delay,
				"wns":   p.WNS,
			},
		})
	}

	e.notify(ctx, observer.Event{
		Type:        observer.EventStageEnd,
		Status:      observer.StatusSuccess,
		Timestamp:   time.Now(),
		Stage:       observer.StagePaths,
		ElapsedTime: time.Since(stageStart),
		Metadata:    map[string]interface{}{"paths": len(paths)},
	})
	e.logger.Info("critical paths extracted", "paths", len(paths))

	return res, paths, nil
}

// Report runs AnalyzeKPaths and bundles everything the HTTP surface
// returns to clients.
func (e *Engine) Report(ctx context.Context, k int) (*types.AnalysisReport, error) {
	res, paths, err := e.AnalyzeKPaths(ctx, k)
	if err != nil {
		return nil, err
	}
	return &types.AnalysisReport{
		Result:      res,
		Startpoints: e.startpoints,
		Endpoints:   e.endpoints,
		Paths:       paths,
		Nets:        e.design.Graph.NodeCount(),
		Edges:       e.design.Graph.EdgeCount(),
	}, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// timedStage brackets fn with stage start/end events.
func (e *Engine) timedStage(ctx context.Context, stage string, fn func() ([]string, error)) ([]string, error) {
	start := time.Now()
	e.notify(ctx, observer.Event{
		Type:      observer.EventStageStart,
		Status:    observer.StatusStarted,
		Timestamp: start,
		Stage:     stage,
	})

	out, err := fn()

	status := observer.StatusSuccess
	if err != nil {
		status = observer.StatusFailure
	}
	e.notify(ctx, observer.Event{
		Type:        observer.EventStageEnd,
		Status:      status,
		Timestamp:   time.Now(),
		Stage:       stage,
		ElapsedTime: time.Since(start),
		Error:       err,
	})
	return out, err
}

func (e *Engine) notify(ctx context.Context, event observer.Event) {
	if !e.observerMgr.HasObservers() {
		return
	}
	event.AnalysisID = e.analysisID
	event.NetlistID = e.netlistID
	e.observerMgr.Notify(ctx, event)
}
