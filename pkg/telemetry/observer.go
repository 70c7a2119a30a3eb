package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yesoreyeram/neram/pkg/observer"
)

// TelemetryObserver implements observer.Observer and records telemetry data
// for timing analysis events.
type TelemetryObserver struct {
	provider *Provider

	// Track the active analysis span and per-stage start times
	analysisSpan      trace.Span
	analysisStartTime time.Time
	stageStartTimes   map[string]time.Time
}

// NewTelemetryObserver creates a new telemetry observer
func NewTelemetryObserver(provider *Provider) *TelemetryObserver {
	return &TelemetryObserver{
		provider:        provider,
		stageStartTimes: make(map[string]time.Time),
	}
}

// OnEvent handles analysis events and records telemetry data
func (o *TelemetryObserver) OnEvent(ctx context.Context, event observer.Event) {
	switch event.Type {
	case observer.EventAnalysisStart:
		o.handleAnalysisStart(ctx, event)
	case observer.EventAnalysisEnd:
		o.handleAnalysisEnd(ctx, event)
	case observer.EventStageStart:
		o.stageStartTimes[event.Stage] = event.Timestamp
	case observer.EventStageEnd:
		o.handleStageEnd(ctx, event)
	case observer.EventPathFound:
		o.handlePathFound(ctx, event)
	}
}

func (o *TelemetryObserver) handleAnalysisStart(ctx context.Context, event observer.Event) {
	if o.provider.Tracer() == nil {
		o.analysisStartTime = event.Timestamp
		return
	}

	_, span := o.provider.Tracer().Start(ctx, "sta.analyze",
		trace.WithAttributes(
			attribute.String("analysis.id", event.AnalysisID),
			attribute.String("netlist.id", event.NetlistID),
		),
	)

	o.analysisSpan = span
	o.analysisStartTime = event.Timestamp
}

func (o *TelemetryObserver) handleAnalysisEnd(ctx context.Context, event observer.Event) {
	duration := event.ElapsedTime
	if duration == 0 {
		duration = time.Since(o.analysisStartTime)
	}

	nets, edges := 0, 0
	wns := 0.0
	if v, ok := event.Metadata["nets"].(int); ok {
		nets = v
	}
	if v, ok := event.Metadata["edges"].(int); ok {
		edges = v
	}
	if v, ok := event.Metadata["wns"].(float64); ok {
		wns = v
	}

	success := event.Status == observer.StatusSuccess
	o.provider.RecordAnalysis(ctx, event.NetlistID, duration, success, nets, edges, wns)

	if o.analysisSpan != nil {
		if event.Error != nil {
			o.analysisSpan.RecordError(event.Error)
			o.analysisSpan.SetStatus(codes.Error, event.Error.Error())
		} else {
			o.analysisSpan.SetStatus(codes.Ok, "")
		}
		o.analysisSpan.End()
		o.analysisSpan = nil
	}
}

func (o *TelemetryObserver) handleStageEnd(ctx context.Context, event observer.Event) {
	duration := event.ElapsedTime
	if duration == 0 {
		if start, ok := o.stageStartTimes[event.Stage]; ok {
			duration = event.Timestamp.Sub(start)
		}
	}
	delete(o.stageStartTimes, event.Stage)

	o.provider.RecordStage(ctx, event.Stage, duration)
}

func (o *TelemetryObserver) handlePathFound(ctx context.Context, event observer.Event) {
	delay := 0.0
	if v, ok := event.Metadata["delay"].(float64); ok {
		delay = v
	}
	o.provider.RecordPathExtracted(ctx, event.NetlistID, delay)
}
