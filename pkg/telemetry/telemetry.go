package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Service name for telemetry
	serviceName = "neram-timing-engine"

	// Metric names
	metricAnalyses         = "sta.analyses.total"
	metricAnalysisDuration = "sta.analysis.duration"
	metricAnalysisSuccess  = "sta.analyses.success.total"
	metricAnalysisFailure  = "sta.analyses.failure.total"
	metricStageDuration    = "sta.stage.duration"
	metricPathsExtracted   = "sta.paths.extracted.total"
	metricViolations       = "sta.violations.total"
)

// Provider manages OpenTelemetry setup and provides access to tracers and
// meters for the timing engine.
type Provider struct {
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider trace.TracerProvider
	meter          metric.Meter
	tracer         trace.Tracer

	// Metrics instruments
	analyses         metric.Int64Counter
	analysisDuration metric.Float64Histogram
	analysisSuccess  metric.Int64Counter
	analysisFailure  metric.Int64Counter
	stageDuration    metric.Float64Histogram
	pathsExtracted   metric.Int64Counter
	violations       metric.Int64Counter

	mu sync.RWMutex
}

// Config holds telemetry configuration
type Config struct {
	// ServiceName is the name of the service for telemetry
	ServiceName string

	// ServiceVersion is the version of the service
	ServiceVersion string

	// Environment (e.g., "production", "staging", "development")
	Environment string

	// EnableTracing enables distributed tracing
	EnableTracing bool

	// EnableMetrics enables metrics collection
	EnableMetrics bool
}

// DefaultConfig returns default telemetry configuration
func DefaultConfig() Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "0.1.0",
		Environment:    "development",
		EnableTracing:  true,
		EnableMetrics:  true,
	}
}

// NewProvider creates a new telemetry provider with Prometheus metrics
// exporter.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	provider := &Provider{}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if config.EnableMetrics {
		if err := provider.initMetrics(res); err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
	}

	if config.EnableTracing {
		provider.initTracing()
	}

	return provider, nil
}

// initMetrics initializes the metrics provider with Prometheus exporter
func (p *Provider) initMetrics(res *resource.Resource) error {
	exporter, err := prometheus.New()
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)

	otel.SetMeterProvider(p.meterProvider)

	p.meter = p.meterProvider.Meter(serviceName)

	if err := p.createMetricInstruments(); err != nil {
		return fmt.Errorf("failed to create metric instruments: %w", err)
	}

	return nil
}

// initTracing initializes the tracing provider
func (p *Provider) initTracing() {
	// The global tracer provider is used; production deployments configure
	// their own exporters (OTLP, Jaeger, ...) before the engine starts.
	p.tracerProvider = otel.GetTracerProvider()
	p.tracer = p.tracerProvider.Tracer(serviceName)
}

// createMetricInstruments creates all metric instruments
func (p *Provider) createMetricInstruments() error {
	var err error

	p.analyses, err = p.meter.Int64Counter(
		metricAnalyses,
		metric.WithDescription("Total number of timing analyses"),
	)
	if err != nil {
		return err
	}

	p.analysisDuration, err = p.meter.Float64Histogram(
		metricAnalysisDuration,
		metric.WithDescription("Timing analysis duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	p.analysisSuccess, err = p.meter.Int64Counter(
		metricAnalysisSuccess,
		metric.WithDescription("Total number of successful timing analyses"),
	)
	if err != nil {
		return err
	}

	p.analysisFailure, err = p.meter.Int64Counter(
		metricAnalysisFailure,
		metric.WithDescription("Total number of failed timing analyses"),
	)
	if err != nil {
		return err
	}

	p.stageDuration, err = p.meter.Float64Histogram(
		metricStageDuration,
		metric.WithDescription("Pipeline stage duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	p.pathsExtracted, err = p.meter.Int64Counter(
		metricPathsExtracted,
		metric.WithDescription("Total number of critical paths extracted"),
	)
	if err != nil {
		return err
	}

	p.violations, err = p.meter.Int64Counter(
		metricViolations,
		metric.WithDescription("Total number of analyses that violated timing"),
	)
	if err != nil {
		return err
	}

	return nil
}

// Tracer returns the tracer for creating spans
func (p *Provider) Tracer() trace.Tracer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracer
}

// Meter returns the meter for recording metrics
func (p *Provider) Meter() metric.Meter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.meter
}

// RecordAnalysis records metrics for one timing analysis run.
// wns below zero counts as a timing violation.
func (p *Provider) RecordAnalysis(ctx context.Context, netlistID string, duration time.Duration, success bool, nets, edges int, wns float64) {
	if p.meter == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("netlist.id", netlistID),
		attribute.Int("nets", nets),
		attribute.Int("edges", edges),
	}

	p.analyses.Add(ctx, 1, metric.WithAttributes(attrs...))
	p.analysisDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if success {
		p.analysisSuccess.Add(ctx, 1, metric.WithAttributes(attrs...))
	} else {
		p.analysisFailure.Add(ctx, 1, metric.WithAttributes(attrs...))
	}

	if success && wns < 0 {
		p.violations.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordStage records metrics for one pipeline stage.
func (p *Provider) RecordStage(ctx context.Context, stage string, duration time.Duration) {
	if p.meter == nil {
		return
	}

	p.stageDuration.Record(ctx, float64(duration.Milliseconds()),
		metric.WithAttributes(attribute.String("stage", stage)))
}

// RecordPathExtracted records one extracted critical path.
func (p *Provider) RecordPathExtracted(ctx context.Context, netlistID string, pathDelay float64) {
	if p.meter == nil {
		return
	}

	p.pathsExtracted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("netlist.id", netlistID),
		attribute.Float64("path.delay", pathDelay),
	))
}

// Shutdown gracefully shuts down the telemetry provider
func (p *Provider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown meter provider: %w", err)
		}
	}

	return nil
}
