// Package metrics records per-run statistics with OpenTelemetry instruments
// exported through a private Prometheus registry. A run's figures can be dumped
// to a node_exporter style textfile once the run completes.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 300} //nolint: gochecknoglobals

const meterName = "xurl"

// Stage names used as the "stage" attribute.
const (
	StageDecompile = "decompile"
	StageExtract   = "extract"
	StageFilter    = "filter"
	StageWrite     = "write"
)

// Recorder collects the statistics of a single run.
type Recorder struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider

	files    metric.Int64Counter
	urls     metric.Int64Counter
	duration metric.Float64Histogram
}

// NewRecorder creates a Recorder with its own registry, so nothing leaks into
// prometheus.DefaultRegisterer.
func NewRecorder() (*Recorder, error) {
	registry := prometheus.NewRegistry()

	exp, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	meter := provider.Meter(meterName)

	files, err := meter.Int64Counter("xurl.files",
		metric.WithDescription("Files visited while scanning, by result."))
	if err != nil {
		return nil, fmt.Errorf("could not create files counter: %w", err)
	}

	urls, err := meter.Int64Counter("xurl.urls",
		metric.WithDescription("Distinct URLs per pipeline stage."))
	if err != nil {
		return nil, fmt.Errorf("could not create urls counter: %w", err)
	}

	duration, err := meter.Float64Histogram("xurl.stage.duration",
		metric.WithDescription("Time spent in each pipeline stage."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Recorder{
		registry: registry,
		provider: provider,
		files:    files,
		urls:     urls,
		duration: duration,
	}, nil
}

// Files records how many files were read and how many were skipped.
func (r *Recorder) Files(ctx context.Context, scanned, skipped int) {
	r.files.Add(ctx, int64(scanned), metric.WithAttributes(attribute.String("result", "scanned")))
	r.files.Add(ctx, int64(skipped), metric.WithAttributes(attribute.String("result", "skipped")))
}

// URLs records the size of the URL set after stage ("extracted" or "kept").
func (r *Recorder) URLs(ctx context.Context, stage string, n int) {
	r.urls.Add(ctx, int64(n), metric.WithAttributes(attribute.String("stage", stage)))
}

// StageDuration records how long stage took.
func (r *Recorder) StageDuration(ctx context.Context, stage string, d time.Duration) {
	r.duration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("stage", stage)))
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.registry }

// WriteTextfile writes everything recorded so far to path in the Prometheus
// text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("could not write metrics to %s: %w", path, err)
	}

	return nil
}

// Shutdown releases the meter provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if err := r.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shutdown meter provider: %w", err)
	}

	return nil
}
