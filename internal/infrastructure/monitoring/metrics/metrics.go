// Package metrics provides instrumentation for the report extraction
// pipeline. The orchestrator records its operational telemetry through the
// PipelineMetrics interface so the underlying implementation (Prometheus or
// noop) can be swapped without touching extraction code.
package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// ReportMetricParams carries the data for a single processed report.
type ReportMetricParams struct {
	ReportType string  `json:"report_type"`
	Source     string  `json:"source"` // "pdf" | "image"
	DurationMs float64 `json:"duration_ms"`
	Confidence float64 `json:"confidence"`
	ValueCount int     `json:"value_count"`
	Urgent     bool    `json:"urgent"`
}

// PipelineMetrics defines the metrics collection API for the extraction
// pipeline.
type PipelineMetrics interface {
	// RecordReport records one completed end-to-end extraction.
	RecordReport(ctx context.Context, params *ReportMetricParams)

	// RecordAcquisitionFailure records a failed PDF parse or OCR pass.
	RecordAcquisitionFailure(ctx context.Context, source string)
}

// ---------------------------------------------------------------------------
// Prometheus implementation
// ---------------------------------------------------------------------------

const metricsPrefix = "materna_extraction_"

var defaultDurationBuckets = []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000}

type prometheusPipelineMetrics struct {
	reportsTotal        *prometheus.CounterVec
	urgentTotal         prometheus.Counter
	zeroMatchTotal      prometheus.Counter
	acquisitionFailures *prometheus.CounterVec
	duration            *prometheus.HistogramVec
}

// NewPrometheusMetrics constructs a PipelineMetrics backed by the supplied
// registerer. Passing nil uses the process-wide default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) (PipelineMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &prometheusPipelineMetrics{
		reportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricsPrefix + "reports_total",
			Help: "Processed reports by detected type and acquisition source.",
		}, []string{"report_type", "source"}),
		urgentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricsPrefix + "urgent_verdicts_total",
			Help: "Reports whose extracted values crossed an urgency threshold.",
		}),
		zeroMatchTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricsPrefix + "zero_match_total",
			Help: "Reports where no value pattern matched (confidence halved).",
		}),
		acquisitionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricsPrefix + "acquisition_failures_total",
			Help: "PDF parse or OCR engine failures by source.",
		}, []string{"source"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricsPrefix + "duration_ms",
			Help:    "End-to-end extraction duration in milliseconds.",
			Buckets: defaultDurationBuckets,
		}, []string{"source"}),
	}

	collectors := []prometheus.Collector{
		m.reportsTotal, m.urgentTotal, m.zeroMatchTotal, m.acquisitionFailures, m.duration,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *prometheusPipelineMetrics) RecordReport(_ context.Context, params *ReportMetricParams) {
	if params == nil {
		return
	}
	m.reportsTotal.WithLabelValues(params.ReportType, params.Source).Inc()
	m.duration.WithLabelValues(params.Source).Observe(params.DurationMs)
	if params.Urgent {
		m.urgentTotal.Inc()
	}
	if params.ValueCount == 0 {
		m.zeroMatchTotal.Inc()
	}
}

func (m *prometheusPipelineMetrics) RecordAcquisitionFailure(_ context.Context, source string) {
	m.acquisitionFailures.WithLabelValues(source).Inc()
}

// ---------------------------------------------------------------------------
// Noop implementation
// ---------------------------------------------------------------------------

type noopPipelineMetrics struct{}

func (noopPipelineMetrics) RecordReport(_ context.Context, _ *ReportMetricParams) {}
func (noopPipelineMetrics) RecordAcquisitionFailure(_ context.Context, _ string)  {}

// NewNoopMetrics returns a PipelineMetrics that records nothing.
func NewNoopMetrics() PipelineMetrics { return noopPipelineMetrics{} }

// ---------------------------------------------------------------------------
// In-memory implementation (tests)
// ---------------------------------------------------------------------------

// InMemoryMetrics accumulates recorded events for assertions in tests.
type InMemoryMetrics struct {
	mu       sync.Mutex
	Reports  []ReportMetricParams
	Failures []string
}

// NewInMemoryMetrics constructs an empty InMemoryMetrics.
func NewInMemoryMetrics() *InMemoryMetrics { return &InMemoryMetrics{} }

func (m *InMemoryMetrics) RecordReport(_ context.Context, params *ReportMetricParams) {
	if params == nil {
		return
	}
	m.mu.Lock()
	m.Reports = append(m.Reports, *params)
	m.mu.Unlock()
}

func (m *InMemoryMetrics) RecordAcquisitionFailure(_ context.Context, source string) {
	m.mu.Lock()
	m.Failures = append(m.Failures, source)
	m.mu.Unlock()
}
