package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetricsRegisterAndRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)

	m.RecordReport(context.Background(), &ReportMetricParams{
		ReportType: "ultrasound",
		Source:     "pdf",
		DurationMs: 12,
		Confidence: 1.0,
		ValueCount: 3,
		Urgent:     true,
	})
	m.RecordReport(context.Background(), &ReportMetricParams{
		ReportType: "blood_test",
		Source:     "image",
		DurationMs: 80,
		Confidence: 0.425,
		ValueCount: 0,
	})
	m.RecordAcquisitionFailure(context.Background(), "pdf")
	m.RecordReport(context.Background(), nil) // ignored

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["materna_extraction_reports_total"])
	assert.True(t, names["materna_extraction_duration_ms"])
	assert.True(t, names["materna_extraction_urgent_verdicts_total"])
	assert.True(t, names["materna_extraction_zero_match_total"])
	assert.True(t, names["materna_extraction_acquisition_failures_total"])
}

func TestPrometheusMetricsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)
	_, err = NewPrometheusMetrics(reg)
	assert.Error(t, err)
}

func TestNoopMetricsIsSafe(t *testing.T) {
	m := NewNoopMetrics()
	m.RecordReport(context.Background(), nil)
	m.RecordReport(context.Background(), &ReportMetricParams{})
	m.RecordAcquisitionFailure(context.Background(), "image")
}

func TestInMemoryMetricsAccumulates(t *testing.T) {
	m := NewInMemoryMetrics()
	m.RecordReport(context.Background(), &ReportMetricParams{ReportType: "vital_signs", Source: "image"})
	m.RecordAcquisitionFailure(context.Background(), "image")

	require.Len(t, m.Reports, 1)
	assert.Equal(t, "vital_signs", m.Reports[0].ReportType)
	assert.Equal(t, []string{"image"}, m.Failures)
}
