package providers

import (
	"testing"
	"time"

	"qrd/internal/history"
	"qrd/internal/models"
	"qrd/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

// --- minimal mock for HistoryServiceInterface ---

type metricsTestService struct{}

func (m *metricsTestService) RecordScan(_, _ string) models.ScanEvent        { return models.ScanEvent{} }
func (m *metricsTestService) GetHistory(_ history.Query) []models.ScanEvent  { return nil }
func (m *metricsTestService) GetAnalytics() *models.AnalyticsSnapshot        { return nil }
func (m *metricsTestService) ExportCSV(_ history.Query) []byte               { return nil }
func (m *metricsTestService) Clear() int                                     { return 0 }
func (m *metricsTestService) RemoveByIDs(_ []string) int                     { return 0 }
func (m *metricsTestService) GetSnapshot() *models.Storage                   { return nil }
func (m *metricsTestService) PutEvents(_ []models.ScanEvent)                 {}
func (m *metricsTestService) GetEventCount() int                             { return 5 }
func (m *metricsTestService) GetRevision() uint64                            { return 0 }

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf, &metricsTestService{})
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/test", 200)
	m.ObserveRequestDuration("/test", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(time.Millisecond)
	m.IncScansRecorded("URL")
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestService{})
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestService{})

	// These should not panic
	m.IncRequestsTotal("/list", 200)
	m.IncRequestsTotal("/list", 404)
	m.ObserveRequestDuration("/list", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(100 * time.Millisecond)
	m.IncScansRecorded("URL")
	m.IncScansRecorded("WiFi")
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
