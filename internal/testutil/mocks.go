package testutil

import (
	"strconv"
	"sync"
	"time"

	"qrd/internal/analytics"
	"qrd/internal/codec"
	"qrd/internal/history"
	"qrd/internal/models"
	"qrd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockHistoryService implements services.HistoryServiceInterface on top of
// a plain slice, with a fixed clock for deterministic analytics.
type MockHistoryService struct {
	mu       sync.Mutex
	Events   []models.ScanEvent
	Now      time.Time
	revision uint64
	nextID   int
}

func (m *MockHistoryService) RecordScan(data, format string) models.ScanEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	if format == "" {
		format = "QR_CODE"
	}
	m.nextID++
	ev := models.ScanEvent{
		ID:        "mock-" + strconv.Itoa(m.nextID),
		Data:      data,
		Timestamp: m.clock().UnixMilli(),
		Type:      codec.Classify(data),
		Format:    format,
	}
	m.Events = append(m.Events, ev)
	m.revision++
	return ev
}

func (m *MockHistoryService) clock() time.Time {
	if m.Now.IsZero() {
		return time.Now()
	}
	return m.Now
}

func (m *MockHistoryService) GetHistory(q history.Query) []models.ScanEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return history.Apply(m.Events, q)
}

func (m *MockHistoryService) GetAnalytics() *models.AnalyticsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return analytics.Analyze(m.Events, m.clock())
}

func (m *MockHistoryService) ExportCSV(q history.Query) []byte {
	return history.ExportCSV(m.GetHistory(q))
}

func (m *MockHistoryService) Clear() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.Events)
	m.Events = nil
	m.revision++
	return n
}

func (m *MockHistoryService) RemoveByIDs(ids []string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	kept := m.Events[:0]
	removed := 0
	for _, ev := range m.Events {
		if _, ok := idSet[ev.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, ev)
	}
	m.Events = kept
	m.revision++
	return removed
}

func (m *MockHistoryService) GetSnapshot() *models.Storage {
	m.mu.Lock()
	defer m.mu.Unlock()
	events := make([]models.ScanEvent, len(m.Events))
	copy(events, m.Events)
	return &models.Storage{Version: models.StorageVersion, Events: events}
}

func (m *MockHistoryService) PutEvents(events []models.ScanEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = events
	m.revision++
}

func (m *MockHistoryService) GetEventCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Events)
}

func (m *MockHistoryService) GetRevision() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revision
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu               sync.Mutex
	Requests         int
	CacheHits        int
	CacheMisses      int
	PersistenceSaves int
	ScansByType      map[string]int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceSaves++
}

func (m *MockMetrics) IncScansRecorded(intentType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ScansByType == nil {
		m.ScansByType = make(map[string]int)
	}
	m.ScansByType[intentType]++
}
