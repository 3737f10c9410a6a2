package services

import (
	"sync/atomic"
	"time"

	"qrd/internal/analytics"
	"qrd/internal/codec"
	"qrd/internal/history"
	"qrd/internal/models"
	"qrd/internal/structures"

	"github.com/google/uuid"
)

type HistoryServiceInterface interface {
	RecordScan(data, format string) models.ScanEvent
	GetHistory(q history.Query) []models.ScanEvent
	GetAnalytics() *models.AnalyticsSnapshot
	ExportCSV(q history.Query) []byte
	Clear() int
	RemoveByIDs(ids []string) int
	GetSnapshot() *models.Storage
	PutEvents(events []models.ScanEvent)
	GetEventCount() int
	GetRevision() uint64
}

// HistoryService owns the scan event store. The revision counter is bumped
// on every mutation; read-side caches mix it into their keys so a stale
// entry can never be served after a write.
type HistoryService struct {
	store         *models.History
	revision      atomic.Uint64
	defaultFormat string
}

func NewHistoryService(conf *structures.Config) HistoryServiceInterface {
	format := conf.History.DefaultFormat
	if format == "" {
		format = "QR_CODE"
	}
	return &HistoryService{
		store:         models.NewHistory(),
		defaultFormat: format,
	}
}

// RecordScan classifies raw scanned text, stamps it, and appends it to the
// store. The classification happens exactly once here; everything
// downstream reads the stored Type field.
func (hs *HistoryService) RecordScan(data, format string) models.ScanEvent {
	if format == "" {
		format = hs.defaultFormat
	}

	ev := models.ScanEvent{
		ID:        uuid.NewString(),
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
		Type:      codec.Classify(data),
		Format:    format,
	}

	hs.store.Append(ev)
	hs.revision.Add(1)
	return ev
}

func (hs *HistoryService) GetHistory(q history.Query) []models.ScanEvent {
	return history.Apply(hs.store.Snapshot(), q)
}

func (hs *HistoryService) GetAnalytics() *models.AnalyticsSnapshot {
	return analytics.Analyze(hs.store.Snapshot(), time.Now())
}

func (hs *HistoryService) ExportCSV(q history.Query) []byte {
	return history.ExportCSV(hs.GetHistory(q))
}

func (hs *HistoryService) Clear() int {
	n := hs.store.Clear()
	hs.revision.Add(1)
	return n
}

func (hs *HistoryService) RemoveByIDs(ids []string) int {
	if len(ids) == 0 {
		return 0
	}
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	removed := hs.store.RemoveWhere(func(ev models.ScanEvent) bool {
		_, ok := idSet[ev.ID]
		return ok
	})
	hs.revision.Add(1)
	return removed
}

func (hs *HistoryService) GetSnapshot() *models.Storage {
	return &models.Storage{
		Version: models.StorageVersion,
		Events:  hs.store.Snapshot(),
	}
}

func (hs *HistoryService) PutEvents(events []models.ScanEvent) {
	hs.store.Put(events)
	hs.revision.Add(1)
}

func (hs *HistoryService) GetEventCount() int {
	return hs.store.Len()
}

func (hs *HistoryService) GetRevision() uint64 {
	return hs.revision.Load()
}
