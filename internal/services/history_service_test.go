package services

import (
	"testing"

	"qrd/internal/history"
	"qrd/internal/models"
	"qrd/internal/structures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() HistoryServiceInterface {
	return NewHistoryService(&structures.Config{})
}

func TestRecordScan_ClassifiesAndStamps(t *testing.T) {
	svc := newTestService()

	ev := svc.RecordScan("https://example.com", "")

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "https://example.com", ev.Data)
	assert.Equal(t, models.IntentURL, ev.Type)
	assert.Equal(t, "QR_CODE", ev.Format)
	assert.Positive(t, ev.Timestamp)
	assert.Equal(t, 1, svc.GetEventCount())
}

func TestRecordScan_KeepsCallerFormat(t *testing.T) {
	svc := newTestService()
	ev := svc.RecordScan("hello", "DATA_MATRIX")
	assert.Equal(t, "DATA_MATRIX", ev.Format)
	assert.Equal(t, models.IntentText, ev.Type)
}

func TestRecordScan_UniqueIDs(t *testing.T) {
	svc := newTestService()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		ev := svc.RecordScan("x", "")
		_, dup := seen[ev.ID]
		require.False(t, dup)
		seen[ev.ID] = struct{}{}
	}
}

func TestGetHistory_AppliesQuery(t *testing.T) {
	svc := newTestService()
	svc.RecordScan("https://example.com", "")
	svc.RecordScan("tel:+123", "")
	svc.RecordScan("plain text", "")

	all := svc.GetHistory(history.Query{})
	require.Len(t, all, 3)

	urls := svc.GetHistory(history.Query{Type: "URL"})
	require.Len(t, urls, 1)
	assert.Equal(t, "https://example.com", urls[0].Data)
}

func TestGetAnalytics_EmptyAndNonEmpty(t *testing.T) {
	svc := newTestService()
	assert.Nil(t, svc.GetAnalytics())

	svc.RecordScan("https://example.com/a", "")
	snap := svc.GetAnalytics()
	require.NotNil(t, snap)
	assert.Equal(t, 1, snap.TotalScans)
	assert.Equal(t, 1, snap.Last24Hours)
}

func TestExportCSV_UsesStoredType(t *testing.T) {
	svc := newTestService()
	svc.RecordScan("WIFI:T:WPA;S:Home;P:secret;H:false;;", "")

	out := string(svc.ExportCSV(history.Query{}))
	assert.Contains(t, out, `"WiFi"`)
	assert.Contains(t, out, "Timestamp,Type,Data,Format")
}

func TestClearAndRemoveByIDs(t *testing.T) {
	svc := newTestService()
	a := svc.RecordScan("a", "")
	svc.RecordScan("b", "")
	c := svc.RecordScan("c", "")

	removed := svc.RemoveByIDs([]string{a.ID, c.ID, "missing"})
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, svc.GetEventCount())

	assert.Equal(t, 1, svc.Clear())
	assert.Equal(t, 0, svc.GetEventCount())
}

func TestRemoveByIDs_EmptyInput(t *testing.T) {
	svc := newTestService()
	svc.RecordScan("a", "")
	assert.Equal(t, 0, svc.RemoveByIDs(nil))
	assert.Equal(t, 1, svc.GetEventCount())
}

func TestSnapshotAndPutRoundTrip(t *testing.T) {
	svc := newTestService()
	svc.RecordScan("https://example.com", "")
	svc.RecordScan("geo:52.52,13.405", "")

	snap := svc.GetSnapshot()
	require.Equal(t, models.StorageVersion, snap.Version)
	require.Len(t, snap.Events, 2)

	other := newTestService()
	other.PutEvents(snap.Events)
	assert.Equal(t, snap.Events, other.GetSnapshot().Events)
}

func TestRevision_BumpsOnMutations(t *testing.T) {
	svc := newTestService()
	r0 := svc.GetRevision()

	svc.RecordScan("a", "")
	r1 := svc.GetRevision()
	assert.Greater(t, r1, r0)

	svc.Clear()
	assert.Greater(t, svc.GetRevision(), r1)
}
