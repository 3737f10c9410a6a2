package history

import (
	"sort"
	"strings"

	"qrd/internal/models"
)

// Sort orders accepted by Apply.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortByType = "type"
	SortByData = "data"
)

// Query narrows and orders a history listing. Zero value means everything,
// newest first. Limit of 0 means no cap.
type Query struct {
	Search string
	Type   string
	Sort   string
	Limit  int
}

// Apply filters and sorts a copy of the event slice. Search matches the
// event data or type name case-insensitively; Type filters on the display
// name ("all" and empty mean no filter). Sorting is stable, so events with
// equal keys keep their append order.
func Apply(events []models.ScanEvent, q Query) []models.ScanEvent {
	out := make([]models.ScanEvent, 0, len(events))

	search := strings.ToLower(q.Search)
	for _, ev := range events {
		if search != "" &&
			!strings.Contains(strings.ToLower(ev.Data), search) &&
			!strings.Contains(strings.ToLower(ev.Type.String()), search) {
			continue
		}
		if q.Type != "" && q.Type != "all" && !strings.EqualFold(ev.Type.String(), q.Type) {
			continue
		}
		out = append(out, ev)
	}

	switch q.Sort {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	case SortByType:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Type.String() < out[j].Type.String() })
	case SortByData:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Data < out[j].Data })
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}

	return out
}
