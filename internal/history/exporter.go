package history

import (
	"strings"
	"time"

	"qrd/internal/models"
)

const csvHeader = "Timestamp,Type,Data,Format"

// ExportCSV renders events as CSV in the caller-supplied order. Every field
// is double-quoted with embedded quotes doubled, and timestamps are local
// time in yyyy-MM-dd HH:mm:ss form. encoding/csv is not used because it
// quotes fields only when necessary, while consumers of these exports
// expect every field quoted.
func ExportCSV(events []models.ScanEvent) []byte {
	lines := make([]string, 0, len(events)+1)
	lines = append(lines, csvHeader)

	for _, ev := range events {
		ts := time.UnixMilli(ev.Timestamp).Format("2006-01-02 15:04:05")
		fields := []string{
			quote(ts),
			quote(ev.Type.String()),
			quote(ev.Data),
			quote(ev.Format),
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return []byte(strings.Join(lines, "\n"))
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
