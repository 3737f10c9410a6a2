package models

// ScanEvent is one persisted record of a successfully classified scan.
// It is created exactly once at classification time and never mutated;
// the Type field is the stored classification and must not be re-derived
// from Data by readers.
type ScanEvent struct {
	ID        string     `json:"id"`
	Data      string     `json:"data"`
	Timestamp int64      `json:"timestamp"` // milliseconds since epoch
	Type      IntentType `json:"type"`
	Format    string     `json:"format"`
}
