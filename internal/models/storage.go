package models

// StorageVersion is the current persistence envelope version.
const StorageVersion = 1

// Storage is the on-disk envelope for the full event sequence. Load must
// return exactly what was stored, in the same order. Files written before
// the envelope was introduced hold a bare event array; the file manager
// migrates those on load.
type Storage struct {
	Version int         `json:"version"`
	Events  []ScanEvent `json:"events"`
}
