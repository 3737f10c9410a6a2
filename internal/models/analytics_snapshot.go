package models

// DayBucket is the scan count for one calendar day.
type DayBucket struct {
	Date  int64  `json:"date"` // start of day, milliseconds since epoch
	Label string `json:"label"`
	Count int    `json:"count"`
}

// HourBucket is the scan count for one hour-of-day across the whole history.
type HourBucket struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// DomainStat is one ranked entry of the URL domain frequency table.
type DomainStat struct {
	Domain  string  `json:"domain"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// AnalyticsSnapshot is the derived aggregate over the full scan history.
// It is recomputed on every request and never persisted.
type AnalyticsSnapshot struct {
	TypeCounts   map[IntentType]int `json:"type_counts"`
	MostUsedType IntentType         `json:"most_used_type"`
	Daily        []DayBucket        `json:"daily"`
	PeakDay      DayBucket          `json:"peak_day"`
	Hourly       []HourBucket       `json:"hourly"`
	PeakHour     HourBucket         `json:"peak_hour"`
	Domains      []DomainStat       `json:"domains"`
	Last24Hours  int                `json:"last_24_hours"`
	AvgPerDay    int                `json:"avg_per_day"`
	TotalScans   int                `json:"total_scans"`
	UniqueTypes  int                `json:"unique_types"`
	FirstScan    int64              `json:"first_scan"` // milliseconds since epoch
	StreakDays   int                `json:"streak_days"`
}
