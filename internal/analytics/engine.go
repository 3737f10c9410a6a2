package analytics

import (
	"math"
	"net/url"
	"sort"
	"strings"
	"time"

	"qrd/internal/models"
)

const (
	dayMillis = 24 * 60 * 60 * 1000

	// invalidDomain is the sentinel bucket for Url events whose data cannot
	// be parsed as a URL. Parse failures degrade here instead of aborting
	// the aggregation.
	invalidDomain = "Invalid URL"

	topDomains = 10
)

// Analyze recomputes the full analytics snapshot from the event sequence.
// It returns nil for an empty sequence; callers must branch on that rather
// than read zeroed fields. Day and hour boundaries follow the location of
// the supplied clock value.
func Analyze(events []models.ScanEvent, now time.Time) *models.AnalyticsSnapshot {
	if len(events) == 0 {
		return nil
	}

	snap := &models.AnalyticsSnapshot{
		TypeCounts: typeDistribution(events),
		Daily:      dailyBuckets(events, now),
		Hourly:     hourlyBuckets(events, now.Location()),
		Domains:    domainStats(events),
		TotalScans: len(events),
	}

	snap.MostUsedType = mostUsedType(snap.TypeCounts)
	snap.UniqueTypes = len(snap.TypeCounts)
	snap.PeakDay = peakDay(snap.Daily)
	snap.PeakHour = peakHour(snap.Hourly)

	first := events[0].Timestamp
	cutoff := now.UnixMilli() - dayMillis
	for _, ev := range events {
		if ev.Timestamp < first {
			first = ev.Timestamp
		}
		if ev.Timestamp > cutoff {
			snap.Last24Hours++
		}
	}
	snap.FirstScan = first

	activeDays := int(math.Ceil(float64(now.UnixMilli()-first) / float64(dayMillis)))
	snap.StreakDays = activeDays
	if activeDays < 1 {
		activeDays = 1
	}
	snap.AvgPerDay = int(math.Round(float64(len(events)) / float64(activeDays)))

	return snap
}

func typeDistribution(events []models.ScanEvent) map[models.IntentType]int {
	counts := make(map[models.IntentType]int)
	for _, ev := range events {
		// The stored classification is authoritative; Data is never re-classified.
		counts[ev.Type]++
	}
	return counts
}

// mostUsedType ranks by count, breaking ties by enum order.
func mostUsedType(counts map[models.IntentType]int) models.IntentType {
	best := models.IntentText
	bestCount := -1
	for _, t := range models.AllIntentTypes {
		if c, ok := counts[t]; ok && c > bestCount {
			best = t
			bestCount = c
		}
	}
	return best
}

// dailyBuckets counts events per calendar day for the 7 days ending today,
// oldest first. Events older than the window are excluded by design.
func dailyBuckets(events []models.ScanEvent, now time.Time) []models.DayBucket {
	loc := now.Location()
	today := startOfDay(now)

	buckets := make([]models.DayBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)

		count := 0
		for _, ev := range events {
			ts := time.UnixMilli(ev.Timestamp).In(loc)
			if !ts.Before(day) && ts.Before(next) {
				count++
			}
		}

		buckets = append(buckets, models.DayBucket{
			Date:  day.UnixMilli(),
			Label: day.Format("Jan 02"),
			Count: count,
		})
	}
	return buckets
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// hourlyBuckets counts events per local hour-of-day 0-23 across the entire
// history, irrespective of date.
func hourlyBuckets(events []models.ScanEvent, loc *time.Location) []models.HourBucket {
	buckets := make([]models.HourBucket, 24)
	for h := range buckets {
		buckets[h].Hour = h
	}
	for _, ev := range events {
		h := time.UnixMilli(ev.Timestamp).In(loc).Hour()
		buckets[h].Count++
	}
	return buckets
}

func peakDay(daily []models.DayBucket) models.DayBucket {
	peak := daily[0]
	for _, b := range daily[1:] {
		if b.Count > peak.Count {
			peak = b
		}
	}
	return peak
}

func peakHour(hourly []models.HourBucket) models.HourBucket {
	peak := hourly[0]
	for _, b := range hourly[1:] {
		if b.Count > peak.Count {
			peak = b
		}
	}
	return peak
}

// domainStats ranks the hosts of Url-typed events by descending count and
// keeps the top 10. Percentages are relative to the total across all
// domains, so a truncated table sums to less than 100. Ties keep
// first-seen order.
func domainStats(events []models.ScanEvent) []models.DomainStat {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, ev := range events {
		if ev.Type != models.IntentURL {
			continue
		}
		domain := extractDomain(ev.Data)
		if _, seen := counts[domain]; !seen {
			order = append(order, domain)
		}
		counts[domain]++
	}
	if len(order) == 0 {
		return nil
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topDomains {
		order = order[:topDomains]
	}

	stats := make([]models.DomainStat, 0, len(order))
	for _, domain := range order {
		stats = append(stats, models.DomainStat{
			Domain:  domain,
			Count:   counts[domain],
			Percent: float64(counts[domain]) / float64(total) * 100,
		})
	}
	return stats
}

func extractDomain(data string) string {
	if !strings.HasPrefix(data, "http") {
		data = "https://" + data
	}
	u, err := url.Parse(data)
	if err != nil || u.Hostname() == "" {
		return invalidDomain
	}
	return u.Hostname()
}
