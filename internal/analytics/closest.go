package analytics

import (
	"time"

	"alcyxob/fitstack/internal/domain"
)

// FindClosestRecord returns the record whose date is nearest to
// (now − monthsAgo months), measured in whole days. Ties keep the first
// record encountered in iteration order, so absent ties the result does
// not depend on input order. Returns nil when records is empty or no
// record date parses.
func FindClosestRecord(records []domain.WorkoutRecord, monthsAgo int, now time.Time) *domain.WorkoutRecord {
	target := now.AddDate(0, -monthsAgo, 0)
	target = time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)

	var best *domain.WorkoutRecord
	bestDist := 0
	for i := range records {
		day, ok := ParseDate(records[i].Date)
		if !ok {
			continue
		}
		dist := daysBetween(day, target)
		if best == nil || dist < bestDist {
			best = &records[i]
			bestDist = dist
		}
	}
	return best
}
