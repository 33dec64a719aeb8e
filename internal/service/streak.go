package service

import (
	"time"

	"planflow/internal/model"
)

// computeStreak counts the consecutive completed days ending at today or,
// when today is not yet marked, at yesterday. Anchoring at yesterday keeps
// an unbroken streak alive until the user has had a full day to lapse; no
// anchor further back is ever considered. A missing anchor means streak 0.
func computeStreak(completedDates []string, now time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}
	completed := make(map[string]struct{}, len(completedDates))
	for _, d := range completedDates {
		completed[d] = struct{}{}
	}

	day := model.StartOfDay(now)
	if _, ok := completed[model.DayKey(day)]; !ok {
		day = day.AddDate(0, 0, -1)
		if _, ok := completed[model.DayKey(day)]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := completed[model.DayKey(day)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
