package service

import (
	"time"

	"planflow/internal/model"
)

// OverdueTasks returns the incomplete tasks whose do date falls strictly
// before the given day, ignoring time of day. This seeds the daily review
// prompt; acting on it bulk-unschedules the selection.
func OverdueTasks(tasks []model.Task, now time.Time) []model.Task {
	today := model.StartOfDay(now)
	var out []model.Task
	for _, t := range tasks {
		if t.DoDate == nil || t.IsCompleted {
			continue
		}
		if model.StartOfDay(*t.DoDate).Before(today) {
			out = append(out, t)
		}
	}
	return out
}
