package service

import (
	"time"

	"github.com/google/uuid"

	"planflow/internal/model"
)

// nextOccurrence derives the follow-up task spawned when a repeating task is
// completed. The do date advances by the repeat unit; the deadline, when
// present, advances by the identical delta. Everything else carries over
// under a fresh id with completion reset.
//
// Monthly advancement uses time.Time.AddDate normalization: a day of month
// missing from the target month overflows into the next one (Jan 31 + 1
// month = Mar 2 or Mar 3).
func nextOccurrence(task model.Task) model.Task {
	next := task
	next.ID = uuid.NewString()
	next.IsCompleted = false
	next.Category = snapshotCategory(task.Category)

	d := advance(*task.DoDate, task.Repeat)
	next.DoDate = &d
	if task.Deadline != nil {
		dl := advance(*task.Deadline, task.Repeat)
		next.Deadline = &dl
	}
	return next
}

func advance(t time.Time, repeat model.RepeatFrequency) time.Time {
	switch repeat {
	case model.RepeatDaily:
		return t.AddDate(0, 0, 1)
	case model.RepeatWeekly:
		return t.AddDate(0, 0, 7)
	case model.RepeatMonthly:
		return t.AddDate(0, 1, 0)
	}
	return t
}
