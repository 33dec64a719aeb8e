package model

import "time"

// RepeatFrequency says how often a task recurs once completed.
type RepeatFrequency string

const (
	RepeatNone    RepeatFrequency = "none"
	RepeatDaily   RepeatFrequency = "daily"
	RepeatWeekly  RepeatFrequency = "weekly"
	RepeatMonthly RepeatFrequency = "monthly"
)

// Valid reports whether f is one of the known repeat frequencies. An empty
// value is treated as "none".
func (f RepeatFrequency) Valid() bool {
	switch f {
	case "", RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	}
	return false
}

// Repeats reports whether the frequency actually produces follow-up tasks.
func (f RepeatFrequency) Repeats() bool {
	return f != "" && f != RepeatNone
}

// Task represents a single item in the planner. A task without a do date
// lives in the backlog. Category is a snapshot copy taken at assignment
// time, not a reference; edits to the source category are propagated
// explicitly.
type Task struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	IsCompleted bool            `json:"isCompleted"`
	Category    *Category       `json:"category,omitempty"`
	DoDate      *time.Time      `json:"doDate,omitempty"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
	Repeat      RepeatFrequency `json:"repeat,omitempty"`

	// StartTime is an "HH:MM" wall-clock string; Duration is in minutes.
	StartTime string `json:"startTime,omitempty"`
	Duration  int    `json:"duration,omitempty"`

	// OriginalHabitID links a task materialized from a habit back to that
	// habit. Provenance only; the habit may no longer exist.
	OriginalHabitID string `json:"originalHabitId,omitempty"`
}

// Scheduled reports whether the task has a do date (i.e. is not in the
// backlog).
func (t Task) Scheduled() bool {
	return t.DoDate != nil
}
