package model

// HabitFrequency is informational: it labels how often the user intends to
// do the habit, but does not change streak arithmetic.
type HabitFrequency string

const (
	FrequencyDaily  HabitFrequency = "daily"
	FrequencyWeekly HabitFrequency = "weekly"
)

// Valid reports whether f is a known habit frequency. Empty is allowed.
func (f HabitFrequency) Valid() bool {
	switch f {
	case "", FrequencyDaily, FrequencyWeekly:
		return true
	}
	return false
}

// Habit is a recurring commitment tracked by the calendar days it was
// completed on. CompletedDates holds day keys ("YYYY-MM-DD", local calendar)
// with set semantics: no duplicates, order not meaningful. Streak is a cache
// recomputed on every toggle.
type Habit struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Category *Category `json:"category,omitempty"`

	Frequency HabitFrequency `json:"frequency,omitempty"`

	// DefaultTime pins the habit to a fixed "HH:MM" point in a daily
	// timeline unless a materialized task instance overrides it.
	DefaultTime string `json:"defaultTime,omitempty"`

	CompletedDates []string `json:"completedDates"`
	Streak         int      `json:"streak"`
}

// CompletedOn reports whether the habit was marked done on the given day key.
func (h Habit) CompletedOn(dayKey string) bool {
	for _, d := range h.CompletedDates {
		if d == dayKey {
			return true
		}
	}
	return false
}
