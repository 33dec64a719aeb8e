package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"planflow/internal/model"
)

// HabitInput carries the fields for creating a habit.
type HabitInput struct {
	Title       string
	Category    *model.Category
	Frequency   model.HabitFrequency
	DefaultTime string
}

// HabitPatch is a partial update with the same merge semantics as TaskPatch.
// The streak is never touched by Update; it only changes through toggling.
type HabitPatch struct {
	Title            *string
	Category         *model.Category
	ClearCategory    bool
	Frequency        *model.HabitFrequency
	DefaultTime      *string
	ClearDefaultTime bool
}

// HabitStore holds the habit collection and owns streak computation.
// Mutations addressed to unknown ids are silent no-ops.
type HabitStore struct {
	habits   []model.Habit
	clock    Clock
	onChange func()
}

// NewHabitStore builds a store over an initial habit list (may be nil).
func NewHabitStore(initial []model.Habit, clock Clock, onChange func()) *HabitStore {
	if clock == nil {
		clock = SystemClock{}
	}
	if onChange == nil {
		onChange = func() {}
	}
	return &HabitStore{habits: initial, clock: clock, onChange: onChange}
}

// Create appends a new habit with no completions and a zero streak.
func (s *HabitStore) Create(input HabitInput) (model.Habit, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Habit{}, errors.New("title is required")
	}
	habit := model.Habit{
		ID:             uuid.NewString(),
		Title:          input.Title,
		Category:       snapshotCategory(input.Category),
		Frequency:      input.Frequency,
		DefaultTime:    input.DefaultTime,
		CompletedDates: []string{},
		Streak:         0,
	}
	s.habits = append(s.habits, habit)
	s.onChange()
	return habit, nil
}

// Update merges the patch into the habit matching id.
func (s *HabitStore) Update(id string, patch HabitPatch) {
	idx := s.index(id)
	if idx < 0 {
		return
	}
	habit := &s.habits[idx]
	if patch.Title != nil && strings.TrimSpace(*patch.Title) != "" {
		habit.Title = *patch.Title
	}
	switch {
	case patch.Category != nil:
		habit.Category = snapshotCategory(patch.Category)
	case patch.ClearCategory:
		habit.Category = nil
	}
	if patch.Frequency != nil && patch.Frequency.Valid() {
		habit.Frequency = *patch.Frequency
	}
	switch {
	case patch.DefaultTime != nil:
		habit.DefaultTime = *patch.DefaultTime
	case patch.ClearDefaultTime:
		habit.DefaultTime = ""
	}
	s.onChange()
}

// Delete removes the habit. Tasks referencing it by OriginalHabitID are left
// alone; the dangling reference is tolerated.
func (s *HabitStore) Delete(id string) {
	idx := s.index(id)
	if idx < 0 {
		return
	}
	s.habits = append(s.habits[:idx], s.habits[idx+1:]...)
	s.onChange()
}

// ToggleCompletion flips membership of dayKey in the habit's completed set
// and recomputes the streak from scratch.
func (s *HabitStore) ToggleCompletion(id, dayKey string) {
	idx := s.index(id)
	if idx < 0 {
		return
	}
	habit := &s.habits[idx]
	if habit.CompletedOn(dayKey) {
		kept := habit.CompletedDates[:0]
		for _, d := range habit.CompletedDates {
			if d != dayKey {
				kept = append(kept, d)
			}
		}
		habit.CompletedDates = kept
	} else {
		habit.CompletedDates = append(habit.CompletedDates, dayKey)
	}
	habit.Streak = computeStreak(habit.CompletedDates, s.clock.Now())
	s.onChange()
}

// MarkCompleted marks dayKey done unless it already is. This is the
// idempotent entry point the task store drives when a habit-derived task is
// completed, so toggling both representations in the same day cannot undo
// the habit. Implements HabitMarker; unknown ids are ignored.
func (s *HabitStore) MarkCompleted(id, dayKey string) {
	idx := s.index(id)
	if idx < 0 {
		return
	}
	if s.habits[idx].CompletedOn(dayKey) {
		return
	}
	s.ToggleCompletion(id, dayKey)
}

// Get looks up a habit by id.
func (s *HabitStore) Get(id string) (model.Habit, bool) {
	idx := s.index(id)
	if idx < 0 {
		return model.Habit{}, false
	}
	return s.habits[idx], true
}

// All returns a copy of the habit collection in creation order.
func (s *HabitStore) All() []model.Habit {
	out := make([]model.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// ReplaceCategory swaps the embedded snapshot of every habit tagged with the
// category's id. Implements CategoryDependent.
func (s *HabitStore) ReplaceCategory(cat model.Category) {
	changed := false
	for i := range s.habits {
		if s.habits[i].Category != nil && s.habits[i].Category.ID == cat.ID {
			c := cat
			s.habits[i].Category = &c
			changed = true
		}
	}
	if changed {
		s.onChange()
	}
}

func (s *HabitStore) index(id string) int {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i
		}
	}
	return -1
}
