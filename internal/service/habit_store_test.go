package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planflow/internal/model"
)

func newTestHabitStore(t *testing.T, today string) *HabitStore {
	t.Helper()
	return NewHabitStore(nil, fixedClock{now: day(t, today)}, nil)
}

func TestHabitCreateDefaults(t *testing.T) {
	store := newTestHabitStore(t, "2024-01-03")

	habit, err := store.Create(HabitInput{Title: "Run", Frequency: model.FrequencyDaily, DefaultTime: "07:00"})
	require.NoError(t, err)

	assert.NotEmpty(t, habit.ID)
	assert.NotNil(t, habit.CompletedDates)
	assert.Empty(t, habit.CompletedDates)
	assert.Zero(t, habit.Streak)

	_, err = store.Create(HabitInput{Title: " "})
	assert.Error(t, err)
}

func TestHabitToggleAddsAndRemoves(t *testing.T) {
	store := newTestHabitStore(t, "2024-01-03")
	habit, _ := store.Create(HabitInput{Title: "Run"})

	store.ToggleCompletion(habit.ID, "2024-01-03")
	got, _ := store.Get(habit.ID)
	assert.Equal(t, []string{"2024-01-03"}, got.CompletedDates)
	assert.Equal(t, 1, got.Streak)

	// Toggling the same day again removes it and the streak falls back.
	store.ToggleCompletion(habit.ID, "2024-01-03")
	got, _ = store.Get(habit.ID)
	assert.Empty(t, got.CompletedDates)
	assert.Zero(t, got.Streak)
}

func TestHabitToggleRecomputesStreakFromScratch(t *testing.T) {
	store := newTestHabitStore(t, "2024-01-03")
	habit, _ := store.Create(HabitInput{Title: "Run"})

	store.ToggleCompletion(habit.ID, "2024-01-01")
	store.ToggleCompletion(habit.ID, "2024-01-02")
	got, _ := store.Get(habit.ID)
	assert.Equal(t, 2, got.Streak) // anchored at yesterday

	store.ToggleCompletion(habit.ID, "2024-01-03")
	got, _ = store.Get(habit.ID)
	assert.Equal(t, 3, got.Streak)

	// Knocking out the middle day breaks the run at the gap.
	store.ToggleCompletion(habit.ID, "2024-01-02")
	got, _ = store.Get(habit.ID)
	assert.Equal(t, 1, got.Streak)
}

func TestHabitMarkCompletedIsIdempotent(t *testing.T) {
	store := newTestHabitStore(t, "2024-01-03")
	habit, _ := store.Create(HabitInput{Title: "Run"})

	store.MarkCompleted(habit.ID, "2024-01-03")
	store.MarkCompleted(habit.ID, "2024-01-03")

	got, _ := store.Get(habit.ID)
	assert.Equal(t, []string{"2024-01-03"}, got.CompletedDates)
	assert.Equal(t, 1, got.Streak)
}

func TestHabitMutationsOnUnknownIDAreNoOps(t *testing.T) {
	store := newTestHabitStore(t, "2024-01-03")
	habit, _ := store.Create(HabitInput{Title: "Run"})

	store.ToggleCompletion("missing", "2024-01-03")
	store.MarkCompleted("missing", "2024-01-03")
	title := "x"
	store.Update("missing", HabitPatch{Title: &title})
	store.Delete("missing")

	got, ok := store.Get(habit.ID)
	require.True(t, ok)
	assert.Equal(t, "Run", got.Title)
	assert.Len(t, store.All(), 1)
}

func TestHabitUpdateDoesNotTouchStreak(t *testing.T) {
	store := newTestHabitStore(t, "2024-01-03")
	habit, _ := store.Create(HabitInput{Title: "Run"})
	store.ToggleCompletion(habit.ID, "2024-01-03")

	title := "Morning run"
	freq := model.FrequencyWeekly
	store.Update(habit.ID, HabitPatch{Title: &title, Frequency: &freq})

	got, _ := store.Get(habit.ID)
	assert.Equal(t, "Morning run", got.Title)
	assert.Equal(t, model.FrequencyWeekly, got.Frequency)
	assert.Equal(t, 1, got.Streak)
	assert.Equal(t, []string{"2024-01-03"}, got.CompletedDates)
}

func TestHabitReplaceCategory(t *testing.T) {
	store := newTestHabitStore(t, "2024-01-03")
	cat := model.Category{ID: "c1", Name: "Health"}
	tagged, _ := store.Create(HabitInput{Title: "Run", Category: &cat})
	other, _ := store.Create(HabitInput{Title: "Read"})

	updated := model.Category{ID: "c1", Name: "Fitness", ColorBg: "bg", ColorText: "fg"}
	store.ReplaceCategory(updated)

	got, _ := store.Get(tagged.ID)
	require.NotNil(t, got.Category)
	assert.Equal(t, updated, *got.Category)

	gotOther, _ := store.Get(other.ID)
	assert.Nil(t, gotOther.Category)
}
