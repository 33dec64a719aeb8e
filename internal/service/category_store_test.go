package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planflow/internal/model"
)

func TestCategoryAdd(t *testing.T) {
	changes := 0
	store := NewCategoryStore(nil, func() { changes++ })

	cat, err := store.Add("Study", "bg-pink", "text-pink")
	require.NoError(t, err)
	assert.NotEmpty(t, cat.ID)
	assert.Equal(t, "Study", cat.Name)
	assert.Equal(t, 1, changes)

	other, err := store.Add("Study", "bg-blue", "text-blue")
	require.NoError(t, err)
	assert.NotEqual(t, cat.ID, other.ID)

	_, err = store.Add("  ", "bg", "fg")
	assert.Error(t, err)
}

func TestCategoryEditPropagatesToDependents(t *testing.T) {
	catStore := NewCategoryStore(nil, nil)
	taskStore := NewTaskStore(nil, nil, nil)
	habitStore := NewHabitStore(nil, fixedClock{now: day(t, "2024-01-03")}, nil)
	catStore.AddDependent(taskStore)
	catStore.AddDependent(habitStore)

	study, _ := catStore.Add("Study", "bg-pink", "text-pink")
	life, _ := catStore.Add("Life", "bg-gray", "text-gray")

	tagged, _ := taskStore.Create(TaskInput{Title: "Read", Category: &study})
	otherTask, _ := taskStore.Create(TaskInput{Title: "Chores", Category: &life})
	habit, _ := habitStore.Create(HabitInput{Title: "Review notes", Category: &study})

	catStore.Edit(study.ID, "Deep Study", "bg-purple", "text-purple")

	want := model.Category{ID: study.ID, Name: "Deep Study", ColorBg: "bg-purple", ColorText: "text-purple"}

	got, ok := catStore.Get(study.ID)
	require.True(t, ok)
	assert.Equal(t, want, got)

	gotTask, _ := taskStore.Get(tagged.ID)
	require.NotNil(t, gotTask.Category)
	assert.Equal(t, want, *gotTask.Category)

	gotHabit, _ := habitStore.Get(habit.ID)
	require.NotNil(t, gotHabit.Category)
	assert.Equal(t, want, *gotHabit.Category)

	// Entities tagged with other categories are untouched.
	gotOther, _ := taskStore.Get(otherTask.ID)
	require.NotNil(t, gotOther.Category)
	assert.Equal(t, "Life", gotOther.Category.Name)
}

func TestCategoryEditUnknownIDIsNoOp(t *testing.T) {
	changes := 0
	store := NewCategoryStore(nil, func() { changes++ })
	store.Add("Study", "bg", "fg")
	before := changes

	store.Edit("missing", "x", "bg", "fg")
	assert.Equal(t, before, changes)
}

func TestCategoryDeleteLeavesSnapshotsOrphaned(t *testing.T) {
	catStore := NewCategoryStore(nil, nil)
	taskStore := NewTaskStore(nil, nil, nil)
	catStore.AddDependent(taskStore)

	study, _ := catStore.Add("Study", "bg", "fg")
	task, _ := taskStore.Create(TaskInput{Title: "Read", Category: &study})

	catStore.Delete(study.ID)
	_, ok := catStore.Get(study.ID)
	assert.False(t, ok)

	// The snapshot survives as an orphaned reference.
	got, _ := taskStore.Get(task.ID)
	require.NotNil(t, got.Category)
	assert.Equal(t, study.ID, got.Category.ID)

	// Deleting again is a no-op.
	catStore.Delete(study.ID)
}

func TestCategoryListSortedByName(t *testing.T) {
	store := NewCategoryStore(nil, nil)
	store.Add("Work", "bg", "fg")
	store.Add("Art", "bg", "fg")
	store.Add("Life", "bg", "fg")

	list := store.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Art", list[0].Name)
	assert.Equal(t, "Life", list[1].Name)
	assert.Equal(t, "Work", list[2].Name)
}
