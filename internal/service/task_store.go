package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"planflow/internal/model"
)

// HabitMarker marks a habit complete for a calendar day. The task store
// holds it as an injected capability rather than depending on the habit
// store directly, so each store is testable in isolation. Implementations
// must tolerate unknown habit ids and already-marked days.
type HabitMarker interface {
	MarkCompleted(habitID, dayKey string)
}

// TaskInput carries the fields for creating a task.
type TaskInput struct {
	Title           string
	Category        *model.Category
	DoDate          *time.Time
	Deadline        *time.Time
	Repeat          model.RepeatFrequency
	StartTime       string
	Duration        int
	OriginalHabitID string
}

// TaskPatch is a partial update: nil pointer fields are left untouched, and
// the Clear flags reset the corresponding optional field.
type TaskPatch struct {
	Title          *string
	Category       *model.Category
	ClearCategory  bool
	DoDate         *time.Time
	ClearDoDate    bool
	Deadline       *time.Time
	ClearDeadline  bool
	Repeat         *model.RepeatFrequency
	StartTime      *string
	ClearStartTime bool
	Duration       *int
	ClearDuration  bool
}

// TaskStore holds the ordered task collection. Append order doubles as the
// "most recently created" ordering the backlog view relies on. Mutations
// addressed to unknown ids are silent no-ops: the store tolerates stale ids
// from the UI layer.
type TaskStore struct {
	tasks    []model.Task
	habits   HabitMarker
	onChange func()
}

// NewTaskStore builds a store over an initial task list (may be nil).
// habits may be nil when no habit coupling is wanted.
func NewTaskStore(initial []model.Task, habits HabitMarker, onChange func()) *TaskStore {
	if onChange == nil {
		onChange = func() {}
	}
	return &TaskStore{tasks: initial, habits: habits, onChange: onChange}
}

// Create appends a new task. Title is required; everything else is optional.
func (s *TaskStore) Create(input TaskInput) (model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Task{}, errors.New("title is required")
	}
	task := model.Task{
		ID:              uuid.NewString(),
		Title:           input.Title,
		IsCompleted:     false,
		Category:        snapshotCategory(input.Category),
		DoDate:          copyTime(input.DoDate),
		Deadline:        copyTime(input.Deadline),
		Repeat:          input.Repeat,
		StartTime:       input.StartTime,
		Duration:        input.Duration,
		OriginalHabitID: input.OriginalHabitID,
	}
	s.tasks = append(s.tasks, task)
	s.onChange()
	return task, nil
}

// Update merges the patch into the task matching id.
func (s *TaskStore) Update(id string, patch TaskPatch) {
	idx := s.index(id)
	if idx < 0 {
		return
	}
	task := &s.tasks[idx]
	if patch.Title != nil && strings.TrimSpace(*patch.Title) != "" {
		task.Title = *patch.Title
	}
	switch {
	case patch.Category != nil:
		task.Category = snapshotCategory(patch.Category)
	case patch.ClearCategory:
		task.Category = nil
	}
	switch {
	case patch.DoDate != nil:
		task.DoDate = copyTime(patch.DoDate)
	case patch.ClearDoDate:
		task.DoDate = nil
	}
	switch {
	case patch.Deadline != nil:
		task.Deadline = copyTime(patch.Deadline)
	case patch.ClearDeadline:
		task.Deadline = nil
	}
	if patch.Repeat != nil && patch.Repeat.Valid() {
		task.Repeat = *patch.Repeat
	}
	switch {
	case patch.StartTime != nil:
		task.StartTime = *patch.StartTime
	case patch.ClearStartTime:
		task.StartTime = ""
	}
	switch {
	case patch.Duration != nil:
		task.Duration = *patch.Duration
	case patch.ClearDuration:
		task.Duration = 0
	}
	s.onChange()
}

// Delete removes the task matching id.
func (s *TaskStore) Delete(id string) {
	idx := s.index(id)
	if idx < 0 {
		return
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.onChange()
}

// ToggleCompletion flips the task's completion state. On the incomplete →
// complete transition two couplings fire: a task materialized from a habit
// marks the habit done for its do date, and a repeating task spawns its next
// occurrence as an independent task (the completed one is kept as history).
func (s *TaskStore) ToggleCompletion(id string) {
	idx := s.index(id)
	if idx < 0 {
		return
	}
	s.tasks[idx].IsCompleted = !s.tasks[idx].IsCompleted
	task := s.tasks[idx]

	if task.IsCompleted && task.OriginalHabitID != "" && task.DoDate != nil && s.habits != nil {
		s.habits.MarkCompleted(task.OriginalHabitID, model.DayKey(*task.DoDate))
	}

	if task.IsCompleted && task.Repeat.Repeats() && task.DoDate != nil {
		s.tasks = append(s.tasks, nextOccurrence(task))
	}

	s.onChange()
}

// Schedule sets the task's do date. startTime semantics follow the caller's
// intent exactly: nil leaves the start time untouched, a pointer to the
// empty string clears it, anything else sets it.
func (s *TaskStore) Schedule(id string, date time.Time, startTime *string) {
	idx := s.index(id)
	if idx < 0 {
		return
	}
	task := &s.tasks[idx]
	d := date
	task.DoDate = &d
	if startTime != nil {
		task.StartTime = *startTime
	}
	s.onChange()
}

// Unschedule clears the do date and start time, returning the task to the
// backlog. Already-backlogged tasks are left otherwise unchanged.
func (s *TaskStore) Unschedule(id string) {
	idx := s.index(id)
	if idx < 0 {
		return
	}
	s.tasks[idx].DoDate = nil
	s.tasks[idx].StartTime = ""
	s.onChange()
}

// BulkUnschedule unschedules every listed task. Used by the daily review
// recycle action.
func (s *TaskStore) BulkUnschedule(ids []string) {
	members := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		members[id] = struct{}{}
	}
	for i := range s.tasks {
		if _, ok := members[s.tasks[i].ID]; ok {
			s.tasks[i].DoDate = nil
			s.tasks[i].StartTime = ""
		}
	}
	s.onChange()
}

// ClearCompleted drops every completed task and reports how many were
// removed. Habits are untouched.
func (s *TaskStore) ClearCompleted() int {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.IsCompleted {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	if removed > 0 {
		s.onChange()
	}
	return removed
}

// Get looks up a task by id.
func (s *TaskStore) Get(id string) (model.Task, bool) {
	idx := s.index(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return s.tasks[idx], true
}

// All returns a copy of the task collection in creation order.
func (s *TaskStore) All() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Backlog returns the unscheduled tasks in creation order.
func (s *TaskStore) Backlog() []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if !t.Scheduled() {
			out = append(out, t)
		}
	}
	return out
}

// OnDay returns the tasks scheduled for the given calendar day.
func (s *TaskStore) OnDay(day time.Time) []model.Task {
	key := model.DayKey(day)
	var out []model.Task
	for _, t := range s.tasks {
		if t.DoDate != nil && model.DayKey(*t.DoDate) == key {
			out = append(out, t)
		}
	}
	return out
}

// ReplaceCategory swaps the embedded snapshot of every task tagged with the
// category's id. Implements CategoryDependent.
func (s *TaskStore) ReplaceCategory(cat model.Category) {
	changed := false
	for i := range s.tasks {
		if s.tasks[i].Category != nil && s.tasks[i].Category.ID == cat.ID {
			c := cat
			s.tasks[i].Category = &c
			changed = true
		}
	}
	if changed {
		s.onChange()
	}
}

func (s *TaskStore) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshotCategory copies the category by value so the task holds a
// snapshot, never a shared reference.
func snapshotCategory(cat *model.Category) *model.Category {
	if cat == nil {
		return nil
	}
	c := *cat
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
