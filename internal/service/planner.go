// Package service implements the planner engine: the category, task and
// habit stores, the recurrence and streak rules, the daily review query, and
// the persistence facade over the local record store.
//
// The engine is single-actor by contract: every operation runs to completion
// before the next user action is processed, so the stores carry no locks.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"planflow/internal/model"
)

// Record keys, matching the original client-local storage layout.
const (
	keyCategories = "planflow_categories"
	keyTasks      = "planflow_tasks"
	keyHabits     = "planflow_habits"
	keyUsername   = "planflow_username"
)

// DefaultUsername is used when no username record exists.
const DefaultUsername = "Guest User"

// StateStore is the logical read/write contract of the client-local
// persistent storage. *repository.RecordRepository satisfies it.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Planner wires the three stores over one state store and one clock. Every
// store mutation re-serializes that store's record; persistence failures are
// logged and never fail the mutation.
type Planner struct {
	store StateStore
	clock Clock

	Categories *CategoryStore
	Tasks      *TaskStore
	Habits     *HabitStore

	username string
}

// Load rehydrates planner state from the store. A record that is missing or
// fails to decode loads as empty for that store only, leaving the others
// intact; decode failures are logged.
func Load(ctx context.Context, store StateStore, clock Clock) *Planner {
	if clock == nil {
		clock = SystemClock{}
	}
	p := &Planner{store: store, clock: clock}
	p.reload(ctx)
	return p
}

// Refresh re-reads every record from the store, picking up mutations made
// by other processes sharing the database. The long-running remind mode
// calls this before each scheduled review so it never reports stale state.
func (p *Planner) Refresh(ctx context.Context) {
	p.reload(ctx)
}

// reload rehydrates every store from its record.
func (p *Planner) reload(ctx context.Context) {
	var categories map[string]model.Category
	if err := p.loadRecord(ctx, keyCategories, &categories); err != nil {
		log.Printf("load categories: %v (starting empty)", err)
		categories = nil
	}
	var tasks []model.Task
	if err := p.loadRecord(ctx, keyTasks, &tasks); err != nil {
		log.Printf("load tasks: %v (starting empty)", err)
		tasks = nil
	}
	var habits []model.Habit
	if err := p.loadRecord(ctx, keyHabits, &habits); err != nil {
		log.Printf("load habits: %v (starting empty)", err)
		habits = nil
	}

	p.username = DefaultUsername
	if raw, ok, err := p.store.Get(ctx, keyUsername); err != nil {
		log.Printf("load username: %v", err)
	} else if ok && len(raw) > 0 {
		p.username = string(raw)
	}

	p.wire(categories, tasks, habits)
}

// wire builds the stores over the given state and connects the cross-store
// couplings: task completion → habit marking, category edit → snapshot
// propagation, and mutation → persistence.
func (p *Planner) wire(categories map[string]model.Category, tasks []model.Task, habits []model.Habit) {
	p.Categories = NewCategoryStore(categories, func() { p.persist(keyCategories) })
	p.Habits = NewHabitStore(habits, p.clock, func() { p.persist(keyHabits) })
	p.Tasks = NewTaskStore(tasks, p.Habits, func() { p.persist(keyTasks) })
	p.Categories.AddDependent(p.Tasks)
	p.Categories.AddDependent(p.Habits)
}

func (p *Planner) loadRecord(ctx context.Context, key string, out any) error {
	raw, ok, err := p.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (p *Planner) persist(key string) {
	var (
		raw []byte
		err error
	)
	switch key {
	case keyCategories:
		raw, err = json.Marshal(p.Categories.All())
	case keyTasks:
		raw, err = json.Marshal(p.Tasks.All())
	case keyHabits:
		raw, err = json.Marshal(p.Habits.All())
	case keyUsername:
		raw = []byte(p.username)
	}
	if err != nil {
		log.Printf("serialize %s: %v", key, err)
		return
	}
	if err := p.store.Put(context.Background(), key, raw); err != nil {
		log.Printf("persist %s: %v", key, err)
	}
}

// Username returns the stored display name.
func (p *Planner) Username() string {
	return p.username
}

// SetUsername stores a new display name.
func (p *Planner) SetUsername(name string) {
	p.username = name
	p.persist(keyUsername)
}

// Now exposes the planner's clock.
func (p *Planner) Now() time.Time {
	return p.clock.Now()
}

// DailyReview returns the overdue incomplete tasks as of today. Evaluated
// once per session, not on every render.
func (p *Planner) DailyReview() []model.Task {
	return OverdueTasks(p.Tasks.All(), p.clock.Now())
}

// RecycleTasks sends the given tasks back to the backlog. This is the daily
// review's recycle action.
func (p *Planner) RecycleTasks(ids []string) {
	p.Tasks.BulkUnschedule(ids)
}

// MaterializeHabit creates a concrete, independently editable task instance
// from a habit's occurrence on one date/time. The task copies the habit's
// title and category snapshot, does not repeat, and links back via
// OriginalHabitID. The habit itself is not mutated. Returns false when the
// habit does not exist.
func (p *Planner) MaterializeHabit(habitID string, date time.Time, startTime string) (model.Task, bool) {
	habit, ok := p.Habits.Get(habitID)
	if !ok {
		return model.Task{}, false
	}
	task, err := p.Tasks.Create(TaskInput{
		Title:           habit.Title,
		Category:        habit.Category,
		DoDate:          &date,
		StartTime:       startTime,
		Duration:        defaultTaskDuration,
		Repeat:          model.RepeatNone,
		OriginalHabitID: habit.ID,
	})
	if err != nil {
		return model.Task{}, false
	}
	return task, true
}

// defaultTaskDuration is the minutes assigned to a timed task when nothing
// more specific was chosen.
const defaultTaskDuration = 30
