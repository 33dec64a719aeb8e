package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"planflow/internal/model"
)

// BackupVersion tags the backup format.
const BackupVersion = 1

// Backup is a full export: the union of the four state records plus the
// format version.
type Backup struct {
	Version    int             `json:"version"`
	Categories json.RawMessage `json:"categories,omitempty"`
	Tasks      json.RawMessage `json:"tasks,omitempty"`
	Habits     json.RawMessage `json:"habits,omitempty"`
	Username   string          `json:"username,omitempty"`
}

// Export serializes the current state into a backup document.
func (p *Planner) Export() ([]byte, error) {
	categories, err := json.Marshal(p.Categories.All())
	if err != nil {
		return nil, fmt.Errorf("serialize categories: %w", err)
	}
	tasks, err := json.Marshal(p.Tasks.All())
	if err != nil {
		return nil, fmt.Errorf("serialize tasks: %w", err)
	}
	habits, err := json.Marshal(p.Habits.All())
	if err != nil {
		return nil, fmt.Errorf("serialize habits: %w", err)
	}
	backup := Backup{
		Version:    BackupVersion,
		Categories: categories,
		Tasks:      tasks,
		Habits:     habits,
		Username:   p.username,
	}
	return json.MarshalIndent(backup, "", "  ")
}

// Import validates a backup document and, only then, overwrites the stored
// records and reloads in-memory state. A backup lacking all three of
// categories/tasks/habits is rejected, as is one whose present sections do
// not decode; in both cases the current state is left completely untouched.
func (p *Planner) Import(ctx context.Context, data []byte) error {
	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}
	if backup.Categories == nil && backup.Tasks == nil && backup.Habits == nil {
		return errors.New("backup contains no categories, tasks, or habits")
	}

	var categories map[string]model.Category
	if backup.Categories != nil {
		if err := json.Unmarshal(backup.Categories, &categories); err != nil {
			return fmt.Errorf("parse backup categories: %w", err)
		}
	}
	var tasks []model.Task
	if backup.Tasks != nil {
		if err := json.Unmarshal(backup.Tasks, &tasks); err != nil {
			return fmt.Errorf("parse backup tasks: %w", err)
		}
	}
	var habits []model.Habit
	if backup.Habits != nil {
		if err := json.Unmarshal(backup.Habits, &habits); err != nil {
			return fmt.Errorf("parse backup habits: %w", err)
		}
	}

	writes := map[string][]byte{}
	if backup.Categories != nil {
		writes[keyCategories] = backup.Categories
	}
	if backup.Tasks != nil {
		writes[keyTasks] = backup.Tasks
	}
	if backup.Habits != nil {
		writes[keyHabits] = backup.Habits
	}
	if backup.Username != "" {
		writes[keyUsername] = []byte(backup.Username)
	}
	for key, raw := range writes {
		if err := p.store.Put(ctx, key, raw); err != nil {
			return fmt.Errorf("write %s: %w", key, err)
		}
	}

	p.reload(ctx)
	return nil
}

// Reset clears all stored records and reloads with empty collections.
func (p *Planner) Reset(ctx context.Context) error {
	if err := p.store.Delete(ctx, keyCategories, keyTasks, keyHabits, keyUsername); err != nil {
		return err
	}
	p.username = DefaultUsername
	p.wire(nil, nil, nil)
	return nil
}
