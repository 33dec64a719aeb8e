package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"planflow/internal/model"
)

// CategoryDependent receives replacement category snapshots after a category
// edit. Task and habit stores register themselves so their embedded copies
// stay in sync (the copies are snapshots, not references).
type CategoryDependent interface {
	ReplaceCategory(cat model.Category)
}

// CategoryStore holds the category map and propagates edits to dependents.
type CategoryStore struct {
	categories map[string]model.Category
	dependents []CategoryDependent
	onChange   func()
}

// NewCategoryStore builds a store over an initial id→category map (may be
// nil). onChange runs after every mutation; the planner uses it to persist.
func NewCategoryStore(initial map[string]model.Category, onChange func()) *CategoryStore {
	if initial == nil {
		initial = make(map[string]model.Category)
	}
	if onChange == nil {
		onChange = func() {}
	}
	return &CategoryStore{categories: initial, onChange: onChange}
}

// AddDependent registers a store holding category snapshots.
func (s *CategoryStore) AddDependent(dep CategoryDependent) {
	s.dependents = append(s.dependents, dep)
}

// Add inserts a new category under a fresh id.
func (s *CategoryStore) Add(name, colorBg, colorText string) (model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return model.Category{}, errors.New("name is required")
	}
	cat := model.Category{
		ID:        uuid.NewString(),
		Name:      name,
		ColorBg:   colorBg,
		ColorText: colorText,
	}
	s.categories[cat.ID] = cat
	s.onChange()
	return cat, nil
}

// Edit replaces the record at id and pushes the new snapshot into every
// dependent task and habit. Unknown ids are ignored.
func (s *CategoryStore) Edit(id, name, colorBg, colorText string) {
	if _, ok := s.categories[id]; !ok {
		return
	}
	if strings.TrimSpace(name) == "" {
		return
	}
	cat := model.Category{ID: id, Name: name, ColorBg: colorBg, ColorText: colorText}
	s.categories[id] = cat
	for _, dep := range s.dependents {
		dep.ReplaceCategory(cat)
	}
	s.onChange()
}

// Delete removes the record. Snapshots held by tasks and habits are left in
// place; they become orphaned references to an absent id. Unknown ids are
// ignored.
func (s *CategoryStore) Delete(id string) {
	if _, ok := s.categories[id]; !ok {
		return
	}
	delete(s.categories, id)
	s.onChange()
}

// Get looks up a category by id.
func (s *CategoryStore) Get(id string) (model.Category, bool) {
	cat, ok := s.categories[id]
	return cat, ok
}

// List returns all categories ordered by name.
func (s *CategoryStore) List() []model.Category {
	out := make([]model.Category, 0, len(s.categories))
	for _, cat := range s.categories {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// All returns a copy of the id→category map for serialization.
func (s *CategoryStore) All() map[string]model.Category {
	out := make(map[string]model.Category, len(s.categories))
	for id, cat := range s.categories {
		out[id] = cat
	}
	return out
}
