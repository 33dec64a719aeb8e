// Package cli is the terminal front end over the planner engine. It only
// parses arguments, resolves ids, and renders state; every state change goes
// through the engine's operations.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"planflow/internal/config"
	"planflow/internal/model"
	"planflow/internal/service"
)

// New builds the planflow command tree over a loaded planner.
func New(planner *service.Planner, cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "planflow",
		Short: "Personal task and habit planner",
		Long: `planflow is a local task and habit planner.

Tasks can be scheduled on a do date, carry a separate deadline, and repeat
daily, weekly, or monthly. Habits are tracked by completion days and streaks.
All state lives in a local SQLite file.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newTaskCmd(planner),
		newHabitCmd(planner),
		newCategoryCmd(planner),
		newReviewCmd(planner),
		newRemindCmd(planner, cfg),
		newBackupCmd(planner),
		newResetCmd(planner),
		newNameCmd(planner),
	)
	return root
}

// parseDate accepts YYYY-MM-DD plus the "today" and "tomorrow" shorthands,
// producing a local midnight timestamp.
func parseDate(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return model.StartOfDay(now), nil
	case "tomorrow":
		return model.StartOfDay(now).AddDate(0, 0, 1), nil
	}
	t, err := time.ParseInLocation(model.DayKeyLayout, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// resolveTaskID matches an exact task id or a unique id prefix.
func resolveTaskID(planner *service.Planner, arg string) (string, error) {
	if _, ok := planner.Tasks.Get(arg); ok {
		return arg, nil
	}
	var matches []string
	for _, t := range planner.Tasks.All() {
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t.ID)
		}
	}
	return pickMatch("task", arg, matches)
}

// resolveHabitID matches an exact habit id or a unique id prefix.
func resolveHabitID(planner *service.Planner, arg string) (string, error) {
	if _, ok := planner.Habits.Get(arg); ok {
		return arg, nil
	}
	var matches []string
	for _, h := range planner.Habits.All() {
		if strings.HasPrefix(h.ID, arg) {
			matches = append(matches, h.ID)
		}
	}
	return pickMatch("habit", arg, matches)
}

// resolveCategory matches a category by exact id, unique id prefix, or
// exact name.
func resolveCategory(planner *service.Planner, arg string) (model.Category, error) {
	if cat, ok := planner.Categories.Get(arg); ok {
		return cat, nil
	}
	var matches []model.Category
	for _, cat := range planner.Categories.List() {
		if strings.HasPrefix(cat.ID, arg) || cat.Name == arg {
			matches = append(matches, cat)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Category{}, fmt.Errorf("no category matches %q", arg)
	default:
		return model.Category{}, fmt.Errorf("category %q is ambiguous (%d matches)", arg, len(matches))
	}
}

func pickMatch(kind, arg string, matches []string) (string, error) {
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no %s matches %q", kind, arg)
	default:
		return "", fmt.Errorf("%s id %q is ambiguous (%d matches)", kind, arg, len(matches))
	}
}
