package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planflow/internal/model"
	"planflow/internal/service"
)

func newHabitCmd(planner *service.Planner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}
	cmd.AddCommand(
		newHabitAddCmd(planner),
		newHabitListCmd(planner),
		newHabitDoneCmd(planner),
		newHabitEditCmd(planner),
		newHabitPlanCmd(planner),
		newHabitRmCmd(planner),
	)
	return cmd
}

func newHabitAddCmd(planner *service.Planner) *cobra.Command {
	var (
		category  string
		frequency string
		at        string
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := service.HabitInput{Title: args[0]}

			if category != "" {
				cat, err := resolveCategory(planner, category)
				if err != nil {
					return err
				}
				input.Category = &cat
			}
			if frequency != "" {
				freq := model.HabitFrequency(frequency)
				if !freq.Valid() {
					return fmt.Errorf("invalid frequency %q", frequency)
				}
				input.Frequency = freq
			}
			if at != "" {
				if _, _, err := model.ParseClock(at); err != nil {
					return err
				}
				input.DefaultTime = at
			}

			habit, err := planner.Habits.Create(input)
			if err != nil {
				return err
			}
			fmt.Println(habitLine(habit, planner.Now()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category id, id prefix, or exact name")
	cmd.Flags().StringVarP(&frequency, "frequency", "f", "", "daily or weekly")
	cmd.Flags().StringVarP(&at, "at", "t", "", "default time (HH:MM)")
	return cmd
}

func newHabitListCmd(planner *service.Planner) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits with streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			habits := planner.Habits.All()
			if len(habits) == 0 {
				fmt.Println(gray("no habits"))
				return nil
			}
			now := planner.Now()
			for _, h := range habits {
				fmt.Println(habitLine(h, now))
			}
			return nil
		},
	}
}

func newHabitDoneCmd(planner *service.Planner) *cobra.Command {
	var onDate string
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a habit's completion for a day (today by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveHabitID(planner, args[0])
			if err != nil {
				return err
			}
			now := planner.Now()

			day := now
			if onDate != "" {
				day, err = parseDate(onDate, now)
				if err != nil {
					return err
				}
			}

			planner.Habits.ToggleCompletion(id, model.DayKey(day))
			habit, _ := planner.Habits.Get(id)
			fmt.Println(habitLine(habit, now))
			return nil
		},
	}
	cmd.Flags().StringVarP(&onDate, "on", "o", "", "day to toggle (YYYY-MM-DD, today, tomorrow)")
	return cmd
}

func newHabitEditCmd(planner *service.Planner) *cobra.Command {
	var (
		title      string
		category   string
		noCategory bool
		frequency  string
		at         string
		noTime     bool
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a habit's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveHabitID(planner, args[0])
			if err != nil {
				return err
			}

			var patch service.HabitPatch
			if title != "" {
				patch.Title = &title
			}
			if category != "" {
				cat, err := resolveCategory(planner, category)
				if err != nil {
					return err
				}
				patch.Category = &cat
			}
			patch.ClearCategory = noCategory
			if frequency != "" {
				freq := model.HabitFrequency(frequency)
				if !freq.Valid() {
					return fmt.Errorf("invalid frequency %q", frequency)
				}
				patch.Frequency = &freq
			}
			if at != "" {
				if _, _, err := model.ParseClock(at); err != nil {
					return err
				}
				patch.DefaultTime = &at
			}
			patch.ClearDefaultTime = noTime

			planner.Habits.Update(id, patch)
			habit, _ := planner.Habits.Get(id)
			fmt.Println(habitLine(habit, planner.Now()))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category id, id prefix, or exact name")
	cmd.Flags().BoolVar(&noCategory, "no-category", false, "remove the category")
	cmd.Flags().StringVarP(&frequency, "frequency", "f", "", "daily or weekly")
	cmd.Flags().StringVarP(&at, "at", "t", "", "default time (HH:MM)")
	cmd.Flags().BoolVar(&noTime, "no-time", false, "remove the default time")
	return cmd
}

func newHabitPlanCmd(planner *service.Planner) *cobra.Command {
	var (
		onDate string
		at     string
	)
	cmd := &cobra.Command{
		Use:   "plan <id>",
		Short: "Materialize a habit into a dated task instance",
		Long: `Materialize a habit into a concrete task on one date/time.

The task copies the habit's title and category, links back to the habit, and
is independently editable. Completing it marks the habit done for that day.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveHabitID(planner, args[0])
			if err != nil {
				return err
			}
			now := planner.Now()

			day := model.StartOfDay(now)
			if onDate != "" {
				day, err = parseDate(onDate, now)
				if err != nil {
					return err
				}
			}
			if at != "" {
				if _, _, err := model.ParseClock(at); err != nil {
					return err
				}
			}

			task, ok := planner.MaterializeHabit(id, day, at)
			if !ok {
				return fmt.Errorf("habit %q not found", args[0])
			}
			fmt.Println(taskLine(task, now))
			return nil
		},
	}
	cmd.Flags().StringVarP(&onDate, "on", "o", "", "do date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().StringVarP(&at, "at", "t", "", "start time (HH:MM)")
	return cmd
}

func newHabitRmCmd(planner *service.Planner) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveHabitID(planner, args[0])
			if err != nil {
				return err
			}
			planner.Habits.Delete(id)
			fmt.Println("deleted", shortID(id))
			return nil
		},
	}
}
