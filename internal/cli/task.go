package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planflow/internal/model"
	"planflow/internal/service"
)

func newTaskCmd(planner *service.Planner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(planner),
		newTaskListCmd(planner),
		newTaskDoneCmd(planner),
		newTaskEditCmd(planner),
		newTaskPlanCmd(planner),
		newTaskUnplanCmd(planner),
		newTaskRmCmd(planner),
		newTaskClearCompletedCmd(planner),
	)
	return cmd
}

// taskFlags are the shared add/edit flag values.
type taskFlags struct {
	category   string
	noCategory bool
	date       string
	noDate     bool
	deadline   string
	noDeadline bool
	repeat     string
	at         string
	noTime     bool
	duration   int
}

func (f *taskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category id, id prefix, or exact name")
	cmd.Flags().BoolVar(&f.noCategory, "no-category", false, "remove the category")
	cmd.Flags().StringVarP(&f.date, "on", "o", "", "do date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().BoolVar(&f.noDate, "no-date", false, "move to the backlog")
	cmd.Flags().StringVarP(&f.deadline, "deadline", "d", "", "deadline (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().BoolVar(&f.noDeadline, "no-deadline", false, "remove the deadline")
	cmd.Flags().StringVarP(&f.repeat, "repeat", "r", "", "repeat frequency: none, daily, weekly, monthly")
	cmd.Flags().StringVarP(&f.at, "at", "t", "", "start time (HH:MM)")
	cmd.Flags().BoolVar(&f.noTime, "no-time", false, "remove the start time")
	cmd.Flags().IntVar(&f.duration, "duration", 0, "duration in minutes")
}

func newTaskAddCmd(planner *service.Planner) *cobra.Command {
	var flags taskFlags
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := planner.Now()
			input := service.TaskInput{Title: args[0], Repeat: model.RepeatNone}

			if flags.category != "" {
				cat, err := resolveCategory(planner, flags.category)
				if err != nil {
					return err
				}
				input.Category = &cat
			}
			if flags.date != "" {
				d, err := parseDate(flags.date, now)
				if err != nil {
					return err
				}
				input.DoDate = &d
			}
			if flags.deadline != "" {
				d, err := parseDate(flags.deadline, now)
				if err != nil {
					return err
				}
				input.Deadline = &d
			}
			if flags.repeat != "" {
				repeat := model.RepeatFrequency(flags.repeat)
				if !repeat.Valid() {
					return fmt.Errorf("invalid repeat %q", flags.repeat)
				}
				if repeat.Repeats() && input.DoDate == nil {
					return fmt.Errorf("a repeating task needs a do date")
				}
				input.Repeat = repeat
			}
			if flags.at != "" {
				if _, _, err := model.ParseClock(flags.at); err != nil {
					return err
				}
				input.StartTime = flags.at
				input.Duration = 30
			}
			if flags.duration > 0 {
				input.Duration = flags.duration
			}

			task, err := planner.Tasks.Create(input)
			if err != nil {
				return err
			}
			fmt.Println(taskLine(task, now))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newTaskListCmd(planner *service.Planner) *cobra.Command {
	var (
		backlog bool
		onDate  string
		all     bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks (open tasks by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := planner.Now()

			var tasks []model.Task
			switch {
			case backlog:
				tasks = planner.Tasks.Backlog()
			case onDate != "":
				day, err := parseDate(onDate, now)
				if err != nil {
					return err
				}
				tasks = planner.Tasks.OnDay(day)
			default:
				tasks = planner.Tasks.All()
			}

			shown := 0
			for _, t := range tasks {
				if t.IsCompleted && !all {
					continue
				}
				fmt.Println(taskLine(t, now))
				shown++
			}
			if shown == 0 {
				fmt.Println(gray("no tasks"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&backlog, "backlog", "b", false, "only unscheduled tasks")
	cmd.Flags().StringVarP(&onDate, "on", "o", "", "only tasks scheduled on this date")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include completed tasks")
	return cmd
}

func newTaskDoneCmd(planner *service.Planner) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Long: `Toggle a task's completion.

Completing a repeating task spawns its next occurrence. Completing a task
that was planned from a habit also marks that habit done for the day.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(planner, args[0])
			if err != nil {
				return err
			}
			planner.Tasks.ToggleCompletion(id)
			task, _ := planner.Tasks.Get(id)
			fmt.Println(taskLine(task, planner.Now()))
			return nil
		},
	}
}

func newTaskEditCmd(planner *service.Planner) *cobra.Command {
	var (
		flags taskFlags
		title string
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(planner, args[0])
			if err != nil {
				return err
			}
			now := planner.Now()

			var patch service.TaskPatch
			if title != "" {
				patch.Title = &title
			}
			if flags.category != "" {
				cat, err := resolveCategory(planner, flags.category)
				if err != nil {
					return err
				}
				patch.Category = &cat
			}
			patch.ClearCategory = flags.noCategory
			if flags.date != "" {
				d, err := parseDate(flags.date, now)
				if err != nil {
					return err
				}
				patch.DoDate = &d
			}
			patch.ClearDoDate = flags.noDate
			if flags.deadline != "" {
				d, err := parseDate(flags.deadline, now)
				if err != nil {
					return err
				}
				patch.Deadline = &d
			}
			patch.ClearDeadline = flags.noDeadline
			if flags.repeat != "" {
				repeat := model.RepeatFrequency(flags.repeat)
				if !repeat.Valid() {
					return fmt.Errorf("invalid repeat %q", flags.repeat)
				}
				patch.Repeat = &repeat
			}
			if flags.at != "" {
				if _, _, err := model.ParseClock(flags.at); err != nil {
					return err
				}
				patch.StartTime = &flags.at
			}
			patch.ClearStartTime = flags.noTime
			if flags.duration > 0 {
				patch.Duration = &flags.duration
			}

			planner.Tasks.Update(id, patch)
			task, _ := planner.Tasks.Get(id)
			fmt.Println(taskLine(task, now))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	flags.register(cmd)
	return cmd
}

func newTaskPlanCmd(planner *service.Planner) *cobra.Command {
	var (
		onDate string
		at     string
		noTime bool
	)
	cmd := &cobra.Command{
		Use:   "plan <id>",
		Short: "Schedule a task (today by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(planner, args[0])
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

			var startTime *string
			switch {
			case noTime:
				empty := ""
				startTime = &empty
			case at != "":
				if _, _, err := model.ParseClock(at); err != nil {
					return err
				}
				startTime = &at
			}

			planner.Tasks.Schedule(id, day, startTime)
			task, _ := planner.Tasks.Get(id)
			fmt.Println(taskLine(task, now))
			return nil
		},
	}
	cmd.Flags().StringVarP(&onDate, "on", "o", "", "do date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().StringVarP(&at, "at", "t", "", "start time (HH:MM)")
	cmd.Flags().BoolVar(&noTime, "no-time", false, "clear the start time")
	return cmd
}

func newTaskUnplanCmd(planner *service.Planner) *cobra.Command {
	return &cobra.Command{
		Use:   "unplan <id>...",
		Short: "Send tasks back to the backlog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]string, 0, len(args))
			for _, arg := range args {
				id, err := resolveTaskID(planner, arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			planner.Tasks.BulkUnschedule(ids)
			fmt.Printf("%d task(s) back in the backlog\n", len(ids))
			return nil
		},
	}
}

func newTaskRmCmd(planner *service.Planner) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(planner, args[0])
			if err != nil {
				return err
			}
			planner.Tasks.Delete(id)
			fmt.Println("deleted", shortID(id))
			return nil
		},
	}
}

func newTaskClearCompletedCmd(planner *service.Planner) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Delete every completed task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed := planner.Tasks.ClearCompleted()
			fmt.Printf("removed %d completed task(s)\n", removed)
			return nil
		},
	}
}
