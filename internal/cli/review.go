package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"planflow/internal/config"
	"planflow/internal/service"
)

func newReviewCmd(planner *service.Planner) *cobra.Command {
	var recycle bool
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Show tasks that slipped past their do date",
		Long: `Show incomplete tasks whose do date is before today.

With --recycle, the whole selection is unscheduled and returned to the
backlog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := planner.Now()
			overdue := planner.DailyReview()
			if len(overdue) == 0 {
				fmt.Println(green("Nothing overdue. All clear."))
				return nil
			}

			for _, t := range overdue {
				fmt.Println(taskLine(t, now))
			}

			if recycle {
				ids := make([]string, len(overdue))
				for i, t := range overdue {
					ids[i] = t.ID
				}
				planner.RecycleTasks(ids)
				fmt.Printf("%d task(s) recycled to the backlog\n", len(ids))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&recycle, "recycle", false, "unschedule the overdue tasks")
	return cmd
}

func newRemindCmd(planner *service.Planner, cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run in the foreground and print the daily review on schedule",
		Long: fmt.Sprintf(`Run in the foreground and print the daily review every day at the
configured time (PLANFLOW_REVIEW_TIME, currently %s).`, cfg.ReviewTime),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reminder := service.NewReminderService(time.Local)
			_, err := reminder.ScheduleDaily(cfg.ReviewTime, func() {
				planner.Refresh(ctx)
				now := planner.Now()
				overdue := service.OverdueTasks(planner.Tasks.All(), now)
				fmt.Print(service.ReviewSummary(overdue, now))
			})
			if err != nil {
				return err
			}

			reminder.Start()
			defer reminder.Stop()

			log.Printf("reminder scheduled daily at %s", cfg.ReviewTime)
			<-ctx.Done()
			log.Println("shutdown complete")
			return nil
		},
	}
}
