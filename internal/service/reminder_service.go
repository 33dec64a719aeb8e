package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"planflow/internal/model"
)

// ReminderService wraps cron-based jobs for the long-running remind mode,
// where the daily review prompt fires on a schedule instead of at session
// start.
type ReminderService struct {
	cron *cron.Cron
}

func NewReminderService(loc *time.Location) *ReminderService {
	return &ReminderService{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
	}
}

// ScheduleDaily registers a daily job at the given HH:MM time string.
func (s *ReminderService) ScheduleDaily(timeStr string, job func()) (cron.EntryID, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return 0, err
	}
	return s.cron.AddFunc(spec, job)
}

func (s *ReminderService) Start() {
	s.cron.Start()
}

func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func buildDailySpec(timeStr string) (string, error) {
	hour, minute, err := model.ParseClock(timeStr)
	if err != nil {
		return "", err
	}
	// cron format: second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}

// ReviewSummary renders a plain-text daily review of the given overdue
// tasks, oldest do date first.
func ReviewSummary(tasks []model.Task, now time.Time) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Daily review — %s\n", now.Format("2006-01-02")))

	if len(tasks) == 0 {
		builder.WriteString("Nothing overdue. All clear.\n")
		return builder.String()
	}

	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DoDate.Before(*sorted[j].DoDate)
	})

	builder.WriteString(fmt.Sprintf("%d task(s) slipped past their do date:\n", len(sorted)))
	for _, task := range sorted {
		builder.WriteString(formatOverdueTask(task, now))
	}
	builder.WriteString("Run `planflow review --recycle` to send them back to the backlog.\n")
	return builder.String()
}

func formatOverdueTask(task model.Task, now time.Time) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  - %s (planned %s", strings.TrimSpace(task.Title), task.DoDate.Format("2006-01-02")))
	if task.Category != nil && strings.TrimSpace(task.Category.Name) != "" {
		sb.WriteString(fmt.Sprintf(", %s", strings.TrimSpace(task.Category.Name)))
	}
	sb.WriteString(")")
	if task.Deadline != nil && task.Deadline.Before(now) {
		sb.WriteString(" — deadline passed")
	}
	sb.WriteByte('\n')
	return sb.String()
}
