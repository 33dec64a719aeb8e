package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"planflow/internal/model"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

// shortID trims a uuid to a display prefix; full ids are still accepted
// everywhere.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func taskLine(t model.Task, now time.Time) string {
	var sb strings.Builder

	mark := "[ ]"
	if t.IsCompleted {
		mark = green("[x]")
	}
	sb.WriteString(fmt.Sprintf("%s %s  %s", gray(shortID(t.ID)), mark, t.Title))

	if t.Category != nil {
		sb.WriteString("  " + cyan(t.Category.Name))
	}
	if t.DoDate != nil {
		day := model.DayKey(*t.DoDate)
		if !t.IsCompleted && model.StartOfDay(*t.DoDate).Before(model.StartOfDay(now)) {
			sb.WriteString("  " + yellow("do "+day))
		} else {
			sb.WriteString("  do " + day)
		}
		if t.StartTime != "" {
			sb.WriteString(" " + t.StartTime)
			if t.Duration > 0 {
				sb.WriteString(fmt.Sprintf(" (%dm)", t.Duration))
			}
		}
	}
	if t.Deadline != nil {
		day := model.DayKey(*t.Deadline)
		if !t.IsCompleted && t.Deadline.Before(now) {
			sb.WriteString("  " + red("due "+day))
		} else {
			sb.WriteString("  due " + day)
		}
	}
	if t.Repeat.Repeats() {
		sb.WriteString("  " + gray("repeats "+string(t.Repeat)))
	}
	return sb.String()
}

func habitLine(h model.Habit, now time.Time) string {
	var sb strings.Builder

	mark := "[ ]"
	if h.CompletedOn(model.DayKey(now)) {
		mark = green("[x]")
	}
	sb.WriteString(fmt.Sprintf("%s %s  %s", gray(shortID(h.ID)), mark, h.Title))

	if h.Category != nil {
		sb.WriteString("  " + cyan(h.Category.Name))
	}
	if h.DefaultTime != "" {
		sb.WriteString("  at " + h.DefaultTime)
	}
	if h.Frequency != "" {
		sb.WriteString("  " + gray(string(h.Frequency)))
	}
	if h.Streak > 0 {
		sb.WriteString("  " + yellow(fmt.Sprintf("🔥 %d", h.Streak)))
	}
	return sb.String()
}
