package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planflow/internal/model"
)

func TestOverdueTasks(t *testing.T) {
	now := day(t, "2024-01-03").Add(10 * time.Hour)

	lateEvening := day(t, "2024-01-02").Add(23*time.Hour + 59*time.Minute)
	todayMidnight := day(t, "2024-01-03")

	tasks := []model.Task{
		{ID: "overdue", Title: "a", DoDate: dayPtr(t, "2024-01-01")},
		{ID: "yesterday-by-a-minute", Title: "b", DoDate: &lateEvening},
		{ID: "today", Title: "c", DoDate: &todayMidnight},
		{ID: "future", Title: "d", DoDate: dayPtr(t, "2024-01-10")},
		{ID: "done", Title: "e", DoDate: dayPtr(t, "2024-01-01"), IsCompleted: true},
		{ID: "backlog", Title: "f"},
	}

	got := OverdueTasks(tasks, now)
	require.Len(t, got, 2)
	assert.Equal(t, "overdue", got[0].ID)
	assert.Equal(t, "yesterday-by-a-minute", got[1].ID)
}

func TestOverdueTasksEmpty(t *testing.T) {
	assert.Empty(t, OverdueTasks(nil, day(t, "2024-01-03")))
}
