package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planflow/internal/model"
)

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("09:30")
	require.NoError(t, err)
	assert.Equal(t, "0 30 9 * * *", spec)

	spec, err = buildDailySpec("00:00")
	require.NoError(t, err)
	assert.Equal(t, "0 0 0 * * *", spec)

	for _, bad := range []string{"", "9", "25:00", "09:61", "ab:cd"} {
		_, err := buildDailySpec(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestReviewSummary(t *testing.T) {
	now := day(t, "2024-01-03")

	empty := ReviewSummary(nil, now)
	assert.Contains(t, empty, "Nothing overdue")

	tasks := []model.Task{
		{Title: "newer", DoDate: dayPtr(t, "2024-01-02")},
		{Title: "older", DoDate: dayPtr(t, "2024-01-01"), Deadline: dayPtr(t, "2024-01-02"),
			Category: &model.Category{ID: "c1", Name: "Study"}},
	}
	out := ReviewSummary(tasks, now)

	assert.Contains(t, out, "2 task(s)")
	assert.Contains(t, out, "older")
	assert.Contains(t, out, "Study")
	assert.Contains(t, out, "deadline passed")
	// Oldest do date first.
	assert.Less(t, strings.Index(out, "older"), strings.Index(out, "newer"))
}
