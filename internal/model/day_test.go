package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey(t *testing.T) {
	d := time.Date(2024, time.January, 3, 23, 59, 1, 0, time.Local)
	assert.Equal(t, "2024-01-03", DayKey(d))
}

func TestStartOfDay(t *testing.T) {
	d := time.Date(2024, time.January, 3, 15, 4, 5, 6, time.Local)
	got := StartOfDay(d)
	assert.Equal(t, time.Date(2024, time.January, 3, 0, 0, 0, 0, time.Local), got)
	assert.Equal(t, d.Location(), got.Location())
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.Local)
	b := time.Date(2024, time.January, 3, 23, 59, 59, 0, time.Local)
	c := time.Date(2024, time.January, 4, 0, 0, 0, 0, time.Local)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("07:05")
	require.NoError(t, err)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 5, minute)

	hour, minute, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23, hour)
	assert.Equal(t, 59, minute)

	for _, bad := range []string{"", "7", "24:00", "12:60", "-1:00", "aa:bb", "12:34:56"} {
		_, _, err := ParseClock(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestCompletedOn(t *testing.T) {
	h := Habit{CompletedDates: []string{"2024-01-01", "2024-01-03"}}
	assert.True(t, h.CompletedOn("2024-01-01"))
	assert.False(t, h.CompletedOn("2024-01-02"))
}

func TestRepeatFrequency(t *testing.T) {
	assert.True(t, RepeatFrequency("").Valid())
	assert.True(t, RepeatNone.Valid())
	assert.True(t, RepeatMonthly.Valid())
	assert.False(t, RepeatFrequency("yearly").Valid())

	assert.False(t, RepeatNone.Repeats())
	assert.False(t, RepeatFrequency("").Repeats())
	assert.True(t, RepeatDaily.Repeats())
}
