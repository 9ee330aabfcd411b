package schedule_test

import (
	"testing"
	"time"

	"github.com/estateline/estateline-api/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, 2026-09-02
var testNow = time.Date(2026, time.September, 2, 10, 30, 0, 0, time.UTC)

func TestWindow_FourteenConsecutiveDays(t *testing.T) {
	clock := schedule.FixedClock(testNow)

	for _, offset := range []int{0, 7, 14, 70} {
		entries := schedule.Window(clock, offset)
		require.Len(t, entries, schedule.WindowSize)

		expected := testNow.AddDate(0, 0, 1+offset)
		for i, e := range entries {
			d := expected.AddDate(0, 0, i)
			assert.Equal(t, d.Format("2006-01-02"), e.FullDate, "offset %d entry %d", offset, i)
			assert.Equal(t, d.Format("Mon"), e.Day)
			assert.Equal(t, d.Format("2"), e.Date)
		}
	}
}

func TestWindow_TodayFlagOnlyAtZeroOffset(t *testing.T) {
	clock := schedule.FixedClock(testNow)

	entries := schedule.Window(clock, 0)
	todayCount := 0
	for i, e := range entries {
		if e.IsToday {
			todayCount++
			assert.Equal(t, 0, i)
		}
	}
	assert.Equal(t, 1, todayCount)

	for _, offset := range []int{7, 14, 21} {
		for _, e := range schedule.Window(clock, offset) {
			assert.False(t, e.IsToday, "offset %d", offset)
		}
	}
}

func TestWindow_WeekendFlag(t *testing.T) {
	clock := schedule.FixedClock(testNow)

	for _, e := range schedule.Window(clock, 0) {
		d, err := time.Parse("2006-01-02", e.FullDate)
		require.NoError(t, err)
		wantWeekend := d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
		assert.Equal(t, wantWeekend, e.IsWeekend, "date %s", e.FullDate)
	}
}

func TestWindow_NegativeOffsetClamped(t *testing.T) {
	clock := schedule.FixedClock(testNow)
	assert.Equal(t, schedule.Window(clock, 0), schedule.Window(clock, -7))
}

func TestPrevOffset_NoOpAtZero(t *testing.T) {
	assert.Equal(t, 0, schedule.PrevOffset(0))

	clock := schedule.FixedClock(testNow)
	assert.Equal(t, schedule.Window(clock, 0), schedule.Window(clock, schedule.PrevOffset(0)))
}

func TestOffsetNavigation(t *testing.T) {
	assert.Equal(t, 7, schedule.NextOffset(0))
	assert.Equal(t, 14, schedule.NextOffset(7))
	assert.Equal(t, 7, schedule.PrevOffset(14))
	assert.Equal(t, 0, schedule.PrevOffset(7))
	// no upper bound on next
	assert.Equal(t, 707, schedule.NextOffset(700))
}

func TestTourTimeSlots(t *testing.T) {
	require.Len(t, schedule.TourTimeSlots, 11)
	assert.Equal(t, "9:00 AM", schedule.TourTimeSlots[0])
	assert.Equal(t, "7:00 PM", schedule.TourTimeSlots[10])

	assert.True(t, schedule.IsValidTimeSlot("12:00 PM"))
	assert.False(t, schedule.IsValidTimeSlot("8:00 AM"))
	assert.False(t, schedule.IsValidTimeSlot(""))
}
