// Package schedule generates the rolling tour-booking calendar window and
// the fixed set of bookable time slots.
package schedule

import "time"

// WindowSize is the number of consecutive days in one calendar page.
const WindowSize = 14

// PageStep is how far the prev/next navigation moves the window.
const PageStep = 7

// Clock abstracts wall-clock time so the window generator stays a pure
// function of (now, offset) and tests can pin a date.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the real current time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// fixedClock is used in tests.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// FixedClock returns a Clock pinned to t.
func FixedClock(t time.Time) Clock { return fixedClock{t: t} }

// DateEntry is a single selectable day in the tour calendar.
type DateEntry struct {
	Day       string `json:"day"`       // short weekday name, e.g. "Mon"
	Date      string `json:"date"`      // day of month, e.g. "14"
	FullDate  string `json:"full_date"` // ISO date, e.g. "2026-09-14"
	IsToday   bool   `json:"is_today"`
	IsWeekend bool   `json:"is_weekend"`
}

// TourTimeSlots are the eleven bookable times, hourly from 9 AM to 7 PM.
var TourTimeSlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
	"6:00 PM",
	"7:00 PM",
}

// IsValidTimeSlot reports whether slot is one of the bookable times.
func IsValidTimeSlot(slot string) bool {
	for _, s := range TourTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Window generates WindowSize consecutive calendar entries starting at
// (now + 1 day + offset days). Entry 0 is flagged as today's page marker
// only when offset is zero. Negative offsets are clamped to zero.
func Window(clock Clock, offset int) []DateEntry {
	if offset < 0 {
		offset = 0
	}

	now := clock.Now()
	start := now.AddDate(0, 0, 1+offset)

	entries := make([]DateEntry, 0, WindowSize)
	for i := 0; i < WindowSize; i++ {
		d := start.AddDate(0, 0, i)
		weekday := d.Weekday()
		entries = append(entries, DateEntry{
			Day:       d.Format("Mon"),
			Date:      d.Format("2"),
			FullDate:  d.Format("2006-01-02"),
			IsToday:   offset == 0 && i == 0,
			IsWeekend: weekday == time.Saturday || weekday == time.Sunday,
		})
	}

	return entries
}

// PrevOffset pages the window back one step. Paging before the first
// window is refused: the result never goes below zero.
func PrevOffset(offset int) int {
	if offset <= PageStep {
		return 0
	}
	return offset - PageStep
}

// NextOffset pages the window forward one step. There is no upper bound.
func NextOffset(offset int) int {
	if offset < 0 {
		offset = 0
	}
	return offset + PageStep
}
