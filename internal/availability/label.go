package availability

import (
	"fmt"
	"math"
	"time"
)

// ===============================
// Day-Relative Labeling
// ===============================

// SlotLabel renders a slot's start as "本日 11:30〜", "明日 00:10〜" or
// "3月2日 11:30〜".
//
// The prefix follows the calendar-day difference in loc, not elapsed time:
// a slot at 00:10 seen at 23:50 the night before is 明日 even though it is
// twenty minutes away. now must be passed explicitly; this function never
// reads the system clock.
func SlotLabel(slot Slot, now time.Time, loc *time.Location) string {
	start := slot.StartAt.In(loc)

	var prefix string
	switch calendarDayDiff(now.In(loc), start) {
	case 0:
		prefix = "本日"
	case 1:
		prefix = "明日"
	default:
		prefix = start.Format("1月2日")
	}

	return fmt.Sprintf("%s %02d:%02d〜", prefix, start.Hour(), start.Minute())
}

// calendarDayDiff counts midnight boundaries between from and to.
// Both must already be in the business location.
func calendarDayDiff(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	return int(math.Round(toDay.Sub(fromDay).Hours() / 24))
}

// SameCalendarDay reports whether a and b fall on the same date in loc.
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	return calendarDayDiff(a.In(loc), b.In(loc)) == 0
}
