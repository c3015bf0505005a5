package availability

import "time"

// ===============================
// Availability Summarizer
// ===============================

// Summary is the one availability view every surface renders from.
// Search cards, shop pages and therapist pages all take their 空きあり badge
// and "next slot" label from here so they can never disagree with each other.
type Summary struct {
	HasToday  bool    `json:"has_today_availability"`
	HasFuture bool    `json:"has_future_availability"`
	NextLabel *string `json:"next_label"` // nil when fully booked
}

// Summarize reduces a slot list to its Summary relative to now.
//
//   - HasToday: at least one bookable slot falls on now's calendar day in loc
//     (past slots on the same day count; the flag describes the day, not what
//     is still reservable).
//   - HasFuture: a bookable slot starts strictly after now, today or later.
//   - NextLabel: SlotLabel of that next slot.
func Summarize(slots []Slot, now time.Time, loc *time.Location, opts Options) Summary {
	var sum Summary

	for _, s := range Bookable(slots, opts) {
		if SameCalendarDay(s.StartAt, now, loc) {
			sum.HasToday = true
			break
		}
	}

	if next := NextSlot(slots, now, opts); next != nil {
		sum.HasFuture = true
		label := SlotLabel(*next, now, loc)
		sum.NextLabel = &label
	}

	return sum
}
