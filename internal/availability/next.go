package availability

import "time"

// ===============================
// Next-Available-Slot Resolver
// ===============================

// NextSlot returns the earliest bookable slot starting strictly after now,
// or nil when no such slot exists. A nil result is the normal "fully booked"
// state, not an error.
//
// Slots sharing the same StartAt are not tie-broken; any one of them may be
// returned.
func NextSlot(slots []Slot, now time.Time, opts Options) *Slot {
	var next *Slot

	for i := range slots {
		s := slots[i]
		if !s.Status.Bookable(opts.IncludeTentative) {
			continue
		}
		if !s.StartAt.After(now) {
			continue
		}
		if next == nil || s.StartAt.Before(next.StartAt) {
			candidate := s
			next = &candidate
		}
	}

	return next
}
