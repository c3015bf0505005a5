package availability

import (
	"sort"
	"time"
)

// ===============================
// Slot Model & Status
// ===============================

type Status string

const (
	StatusOpen      Status = "open"
	StatusTentative Status = "tentative"
	StatusBlocked   Status = "blocked"
)

// Bookable reports whether a slot in this status can be reserved.
// Whether tentative counts depends on the consuming contract: the raw slot
// endpoint treats everything it returns as bookable, the day-summary contract
// lets the caller decide.
func (s Status) Bookable(includeTentative bool) bool {
	if s == StatusOpen {
		return true
	}
	return includeTentative && s == StatusTentative
}

// Slot is an immutable snapshot of one reservable interval, produced by the
// reservation backend. EndAt is always after StartAt.
type Slot struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Status  Status    `json:"status"`
}

// Options controls which statuses count as bookable.
type Options struct {
	IncludeTentative bool
}

// SortedByStart returns a copy ordered by StartAt ascending.
// The input slice is never mutated.
func SortedByStart(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartAt.Before(out[j].StartAt)
	})
	return out
}

// Bookable filters to slots whose status counts as bookable under opts.
func Bookable(slots []Slot, opts Options) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Status.Bookable(opts.IncludeTentative) {
			out = append(out, s)
		}
	}
	return out
}

// ===============================
// Day-Summary Model
// ===============================

// Day is one calendar date of the day-summary contract.
type Day struct {
	Date    string `json:"date"` // YYYY-MM-DD in the business timezone
	IsToday bool   `json:"is_today"`
	Slots   []Slot `json:"slots"`
}

// SummaryItem is the per-date availability flag derived from a Day.
type SummaryItem struct {
	Date         string `json:"date"`
	HasAvailable bool   `json:"has_available"`
}

// DayItems reduces each day to its has-availability flag.
func DayItems(days []Day, opts Options) []SummaryItem {
	out := make([]SummaryItem, 0, len(days))
	for _, d := range days {
		out = append(out, SummaryItem{
			Date:         d.Date,
			HasAvailable: len(Bookable(d.Slots, opts)) > 0,
		})
	}
	return out
}
