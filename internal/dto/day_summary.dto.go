package dto

import "github.com/yusaku0324/kakeru-sub008/internal/availability"

// DayDTO is one date of the 7-day availability window.
// IsToday is recomputed against the business clock, not copied from the
// backend; HasAvailable is derived from the slots actually present.
type DayDTO struct {
	Date         string              `json:"date"`
	IsToday      bool                `json:"is_today"`
	HasAvailable bool                `json:"has_available"`
	Slots        []availability.Slot `json:"slots"`
}

type DaySummaryDTO struct {
	Days []DayDTO `json:"days"`
}
