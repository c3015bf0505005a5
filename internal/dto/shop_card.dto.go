package dto

// ShopAvailabilityDTO is the badge payload rendered on search cards, shop
// pages and therapist pages. All three read the same struct so they cannot
// disagree about whether a shop is bookable today.
type ShopAvailabilityDTO struct {
	HasToday  bool    `json:"has_today_availability"`
	HasFuture bool    `json:"has_future_availability"`
	NextLabel *string `json:"next_label"`
}

type ShopCardDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Area  string `json:"area"`
	Genre string `json:"genre"`

	// nil when the reservation backend could not be reached; the card is
	// still rendered, just without a badge.
	Availability *ShopAvailabilityDTO `json:"availability"`
}
