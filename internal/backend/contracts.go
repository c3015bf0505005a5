package backend

import (
	"regexp"
	"time"

	"github.com/yusaku0324/kakeru-sub008/internal/availability"
)

// Wire shapes of the reservation backend. The backend is the source of truth
// for shifts, reservations and write-time conflict checks; this service only
// reads and reshapes.

// ===============================
// Therapist Slots
// ===============================

// WireSlot is a slot as the raw slots endpoint returns it. That endpoint
// only ever returns reservable intervals, so status is implied open.
type WireSlot struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

type TherapistSlotsResponse struct {
	TherapistID string     `json:"therapist_id"`
	Date        string     `json:"date"`
	Slots       []WireSlot `json:"slots"`
}

// AvailabilitySlots converts the wire shape into the availability model.
func (r TherapistSlotsResponse) AvailabilitySlots() []availability.Slot {
	out := make([]availability.Slot, 0, len(r.Slots))
	for _, s := range r.Slots {
		out = append(out, availability.Slot{
			StartAt: s.StartAt,
			EndAt:   s.EndAt,
			Status:  availability.StatusOpen,
		})
	}
	return out
}

// ===============================
// Day Summary (7-day window)
// ===============================

type WireStatusSlot struct {
	StartAt time.Time           `json:"start_at"`
	EndAt   time.Time           `json:"end_at"`
	Status  availability.Status `json:"status"`
}

type WireDay struct {
	Date    string           `json:"date"`
	IsToday bool             `json:"is_today"`
	Slots   []WireStatusSlot `json:"slots"`
}

type DaySummaryResponse struct {
	Days []WireDay `json:"days"`
}

// DaySummaryWindow is the number of dates the day-summary contract covers.
const DaySummaryWindow = 7

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks the day-summary contract: exactly seven dates, each
// formatted YYYY-MM-DD, contiguous in order.
func (r DaySummaryResponse) Validate() error {
	if len(r.Days) != DaySummaryWindow {
		return ErrContract("day_summary_window_size")
	}

	var prev time.Time
	for i, d := range r.Days {
		if !dateRe.MatchString(d.Date) {
			return ErrContract("day_summary_date_format")
		}
		day, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			return ErrContract("day_summary_date_format")
		}
		if i > 0 && !day.Equal(prev.AddDate(0, 0, 1)) {
			return ErrContract("day_summary_dates_not_contiguous")
		}
		prev = day
	}

	return nil
}

// Days converts the wire shape into the availability model.
func (r DaySummaryResponse) AvailabilityDays() []availability.Day {
	out := make([]availability.Day, 0, len(r.Days))
	for _, d := range r.Days {
		slots := make([]availability.Slot, 0, len(d.Slots))
		for _, s := range d.Slots {
			slots = append(slots, availability.Slot{
				StartAt: s.StartAt,
				EndAt:   s.EndAt,
				Status:  s.Status,
			})
		}
		out = append(out, availability.Day{
			Date:    d.Date,
			IsToday: d.IsToday,
			Slots:   slots,
		})
	}
	return out
}

// ===============================
// Reservations
// ===============================

// ReservationItem is one reservation row of the dashboard day-mode contract.
type ReservationItem struct {
	ID            string    `json:"id"`
	TherapistID   string    `json:"therapist_id"`
	TherapistName string    `json:"therapist_name"`
	GuestName     string    `json:"guest_name"`
	CourseName    string    `json:"course_name"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	Status        string    `json:"status"`
}

type ReservationsResponse struct {
	Reservations []ReservationItem `json:"reservations"`
}

type SubmitReservationRequest struct {
	ProfileID   string `json:"profile_id"`
	TherapistID string `json:"therapist_id"`
	StartAt     string `json:"start_at"` // ISO 8601
	CourseID    string `json:"course_id"`
	GuestName   string `json:"guest_name"`
	GuestPhone  string `json:"guest_phone"`
	GuestEmail  string `json:"guest_email"`
	Note        string `json:"note"`
}

type SubmitReservationResponse struct {
	ID      string    `json:"id"`
	Status  string    `json:"status"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}
