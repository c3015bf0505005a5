package dto

import "github.com/yusaku0324/kakeru-sub008/internal/availability"

type TherapistSlotsDTO struct {
	TherapistID uint                `json:"therapist_id"`
	Date        string              `json:"date"`
	Slots       []availability.Slot `json:"slots"`
	NextLabel   *string             `json:"next_label"`
}
