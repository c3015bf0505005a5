package dto

import (
	"time"

	"github.com/yusaku0324/kakeru-sub008/internal/backend"
)

type SubmitReservationResultDTO struct {
	GuestToken    string    `json:"guest_token"`
	ReservationID string    `json:"reservation_id"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

type DashboardReservationsDTO struct {
	Mode         string                    `json:"mode"`
	Reservations []backend.ReservationItem `json:"reservations"`
}
