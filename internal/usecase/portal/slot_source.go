package portal

import (
	"context"

	"github.com/yusaku0324/kakeru-sub008/internal/backend"
)

// SlotSource is the reservation backend as the use cases see it.
// *backend.Client implements it; tests substitute fakes.
type SlotSource interface {
	TherapistSlots(
		ctx context.Context,
		therapistID string,
		date string,
	) (*backend.TherapistSlotsResponse, error)

	DaySummary(
		ctx context.Context,
		profileID string,
	) (*backend.DaySummaryResponse, error)

	ShopReservationsForDay(
		ctx context.Context,
		profileID string,
		mode string,
	) ([]backend.ReservationItem, error)

	SubmitReservation(
		ctx context.Context,
		req backend.SubmitReservationRequest,
	) (*backend.SubmitReservationResponse, error)
}

var _ SlotSource = (*backend.Client)(nil)
