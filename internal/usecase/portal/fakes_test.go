package portal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yusaku0324/kakeru-sub008/internal/availability"
	"github.com/yusaku0324/kakeru-sub008/internal/backend"
	domain "github.com/yusaku0324/kakeru-sub008/internal/domain/directory"
	"github.com/yusaku0324/kakeru-sub008/internal/models"
	"github.com/yusaku0324/kakeru-sub008/internal/timezone"
)

// ===============================
// Directory fake
// ===============================

type fakeDirectory struct {
	shops      map[string]*models.Shop
	therapists map[uint]*models.Therapist
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		shops: map[string]*models.Shop{
			"aroma-shinjuku": {
				ID:               1,
				Name:             "アロマ新宿",
				Slug:             "aroma-shinjuku",
				Area:             "shinjuku",
				BackendProfileID: "profile-1",
				Published:        true,
			},
		},
		therapists: map[uint]*models.Therapist{
			10: {
				ID:                 10,
				ShopID:             1,
				Name:               "葵",
				BackendTherapistID: "th-10",
				Active:             true,
			},
		},
	}
}

func (f *fakeDirectory) GetShopBySlug(_ context.Context, slug string) (*models.Shop, error) {
	if shop, ok := f.shops[slug]; ok {
		return shop, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeDirectory) GetShopByID(_ context.Context, id uint) (*models.Shop, error) {
	for _, shop := range f.shops {
		if shop.ID == id {
			return shop, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeDirectory) SearchShops(_ context.Context, _ domain.SearchInput) ([]models.Shop, error) {
	out := make([]models.Shop, 0, len(f.shops))
	for _, shop := range f.shops {
		out = append(out, *shop)
	}
	return out, nil
}

func (f *fakeDirectory) ListTherapists(_ context.Context, shopID uint) ([]models.Therapist, error) {
	out := make([]models.Therapist, 0)
	for _, th := range f.therapists {
		if th.ShopID == shopID {
			out = append(out, *th)
		}
	}
	return out, nil
}

func (f *fakeDirectory) GetTherapist(_ context.Context, shopID, therapistID uint) (*models.Therapist, error) {
	if th, ok := f.therapists[therapistID]; ok && th.ShopID == shopID {
		return th, nil
	}
	return nil, errors.New("record not found")
}

var _ domain.Repository = (*fakeDirectory)(nil)

// ===============================
// SlotSource fake
// ===============================

type fakeSlotSource struct {
	slotsResp   *backend.TherapistSlotsResponse
	slotsErr    error
	summaryResp *backend.DaySummaryResponse
	summaryErr  error
	rsvItems    []backend.ReservationItem
	rsvErr      error
	submitResp  *backend.SubmitReservationResponse
	submitErr   error

	summaryCalls int
	lastMode     string
	lastSubmit   backend.SubmitReservationRequest
}

func (f *fakeSlotSource) TherapistSlots(_ context.Context, _, _ string) (*backend.TherapistSlotsResponse, error) {
	return f.slotsResp, f.slotsErr
}

func (f *fakeSlotSource) DaySummary(_ context.Context, _ string) (*backend.DaySummaryResponse, error) {
	f.summaryCalls++
	return f.summaryResp, f.summaryErr
}

func (f *fakeSlotSource) ShopReservationsForDay(_ context.Context, _, mode string) ([]backend.ReservationItem, error) {
	f.lastMode = mode
	return f.rsvItems, f.rsvErr
}

func (f *fakeSlotSource) SubmitReservation(_ context.Context, req backend.SubmitReservationRequest) (*backend.SubmitReservationResponse, error) {
	f.lastSubmit = req
	return f.submitResp, f.submitErr
}

var _ SlotSource = (*fakeSlotSource)(nil)

// ===============================
// Shared fixtures
// ===============================

func jstLoc(t *testing.T) *time.Location {
	t.Helper()
	return timezone.Location(timezone.DefaultTimezone)
}

func sevenDayWindow(t *testing.T, firstDate string, todayIndex int, slotsByDay map[int][]backend.WireStatusSlot) *backend.DaySummaryResponse {
	t.Helper()

	first, err := time.Parse("2006-01-02", firstDate)
	require.NoError(t, err)

	days := make([]backend.WireDay, 0, backend.DaySummaryWindow)
	for i := 0; i < backend.DaySummaryWindow; i++ {
		days = append(days, backend.WireDay{
			Date:    first.AddDate(0, 0, i).Format("2006-01-02"),
			IsToday: i == todayIndex,
			Slots:   slotsByDay[i],
		})
	}
	return &backend.DaySummaryResponse{Days: days}
}

func wireSlot(t *testing.T, start string, status availability.Status) backend.WireStatusSlot {
	t.Helper()

	at, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	return backend.WireStatusSlot{
		StartAt: at,
		EndAt:   at.Add(time.Hour),
		Status:  status,
	}
}
