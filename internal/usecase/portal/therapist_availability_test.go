package portal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yusaku0324/kakeru-sub008/internal/backend"
	"github.com/yusaku0324/kakeru-sub008/internal/cache"
	domain "github.com/yusaku0324/kakeru-sub008/internal/domain/directory"
	"github.com/yusaku0324/kakeru-sub008/internal/httperr"
)

func therapistSlots(t *testing.T, date string, starts ...string) *backend.TherapistSlotsResponse {
	t.Helper()

	resp := &backend.TherapistSlotsResponse{TherapistID: "th-10", Date: date}
	for _, s := range starts {
		at, err := time.Parse(time.RFC3339, s)
		require.NoError(t, err)
		resp.Slots = append(resp.Slots, backend.WireSlot{StartAt: at, EndAt: at.Add(time.Hour)})
	}
	return resp
}

func TestTherapistAvailability_NextLabelAndOrder(t *testing.T) {
	source := &fakeSlotSource{
		slotsResp: therapistSlots(t, "2025-01-09",
			"2025-01-09T16:00:00+09:00",
			"2025-01-09T10:00:00+09:00",
			"2025-01-09T14:00:00+09:00",
		),
	}
	uc := NewTherapistAvailability(newFakeDirectory(), source, fixedJST(t, "2025-01-09T12:00:00+09:00"))

	out, err := uc.Execute(context.Background(), "aroma-shinjuku", 10, "2025-01-09")
	require.NoError(t, err)

	require.Len(t, out.Slots, 3)
	assert.Equal(t, 10, out.Slots[0].StartAt.In(jstLoc(t)).Hour())
	assert.Equal(t, 16, out.Slots[2].StartAt.In(jstLoc(t)).Hour())

	// 10:00 already passed; 14:00 is the next bookable start.
	require.NotNil(t, out.NextLabel)
	assert.Equal(t, "本日 14:00〜", *out.NextLabel)
}

func TestTherapistAvailability_FullyBooked(t *testing.T) {
	source := &fakeSlotSource{slotsResp: therapistSlots(t, "2025-01-09")}
	uc := NewTherapistAvailability(newFakeDirectory(), source, fixedJST(t, "2025-01-09T12:00:00+09:00"))

	out, err := uc.Execute(context.Background(), "aroma-shinjuku", 10, "2025-01-09")
	require.NoError(t, err)

	assert.Empty(t, out.Slots)
	assert.Nil(t, out.NextLabel)
}

func TestTherapistAvailability_UnknownTherapist(t *testing.T) {
	uc := NewTherapistAvailability(newFakeDirectory(), &fakeSlotSource{}, fixedJST(t, "2025-01-09T12:00:00+09:00"))

	_, err := uc.Execute(context.Background(), "aroma-shinjuku", 99, "2025-01-09")
	assert.True(t, httperr.IsBusiness(err, "therapist_not_found"))
}

func TestSearchShops_BackendFailureDropsBadgeOnly(t *testing.T) {
	source := &fakeSlotSource{summaryErr: errors.New("backend down")}
	summary := NewShopSummary(source, cache.New(nil, zap.NewNop()), fixedJST(t, "2025-01-09T12:00:00+09:00"), zap.NewNop())
	uc := NewSearchShops(newFakeDirectory(), summary, zap.NewNop())

	cards, err := uc.Execute(context.Background(), domain.SearchInput{Area: "shinjuku"})
	require.NoError(t, err)

	require.Len(t, cards, 1)
	assert.Equal(t, "aroma-shinjuku", cards[0].Slug)
	assert.Nil(t, cards[0].Availability)
}

func TestGetShop_ListsActiveTherapists(t *testing.T) {
	source := &fakeSlotSource{summaryErr: errors.New("backend down")}
	summary := NewShopSummary(source, cache.New(nil, zap.NewNop()), fixedJST(t, "2025-01-09T12:00:00+09:00"), zap.NewNop())
	uc := NewGetShop(newFakeDirectory(), summary, zap.NewNop())

	page, err := uc.Execute(context.Background(), "aroma-shinjuku")
	require.NoError(t, err)

	require.Len(t, page.Therapists, 1)
	assert.Equal(t, "葵", page.Therapists[0].Name)
	assert.Nil(t, page.Availability)
}
