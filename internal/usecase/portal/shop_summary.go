package portal

import (
	"context"

	"go.uber.org/zap"

	"github.com/yusaku0324/kakeru-sub008/internal/availability"
	"github.com/yusaku0324/kakeru-sub008/internal/cache"
	"github.com/yusaku0324/kakeru-sub008/internal/dto"
	"github.com/yusaku0324/kakeru-sub008/internal/models"
	"github.com/yusaku0324/kakeru-sub008/internal/timezone"
)

// ======================================================
// SHOP SUMMARY (shared by search cards and shop pages)
// ======================================================

// ShopSummary computes the availability badge for one shop from its 7-day
// window. Results are cached briefly so that a search page listing thirty
// shops does not hit the backend thirty times per render.
type ShopSummary struct {
	slots SlotSource
	cache *cache.Store
	clock timezone.Clock
	log   *zap.Logger
}

func NewShopSummary(
	slots SlotSource,
	store *cache.Store,
	clock timezone.Clock,
	log *zap.Logger,
) *ShopSummary {
	return &ShopSummary{
		slots: slots,
		cache: store,
		clock: clock,
		log:   log,
	}
}

// For returns the badge for shop, from cache when fresh.
// The badge counts only open slots; tentative ones are not promised to
// guests on a card.
func (s *ShopSummary) For(ctx context.Context, shop *models.Shop) (*dto.ShopAvailabilityDTO, error) {

	var cached dto.ShopAvailabilityDTO
	if err := s.cache.GetSummary(ctx, shop.Slug, &cached); err == nil {
		return &cached, nil
	}

	window, err := s.slots.DaySummary(ctx, shop.BackendProfileID)
	if err != nil {
		return nil, err
	}

	// The summary is derived from the raw slots of the whole window, so the
	// badge and the per-day view can never contradict each other.
	var all []availability.Slot
	for _, day := range window.AvailabilityDays() {
		all = append(all, day.Slots...)
	}

	sum := availability.Summarize(all, s.clock.Now(), s.clock.Location(), availability.Options{})

	out := dto.ShopAvailabilityDTO{
		HasToday:  sum.HasToday,
		HasFuture: sum.HasFuture,
		NextLabel: sum.NextLabel,
	}

	s.cache.SetSummary(ctx, shop.Slug, out)
	return &out, nil
}
