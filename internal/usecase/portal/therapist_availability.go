package portal

import (
	"context"

	"github.com/yusaku0324/kakeru-sub008/internal/availability"
	domain "github.com/yusaku0324/kakeru-sub008/internal/domain/directory"
	"github.com/yusaku0324/kakeru-sub008/internal/dto"
	"github.com/yusaku0324/kakeru-sub008/internal/httperr"
	"github.com/yusaku0324/kakeru-sub008/internal/timezone"
)

type TherapistAvailability struct {
	repo  domain.Repository
	slots SlotSource
	clock timezone.Clock
}

func NewTherapistAvailability(
	repo domain.Repository,
	slots SlotSource,
	clock timezone.Clock,
) *TherapistAvailability {
	return &TherapistAvailability{
		repo:  repo,
		slots: slots,
		clock: clock,
	}
}

func (uc *TherapistAvailability) Execute(
	ctx context.Context,
	slug string,
	therapistID uint,
	date string,
) (*dto.TherapistSlotsDTO, error) {

	shop, err := uc.repo.GetShopBySlug(ctx, slug)
	if err != nil {
		return nil, httperr.ErrBusiness("shop_not_found")
	}

	therapist, err := uc.repo.GetTherapist(ctx, shop.ID, therapistID)
	if err != nil {
		return nil, httperr.ErrBusiness("therapist_not_found")
	}

	resp, err := uc.slots.TherapistSlots(ctx, therapist.BackendTherapistID, date)
	if err != nil {
		return nil, err
	}

	slots := availability.SortedByStart(resp.AvailabilitySlots())

	out := dto.TherapistSlotsDTO{
		TherapistID: therapist.ID,
		Date:        resp.Date,
		Slots:       slots,
	}

	now := uc.clock.Now()
	if next := availability.NextSlot(slots, now, availability.Options{}); next != nil {
		label := availability.SlotLabel(*next, now, uc.clock.Location())
		out.NextLabel = &label
	}

	return &out, nil
}
