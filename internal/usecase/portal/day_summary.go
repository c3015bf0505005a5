package portal

import (
	"context"

	"go.uber.org/zap"

	"github.com/yusaku0324/kakeru-sub008/internal/availability"
	domain "github.com/yusaku0324/kakeru-sub008/internal/domain/directory"
	"github.com/yusaku0324/kakeru-sub008/internal/dto"
	"github.com/yusaku0324/kakeru-sub008/internal/httperr"
	"github.com/yusaku0324/kakeru-sub008/internal/timezone"
)

type GetDaySummary struct {
	repo  domain.Repository
	slots SlotSource
	clock timezone.Clock
	log   *zap.Logger
}

func NewGetDaySummary(
	repo domain.Repository,
	slots SlotSource,
	clock timezone.Clock,
	log *zap.Logger,
) *GetDaySummary {
	return &GetDaySummary{
		repo:  repo,
		slots: slots,
		clock: clock,
		log:   log,
	}
}

func (uc *GetDaySummary) Execute(
	ctx context.Context,
	slug string,
) (*dto.DaySummaryDTO, error) {

	shop, err := uc.repo.GetShopBySlug(ctx, slug)
	if err != nil {
		return nil, httperr.ErrBusiness("shop_not_found")
	}

	window, err := uc.slots.DaySummary(ctx, shop.BackendProfileID)
	if err != nil {
		return nil, err
	}

	// The backend sends its own is_today flag but this service recomputes
	// the day from its business clock and that computation wins. The two
	// have disagreed in production before; a silent pick would hide the
	// next occurrence, so mismatches are logged.
	today := uc.clock.Now().In(uc.clock.Location()).Format("2006-01-02")

	out := dto.DaySummaryDTO{
		Days: make([]dto.DayDTO, 0, len(window.Days)),
	}

	for _, day := range window.AvailabilityDays() {
		isToday := day.Date == today
		if isToday != day.IsToday {
			uc.log.Warn("backend is_today disagrees with business clock",
				zap.String("slug", slug),
				zap.String("date", day.Date),
				zap.Bool("backend", day.IsToday),
				zap.Bool("computed", isToday),
			)
		}

		out.Days = append(out.Days, dto.DayDTO{
			Date:         day.Date,
			IsToday:      isToday,
			HasAvailable: len(availability.Bookable(day.Slots, availability.Options{})) > 0,
			Slots:        availability.SortedByStart(day.Slots),
		})
	}

	return &out, nil
}
