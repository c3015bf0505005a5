package portal

import (
	"context"

	"github.com/yusaku0324/kakeru-sub008/internal/audit"
	domain "github.com/yusaku0324/kakeru-sub008/internal/domain/directory"
	"github.com/yusaku0324/kakeru-sub008/internal/dto"
	"github.com/yusaku0324/kakeru-sub008/internal/httperr"
)

type DashboardReservations struct {
	repo  domain.Repository
	slots SlotSource
	audit *audit.Dispatcher
}

func NewDashboardReservations(
	repo domain.Repository,
	slots SlotSource,
	dispatcher *audit.Dispatcher,
) *DashboardReservations {
	return &DashboardReservations{
		repo:  repo,
		slots: slots,
		audit: dispatcher,
	}
}

// Execute loads a shop's reservations for mode "today" or "tomorrow".
// The date window is the backend's to resolve (it owns the business-day
// boundaries for reservations); this use case only forwards the mode.
func (uc *DashboardReservations) Execute(
	ctx context.Context,
	shopID uint,
	userID uint,
	mode string,
) (*dto.DashboardReservationsDTO, error) {

	if mode != "today" && mode != "tomorrow" {
		return nil, httperr.ErrBusiness("invalid_mode")
	}

	shop, err := uc.repo.GetShopByID(ctx, shopID)
	if err != nil {
		return nil, httperr.ErrBusiness("shop_not_found")
	}

	reservations, err := uc.slots.ShopReservationsForDay(ctx, shop.BackendProfileID, mode)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID: shop.ID,
		UserID: &userID,
		Action: audit.ActionDashboardReservations,
		Entity: "reservation",
		Metadata: map[string]any{
			"mode":  mode,
			"count": len(reservations),
		},
	})

	return &dto.DashboardReservationsDTO{
		Mode:         mode,
		Reservations: reservations,
	}, nil
}
