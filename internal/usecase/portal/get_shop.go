package portal

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/yusaku0324/kakeru-sub008/internal/domain/directory"
	"github.com/yusaku0324/kakeru-sub008/internal/dto"
	"github.com/yusaku0324/kakeru-sub008/internal/httperr"
)

type GetShop struct {
	repo    domain.Repository
	summary *ShopSummary
	log     *zap.Logger
}

func NewGetShop(
	repo domain.Repository,
	summary *ShopSummary,
	log *zap.Logger,
) *GetShop {
	return &GetShop{
		repo:    repo,
		summary: summary,
		log:     log,
	}
}

func (uc *GetShop) Execute(
	ctx context.Context,
	slug string,
) (*dto.ShopPageDTO, error) {

	shop, err := uc.repo.GetShopBySlug(ctx, slug)
	if err != nil {
		return nil, httperr.ErrBusiness("shop_not_found")
	}

	therapists, err := uc.repo.ListTherapists(ctx, shop.ID)
	if err != nil {
		return nil, err
	}

	page := dto.ShopPageDTO{
		Shop:       *shop,
		Therapists: make([]dto.TherapistDTO, 0, len(therapists)),
	}

	for _, th := range therapists {
		page.Therapists = append(page.Therapists, dto.TherapistDTO{
			ID:       th.ID,
			Name:     th.Name,
			Nickname: th.Nickname,
			Bio:      th.Bio,
		})
	}

	badge, err := uc.summary.For(ctx, shop)
	if err != nil {
		uc.log.Warn("availability badge unavailable",
			zap.String("slug", shop.Slug),
			zap.Error(err),
		)
	} else {
		page.Availability = badge
	}

	return &page, nil
}
