package portal

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/yusaku0324/kakeru-sub008/internal/domain/directory"
	"github.com/yusaku0324/kakeru-sub008/internal/dto"
)

type SearchShops struct {
	repo    domain.Repository
	summary *ShopSummary
	log     *zap.Logger
}

func NewSearchShops(
	repo domain.Repository,
	summary *ShopSummary,
	log *zap.Logger,
) *SearchShops {
	return &SearchShops{
		repo:    repo,
		summary: summary,
		log:     log,
	}
}

func (uc *SearchShops) Execute(
	ctx context.Context,
	in domain.SearchInput,
) ([]dto.ShopCardDTO, error) {

	shops, err := uc.repo.SearchShops(ctx, in)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ShopCardDTO, 0, len(shops))
	for i := range shops {
		shop := shops[i]

		card := dto.ShopCardDTO{
			ID:    shop.ID,
			Name:  shop.Name,
			Slug:  shop.Slug,
			Area:  shop.Area,
			Genre: shop.Genre,
		}

		// One shop's backend failure must not blank the whole result page;
		// the card just renders without a badge.
		badge, err := uc.summary.For(ctx, &shop)
		if err != nil {
			uc.log.Warn("availability badge unavailable",
				zap.String("slug", shop.Slug),
				zap.Error(err),
			)
		} else {
			card.Availability = badge
		}

		out = append(out, card)
	}

	return out, nil
}
