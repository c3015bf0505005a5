package directory

import (
	"context"

	"github.com/yusaku0324/kakeru-sub008/internal/models"
)

// SearchInput narrows the published-shop listing. All fields optional.
type SearchInput struct {
	Area  string
	Genre string
	Query string
	Limit int
}

// Repository is the local shop/therapist directory. It powers search and
// shop pages; slots and reservations always come from the reservation
// backend, never from here.
type Repository interface {
	// -------- Shop --------
	GetShopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Shop, error)

	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.Shop, error)

	SearchShops(
		ctx context.Context,
		in SearchInput,
	) ([]models.Shop, error)

	// -------- Therapist --------
	ListTherapists(
		ctx context.Context,
		shopID uint,
	) ([]models.Therapist, error)

	GetTherapist(
		ctx context.Context,
		shopID uint,
		therapistID uint,
	) (*models.Therapist, error)
}
