package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/yusaku0324/kakeru-sub008/internal/domain/directory"
	"github.com/yusaku0324/kakeru-sub008/internal/models"
)

type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

// --------------------------------------------------
// Shop
// --------------------------------------------------

func (r *DirectoryGormRepository) GetShopBySlug(
	ctx context.Context,
	slug string,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND published = true", slug).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *DirectoryGormRepository) GetShopByID(
	ctx context.Context,
	id uint,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *DirectoryGormRepository) SearchShops(
	ctx context.Context,
	in domain.SearchInput,
) ([]models.Shop, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Shop{}).
		Where("published = true")

	if area := strings.TrimSpace(strings.ToLower(in.Area)); area != "" {
		q = q.Where("LOWER(area) = ?", area)
	}

	if genre := strings.TrimSpace(strings.ToLower(in.Genre)); genre != "" {
		q = q.Where("LOWER(genre) = ?", genre)
	}

	if query := strings.TrimSpace(strings.ToLower(in.Query)); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	limit := in.Limit
	if limit <= 0 || limit > 100 {
		limit = 30
	}

	var shops []models.Shop
	if err := q.Order("id ASC").Limit(limit).Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// --------------------------------------------------
// Therapist
// --------------------------------------------------

func (r *DirectoryGormRepository) ListTherapists(
	ctx context.Context,
	shopID uint,
) ([]models.Therapist, error) {

	var therapists []models.Therapist
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND active = true", shopID).
		Order("id ASC").
		Find(&therapists).Error; err != nil {
		return nil, err
	}
	return therapists, nil
}

func (r *DirectoryGormRepository) GetTherapist(
	ctx context.Context,
	shopID uint,
	therapistID uint,
) (*models.Therapist, error) {

	var therapist models.Therapist
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ? AND active = true", therapistID, shopID).
		First(&therapist).Error; err != nil {
		return nil, err
	}
	return &therapist, nil
}

// Compile-time check
var _ domain.Repository = (*DirectoryGormRepository)(nil)
