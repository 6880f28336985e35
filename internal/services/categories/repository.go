package categories

import (
	"context"
	"fmt"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/store"
	"gorm.io/gorm"
)

const DefaultFeaturedLimit = 5

type Repository struct {
	*store.Store[models.Category]
}

// Ensure Repository implements CategoryRepository interface
var _ CategoryRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Store: store.New[models.Category](db, "Category")}
}

func (r *Repository) GetFiltered(ctx context.Context, filters store.Filters, page store.PageRequest) (*store.Page[models.Category], error) {
	sort, err := SortOptions.Resolve(filters)
	if err != nil {
		return nil, err
	}
	return r.Paginate(ctx, store.Query{Scopes: Scopes(filters), Order: sort.Columns()}, page)
}

func (r *Repository) GetFeatured(ctx context.Context, limit int) ([]models.Category, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return r.List(ctx, store.Query{
		Scopes: []store.Scope{store.Featured()},
		Order:  store.Sort{Field: "sort_order"}.Columns(),
	}, limit)
}

func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.FindBy(ctx, "slug", slug)
}

func (r *Repository) CountPodcasts(ctx context.Context, categoryID uint) (int64, error) {
	var n int64
	if err := r.DB(ctx).Model(&models.Podcast{}).Where("category_id = ?", categoryID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting podcasts of category %d: %w", categoryID, err)
	}
	return n, nil
}
