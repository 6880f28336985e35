package categories

import (
	"context"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/store"
)

// CategoryRepository defines the data access interface for categories
type CategoryRepository interface {
	// Read
	GetFiltered(ctx context.Context, filters store.Filters, page store.PageRequest) (*store.Page[models.Category], error)
	GetFeatured(ctx context.Context, limit int) ([]models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindByID(ctx context.Context, id uint, preloads ...string) (*models.Category, error)
	CountPodcasts(ctx context.Context, categoryID uint) (int64, error)

	// Write
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id uint, apply func(*models.Category)) (*models.Category, error)
	Delete(ctx context.Context, id uint) (bool, error)

	// Validation lookups
	Exists(ctx context.Context, id uint) (bool, error)
	Taken(ctx context.Context, column string, value any, exceptID uint) (bool, error)
}
