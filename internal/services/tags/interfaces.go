package tags

import (
	"context"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/store"
)

// TagRepository defines the data access interface for tags
type TagRepository interface {
	GetFiltered(ctx context.Context, filters store.Filters, page store.PageRequest) (*store.Page[models.Tag], error)
	FindBySlug(ctx context.Context, slug string) (*models.Tag, error)
	FindByID(ctx context.Context, id uint, preloads ...string) (*models.Tag, error)
	CountPodcasts(ctx context.Context, tagID uint) (int64, error)

	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, id uint, apply func(*models.Tag)) (*models.Tag, error)
	Delete(ctx context.Context, id uint) (bool, error)

	Taken(ctx context.Context, column string, value any, exceptID uint) (bool, error)
	MissingIDs(ctx context.Context, ids []uint) ([]uint, error)
}
