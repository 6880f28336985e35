package podcasts

import (
	"context"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/store"
)

// PodcastRepository defines the data access interface for podcasts
type PodcastRepository interface {
	// Read
	GetFiltered(ctx context.Context, filters store.Filters, page store.PageRequest) (*store.Page[models.Podcast], error)
	GetFeatured(ctx context.Context, limit int) ([]models.Podcast, error)
	GetByCategory(ctx context.Context, categoryID uint, page store.PageRequest) (*store.Page[models.Podcast], error)
	GetByTag(ctx context.Context, tagID uint, page store.PageRequest) (*store.Page[models.Podcast], error)
	FindBySlug(ctx context.Context, slug string) (*models.Podcast, error)
	FindByID(ctx context.Context, id uint, preloads ...string) (*models.Podcast, error)
	CountEpisodes(ctx context.Context, podcastID uint) (int64, error)

	// Write. A nil tagIDs leaves the tag set untouched; a non-nil slice replaces it.
	CreateWithTags(ctx context.Context, podcast *models.Podcast, tagIDs []uint) (*models.Podcast, error)
	UpdateWithTags(ctx context.Context, id uint, apply func(*models.Podcast), tagIDs []uint) (*models.Podcast, error)
	Delete(ctx context.Context, id uint) (bool, error)

	// Validation lookups
	Exists(ctx context.Context, id uint) (bool, error)
	Taken(ctx context.Context, column string, value any, exceptID uint) (bool, error)
}
