package episodes

import (
	"context"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/store"
)

// EpisodeRepository defines the data access interface for episodes
type EpisodeRepository interface {
	// Read
	GetFiltered(ctx context.Context, filters store.Filters, page store.PageRequest) (*store.Page[models.Episode], error)
	GetFeatured(ctx context.Context, limit int) ([]models.Episode, error)
	GetRecent(ctx context.Context, limit int) ([]models.Episode, error)
	GetByPodcast(ctx context.Context, podcastID uint, page store.PageRequest) (*store.Page[models.Episode], error)
	FindBySlug(ctx context.Context, slug string) (*models.Episode, error)
	FindByID(ctx context.Context, id uint, preloads ...string) (*models.Episode, error)

	// Write
	Create(ctx context.Context, episode *models.Episode) error
	Update(ctx context.Context, id uint, apply func(*models.Episode)) (*models.Episode, error)
	Delete(ctx context.Context, id uint) (bool, error)

	// Validation lookups
	Taken(ctx context.Context, column string, value any, exceptID uint) (bool, error)
}
