package episodes

import (
	"context"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/store"
	"gorm.io/gorm"
)

const (
	DefaultFeaturedLimit = 5
	DefaultRecentLimit   = 10
)

var (
	listPreloads   = []string{"Podcast.Category"}
	detailPreloads = []string{"Podcast.Category", "Podcast.Tags"}
)

type Repository struct {
	*store.Store[models.Episode]
}

// Ensure Repository implements EpisodeRepository interface
var _ EpisodeRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Store: store.New[models.Episode](db, "Episode")}
}

func (r *Repository) GetFiltered(ctx context.Context, filters store.Filters, page store.PageRequest) (*store.Page[models.Episode], error) {
	sort, err := SortOptions.Resolve(filters)
	if err != nil {
		return nil, err
	}
	scopes, err := Scopes(filters)
	if err != nil {
		return nil, err
	}
	return r.Paginate(ctx, store.Query{Scopes: scopes, Order: sort.Columns(), Preloads: listPreloads}, page)
}

func (r *Repository) GetFeatured(ctx context.Context, limit int) ([]models.Episode, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return r.List(ctx, store.Query{
		Scopes:   []store.Scope{store.Featured()},
		Order:    SortOptions.Default().Columns(),
		Preloads: listPreloads,
	}, limit)
}

// GetRecent returns the newest episodes by published_at
func (r *Repository) GetRecent(ctx context.Context, limit int) ([]models.Episode, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return r.List(ctx, store.Query{Order: SortOptions.Default().Columns(), Preloads: listPreloads}, limit)
}

func (r *Repository) GetByPodcast(ctx context.Context, podcastID uint, page store.PageRequest) (*store.Page[models.Episode], error) {
	return r.Paginate(ctx, store.Query{
		Scopes:   []store.Scope{store.Equals("podcast_id", podcastID)},
		Order:    SortOptions.Default().Columns(),
		Preloads: listPreloads,
	}, page)
}

func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Episode, error) {
	return r.FindBy(ctx, "slug", slug, detailPreloads...)
}

// Create stores published_at in UTC so range filters compare consistently
func (r *Repository) Create(ctx context.Context, episode *models.Episode) error {
	episode.PublishedAt = episode.PublishedAt.UTC()
	return r.Store.Create(ctx, episode)
}

func (r *Repository) Update(ctx context.Context, id uint, apply func(*models.Episode)) (*models.Episode, error) {
	return r.Store.Update(ctx, id, func(e *models.Episode) {
		apply(e)
		e.PublishedAt = e.PublishedAt.UTC()
	})
}
