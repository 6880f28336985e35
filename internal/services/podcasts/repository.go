package podcasts

import (
	"context"
	"fmt"
	"slices"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/store"
	apperrors "github.com/killallgit/catalog-api/pkg/errors"
	"gorm.io/gorm"
)

const DefaultFeaturedLimit = 5

// Relations attached to a single podcast response
var detailPreloads = []string{"Category", "Tags"}

type Repository struct {
	*store.Store[models.Podcast]
}

// Ensure Repository implements PodcastRepository interface
var _ PodcastRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Store: store.New[models.Podcast](db, "Podcast")}
}

func (r *Repository) GetFiltered(ctx context.Context, filters store.Filters, page store.PageRequest) (*store.Page[models.Podcast], error) {
	sort, err := SortOptions.Resolve(filters)
	if err != nil {
		return nil, err
	}
	return r.Paginate(ctx, store.Query{
		Scopes:   Scopes(filters),
		Order:    sort.Columns(),
		Preloads: []string{"Category"},
	}, page)
}

func (r *Repository) GetFeatured(ctx context.Context, limit int) ([]models.Podcast, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return r.List(ctx, store.Query{
		Scopes:   []store.Scope{store.Featured()},
		Order:    SortOptions.Default().Columns(),
		Preloads: []string{"Category"},
	}, limit)
}

func (r *Repository) GetByCategory(ctx context.Context, categoryID uint, page store.PageRequest) (*store.Page[models.Podcast], error) {
	return r.Paginate(ctx, store.Query{
		Scopes:   []store.Scope{store.Equals("category_id", categoryID)},
		Order:    SortOptions.Default().Columns(),
		Preloads: []string{"Category"},
	}, page)
}

func (r *Repository) GetByTag(ctx context.Context, tagID uint, page store.PageRequest) (*store.Page[models.Podcast], error) {
	tagged := func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.PodcastTag{}).
			Select("podcast_id").
			Where("tag_id = ?", tagID)
		return db.Where("id IN (?)", sub)
	}
	return r.Paginate(ctx, store.Query{
		Scopes:   []store.Scope{tagged},
		Order:    SortOptions.Default().Columns(),
		Preloads: detailPreloads,
	}, page)
}

func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Podcast, error) {
	return r.FindBy(ctx, "slug", slug, detailPreloads...)
}

func (r *Repository) CountEpisodes(ctx context.Context, podcastID uint) (int64, error) {
	var n int64
	if err := r.DB(ctx).Model(&models.Episode{}).Where("podcast_id = ?", podcastID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting episodes of podcast %d: %w", podcastID, err)
	}
	return n, nil
}

// CreateWithTags inserts the podcast and its tag set in one transaction
func (r *Repository) CreateWithTags(ctx context.Context, podcast *models.Podcast, tagIDs []uint) (*models.Podcast, error) {
	err := r.Transaction(ctx, func(tx *store.Store[models.Podcast]) error {
		if err := tx.Create(ctx, podcast); err != nil {
			return err
		}
		if tagIDs != nil {
			return syncTags(tx.DB(ctx), podcast.ID, tagIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, podcast.ID, detailPreloads...)
}

// UpdateWithTags overwrites the podcast and, when tagIDs is non-nil, replaces its tag set
func (r *Repository) UpdateWithTags(ctx context.Context, id uint, apply func(*models.Podcast), tagIDs []uint) (*models.Podcast, error) {
	err := r.Transaction(ctx, func(tx *store.Store[models.Podcast]) error {
		if _, err := tx.Update(ctx, id, apply); err != nil {
			return err
		}
		if tagIDs != nil {
			return syncTags(tx.DB(ctx), id, tagIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id, detailPreloads...)
}

// syncTags replaces every join row of the podcast with tagIDs
func syncTags(db *gorm.DB, podcastID uint, tagIDs []uint) error {
	if err := db.Where("podcast_id = ?", podcastID).Delete(&models.PodcastTag{}).Error; err != nil {
		return fmt.Errorf("clearing tags of podcast %d: %w", podcastID, err)
	}

	ids := slices.Clone(tagIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	if len(ids) == 0 {
		return nil
	}

	rows := make([]models.PodcastTag, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.PodcastTag{PodcastID: podcastID, TagID: id})
	}
	if err := db.Create(&rows).Error; err != nil {
		if store.IsConstraintViolation(err) {
			return apperrors.ConstraintViolation("Podcast", err)
		}
		return fmt.Errorf("attaching tags to podcast %d: %w", podcastID, err)
	}
	return nil
}
