package tags

import (
	"context"
	"fmt"
	"slices"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/store"
	"gorm.io/gorm"
)

// SortOptions lists the columns a tag listing may be ordered by
var SortOptions = store.SortOptions{
	Allowed:   []string{"name", "created_at"},
	DefaultBy: "name",
}

// Scopes turns listing filters into predicates: name (substring)
func Scopes(f store.Filters) []store.Scope {
	if name, ok := f.Get("name"); ok {
		return []store.Scope{store.Contains("name", name)}
	}
	return nil
}

type Repository struct {
	*store.Store[models.Tag]
}

// Ensure Repository implements TagRepository interface
var _ TagRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Store: store.New[models.Tag](db, "Tag")}
}

func (r *Repository) GetFiltered(ctx context.Context, filters store.Filters, page store.PageRequest) (*store.Page[models.Tag], error) {
	sort, err := SortOptions.Resolve(filters)
	if err != nil {
		return nil, err
	}
	return r.Paginate(ctx, store.Query{Scopes: Scopes(filters), Order: sort.Columns()}, page)
}

func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	return r.FindBy(ctx, "slug", slug)
}

func (r *Repository) CountPodcasts(ctx context.Context, tagID uint) (int64, error) {
	var n int64
	if err := r.DB(ctx).Model(&models.PodcastTag{}).Where("tag_id = ?", tagID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting podcasts of tag %d: %w", tagID, err)
	}
	return n, nil
}

// MissingIDs returns the ids in the input that have no tag row, in input order
func (r *Repository) MissingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []uint
	if err := r.DB(ctx).Model(&models.Tag{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, fmt.Errorf("looking up tags: %w", err)
	}

	var missing []uint
	for _, id := range ids {
		if !slices.Contains(found, id) && !slices.Contains(missing, id) {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
