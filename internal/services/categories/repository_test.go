package categories

import (
	"context"
	"testing"

	"github.com/killallgit/catalog-api/internal/database"
	"github.com/killallgit/catalog-api/internal/database/databasetest"
	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/store"
	apperrors "github.com/killallgit/catalog-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (*Repository, *database.DB) {
	t.Helper()
	db := databasetest.New(t)
	return NewRepository(db.DB), db
}

func defaultPage() store.PageRequest {
	return store.PageRequest{Page: 1, PerPage: store.DefaultPerPage}
}

func TestGetFiltered(t *testing.T) {
	repo, db := setupRepository(t)
	ctx := context.Background()

	databasetest.Category(t, db, func(c *models.Category) { c.Name = "Jazz Nights"; c.SortOrder = 3 })
	databasetest.Category(t, db, func(c *models.Category) { c.Name = "Tech Talk"; c.SortOrder = 1; c.IsFeatured = true })
	databasetest.Category(t, db, func(c *models.Category) { c.Name = "Smooth JAZZ"; c.SortOrder = 2; c.IsFeatured = true })

	tests := []struct {
		name    string
		filters store.Filters
		want    []string
	}{
		{"default order is sort_order asc", store.Filters{}, []string{"Tech Talk", "Smooth JAZZ", "Jazz Nights"}},
		{"name is case-insensitive substring", store.Filters{"name": "jazz"}, []string{"Smooth JAZZ", "Jazz Nights"}},
		{"featured truthy filters", store.Filters{"featured": "1"}, []string{"Tech Talk", "Smooth JAZZ"}},
		{"featured false is ignored", store.Filters{"featured": "false"}, []string{"Tech Talk", "Smooth JAZZ", "Jazz Nights"}},
		{"sort by name desc", store.Filters{"sort_by": "name", "sort_direction": "desc"}, []string{"Tech Talk", "Smooth JAZZ", "Jazz Nights"}},
		{"wildcards are literal", store.Filters{"name": "%"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.GetFiltered(ctx, tt.filters, defaultPage())
			require.NoError(t, err)

			var names []string
			for _, c := range page.Items {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
			assert.Equal(t, int64(len(tt.want)), page.Total)
		})
	}
}

func TestGetFilteredInvalidSort(t *testing.T) {
	repo, _ := setupRepository(t)

	_, err := repo.GetFiltered(context.Background(), store.Filters{"sort_by": "image_url"}, defaultPage())
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeBadRequest))
}

func TestGetFilteredPagination(t *testing.T) {
	repo, db := setupRepository(t)
	for i := 0; i < 5; i++ {
		databasetest.Category(t, db)
	}

	page, err := repo.GetFiltered(context.Background(), store.Filters{}, defaultPage())
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 1, page.LastPage())
}

func TestGetFeatured(t *testing.T) {
	repo, db := setupRepository(t)
	for i := 3; i >= 1; i-- {
		order := i
		databasetest.Category(t, db, func(c *models.Category) { c.IsFeatured = true; c.SortOrder = order })
	}
	databasetest.Category(t, db)
	databasetest.Category(t, db)

	featured, err := repo.GetFeatured(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	for _, c := range featured {
		assert.True(t, c.IsFeatured)
	}
	assert.Equal(t, 1, featured[0].SortOrder)
	assert.Equal(t, 2, featured[1].SortOrder)

	all, err := repo.GetFeatured(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFindBySlug(t *testing.T) {
	repo, db := setupRepository(t)
	created := databasetest.Category(t, db, func(c *models.Category) { c.Slug = "true-crime" })

	found, err := repo.FindBySlug(context.Background(), "true-crime")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindBySlug(context.Background(), "nope")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteCascadesToPodcasts(t *testing.T) {
	repo, db := setupRepository(t)
	category := databasetest.Category(t, db)
	podcast := databasetest.Podcast(t, db, category.ID)
	databasetest.Episode(t, db, podcast.ID)

	n, err := repo.CountPodcasts(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := repo.Delete(context.Background(), category.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	var podcasts, episodes int64
	require.NoError(t, db.Model(&models.Podcast{}).Count(&podcasts).Error)
	require.NoError(t, db.Model(&models.Episode{}).Count(&episodes).Error)
	assert.Zero(t, podcasts)
	assert.Zero(t, episodes)
}
