package tags

import (
	"context"
	"testing"

	"github.com/killallgit/catalog-api/internal/database/databasetest"
	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/store"
	apperrors "github.com/killallgit/catalog-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepository(t *testing.T) {
	db := databasetest.New(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	comedy := databasetest.Tag(t, db, func(tag *models.Tag) { tag.Name = "Comedy"; tag.Slug = "comedy" })
	databasetest.Tag(t, db, func(tag *models.Tag) { tag.Name = "Business"; tag.Slug = "business" })
	databasetest.Tag(t, db, func(tag *models.Tag) { tag.Name = "Dark Comedy"; tag.Slug = "dark-comedy" })

	t.Run("list sorted by name", func(t *testing.T) {
		page, err := repo.GetFiltered(ctx, store.Filters{}, store.PageRequest{Page: 1, PerPage: 15})
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, "Business", page.Items[0].Name)
		assert.Equal(t, "Dark Comedy", page.Items[2].Name)
	})

	t.Run("name filter", func(t *testing.T) {
		page, err := repo.GetFiltered(ctx, store.Filters{"name": "comedy"}, store.PageRequest{Page: 1, PerPage: 15})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
	})

	t.Run("find by slug", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "comedy")
		require.NoError(t, err)
		assert.Equal(t, comedy.ID, found.ID)

		_, err = repo.FindBySlug(ctx, "drama")
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("missing ids", func(t *testing.T) {
		missing, err := repo.MissingIDs(ctx, []uint{comedy.ID, 900, 901, 900})
		require.NoError(t, err)
		assert.Equal(t, []uint{900, 901}, missing)

		missing, err = repo.MissingIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("unique name", func(t *testing.T) {
		err := repo.Create(ctx, &models.Tag{Name: "Comedy", Slug: "comedy-2"})
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeConstraintViolation))
	})
}

func TestDeleteTagDetachesPodcasts(t *testing.T) {
	db := databasetest.New(t)
	repo := NewRepository(db.DB)
	category := databasetest.Category(t, db)
	podcast := databasetest.Podcast(t, db, category.ID)
	tag := databasetest.Tag(t, db)
	databasetest.Attach(t, db, podcast.ID, tag.ID)

	n, err := repo.CountPodcasts(context.Background(), tag.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.Delete(context.Background(), tag.ID)
	require.NoError(t, err)

	var joins, podcasts int64
	require.NoError(t, db.Model(&models.PodcastTag{}).Count(&joins).Error)
	require.NoError(t, db.Model(&models.Podcast{}).Count(&podcasts).Error)
	assert.Zero(t, joins)
	assert.Equal(t, int64(1), podcasts)
}
