package seed_test

import (
	"context"
	"testing"

	"github.com/killallgit/catalog-api/internal/database/databasetest"
	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeederRun(t *testing.T) {
	db := databasetest.New(t)
	s := seed.New(db.DB, databasetest.Logger())

	opts := seed.Options{
		PodcastsPerCategory: 2,
		FeaturedPerCategory: 1,
		MinEpisodes:         2,
		MaxEpisodes:         3,
		Seed:                42,
	}
	sum, err := s.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 10, sum.Tags)
	assert.Equal(t, 7, sum.Categories)
	assert.Equal(t, 15, sum.Podcasts)
	assert.GreaterOrEqual(t, sum.Episodes, 15*3)
	assert.LessOrEqual(t, sum.Episodes, 15*4)

	var count int64
	require.NoError(t, db.Model(&models.Episode{}).Count(&count).Error)
	assert.Equal(t, int64(sum.Episodes), count)

	require.NoError(t, db.Model(&models.Category{}).Where("is_featured = ?", true).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// every podcast has a featured episode and 1..3 tags
	var podcasts []models.Podcast
	require.NoError(t, db.Preload("Tags").Preload("Episodes").Find(&podcasts).Error)
	for _, p := range podcasts {
		assert.NotEmpty(t, p.Tags)
		assert.LessOrEqual(t, len(p.Tags), 3)

		featured := 0
		for _, ep := range p.Episodes {
			if ep.IsFeatured {
				featured++
			}
		}
		assert.Positive(t, featured, "podcast %s has no featured episode", p.Slug)
	}
}

func TestSeederRunTwice(t *testing.T) {
	db := databasetest.New(t)
	s := seed.New(db.DB, databasetest.Logger())
	opts := seed.Options{PodcastsPerCategory: 1, MinEpisodes: 1, MaxEpisodes: 1, Seed: 7}

	first, err := s.Run(context.Background(), opts)
	require.NoError(t, err)
	second, err := s.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 10, first.Tags)
	assert.Equal(t, 0, second.Tags, "tags are reused")
	assert.Equal(t, 7, first.Categories)
	assert.Equal(t, 2, second.Categories, "only the featured categories are new")
	assert.Equal(t, 5, second.Podcasts)

	var count int64
	require.NoError(t, db.Model(&models.Podcast{}).Count(&count).Error)
	assert.Equal(t, int64(10), count)
}
