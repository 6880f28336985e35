package databasetest

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/killallgit/catalog-api/internal/database"
	"github.com/killallgit/catalog-api/internal/models"
	"github.com/stretchr/testify/require"
)

var seq atomic.Int64

func next() int64 { return seq.Add(1) }

// Category inserts a category with unique name and slug, then applies mutators before saving
func Category(t testing.TB, db *database.DB, mutate ...func(*models.Category)) *models.Category {
	t.Helper()
	n := next()
	c := &models.Category{
		Name:     fmt.Sprintf("Category %d", n),
		Slug:     fmt.Sprintf("category-%d", n),
		ImageURL: "https://example.com/category.png",
	}
	for _, m := range mutate {
		m(c)
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

// Podcast inserts a podcast under categoryID
func Podcast(t testing.TB, db *database.DB, categoryID uint, mutate ...func(*models.Podcast)) *models.Podcast {
	t.Helper()
	n := next()
	p := &models.Podcast{
		CategoryID: categoryID,
		Title:      fmt.Sprintf("Podcast %d", n),
		Slug:       fmt.Sprintf("podcast-%d", n),
		ImageURL:   "https://example.com/podcast.png",
		AuthorName: "Jane Host",
	}
	for _, m := range mutate {
		m(p)
	}
	require.NoError(t, db.Omit("Category", "Tags", "Episodes").Create(p).Error)
	return p
}

// Episode inserts an episode under podcastID
func Episode(t testing.TB, db *database.DB, podcastID uint, mutate ...func(*models.Episode)) *models.Episode {
	t.Helper()
	n := next()
	e := &models.Episode{
		PodcastID:         podcastID,
		Title:             fmt.Sprintf("Episode %d", n),
		Slug:              fmt.Sprintf("episode-%d", n),
		AudioURL:          "https://example.com/episode.mp3",
		DurationInSeconds: 1800,
		PublishedAt:       time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, m := range mutate {
		m(e)
	}
	require.NoError(t, db.Omit("Podcast").Create(e).Error)
	return e
}

// Tag inserts a tag with unique name and slug
func Tag(t testing.TB, db *database.DB, mutate ...func(*models.Tag)) *models.Tag {
	t.Helper()
	n := next()
	tag := &models.Tag{
		Name: fmt.Sprintf("Tag %d", n),
		Slug: fmt.Sprintf("tag-%d", n),
	}
	for _, m := range mutate {
		m(tag)
	}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// Attach links tags to a podcast through the join table
func Attach(t testing.TB, db *database.DB, podcastID uint, tagIDs ...uint) {
	t.Helper()
	for _, id := range tagIDs {
		require.NoError(t, db.Create(&models.PodcastTag{PodcastID: podcastID, TagID: id}).Error)
	}
}
