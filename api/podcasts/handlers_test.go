package podcasts_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/killallgit/catalog-api/api/apitest"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/database/databasetest"
	"github.com/killallgit/catalog-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func podcastBody(categoryID uint, slug string, tags ...uint) map[string]any {
	body := map[string]any{
		"title":       "Go Time",
		"slug":        slug,
		"description": "A podcast about Go",
		"image_url":   "https://example.com/gotime.png",
		"author_name": "Changelog Media",
		"category_id": categoryID,
	}
	if tags != nil {
		body["tags"] = tags
	}
	return body
}

func tagSlugs(p types.PodcastResource) []string {
	if p.Tags == nil {
		return nil
	}
	out := make([]string, 0, len(*p.Tags))
	for _, t := range *p.Tags {
		out = append(out, t.Slug)
	}
	return out
}

func TestPodcastCreateWithTags(t *testing.T) {
	h := apitest.New(t)
	category := databasetest.Category(t, h.DB)
	golang := databasetest.Tag(t, h.DB, func(tag *models.Tag) { tag.Slug = "golang" })
	interviews := databasetest.Tag(t, h.DB, func(tag *models.Tag) { tag.Slug = "interviews" })

	var created types.PodcastResource
	env := apitest.Expect(t, h.DoAuth(http.MethodPost, "/api/v1/podcasts",
		podcastBody(category.ID, "go-time", golang.ID, interviews.ID)), http.StatusCreated, &created)
	assert.Equal(t, "Podcast created successfully", env.Message)
	assert.False(t, created.IsFeatured)
	require.NotNil(t, created.Category)
	assert.Equal(t, category.ID, created.Category.ID)
	assert.ElementsMatch(t, []string{"golang", "interviews"}, tagSlugs(created))
	assert.Equal(t, int64(2), h.Count(&models.PodcastTag{}))

	databasetest.Episode(t, h.DB, created.ID)

	var fetched types.PodcastResource
	apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts/go-time", nil), http.StatusOK, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Changelog Media", fetched.AuthorName)
	assert.ElementsMatch(t, []string{"golang", "interviews"}, tagSlugs(fetched))
	require.NotNil(t, fetched.EpisodesCount)
	assert.Equal(t, int64(1), *fetched.EpisodesCount)
}

func TestPodcastCreateWithoutTags(t *testing.T) {
	h := apitest.New(t)
	category := databasetest.Category(t, h.DB)

	var created types.PodcastResource
	apitest.Expect(t, h.DoAuth(http.MethodPost, "/api/v1/podcasts", podcastBody(category.ID, "solo")), http.StatusCreated, &created)
	require.NotNil(t, created.Tags)
	assert.Empty(t, *created.Tags)
	assert.Zero(t, h.Count(&models.PodcastTag{}))
}

func TestPodcastUpdateTags(t *testing.T) {
	h := apitest.New(t)
	category := databasetest.Category(t, h.DB)
	a := databasetest.Tag(t, h.DB, func(tag *models.Tag) { tag.Slug = "a" })
	b := databasetest.Tag(t, h.DB, func(tag *models.Tag) { tag.Slug = "b" })
	c := databasetest.Tag(t, h.DB, func(tag *models.Tag) { tag.Slug = "c" })
	podcast := databasetest.Podcast(t, h.DB, category.ID)
	databasetest.Attach(t, h.DB, podcast.ID, a.ID, b.ID)
	path := fmt.Sprintf("/api/v1/podcasts/%d", podcast.ID)

	t.Run("omitted tags are kept", func(t *testing.T) {
		var updated types.PodcastResource
		env := apitest.Expect(t, h.DoAuth(http.MethodPut, path, podcastBody(category.ID, podcast.Slug)), http.StatusOK, &updated)
		assert.Equal(t, "Podcast updated successfully", env.Message)
		assert.Equal(t, "Go Time", updated.Title)
		assert.ElementsMatch(t, []string{"a", "b"}, tagSlugs(updated))
	})

	t.Run("tags replace the set", func(t *testing.T) {
		var updated types.PodcastResource
		apitest.Expect(t, h.DoAuth(http.MethodPut, path, podcastBody(category.ID, podcast.Slug, b.ID, c.ID)), http.StatusOK, &updated)
		assert.ElementsMatch(t, []string{"b", "c"}, tagSlugs(updated))
	})

	t.Run("empty tags detach all", func(t *testing.T) {
		var updated types.PodcastResource
		apitest.Expect(t, h.DoAuth(http.MethodPut, path, podcastBody(category.ID, podcast.Slug, []uint{}...)), http.StatusOK, &updated)
		assert.Empty(t, tagSlugs(updated))
		assert.Zero(t, h.Count(&models.PodcastTag{}))
	})
}

func TestPodcastValidation(t *testing.T) {
	h := apitest.New(t)
	category := databasetest.Category(t, h.DB)
	existing := databasetest.Podcast(t, h.DB, category.ID)
	tag := databasetest.Tag(t, h.DB)

	tests := []struct {
		name   string
		body   any
		fields map[string]string
	}{
		{
			name: "missing required fields",
			body: map[string]any{},
			fields: map[string]string{
				"title":       "The title field is required.",
				"slug":        "The slug field is required.",
				"image_url":   "The image url field is required.",
				"author_name": "The author name field is required.",
				"category_id": "The category id field is required.",
			},
		},
		{
			name:   "unknown category",
			body:   podcastBody(9999, "new-show"),
			fields: map[string]string{"category_id": "The selected category id is invalid."},
		},
		{
			name:   "duplicate slug",
			body:   podcastBody(category.ID, existing.Slug),
			fields: map[string]string{"slug": "The slug has already been taken."},
		},
		{
			name:   "unknown tag",
			body:   podcastBody(category.ID, "new-show", tag.ID, 9999),
			fields: map[string]string{"tags.1": "The selected tags.1 is invalid."},
		},
		{
			name: "tags not an array",
			body: map[string]any{
				"title": "T", "slug": "t", "image_url": "https://example.com/t.png",
				"author_name": "A", "category_id": category.ID, "tags": "golang",
			},
			fields: map[string]string{"tags": "The tags field must be an array."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := apitest.Expect(t, h.DoAuth(http.MethodPost, "/api/v1/podcasts", tt.body), http.StatusUnprocessableEntity, nil)
			assert.Equal(t, "Validation errors", env.Message)
			for field, msg := range tt.fields {
				assert.Contains(t, env.Errors[field], msg, "field %s", field)
			}
		})
	}

	assert.Equal(t, int64(1), h.Count(&models.Podcast{}))
	assert.Zero(t, h.Count(&models.PodcastTag{}))
}

func TestPodcastWritesRequireAuth(t *testing.T) {
	h := apitest.New(t)
	category := databasetest.Category(t, h.DB)
	podcast := databasetest.Podcast(t, h.DB, category.ID)

	apitest.Expect(t, h.Do(http.MethodPost, "/api/v1/podcasts", podcastBody(category.ID, "x")), http.StatusUnauthorized, nil)
	apitest.Expect(t, h.Do(http.MethodPut, fmt.Sprintf("/api/v1/podcasts/%d", podcast.ID), podcastBody(category.ID, "x")), http.StatusUnauthorized, nil)
	apitest.Expect(t, h.Do(http.MethodDelete, fmt.Sprintf("/api/v1/podcasts/%d", podcast.ID), nil), http.StatusUnauthorized, nil)

	assert.Equal(t, int64(1), h.Count(&models.Podcast{}))
}

func TestPodcastDelete(t *testing.T) {
	h := apitest.New(t)
	category := databasetest.Category(t, h.DB)
	podcast := databasetest.Podcast(t, h.DB, category.ID)
	databasetest.Episode(t, h.DB, podcast.ID)
	databasetest.Episode(t, h.DB, podcast.ID)
	tag := databasetest.Tag(t, h.DB)
	databasetest.Attach(t, h.DB, podcast.ID, tag.ID)

	env := apitest.Expect(t, h.DoAuth(http.MethodDelete, fmt.Sprintf("/api/v1/podcasts/%d", podcast.ID), nil), http.StatusOK, nil)
	assert.Equal(t, "Podcast deleted successfully", env.Message)

	assert.Zero(t, h.Count(&models.Podcast{}))
	assert.Zero(t, h.Count(&models.Episode{}))
	assert.Zero(t, h.Count(&models.PodcastTag{}))
	assert.Equal(t, int64(1), h.Count(&models.Category{}))
	assert.Equal(t, int64(1), h.Count(&models.Tag{}))

	env = apitest.Expect(t, h.DoAuth(http.MethodDelete, fmt.Sprintf("/api/v1/podcasts/%d", podcast.ID), nil), http.StatusNotFound, nil)
	assert.Equal(t, "Podcast not found", env.Message)
}

func TestPodcastNotFoundAndInvalidID(t *testing.T) {
	h := apitest.New(t)

	env := apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts/nope", nil), http.StatusNotFound, nil)
	assert.Equal(t, "Podcast not found", env.Message)

	env = apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts/nope/episodes", nil), http.StatusNotFound, nil)
	assert.Equal(t, "Podcast not found", env.Message)

	env = apitest.Expect(t, h.DoAuth(http.MethodDelete, "/api/v1/podcasts/x1", nil), http.StatusBadRequest, nil)
	assert.Equal(t, "Invalid podcast ID", env.Message)
}

func TestPodcastListing(t *testing.T) {
	h := apitest.New(t)
	category := databasetest.Category(t, h.DB)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	authors := []string{"Alice", "Bob", "Carol", "Alice Smith", "Dave"}
	for i, author := range authors {
		databasetest.Podcast(t, h.DB, category.ID, func(p *models.Podcast) {
			p.Title = fmt.Sprintf("Show %c", 'A'+i)
			p.AuthorName = author
			p.IsFeatured = i < 2
			p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		})
	}

	t.Run("default newest first", func(t *testing.T) {
		var page types.Collection[types.PodcastResource]
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts", nil), http.StatusOK, &page)
		assert.Equal(t, int64(5), page.Meta.Total)
		assert.Equal(t, 1, page.Meta.LastPage)
		require.Len(t, page.Data, 5)
		assert.Equal(t, "Show E", page.Data[0].Title)
		assert.Equal(t, "Show A", page.Data[4].Title)
		require.NotNil(t, page.Data[0].Category)
		assert.Nil(t, page.Data[0].Tags)
	})

	t.Run("author filter", func(t *testing.T) {
		var page types.Collection[types.PodcastResource]
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts?author=alice", nil), http.StatusOK, &page)
		assert.Equal(t, int64(2), page.Meta.Total)
	})

	t.Run("title filter", func(t *testing.T) {
		var page types.Collection[types.PodcastResource]
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts?title=show%20c", nil), http.StatusOK, &page)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Show C", page.Data[0].Title)
	})

	t.Run("featured filter", func(t *testing.T) {
		var page types.Collection[types.PodcastResource]
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts?featured=true", nil), http.StatusOK, &page)
		assert.Equal(t, int64(2), page.Meta.Total)
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts?featured=0", nil), http.StatusOK, &page)
		assert.Equal(t, int64(5), page.Meta.Total)
	})

	t.Run("sort by title asc", func(t *testing.T) {
		var page types.Collection[types.PodcastResource]
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts?sort_by=title&sort_direction=asc&per_page=2&page=2", nil), http.StatusOK, &page)
		require.Len(t, page.Data, 2)
		assert.Equal(t, "Show C", page.Data[0].Title)
		assert.Equal(t, "Show D", page.Data[1].Title)
		assert.Equal(t, 3, page.Meta.LastPage)
		require.NotNil(t, page.Links.Prev)
		assert.Contains(t, *page.Links.Prev, "page=1")
		assert.Contains(t, *page.Links.Prev, "sort_by=title")
	})

	t.Run("invalid sort", func(t *testing.T) {
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts?sort_by=slug", nil), http.StatusBadRequest, nil)
	})
}

func TestPodcastFeatured(t *testing.T) {
	h := apitest.New(t)
	category := databasetest.Category(t, h.DB)
	for range 3 {
		databasetest.Podcast(t, h.DB, category.ID, func(p *models.Podcast) { p.IsFeatured = true })
	}
	databasetest.Podcast(t, h.DB, category.ID)

	var items []types.PodcastResource
	apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts/featured?limit=2", nil), http.StatusOK, &items)
	assert.Len(t, items, 2)

	apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts/featured?limit=abc", nil), http.StatusOK, &items)
	assert.Len(t, items, 3)
	for _, p := range items {
		assert.True(t, p.IsFeatured)
	}
}

func TestPodcastEpisodes(t *testing.T) {
	h := apitest.New(t)
	category := databasetest.Category(t, h.DB)
	podcast := databasetest.Podcast(t, h.DB, category.ID)
	other := databasetest.Podcast(t, h.DB, category.ID)
	for day := 1; day <= 3; day++ {
		databasetest.Episode(t, h.DB, podcast.ID, func(e *models.Episode) {
			e.PublishedAt = time.Date(2024, 5, day, 10, 0, 0, 0, time.UTC)
			e.Title = fmt.Sprintf("Day %d", day)
		})
	}
	databasetest.Episode(t, h.DB, other.ID)

	var page types.Collection[types.EpisodeResource]
	apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/podcasts/"+podcast.Slug+"/episodes", nil), http.StatusOK, &page)
	assert.Equal(t, int64(3), page.Meta.Total)
	require.Len(t, page.Data, 3)
	assert.Equal(t, "Day 3", page.Data[0].Title)
	assert.Equal(t, "Day 1", page.Data[2].Title)
}
