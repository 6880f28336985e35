package categories_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/killallgit/catalog-api/api/apitest"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/database/databasetest"
	"github.com/killallgit/catalog-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCategory() map[string]any {
	return map[string]any{
		"name":        "Technology",
		"slug":        "technology",
		"description": "Gadgets and software",
		"image_url":   "https://example.com/tech.png",
		"is_featured": true,
		"sort_order":  3,
	}
}

func TestCategoryCreateAndFetchBySlug(t *testing.T) {
	h := apitest.New(t)

	var created types.CategoryResource
	env := apitest.Expect(t, h.DoAuth(http.MethodPost, "/api/v1/categories", validCategory()), http.StatusCreated, &created)
	assert.True(t, env.Success)
	assert.Equal(t, "Category created successfully", env.Message)
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsFeatured)
	assert.Equal(t, 3, created.SortOrder)

	databasetest.Podcast(t, h.DB, created.ID)
	databasetest.Podcast(t, h.DB, created.ID)

	var fetched types.CategoryResource
	env = apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories/technology", nil), http.StatusOK, &fetched)
	assert.Equal(t, "", env.Message)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Technology", fetched.Name)
	require.NotNil(t, fetched.PodcastsCount)
	assert.Equal(t, int64(2), *fetched.PodcastsCount)
}

func TestCategoryNotFound(t *testing.T) {
	h := apitest.New(t)

	env := apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories/missing", nil), http.StatusNotFound, nil)
	assert.False(t, env.Success)
	assert.Equal(t, "Category not found", env.Message)
	assert.Equal(t, "null", string(env.Data))

	env = apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories/missing/podcasts", nil), http.StatusNotFound, nil)
	assert.Equal(t, "Category not found", env.Message)

	env = apitest.Expect(t, h.DoAuth(http.MethodDelete, "/api/v1/categories/999", nil), http.StatusNotFound, nil)
	assert.Equal(t, "Category not found", env.Message)

	env = apitest.Expect(t, h.DoAuth(http.MethodPut, "/api/v1/categories/999", validCategory()), http.StatusNotFound, nil)
	assert.Equal(t, "Category not found", env.Message)
}

func TestCategoryInvalidID(t *testing.T) {
	h := apitest.New(t)

	for _, path := range []string{"/api/v1/categories/abc", "/api/v1/categories/0"} {
		env := apitest.Expect(t, h.DoAuth(http.MethodDelete, path, nil), http.StatusBadRequest, nil)
		assert.Equal(t, "Invalid category ID", env.Message)
	}
}

func TestCategoryWritesRequireAuth(t *testing.T) {
	h := apitest.New(t)
	existing := databasetest.Category(t, h.DB)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"create", http.MethodPost, "/api/v1/categories", validCategory()},
		{"update", http.MethodPut, fmt.Sprintf("/api/v1/categories/%d", existing.ID), validCategory()},
		{"delete", http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", existing.ID), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := apitest.Expect(t, h.Do(tt.method, tt.path, tt.body), http.StatusUnauthorized, nil)
			assert.Equal(t, "Unauthenticated.", env.Message)
		})
	}

	assert.Equal(t, int64(1), h.Count(&models.Category{}))
	var reloaded models.Category
	require.NoError(t, h.DB.First(&reloaded, existing.ID).Error)
	assert.Equal(t, existing.Name, reloaded.Name)
}

func TestCategoryValidation(t *testing.T) {
	h := apitest.New(t)
	databasetest.Category(t, h.DB, func(c *models.Category) { c.Slug = "taken" })

	tests := []struct {
		name   string
		body   any
		fields map[string]string
	}{
		{
			name: "missing required fields",
			body: map[string]any{},
			fields: map[string]string{
				"name":      "The name field is required.",
				"slug":      "The slug field is required.",
				"image_url": "The image url field is required.",
			},
		},
		{
			name: "duplicate slug",
			body: map[string]any{"name": "Other", "slug": "taken", "image_url": "https://example.com/x.png"},
			fields: map[string]string{
				"slug": "The slug has already been taken.",
			},
		},
		{
			name: "bad formats",
			body: map[string]any{"name": "Other", "slug": "Not A Slug", "image_url": "nope", "sort_order": -1},
			fields: map[string]string{
				"slug":       "The slug field must only contain lowercase letters, numbers and dashes.",
				"image_url":  "The image url field must be a valid URL.",
				"sort_order": "The sort order field must be at least 0.",
			},
		},
		{
			name: "wrong type",
			body: `{"name":"Other","slug":"other","image_url":"https://example.com/x.png","is_featured":"yes"}`,
			fields: map[string]string{
				"is_featured": "The is featured field must be true or false.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := apitest.Expect(t, h.DoAuth(http.MethodPost, "/api/v1/categories", tt.body), http.StatusUnprocessableEntity, nil)
			assert.False(t, env.Success)
			assert.Equal(t, "Validation errors", env.Message)
			for field, msg := range tt.fields {
				assert.Contains(t, env.Errors[field], msg, "field %s", field)
			}
		})
	}

	assert.Equal(t, int64(1), h.Count(&models.Category{}))
}

func TestCategoryMalformedBody(t *testing.T) {
	h := apitest.New(t)

	env := apitest.Expect(t, h.DoAuth(http.MethodPost, "/api/v1/categories", `{"name":`), http.StatusBadRequest, nil)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestCategoryUpdate(t *testing.T) {
	h := apitest.New(t)
	existing := databasetest.Category(t, h.DB, func(c *models.Category) {
		c.SortOrder = 7
		desc := "kept"
		c.Description = &desc
	})

	body := map[string]any{"name": "Renamed", "slug": existing.Slug, "image_url": "https://example.com/new.png"}
	var updated types.CategoryResource
	env := apitest.Expect(t, h.DoAuth(http.MethodPut, fmt.Sprintf("/api/v1/categories/%d", existing.ID), body), http.StatusOK, &updated)
	assert.Equal(t, "Category updated successfully", env.Message)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "https://example.com/new.png", updated.ImageURL)
	// absent optional fields keep their stored values
	assert.Equal(t, 7, updated.SortOrder)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "kept", *updated.Description)
}

func TestCategoryDeleteCascades(t *testing.T) {
	h := apitest.New(t)
	category := databasetest.Category(t, h.DB)
	podcast := databasetest.Podcast(t, h.DB, category.ID)
	databasetest.Episode(t, h.DB, podcast.ID)
	tag := databasetest.Tag(t, h.DB)
	databasetest.Attach(t, h.DB, podcast.ID, tag.ID)

	env := apitest.Expect(t, h.DoAuth(http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", category.ID), nil), http.StatusOK, nil)
	assert.Equal(t, "Category deleted successfully", env.Message)
	assert.Equal(t, "null", string(env.Data))

	assert.Zero(t, h.Count(&models.Category{}))
	assert.Zero(t, h.Count(&models.Podcast{}))
	assert.Zero(t, h.Count(&models.Episode{}))
	assert.Zero(t, h.Count(&models.PodcastTag{}))
	assert.Equal(t, int64(1), h.Count(&models.Tag{}))
}

func TestCategoryListing(t *testing.T) {
	h := apitest.New(t)
	for i := range 5 {
		databasetest.Category(t, h.DB, func(c *models.Category) {
			c.Name = fmt.Sprintf("Science %d", i)
			c.SortOrder = 5 - i
			c.IsFeatured = i%2 == 0
		})
	}
	databasetest.Category(t, h.DB, func(c *models.Category) { c.Name = "Comedy"; c.SortOrder = 99 })

	t.Run("default order and pagination", func(t *testing.T) {
		var page types.Collection[types.CategoryResource]
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories?per_page=4", nil), http.StatusOK, &page)
		assert.Equal(t, int64(6), page.Meta.Total)
		assert.Equal(t, 2, page.Meta.LastPage)
		assert.Equal(t, 4, page.Meta.PerPage)
		require.Len(t, page.Data, 4)
		assert.Equal(t, "Science 4", page.Data[0].Name)
		assert.Nil(t, page.Links.Prev)
		require.NotNil(t, page.Links.Next)
		assert.Contains(t, *page.Links.Next, "page=2")
		assert.Contains(t, *page.Links.Next, "per_page=4")
	})

	t.Run("name filter", func(t *testing.T) {
		var page types.Collection[types.CategoryResource]
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories?name=science", nil), http.StatusOK, &page)
		assert.Equal(t, int64(5), page.Meta.Total)
		require.NotNil(t, page.Meta.From)
		assert.Equal(t, 1, *page.Meta.From)
		require.NotNil(t, page.Meta.To)
		assert.Equal(t, 5, *page.Meta.To)
	})

	t.Run("featured filter", func(t *testing.T) {
		var page types.Collection[types.CategoryResource]
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories?featured=1", nil), http.StatusOK, &page)
		assert.Equal(t, int64(3), page.Meta.Total)

		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories?featured=false", nil), http.StatusOK, &page)
		assert.Equal(t, int64(6), page.Meta.Total)
	})

	t.Run("sort by name desc", func(t *testing.T) {
		var page types.Collection[types.CategoryResource]
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories?sort_by=name&sort_direction=desc", nil), http.StatusOK, &page)
		require.NotEmpty(t, page.Data)
		assert.Equal(t, "Science 4", page.Data[0].Name)
		assert.Equal(t, "Comedy", page.Data[len(page.Data)-1].Name)
	})

	t.Run("invalid sort", func(t *testing.T) {
		env := apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories?sort_by=password", nil), http.StatusBadRequest, nil)
		assert.Contains(t, env.Message, "sort_by")
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories?sort_direction=sideways", nil), http.StatusBadRequest, nil)
	})

	t.Run("page past the end", func(t *testing.T) {
		var page types.Collection[types.CategoryResource]
		apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories?page=9", nil), http.StatusOK, &page)
		assert.Empty(t, page.Data)
		assert.Nil(t, page.Meta.From)
		assert.Equal(t, int64(6), page.Meta.Total)
	})
}

func TestCategoryFeatured(t *testing.T) {
	h := apitest.New(t)
	for i := range 4 {
		databasetest.Category(t, h.DB, func(c *models.Category) {
			c.IsFeatured = true
			c.SortOrder = 10 - i
		})
	}
	databasetest.Category(t, h.DB)

	var items []types.CategoryResource
	apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories/featured?limit=2", nil), http.StatusOK, &items)
	require.Len(t, items, 2)
	assert.Equal(t, 7, items[0].SortOrder)
	assert.Equal(t, 8, items[1].SortOrder)

	apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories/featured", nil), http.StatusOK, &items)
	assert.Len(t, items, 4)
	for _, item := range items {
		assert.True(t, item.IsFeatured)
	}
}

func TestCategoryPodcasts(t *testing.T) {
	h := apitest.New(t)
	category := databasetest.Category(t, h.DB)
	other := databasetest.Category(t, h.DB)
	for range 3 {
		databasetest.Podcast(t, h.DB, category.ID)
	}
	databasetest.Podcast(t, h.DB, other.ID)

	var page types.Collection[types.PodcastResource]
	apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/categories/"+category.Slug+"/podcasts", nil), http.StatusOK, &page)
	assert.Equal(t, int64(3), page.Meta.Total)
	for _, p := range page.Data {
		assert.Equal(t, category.ID, p.CategoryID)
		require.NotNil(t, p.Category)
		assert.Equal(t, category.Slug, p.Category.Slug)
	}
}
