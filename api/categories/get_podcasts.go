package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/models"
)

// GetPodcasts returns the podcasts of a category, newest first
// @Summary      Podcasts in a category
// @Tags         categories
// @Produce      json
// @Param        slug     path  string true  "Category slug"
// @Param        page     query int    false "Page number" default(1)
// @Param        per_page query int    false "Page size (max 100)" default(15)
// @Success      200 {object} types.Response{data=types.Collection[types.PodcastResource]}
// @Failure      404 {object} types.ErrorResponse "Category not found"
// @Router       /api/v1/categories/{slug}/podcasts [get]
func GetPodcasts(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		category, err := deps.Categories.FindBySlug(ctx, c.Param("slug"))
		if err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		page, err := deps.Podcasts.GetByCategory(ctx, category.ID, types.PageRequest(c, deps))
		if err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendSuccess(c, "", types.NewCollection(c, page, func(m *models.Podcast) types.PodcastResource {
			return types.NewPodcastResource(m, nil)
		}))
	}
}
