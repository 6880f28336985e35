package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

const notFoundMessage = "Category not found"

// GetBySlug returns one category with its podcast count
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        slug path string true "Category slug"
// @Success      200 {object} types.Response{data=types.CategoryResource}
// @Failure      404 {object} types.ErrorResponse "Category not found"
// @Router       /api/v1/categories/{slug} [get]
func GetBySlug(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		category, err := deps.Categories.FindBySlug(ctx, c.Param("slug"))
		if err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		count, err := deps.Categories.CountPodcasts(ctx, category.ID)
		if err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendSuccess(c, "", types.NewCategoryResource(category, &count))
	}
}
