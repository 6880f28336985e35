package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/categories"
)

// GetFeatured returns featured categories in sort order
// @Summary      Featured categories
// @Tags         categories
// @Produce      json
// @Param        limit query int false "Maximum number of categories" default(5)
// @Success      200 {object} types.Response{data=[]types.CategoryResource}
// @Router       /api/v1/categories/featured [get]
func GetFeatured(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := types.ParseLimit(c, categories.DefaultFeaturedLimit)

		items, err := deps.Categories.GetFeatured(c.Request.Context(), limit)
		if err != nil {
			types.SendError(c, err, "")
			return
		}
		types.SendSuccess(c, "", types.CategoryResources(items))
	}
}
