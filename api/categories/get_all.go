package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/models"
)

// GetAll returns categories matching the query filters, one page at a time
// @Summary      List categories
// @Description  Filter by name substring and featured flag, sort by sort_order, name or created_at.
// @Tags         categories
// @Produce      json
// @Param        name           query string false "Name contains (case-insensitive)"
// @Param        featured       query string false "Only featured when 1, true, yes or on"
// @Param        sort_by        query string false "sort_order, name or created_at" default(sort_order)
// @Param        sort_direction query string false "asc or desc" default(asc)
// @Param        page           query int    false "Page number" default(1)
// @Param        per_page       query int    false "Page size (max 100)" default(15)
// @Success      200 {object} types.Response{data=types.Collection[types.CategoryResource]}
// @Failure      400 {object} types.ErrorResponse "Invalid sort field or direction"
// @Router       /api/v1/categories [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := deps.Categories.GetFiltered(c.Request.Context(), types.Filters(c), types.PageRequest(c, deps))
		if err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendSuccess(c, "", types.NewCollection(c, page, func(m *models.Category) types.CategoryResource {
			return types.NewCategoryResource(m, nil)
		}))
	}
}
