package tags

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/models"
)

// GetAll returns tags, alphabetically by default
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Param        name           query string false "Name contains (case-insensitive)"
// @Param        sort_by        query string false "name or created_at" default(name)
// @Param        sort_direction query string false "asc or desc" default(asc)
// @Param        page           query int    false "Page number" default(1)
// @Param        per_page       query int    false "Page size (max 100)" default(15)
// @Success      200 {object} types.Response{data=types.Collection[types.TagResource]}
// @Failure      400 {object} types.ErrorResponse "Invalid sort field or direction"
// @Router       /api/v1/tags [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := deps.Tags.GetFiltered(c.Request.Context(), types.Filters(c), types.PageRequest(c, deps))
		if err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendSuccess(c, "", types.NewCollection(c, page, func(m *models.Tag) types.TagResource {
			return types.NewTagResource(m, nil)
		}))
	}
}
