package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/models"
)

// GetAll returns podcasts matching the query filters, one page at a time
// @Summary      List podcasts
// @Description  Filter by title, author and featured flag. Each podcast carries its category.
// @Tags         podcasts
// @Produce      json
// @Param        title          query string false "Title contains (case-insensitive)"
// @Param        author         query string false "Author name contains (case-insensitive)"
// @Param        featured       query string false "Only featured when 1, true, yes or on"
// @Param        sort_by        query string false "created_at, title or author_name" default(created_at)
// @Param        sort_direction query string false "asc or desc" default(desc)
// @Param        page           query int    false "Page number" default(1)
// @Param        per_page       query int    false "Page size (max 100)" default(15)
// @Success      200 {object} types.Response{data=types.Collection[types.PodcastResource]}
// @Failure      400 {object} types.ErrorResponse "Invalid sort field or direction"
// @Router       /api/v1/podcasts [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := deps.Podcasts.GetFiltered(c.Request.Context(), types.Filters(c), types.PageRequest(c, deps))
		if err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendSuccess(c, "", types.NewCollection(c, page, func(m *models.Podcast) types.PodcastResource {
			return types.NewPodcastResource(m, nil)
		}))
	}
}
