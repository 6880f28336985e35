package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/models"
)

// GetAll returns episodes matching the query filters, one page at a time
// @Summary      List episodes
// @Description  Filter by title, podcast, featured flag and an inclusive published_at range.
// @Description  A date-only to_date covers the whole day.
// @Tags         episodes
// @Produce      json
// @Param        title          query string false "Title contains (case-insensitive)"
// @Param        podcast_id     query int    false "Only episodes of this podcast"
// @Param        featured       query string false "Only featured when 1, true, yes or on"
// @Param        from_date      query string false "Published on or after (YYYY-MM-DD or RFC 3339)"
// @Param        to_date        query string false "Published on or before (YYYY-MM-DD or RFC 3339)"
// @Param        sort_by        query string false "published_at, title or duration_in_seconds" default(published_at)
// @Param        sort_direction query string false "asc or desc" default(desc)
// @Param        page           query int    false "Page number" default(1)
// @Param        per_page       query int    false "Page size (max 100)" default(15)
// @Success      200 {object} types.Response{data=types.Collection[types.EpisodeResource]}
// @Failure      400 {object} types.ErrorResponse "Invalid filter or sort"
// @Router       /api/v1/episodes [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := deps.Episodes.GetFiltered(c.Request.Context(), types.Filters(c), types.PageRequest(c, deps))
		if err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendSuccess(c, "", types.NewCollection(c, page, func(m *models.Episode) types.EpisodeResource {
			return types.NewEpisodeResource(m)
		}))
	}
}
