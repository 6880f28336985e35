package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/models"
)

// GetEpisodes returns the episodes of a podcast, latest published first
// @Summary      Episodes of a podcast
// @Tags         podcasts
// @Produce      json
// @Param        slug     path  string true  "Podcast slug"
// @Param        page     query int    false "Page number" default(1)
// @Param        per_page query int    false "Page size (max 100)" default(15)
// @Success      200 {object} types.Response{data=types.Collection[types.EpisodeResource]}
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{slug}/episodes [get]
func GetEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		podcast, err := deps.Podcasts.FindBySlug(ctx, c.Param("slug"))
		if err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		page, err := deps.Episodes.GetByPodcast(ctx, podcast.ID, types.PageRequest(c, deps))
		if err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendSuccess(c, "", types.NewCollection(c, page, func(m *models.Episode) types.EpisodeResource {
			return types.NewEpisodeResource(m)
		}))
	}
}
