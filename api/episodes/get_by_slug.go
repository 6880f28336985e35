package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

const notFoundMessage = "Episode not found"

// GetBySlug returns one episode with its podcast, the podcast's category and tags
// @Summary      Get an episode
// @Tags         episodes
// @Produce      json
// @Param        slug path string true "Episode slug"
// @Success      200 {object} types.Response{data=types.EpisodeResource}
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/v1/episodes/{slug} [get]
func GetBySlug(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episode, err := deps.Episodes.FindBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}
		types.SendSuccess(c, "", types.NewEpisodeResource(episode))
	}
}
