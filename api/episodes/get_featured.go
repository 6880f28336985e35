package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/episodes"
)

// GetFeatured returns the latest featured episodes with their podcast
// @Summary      Featured episodes
// @Tags         episodes
// @Produce      json
// @Param        limit query int false "Maximum number of episodes" default(5)
// @Success      200 {object} types.Response{data=[]types.EpisodeResource}
// @Router       /api/v1/episodes/featured [get]
func GetFeatured(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := deps.Episodes.GetFeatured(c.Request.Context(), types.ParseLimit(c, episodes.DefaultFeaturedLimit))
		if err != nil {
			types.SendError(c, err, "")
			return
		}
		types.SendSuccess(c, "", types.EpisodeResources(items))
	}
}
