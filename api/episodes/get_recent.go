package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/episodes"
)

// GetRecent returns recent episodes across all podcasts
// @Summary      Get recent episodes
// @Description  Get the most recently published episodes across all podcasts
// @Tags         episodes
// @Produce      json
// @Param        limit query int false "Maximum number of episodes (1-100)" minimum(1) maximum(100) default(10)
// @Success      200 {object} types.Response{data=[]types.EpisodeResource}
// @Router       /api/v1/episodes/recent [get]
func GetRecent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := deps.Episodes.GetRecent(c.Request.Context(), types.ParseLimit(c, episodes.DefaultRecentLimit))
		if err != nil {
			types.SendError(c, err, "")
			return
		}
		types.SendSuccess(c, "", types.EpisodeResources(items))
	}
}
