package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/podcasts"
)

// GetFeatured returns the newest featured podcasts
// @Summary      Featured podcasts
// @Tags         podcasts
// @Produce      json
// @Param        limit query int false "Maximum number of podcasts" default(5)
// @Success      200 {object} types.Response{data=[]types.PodcastResource}
// @Router       /api/v1/podcasts/featured [get]
func GetFeatured(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := deps.Podcasts.GetFeatured(c.Request.Context(), types.ParseLimit(c, podcasts.DefaultFeaturedLimit))
		if err != nil {
			types.SendError(c, err, "")
			return
		}
		types.SendSuccess(c, "", types.PodcastResources(items))
	}
}
