package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

const notFoundMessage = "Podcast not found"

// GetBySlug returns one podcast with its category, tags and episode count
// @Summary      Get a podcast
// @Tags         podcasts
// @Produce      json
// @Param        slug path string true "Podcast slug"
// @Success      200 {object} types.Response{data=types.PodcastResource}
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{slug} [get]
func GetBySlug(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		podcast, err := deps.Podcasts.FindBySlug(ctx, c.Param("slug"))
		if err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		count, err := deps.Podcasts.CountEpisodes(ctx, podcast.ID)
		if err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendSuccess(c, "", types.NewPodcastResource(podcast, &count))
	}
}
