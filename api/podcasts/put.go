package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

// Put overwrites a podcast. A tags array replaces the whole tag set; omit it to keep the current tags.
// @Summary      Update a podcast
// @Tags         podcasts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path int                true "Podcast ID"
// @Param        podcast body types.PodcastRequest true "Podcast"
// @Success      200 {object} types.Response{data=types.PodcastResource}
// @Failure      400 {object} types.ErrorResponse "Invalid podcast ID"
// @Failure      401 {object} types.ErrorResponse "Unauthenticated."
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Failure      422 {object} types.ErrorResponse "Validation errors"
// @Router       /api/v1/podcasts/{id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id", "podcast")
		if !ok {
			return
		}

		var req types.PodcastRequest
		if !types.BindAndValidate(c, deps, &req, id) {
			return
		}

		podcast, err := deps.Podcasts.UpdateWithTags(c.Request.Context(), id, req.Apply, req.TagIDs())
		if err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		types.SendSuccess(c, "Podcast updated successfully", types.NewPodcastResource(podcast, nil))
	}
}
