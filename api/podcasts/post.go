package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/models"
)

// Post creates a podcast and attaches the given tags in one transaction
// @Summary      Create a podcast
// @Tags         podcasts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        podcast body types.PodcastRequest true "Podcast"
// @Success      201 {object} types.Response{data=types.PodcastResource}
// @Failure      400 {object} types.ErrorResponse "Invalid request body"
// @Failure      401 {object} types.ErrorResponse "Unauthenticated."
// @Failure      422 {object} types.ErrorResponse "Validation errors"
// @Router       /api/v1/podcasts [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PodcastRequest
		if !types.BindAndValidate(c, deps, &req, 0) {
			return
		}

		var podcast models.Podcast
		req.Apply(&podcast)
		created, err := deps.Podcasts.CreateWithTags(c.Request.Context(), &podcast, req.TagIDs())
		if err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendCreated(c, "Podcast created successfully", types.NewPodcastResource(created, nil))
	}
}
