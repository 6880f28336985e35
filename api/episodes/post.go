package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/models"
)

// Post creates an episode
// @Summary      Create an episode
// @Tags         episodes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        episode body types.EpisodeRequest true "Episode"
// @Success      201 {object} types.Response{data=types.EpisodeResource}
// @Failure      400 {object} types.ErrorResponse "Invalid request body"
// @Failure      401 {object} types.ErrorResponse "Unauthenticated."
// @Failure      422 {object} types.ErrorResponse "Validation errors"
// @Router       /api/v1/episodes [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.EpisodeRequest
		if !types.BindAndValidate(c, deps, &req, 0) {
			return
		}

		var episode models.Episode
		req.Apply(&episode)
		if err := deps.Episodes.Create(c.Request.Context(), &episode); err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendCreated(c, "Episode created successfully", types.NewEpisodeResource(&episode))
	}
}
