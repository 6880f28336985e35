package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

// Put overwrites an episode
// @Summary      Update an episode
// @Tags         episodes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path int                true "Episode ID"
// @Param        episode body types.EpisodeRequest true "Episode"
// @Success      200 {object} types.Response{data=types.EpisodeResource}
// @Failure      400 {object} types.ErrorResponse "Invalid episode ID"
// @Failure      401 {object} types.ErrorResponse "Unauthenticated."
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Failure      422 {object} types.ErrorResponse "Validation errors"
// @Router       /api/v1/episodes/{id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id", "episode")
		if !ok {
			return
		}

		var req types.EpisodeRequest
		if !types.BindAndValidate(c, deps, &req, id) {
			return
		}

		episode, err := deps.Episodes.Update(c.Request.Context(), id, req.Apply)
		if err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		types.SendSuccess(c, "Episode updated successfully", types.NewEpisodeResource(episode))
	}
}
