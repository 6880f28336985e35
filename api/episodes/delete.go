package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

// Delete removes an episode
// @Summary      Delete an episode
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Episode ID"
// @Success      200 {object} types.Response "Episode deleted successfully"
// @Failure      400 {object} types.ErrorResponse "Invalid episode ID"
// @Failure      401 {object} types.ErrorResponse "Unauthenticated."
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/v1/episodes/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id", "episode")
		if !ok {
			return
		}

		if _, err := deps.Episodes.Delete(c.Request.Context(), id); err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		types.SendSuccess(c, "Episode deleted successfully", nil)
	}
}
