package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

// Delete removes a podcast, its episodes and its tag links
// @Summary      Delete a podcast
// @Tags         podcasts
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.Response "Podcast deleted successfully"
// @Failure      400 {object} types.ErrorResponse "Invalid podcast ID"
// @Failure      401 {object} types.ErrorResponse "Unauthenticated."
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id", "podcast")
		if !ok {
			return
		}

		if _, err := deps.Podcasts.Delete(c.Request.Context(), id); err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		types.SendSuccess(c, "Podcast deleted successfully", nil)
	}
}
