package tags

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

// Delete removes a tag and detaches it from every podcast
// @Summary      Delete a tag
// @Tags         tags
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Tag ID"
// @Success      200 {object} types.Response "Tag deleted successfully"
// @Failure      400 {object} types.ErrorResponse "Invalid tag ID"
// @Failure      401 {object} types.ErrorResponse "Unauthenticated."
// @Failure      404 {object} types.ErrorResponse "Tag not found"
// @Router       /api/v1/tags/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id", "tag")
		if !ok {
			return
		}

		if _, err := deps.Tags.Delete(c.Request.Context(), id); err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		types.SendSuccess(c, "Tag deleted successfully", nil)
	}
}
