package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

// Delete removes a category together with its podcasts and their episodes
// @Summary      Delete a category
// @Tags         categories
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} types.Response "Category deleted successfully"
// @Failure      400 {object} types.ErrorResponse "Invalid category ID"
// @Failure      401 {object} types.ErrorResponse "Unauthenticated."
// @Failure      404 {object} types.ErrorResponse "Category not found"
// @Router       /api/v1/categories/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id", "category")
		if !ok {
			return
		}

		if _, err := deps.Categories.Delete(c.Request.Context(), id); err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		types.SendSuccess(c, "Category deleted successfully", nil)
	}
}
