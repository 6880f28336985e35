package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

// Put overwrites a category
// @Summary      Update a category
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path int                 true "Category ID"
// @Param        category body types.CategoryRequest true "Category"
// @Success      200 {object} types.Response{data=types.CategoryResource}
// @Failure      400 {object} types.ErrorResponse "Invalid category ID"
// @Failure      401 {object} types.ErrorResponse "Unauthenticated."
// @Failure      404 {object} types.ErrorResponse "Category not found"
// @Failure      422 {object} types.ErrorResponse "Validation errors"
// @Router       /api/v1/categories/{id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id", "category")
		if !ok {
			return
		}

		var req types.CategoryRequest
		if !types.BindAndValidate(c, deps, &req, id) {
			return
		}

		category, err := deps.Categories.Update(c.Request.Context(), id, req.Apply)
		if err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		types.SendSuccess(c, "Category updated successfully", types.NewCategoryResource(category, nil))
	}
}
