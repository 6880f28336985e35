package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/models"
)

// Post creates a category
// @Summary      Create a category
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        category body types.CategoryRequest true "Category"
// @Success      201 {object} types.Response{data=types.CategoryResource}
// @Failure      400 {object} types.ErrorResponse "Invalid request body"
// @Failure      401 {object} types.ErrorResponse "Unauthenticated."
// @Failure      422 {object} types.ErrorResponse "Validation errors"
// @Router       /api/v1/categories [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CategoryRequest
		if !types.BindAndValidate(c, deps, &req, 0) {
			return
		}

		var category models.Category
		req.Apply(&category)
		if err := deps.Categories.Create(c.Request.Context(), &category); err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendCreated(c, "Category created successfully", types.NewCategoryResource(&category, nil))
	}
}
