package tags

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/models"
)

// Post creates a tag
// @Summary      Create a tag
// @Tags         tags
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        tag body types.TagRequest true "Tag"
// @Success      201 {object} types.Response{data=types.TagResource}
// @Failure      401 {object} types.ErrorResponse "Unauthenticated."
// @Failure      422 {object} types.ErrorResponse "Validation errors"
// @Router       /api/v1/tags [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TagRequest
		if !types.BindAndValidate(c, deps, &req, 0) {
			return
		}

		var tag models.Tag
		req.Apply(&tag)
		if err := deps.Tags.Create(c.Request.Context(), &tag); err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendCreated(c, "Tag created successfully", types.NewTagResource(&tag, nil))
	}
}
