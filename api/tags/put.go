package tags

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

// Put renames a tag
// @Summary      Update a tag
// @Tags         tags
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id  path int            true "Tag ID"
// @Param        tag body types.TagRequest true "Tag"
// @Success      200 {object} types.Response{data=types.TagResource}
// @Failure      400 {object} types.ErrorResponse "Invalid tag ID"
// @Failure      401 {object} types.ErrorResponse "Unauthenticated."
// @Failure      404 {object} types.ErrorResponse "Tag not found"
// @Failure      422 {object} types.ErrorResponse "Validation errors"
// @Router       /api/v1/tags/{id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id", "tag")
		if !ok {
			return
		}

		var req types.TagRequest
		if !types.BindAndValidate(c, deps, &req, id) {
			return
		}

		tag, err := deps.Tags.Update(c.Request.Context(), id, req.Apply)
		if err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		types.SendSuccess(c, "Tag updated successfully", types.NewTagResource(tag, nil))
	}
}
