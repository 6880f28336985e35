package tags

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

const notFoundMessage = "Tag not found"

// GetBySlug returns one tag with the number of podcasts using it
// @Summary      Get a tag
// @Tags         tags
// @Produce      json
// @Param        slug path string true "Tag slug"
// @Success      200 {object} types.Response{data=types.TagResource}
// @Failure      404 {object} types.ErrorResponse "Tag not found"
// @Router       /api/v1/tags/{slug} [get]
func GetBySlug(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tag, err := deps.Tags.FindBySlug(ctx, c.Param("slug"))
		if err != nil {
			types.SendError(c, err, notFoundMessage)
			return
		}

		count, err := deps.Tags.CountPodcasts(ctx, tag.ID)
		if err != nil {
			types.SendError(c, err, "")
			return
		}

		types.SendSuccess(c, "", types.NewTagResource(tag, &count))
	}
}
