package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
)

// RegisterRoutes registers podcast routes. requireAuth guards the writes.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, requireAuth gin.HandlerFunc) {
	// GET /api/v1/podcasts
	router.GET("", GetAll(deps))
	router.GET("/featured", GetFeatured(deps))
	router.GET("/:slug", GetBySlug(deps))
	router.GET("/:slug/episodes", GetEpisodes(deps))

	router.POST("", requireAuth, Post(deps))
	router.PUT("/:id", requireAuth, Put(deps))
	router.DELETE("/:id", requireAuth, Delete(deps))
}
