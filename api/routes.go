package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/catalog-api/api/auth"
	"github.com/killallgit/catalog-api/api/categories"
	"github.com/killallgit/catalog-api/api/episodes"
	"github.com/killallgit/catalog-api/api/health"
	"github.com/killallgit/catalog-api/api/podcasts"
	"github.com/killallgit/catalog-api/api/tags"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/api/version"
	_ "github.com/killallgit/catalog-api/docs/swagger"
	"github.com/killallgit/catalog-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, authHandler *auth.Handler, cfg *config.Config) error {
	if deps == nil || cfg == nil {
		return errors.New("dependencies and config are required")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes. The caller is identified before the quota is applied.
	v1 := engine.Group("/api/v1")
	v1.Use(authHandler.OptionalAuthMiddleware())
	if deps.Limiter != nil && cfg.RateLimiting.Enabled {
		v1.Use(PerClientRateLimit(deps.Limiter, deps.Logger))
	}

	v1.GET("/documentation", Documentation())

	requireAuth := authHandler.AuthMiddleware()
	categories.RegisterRoutes(v1.Group("/categories"), deps, requireAuth)
	podcasts.RegisterRoutes(v1.Group("/podcasts"), deps, requireAuth)
	episodes.RegisterRoutes(v1.Group("/episodes"), deps, requireAuth)
	tags.RegisterRoutes(v1.Group("/tags"), deps, requireAuth)

	return nil
}

// Documentation points clients at the interactive API docs
// @Summary      API documentation links
// @Tags         system
// @Produce      json
// @Success      200 {object} types.Response
// @Router       /api/v1/documentation [get]
func Documentation() gin.HandlerFunc {
	return func(c *gin.Context) {
		types.SendSuccess(c, "", gin.H{
			"title":      version.Name,
			"version":    version.Version,
			"swagger_ui": "/docs/index.html",
			"openapi":    "/docs/doc.json",
		})
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		types.SendNotFound(c, "API endpoint not found")
	}
}
