package types

import (
	"log/slog"

	"github.com/killallgit/catalog-api/internal/database"
	"github.com/killallgit/catalog-api/internal/services/auth"
	"github.com/killallgit/catalog-api/internal/services/categories"
	"github.com/killallgit/catalog-api/internal/services/episodes"
	"github.com/killallgit/catalog-api/internal/services/podcasts"
	"github.com/killallgit/catalog-api/internal/services/ratelimit"
	"github.com/killallgit/catalog-api/internal/services/tags"
	"github.com/killallgit/catalog-api/pkg/config"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB         *database.DB
	Categories categories.CategoryRepository
	Podcasts   podcasts.PodcastRepository
	Episodes   episodes.EpisodeRepository
	Tags       tags.TagRepository
	Auth       *auth.Service
	Limiter    ratelimit.Limiter
	Logger     *slog.Logger
	Pagination config.PaginationConfig
}

// NewDependencies wires the repositories and token service over db.
// The rate limiter is chosen by the caller.
func NewDependencies(db *database.DB, cfg *config.Config, logger *slog.Logger) *Dependencies {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dependencies{
		DB:         db,
		Categories: categories.NewRepository(db.DB),
		Podcasts:   podcasts.NewRepository(db.DB),
		Episodes:   episodes.NewRepository(db.DB),
		Tags:       tags.NewRepository(db.DB),
		Auth:       auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL),
		Logger:     logger,
		Pagination: cfg.Pagination,
	}
}
