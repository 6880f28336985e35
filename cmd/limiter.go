package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/killallgit/catalog-api/internal/services/ratelimit"
	"github.com/killallgit/catalog-api/pkg/config"
)

// newLimiter builds the configured rate limiter. The returned func releases
// its resources; it is safe to call when limiting is disabled.
func newLimiter(ctx context.Context, cfg *config.RateLimitConfig, redisURL string) (ratelimit.Limiter, func(), error) {
	noop := func() {}
	if !cfg.Enabled {
		return nil, noop, nil
	}

	switch cfg.Backend {
	case "redis":
		client, err := ratelimit.NewRedisClient(ctx, redisURL)
		if err != nil {
			return nil, noop, err
		}
		appLogger.Info("rate limiting with redis", slog.Int("per_minute", cfg.PerMinute))
		return ratelimit.NewRedisLimiter(client, cfg.PerMinute, ratelimit.DefaultWindow), func() { _ = client.Close() }, nil
	case "memory", "":
		limiter := ratelimit.NewMemoryLimiter(cfg.PerMinute, ratelimit.DefaultWindow)
		if cfg.CleanupInterval > 0 {
			limiter.StartCleanup(cfg.CleanupInterval)
		}
		appLogger.Info("rate limiting in memory", slog.Int("per_minute", cfg.PerMinute))
		return limiter, limiter.Stop, nil
	default:
		return nil, noop, fmt.Errorf("unsupported rate limiting backend: %q", cfg.Backend)
	}
}
