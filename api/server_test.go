package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api"
	"github.com/killallgit/catalog-api/api/apitest"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/database/databasetest"
	"github.com/killallgit/catalog-api/internal/services/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownRoute(t *testing.T) {
	h := apitest.New(t)

	for _, path := range []string{"/api/v1/nothing", "/api/v2/podcasts", "/"} {
		w := h.Do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"success":false,"message":"API endpoint not found","data":null}`, w.Body.String())
	}
}

func TestDocumentation(t *testing.T) {
	h := apitest.New(t)

	var data map[string]string
	env := apitest.Expect(t, h.Do(http.MethodGet, "/api/v1/documentation", nil), http.StatusOK, &data)
	assert.True(t, env.Success)
	assert.Equal(t, "/docs/index.html", data["swagger_ui"])

	w := h.Do(http.MethodGet, "/docs/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/podcasts/{slug}")

	w = h.Do(http.MethodGet, "/docs", nil)
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
}

func TestRequestIDOnEveryResponse(t *testing.T) {
	h := apitest.New(t)

	w := h.Do(http.MethodGet, "/health", nil)
	assert.NotEmpty(t, w.Header().Get(api.RequestIDHeader))

	w = h.Do(http.MethodGet, "/api/v1/missing", nil)
	assert.NotEmpty(t, w.Header().Get(api.RequestIDHeader))
}

func TestRateLimitedAPI(t *testing.T) {
	h := apitest.New(t, apitest.WithRateLimit(3))

	for i := range 3 {
		w := h.Do(http.MethodGet, "/api/v1/tags", nil)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := h.Do(http.MethodGet, "/api/v1/tags", nil)
	env := apitest.Expect(t, w, http.StatusTooManyRequests, nil)
	assert.Equal(t, "Too Many Requests", env.Message)
	require.NotNil(t, env.RetryAfter)
	assert.Positive(t, *env.RetryAfter)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// authenticated callers are counted separately
	w = h.DoAuth(http.MethodGet, "/api/v1/tags", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// health and version sit outside the quota
	assert.Equal(t, http.StatusOK, h.Do(http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, h.Do(http.MethodGet, "/version", nil).Code)
}

func TestRateLimitDisabled(t *testing.T) {
	h := apitest.New(t)

	for range 20 {
		w := h.Do(http.MethodGet, "/api/v1/categories", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestServerLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := apitest.Config()
	cfg.Server.Port = 9321

	db := databasetest.New(t)
	deps := types.NewDependencies(db, cfg, databasetest.Logger())
	limiter := ratelimit.NewMemoryLimiter(10, time.Minute)
	limiter.StartCleanup(time.Hour)
	deps.Limiter = limiter

	server := api.NewServer(cfg, deps)
	require.NoError(t, server.Initialize())
	assert.Equal(t, "127.0.0.1:9321", server.Addr())

	w := httptest.NewRecorder()
	server.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// shutting down a server that never started only stops the limiter
	require.NoError(t, server.Shutdown(context.Background()))
	require.NoError(t, server.Shutdown(context.Background()))
}

func TestRegisterRoutesRequiresDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	err := api.RegisterRoutes(gin.New(), nil, nil, apitest.Config())
	assert.Error(t, err)
}
