// Package apitest runs the full HTTP stack against a migrated SQLite database.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/database"
	"github.com/killallgit/catalog-api/internal/database/databasetest"
	"github.com/killallgit/catalog-api/internal/services/ratelimit"
	"github.com/killallgit/catalog-api/pkg/config"
	"github.com/stretchr/testify/require"
)

// Harness is a ready server plus a token accepted by its write routes
type Harness struct {
	t      testing.TB
	Engine *gin.Engine
	DB     *database.DB
	Deps   *types.Dependencies
	Token  string
}

// Option adjusts the configuration before the server is built
type Option func(*config.Config)

// WithRateLimit enables the in-memory limiter at perMinute requests
func WithRateLimit(perMinute int) Option {
	return func(cfg *config.Config) {
		cfg.RateLimiting.Enabled = true
		cfg.RateLimiting.PerMinute = perMinute
	}
}

// Config is the baseline used by New: rate limiting off, CORS open
func Config() *config.Config {
	return &config.Config{
		Environment: "test",
		Server:      config.ServerConfig{Host: "127.0.0.1", Port: 8080, Mode: gin.TestMode},
		Database:    config.DatabaseConfig{Driver: database.DriverSQLite},
		Auth:        config.AuthConfig{JWTSecret: "test-secret", Issuer: "catalog-api", TokenTTL: time.Hour},
		RateLimiting: config.RateLimitConfig{
			Enabled:   false,
			PerMinute: 60,
			Backend:   "memory",
		},
		Security: config.SecurityConfig{
			EnableCORS:   true,
			CORSOrigins:  []string{"*"},
			MaxBodyBytes: 1 << 20,
		},
		Pagination: config.PaginationConfig{DefaultPerPage: 15, MaxPerPage: 100},
	}
}

// New builds and initializes a server over a fresh database
func New(t testing.TB, opts ...Option) *Harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := Config()
	for _, opt := range opts {
		opt(cfg)
	}

	db := databasetest.New(t)
	deps := types.NewDependencies(db, cfg, databasetest.Logger())
	if cfg.RateLimiting.Enabled {
		deps.Limiter = ratelimit.NewMemoryLimiter(cfg.RateLimiting.PerMinute, ratelimit.DefaultWindow)
	}

	server := api.NewServer(cfg, deps)
	require.NoError(t, server.Initialize())

	token, err := deps.Auth.IssueToken("user-1", "Test User")
	require.NoError(t, err)

	return &Harness{t: t, Engine: server.Engine(), DB: db, Deps: deps, Token: token}
}

// Do sends an unauthenticated request. body is JSON-encoded unless it is a string.
func (h *Harness) Do(method, path string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	return h.do(method, path, body, "")
}

// DoAuth sends the request with the harness bearer token
func (h *Harness) DoAuth(method, path string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	return h.do(method, path, body, h.Token)
}

func (h *Harness) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	h.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.Engine.ServeHTTP(w, req)
	return w
}

// Envelope is the decoded response body; Data stays raw for typed decoding
type Envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       json.RawMessage     `json:"data"`
	Errors     map[string][]string `json:"errors"`
	RetryAfter *int                `json:"retry_after"`
}

// Decode parses the envelope and, when data is non-nil, its data member
func Decode(t testing.TB, w *httptest.ResponseRecorder, data any) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data), "data: %s", string(env.Data))
	}
	return env
}

// Expect asserts the status code and returns the decoded envelope
func Expect(t testing.TB, w *httptest.ResponseRecorder, status int, data any) Envelope {
	t.Helper()
	require.Equal(t, status, w.Code, "body: %s", w.Body.String())
	return Decode(t, w, data)
}

// Count returns the number of rows in model's table
func (h *Harness) Count(model any) int64 {
	h.t.Helper()
	var n int64
	require.NoError(h.t, h.DB.Model(model).Count(&n).Error)
	return n
}
