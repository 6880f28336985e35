package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/auth"
	"github.com/killallgit/catalog-api/internal/database/databasetest"
	"github.com/killallgit/catalog-api/internal/services/ratelimit"
	"github.com/killallgit/catalog-api/pkg/config"
	"github.com/killallgit/catalog-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLimiter struct {
	mock.Mock
}

func (m *mockLimiter) Allow(ctx context.Context, key string) (ratelimit.Result, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(ratelimit.Result), args.Error(1)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		cfg             config.SecurityConfig
		method          string
		origin          string
		expectedStatus  int
		expectedOrigin  string
		expectAllowed   bool
		expectedMethods string
	}{
		{
			name:            "preflight with wildcard",
			cfg:             config.SecurityConfig{CORSOrigins: []string{"*"}},
			method:          http.MethodOptions,
			origin:          "https://example.com",
			expectedStatus:  http.StatusNoContent,
			expectedOrigin:  "*",
			expectAllowed:   true,
			expectedMethods: "GET,POST,PUT,DELETE,OPTIONS",
		},
		{
			name:           "simple GET with wildcard",
			cfg:            config.SecurityConfig{CORSOrigins: []string{"*"}},
			method:         http.MethodGet,
			origin:         "https://example.com",
			expectedStatus: http.StatusOK,
			expectedOrigin: "*",
			expectAllowed:  true,
		},
		{
			name:           "listed origin",
			cfg:            config.SecurityConfig{CORSOrigins: []string{"https://app.example.com"}},
			method:         http.MethodGet,
			origin:         "https://app.example.com",
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://app.example.com",
			expectAllowed:  true,
		},
		{
			name:           "unlisted origin",
			cfg:            config.SecurityConfig{CORSOrigins: []string{"https://app.example.com"}},
			method:         http.MethodGet,
			origin:         "https://evil.example.com",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.cfg))
			router.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

			req := httptest.NewRequest(tt.method, "/test", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectAllowed {
				assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
			if tt.expectedMethods != "" {
				assert.Equal(t, tt.expectedMethods, w.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}

func TestRequestSizeLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		method         string
		bodySize       int
		expectedStatus int
	}{
		{"small POST", http.MethodPost, 512, http.StatusOK},
		{"POST at limit", http.MethodPost, 1024, http.StatusOK},
		{"oversized POST", http.MethodPost, 2048, http.StatusRequestEntityTooLarge},
		{"oversized PUT", http.MethodPut, 2048, http.StatusRequestEntityTooLarge},
		{"GET is not limited", http.MethodGet, 2048, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestSizeLimitWithSize(1024))
			router.Handle(tt.method, "/test", func(c *gin.Context) {
				if _, err := io.ReadAll(c.Request.Body); err != nil {
					c.String(http.StatusRequestEntityTooLarge, "too large")
					return
				}
				c.String(http.StatusOK, "ok")
			})

			req := httptest.NewRequest(tt.method, "/test", strings.NewReader(strings.Repeat("a", tt.bodySize)))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(requestIDKey)) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "client-supplied", w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 100))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery(databasetest.Logger()))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error","data":null}`, w.Body.String())
}

func TestPerClientRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(limiter ratelimit.Limiter, userID string) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if userID != "" {
				c.Set(auth.UserIDKey, userID)
			}
			c.Next()
		})
		router.Use(PerClientRateLimit(limiter, databasetest.Logger()))
		router.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		return router
	}

	serve := func(router *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("allowed request carries quota headers", func(t *testing.T) {
		limiter := &mockLimiter{}
		limiter.On("Allow", mock.Anything, "api:203.0.113.7").
			Return(ratelimit.Result{Allowed: true, Limit: 60, Remaining: 59, ResetAfter: time.Second}, nil).Once()

		w := serve(newRouter(limiter, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "60", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "59", w.Header().Get("X-RateLimit-Remaining"))
		reset, err := strconv.ParseInt(w.Header().Get("X-RateLimit-Reset"), 10, 64)
		require.NoError(t, err)
		assert.InDelta(t, time.Now().Add(time.Second).Unix(), reset, 2)
		limiter.AssertExpectations(t)
	})

	t.Run("authenticated callers are keyed by subject", func(t *testing.T) {
		limiter := &mockLimiter{}
		limiter.On("Allow", mock.Anything, "api:user-7").
			Return(ratelimit.Result{Allowed: true, Limit: 60, Remaining: 10}, nil).Once()

		w := serve(newRouter(limiter, "user-7"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Reset"))
		limiter.AssertExpectations(t)
	})

	t.Run("over quota", func(t *testing.T) {
		limiter := &mockLimiter{}
		limiter.On("Allow", mock.Anything, "api:203.0.113.7").
			Return(ratelimit.Result{Allowed: false, Limit: 60, Remaining: 0, RetryAfter: 1500 * time.Millisecond}, nil).Once()

		w := serve(newRouter(limiter, ""))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		assert.JSONEq(t, `{"success":false,"message":"Too Many Requests","data":null,"retry_after":2}`, w.Body.String())
	})

	t.Run("backend failure lets the request through", func(t *testing.T) {
		limiter := &mockLimiter{}
		limiter.On("Allow", mock.Anything, mock.Anything).
			Return(ratelimit.Result{}, errors.New("connection refused")).Once()

		w := serve(newRouter(limiter, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("backend outage is logged once per interval", func(t *testing.T) {
		limiter := &mockLimiter{}
		limiter.On("Allow", mock.Anything, mock.Anything).
			Return(ratelimit.Result{}, errors.New("connection refused")).Times(5)

		var logs bytes.Buffer
		router := gin.New()
		router.Use(PerClientRateLimit(limiter, logger.NewWithWriter(&logs, "debug", "json")))
		router.GET("/test", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		for range 5 {
			assert.Equal(t, http.StatusOK, serve(router).Code)
		}
		assert.Equal(t, 1, strings.Count(logs.String(), "rate limiter unavailable"))
		limiter.AssertExpectations(t)
	})
}

func TestCeilSeconds(t *testing.T) {
	assert.Equal(t, 1, ceilSeconds(0))
	assert.Equal(t, 1, ceilSeconds(200*time.Millisecond))
	assert.Equal(t, 20, ceilSeconds(20*time.Second))
	assert.Equal(t, 21, ceilSeconds(20*time.Second+time.Nanosecond))
}
