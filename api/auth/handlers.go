package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/internal/services/auth"
)

// Context keys set for authenticated requests
const (
	ClaimsKey = "claims"
	UserIDKey = "user_id"
)

// Handler holds the bearer token middleware
type Handler struct {
	authService *auth.Service
}

// NewHandler creates a new auth handler
func NewHandler(authService *auth.Service) *Handler {
	return &Handler{
		authService: authService,
	}
}

// bearerClaims returns the validated claims of the Authorization header, if any
func (h *Handler) bearerClaims(c *gin.Context) (*auth.Claims, bool) {
	if h == nil || h.authService == nil {
		return nil, false
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return nil, false
	}

	claims, err := h.authService.ValidateToken(strings.TrimSpace(token))
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(ClaimsKey, claims)
	c.Set(UserIDKey, claims.UserID())
}

// AuthMiddleware rejects requests without a valid bearer token
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// already validated by OptionalAuthMiddleware
		if _, exists := c.Get(ClaimsKey); exists {
			c.Next()
			return
		}

		claims, ok := h.bearerClaims(c)
		if !ok {
			types.SendUnauthorized(c)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware validates JWT if present but doesn't require it
func (h *Handler) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := h.bearerClaims(c); ok {
			setClaims(c, claims)
		}
		c.Next()
	}
}

// UserID returns the authenticated subject, or "" for anonymous requests
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
