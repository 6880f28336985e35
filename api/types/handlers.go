package types

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/internal/services/store"
)

// MaxListLimit caps the limit parameter of the flat featured and recent lists
const MaxListLimit = 100

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint.
// On failure it sends 400 "Invalid <entity> ID" and returns false.
func ParseUintParam(c *gin.Context, paramName, entity string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil || value == 0 {
		SendBadRequest(c, "Invalid "+entity+" ID")
		return 0, false
	}
	return uint(value), true
}

// PageRequest reads page and per_page using the configured bounds
func PageRequest(c *gin.Context, deps *Dependencies) store.PageRequest {
	return store.NewPageRequest(c.Query("page"), c.Query("per_page"),
		deps.Pagination.DefaultPerPage, deps.Pagination.MaxPerPage)
}

// Filters returns the listing filters carried by the query string
func Filters(c *gin.Context) store.Filters {
	return store.FiltersFromQuery(c.Request.URL.Query())
}

// ParseLimit reads the limit query parameter; missing or invalid values use def
func ParseLimit(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		return def
	}
	return min(limit, MaxListLimit)
}
