package store

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/killallgit/catalog-api/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// NewPageRequest parses raw page and per_page values. Missing or invalid
// values fall back to page 1 and defaultPerPage; per_page is capped at maxPerPage.
func NewPageRequest(page, perPage string, defaultPerPage, maxPerPage int) PageRequest {
	if defaultPerPage < 1 {
		defaultPerPage = DefaultPerPage
	}
	if maxPerPage < defaultPerPage {
		maxPerPage = max(defaultPerPage, MaxPerPage)
	}

	req := PageRequest{Page: 1, PerPage: defaultPerPage}
	if n, err := strconv.Atoi(strings.TrimSpace(page)); err == nil && n > 0 {
		req.Page = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(perPage)); err == nil && n > 0 {
		req.PerPage = min(n, maxPerPage)
	}
	return req
}

// Filters is the flat key/value view of listing query parameters
type Filters map[string]string

// FiltersFromQuery keeps the first value of every query parameter
func FiltersFromQuery(values url.Values) Filters {
	f := make(Filters, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			f[key] = vals[0]
		}
	}
	return f
}

// Get returns the trimmed value; blank values count as absent
func (f Filters) Get(key string) (string, bool) {
	v := strings.TrimSpace(f[key])
	return v, v != ""
}

// Truthy reports whether key carries an affirmative value. Anything else,
// "false" included, means the filter is not applied.
func (f Filters) Truthy(key string) bool {
	v, ok := f.Get(key)
	if !ok {
		return false
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Uint parses key as a positive id
func (f Filters) Uint(key string) (uint, bool, error) {
	v, ok := f.Get(key)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil || n == 0 {
		return 0, false, apperrors.BadRequest(fmt.Sprintf("Invalid %s value %q", key, v))
	}
	return uint(n), true, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// ParseDate accepts RFC3339, "YYYY-MM-DD HH:MM:SS" or "YYYY-MM-DD" (UTC
// assumed when no zone is given). dateOnly reports the last form.
func ParseDate(v string) (t time.Time, dateOnly bool, err error) {
	for _, layout := range dateLayouts {
		if t, err = time.Parse(layout, v); err == nil {
			return t.UTC(), layout == "2006-01-02", nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognized date %q", v)
}

// Date parses key with ParseDate. With endOfDay, a date-only value is moved
// to the last instant of that day so inclusive upper bounds cover it.
func (f Filters) Date(key string, endOfDay bool) (time.Time, bool, error) {
	v, ok := f.Get(key)
	if !ok {
		return time.Time{}, false, nil
	}
	t, dateOnly, err := ParseDate(v)
	if err != nil {
		return time.Time{}, false, apperrors.BadRequest(fmt.Sprintf("Invalid %s value %q", key, v))
	}
	if dateOnly && endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, true, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains is a case-insensitive substring match on a trusted column name
func Contains(column, value string) Scope {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", pattern)
	}
}

// Equals adds column = value with the column name quoted by gorm
func Equals(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	}
}

// Featured restricts to rows flagged is_featured
func Featured() Scope {
	return Equals("is_featured", true)
}

// Between bounds column inclusively; zero times leave that side open
func Between(column string, from, to time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if !from.IsZero() {
			db = db.Where(clause.Gte{Column: clause.Column{Name: column}, Value: from})
		}
		if !to.IsZero() {
			db = db.Where(clause.Lte{Column: clause.Column{Name: column}, Value: to})
		}
		return db
	}
}

// Sort is one validated order-by field and direction
type Sort struct {
	Field string
	Desc  bool
}

// Columns orders by the field and breaks ties on id in the same direction
func (s Sort) Columns() []clause.OrderByColumn {
	cols := []clause.OrderByColumn{{Column: clause.Column{Name: s.Field}, Desc: s.Desc}}
	if s.Field != "id" {
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: s.Desc})
	}
	return cols
}

// SortOptions is the allow-list and default ordering of an entity
type SortOptions struct {
	Allowed     []string
	DefaultBy   string
	DefaultDesc bool
}

// Default returns the entity's default ordering
func (o SortOptions) Default() Sort {
	return Sort{Field: o.DefaultBy, Desc: o.DefaultDesc}
}

// Resolve reads sort_by and sort_direction, rejecting anything outside the allow-list
func (o SortOptions) Resolve(f Filters) (Sort, error) {
	sort := o.Default()

	if by, ok := f.Get("sort_by"); ok {
		if !slices.Contains(o.Allowed, by) {
			return Sort{}, apperrors.BadRequest(fmt.Sprintf(
				"Invalid sort_by value %q, expected one of: %s", by, strings.Join(o.Allowed, ", ")))
		}
		sort.Field = by
	}

	if dir, ok := f.Get("sort_direction"); ok {
		switch strings.ToLower(dir) {
		case "asc":
			sort.Desc = false
		case "desc":
			sort.Desc = true
		default:
			return Sort{}, apperrors.BadRequest(fmt.Sprintf(
				"Invalid sort_direction value %q, expected asc or desc", dir))
		}
	}
	return sort, nil
}
