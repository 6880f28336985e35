package categories

import "github.com/killallgit/catalog-api/internal/services/store"

// SortOptions lists the columns a category listing may be ordered by
var SortOptions = store.SortOptions{
	Allowed:   []string{"sort_order", "name", "created_at"},
	DefaultBy: "sort_order",
}

// Scopes turns listing filters into predicates: name (substring) and featured
func Scopes(f store.Filters) []store.Scope {
	var scopes []store.Scope
	if name, ok := f.Get("name"); ok {
		scopes = append(scopes, store.Contains("name", name))
	}
	if f.Truthy("featured") {
		scopes = append(scopes, store.Featured())
	}
	return scopes
}
