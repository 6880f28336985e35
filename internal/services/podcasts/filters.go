package podcasts

import "github.com/killallgit/catalog-api/internal/services/store"

// SortOptions lists the columns a podcast listing may be ordered by
var SortOptions = store.SortOptions{
	Allowed:     []string{"created_at", "title", "author_name"},
	DefaultBy:   "created_at",
	DefaultDesc: true,
}

// Scopes turns listing filters into predicates: title, author and featured
func Scopes(f store.Filters) []store.Scope {
	var scopes []store.Scope
	if title, ok := f.Get("title"); ok {
		scopes = append(scopes, store.Contains("title", title))
	}
	if author, ok := f.Get("author"); ok {
		scopes = append(scopes, store.Contains("author_name", author))
	}
	if f.Truthy("featured") {
		scopes = append(scopes, store.Featured())
	}
	return scopes
}
