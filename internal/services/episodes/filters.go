package episodes

import "github.com/killallgit/catalog-api/internal/services/store"

// SortOptions lists the columns an episode listing may be ordered by
var SortOptions = store.SortOptions{
	Allowed:     []string{"published_at", "title", "duration_in_seconds"},
	DefaultBy:   "published_at",
	DefaultDesc: true,
}

// Scopes turns listing filters into predicates. podcast_id, from_date and
// to_date must parse; to_date given as a bare date includes that whole day.
func Scopes(f store.Filters) ([]store.Scope, error) {
	var scopes []store.Scope
	if title, ok := f.Get("title"); ok {
		scopes = append(scopes, store.Contains("title", title))
	}

	podcastID, ok, err := f.Uint("podcast_id")
	if err != nil {
		return nil, err
	}
	if ok {
		scopes = append(scopes, store.Equals("podcast_id", podcastID))
	}

	if f.Truthy("featured") {
		scopes = append(scopes, store.Featured())
	}

	from, hasFrom, err := f.Date("from_date", false)
	if err != nil {
		return nil, err
	}
	to, hasTo, err := f.Date("to_date", true)
	if err != nil {
		return nil, err
	}
	if hasFrom || hasTo {
		scopes = append(scopes, store.Between("published_at", from, to))
	}
	return scopes, nil
}
