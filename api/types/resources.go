package types

import (
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/store"
)

// Resources render exactly what the caller loaded: relations appear when
// they were preloaded and counts when the caller fetched them.

type CategoryResource struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   *string   `json:"description"`
	ImageURL      string    `json:"image_url"`
	IsFeatured    bool      `json:"is_featured"`
	SortOrder     int       `json:"sort_order"`
	PodcastsCount *int64    `json:"podcasts_count,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewCategoryResource(c *models.Category, podcastsCount *int64) CategoryResource {
	return CategoryResource{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		ImageURL:      c.ImageURL,
		IsFeatured:    c.IsFeatured,
		SortOrder:     c.SortOrder,
		PodcastsCount: podcastsCount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type PodcastResource struct {
	ID            uint              `json:"id"`
	CategoryID    uint              `json:"category_id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Description   *string           `json:"description"`
	ImageURL      string            `json:"image_url"`
	AuthorName    string            `json:"author_name"`
	IsFeatured    bool              `json:"is_featured"`
	Category      *CategoryResource `json:"category,omitempty"`
	Tags          *[]TagResource    `json:"tags,omitempty"`
	EpisodesCount *int64            `json:"episodes_count,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func NewPodcastResource(p *models.Podcast, episodesCount *int64) PodcastResource {
	r := PodcastResource{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Title:         p.Title,
		Slug:          p.Slug,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		AuthorName:    p.AuthorName,
		IsFeatured:    p.IsFeatured,
		EpisodesCount: episodesCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.Category != nil {
		category := NewCategoryResource(p.Category, nil)
		r.Category = &category
	}
	// gorm sets a preloaded many2many to an empty, non-nil slice
	if p.Tags != nil {
		tags := make([]TagResource, 0, len(p.Tags))
		for i := range p.Tags {
			tags = append(tags, NewTagResource(&p.Tags[i], nil))
		}
		r.Tags = &tags
	}
	return r
}

type EpisodeResource struct {
	ID                uint             `json:"id"`
	PodcastID         uint             `json:"podcast_id"`
	Title             string           `json:"title"`
	Slug              string           `json:"slug"`
	Description       *string          `json:"description"`
	AudioURL          string           `json:"audio_url"`
	DurationInSeconds int              `json:"duration_in_seconds"`
	FormattedDuration string           `json:"formatted_duration" example:"62:05"`
	Transcript        *string          `json:"transcript"`
	IsFeatured        bool             `json:"is_featured"`
	PublishedAt       time.Time        `json:"published_at"`
	Podcast           *PodcastResource `json:"podcast,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func NewEpisodeResource(e *models.Episode) EpisodeResource {
	r := EpisodeResource{
		ID:                e.ID,
		PodcastID:         e.PodcastID,
		Title:             e.Title,
		Slug:              e.Slug,
		Description:       e.Description,
		AudioURL:          e.AudioURL,
		DurationInSeconds: e.DurationInSeconds,
		FormattedDuration: e.FormattedDuration(),
		Transcript:        e.Transcript,
		IsFeatured:        e.IsFeatured,
		PublishedAt:       e.PublishedAt,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
	if e.Podcast != nil {
		podcast := NewPodcastResource(e.Podcast, nil)
		r.Podcast = &podcast
	}
	return r
}

type TagResource struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	PodcastsCount *int64    `json:"podcasts_count,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewTagResource(t *models.Tag, podcastsCount *int64) TagResource {
	return TagResource{
		ID:            t.ID,
		Name:          t.Name,
		Slug:          t.Slug,
		PodcastsCount: podcastsCount,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// Flat list helpers used by featured and recent endpoints

func CategoryResources(items []models.Category) []CategoryResource {
	out := make([]CategoryResource, 0, len(items))
	for i := range items {
		out = append(out, NewCategoryResource(&items[i], nil))
	}
	return out
}

func PodcastResources(items []models.Podcast) []PodcastResource {
	out := make([]PodcastResource, 0, len(items))
	for i := range items {
		out = append(out, NewPodcastResource(&items[i], nil))
	}
	return out
}

func EpisodeResources(items []models.Episode) []EpisodeResource {
	out := make([]EpisodeResource, 0, len(items))
	for i := range items {
		out = append(out, NewEpisodeResource(&items[i]))
	}
	return out
}

func TagResources(items []models.Tag) []TagResource {
	out := make([]TagResource, 0, len(items))
	for i := range items {
		out = append(out, NewTagResource(&items[i], nil))
	}
	return out
}

// PaginationLinks are relative URLs to neighbouring pages
type PaginationLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// PaginationMeta describes the position of a page in the result set
type PaginationMeta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          *int   `json:"to"`
	Total       int64  `json:"total"`
}

// Collection is the payload of every paginated listing
type Collection[R any] struct {
	Data  []R             `json:"data"`
	Links PaginationLinks `json:"links"`
	Meta  PaginationMeta  `json:"meta"`
}

// NewCollection converts a page of models and builds links from the request URL,
// keeping every query parameter except page.
func NewCollection[M, R any](c *gin.Context, page *store.Page[M], convert func(*M) R) Collection[R] {
	data := make([]R, 0, len(page.Items))
	for i := range page.Items {
		data = append(data, convert(&page.Items[i]))
	}

	path := c.Request.URL.Path
	query := c.Request.URL.Query()
	link := func(n int) string {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(n))
		return path + "?" + q.Encode()
	}

	last := page.LastPage()
	links := PaginationLinks{First: link(1), Last: link(last)}
	if page.HasPrev() {
		prev := link(page.CurrentPage - 1)
		links.Prev = &prev
	}
	if page.HasNext() {
		next := link(page.CurrentPage + 1)
		links.Next = &next
	}

	meta := PaginationMeta{
		CurrentPage: page.CurrentPage,
		LastPage:    last,
		Path:        path,
		PerPage:     page.PerPage,
		Total:       page.Total,
	}
	if len(page.Items) > 0 {
		from, to := page.From(), page.To()
		meta.From, meta.To = &from, &to
	}

	return Collection[R]{Data: data, Links: links, Meta: meta}
}
