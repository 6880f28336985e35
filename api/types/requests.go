package types

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/store"
)

// Optional fields are pointers: a missing field leaves the stored value as is.

type CategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=255" example:"Technology"`
	Slug        string  `json:"slug" binding:"required,max=255,slug" example:"technology"`
	Description *string `json:"description"`
	ImageURL    string  `json:"image_url" binding:"required,url,max=255" example:"https://example.com/tech.png"`
	IsFeatured  *bool   `json:"is_featured"`
	SortOrder   *int    `json:"sort_order" binding:"omitempty,min=0"`
}

func (r *CategoryRequest) ValidateWith(ctx context.Context, deps *Dependencies, id uint, errs FieldErrors) error {
	return checkUnique(ctx, errs, deps.Categories, "slug", r.Slug, id)
}

func (r *CategoryRequest) Apply(m *models.Category) {
	m.Name = r.Name
	m.Slug = r.Slug
	m.ImageURL = r.ImageURL
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.IsFeatured != nil {
		m.IsFeatured = *r.IsFeatured
	}
	if r.SortOrder != nil {
		m.SortOrder = *r.SortOrder
	}
}

type PodcastRequest struct {
	Title       string  `json:"title" binding:"required,max=255" example:"The Changelog"`
	Slug        string  `json:"slug" binding:"required,max=255" example:"the-changelog"`
	Description *string `json:"description"`
	ImageURL    string  `json:"image_url" binding:"required,url,max=255"`
	AuthorName  string  `json:"author_name" binding:"required,max=255"`
	CategoryID  *uint   `json:"category_id" binding:"required"`
	IsFeatured  *bool   `json:"is_featured"`
	// Tags replaces the podcast's tag set when present
	Tags *[]uint `json:"tags"`
}

func (r *PodcastRequest) ValidateWith(ctx context.Context, deps *Dependencies, id uint, errs FieldErrors) error {
	if err := checkUnique(ctx, errs, deps.Podcasts, "slug", r.Slug, id); err != nil {
		return err
	}
	if err := checkExists(ctx, errs, deps.Categories, "category_id", r.CategoryID); err != nil {
		return err
	}
	if r.Tags == nil || len(*r.Tags) == 0 || errs.Has("tags") {
		return nil
	}

	missing, err := deps.Tags.MissingIDs(ctx, *r.Tags)
	if err != nil {
		return err
	}
	for i, tagID := range *r.Tags {
		if slices.Contains(missing, tagID) {
			key := fmt.Sprintf("tags.%d", i)
			errs.Add(key, fmt.Sprintf("The selected %s is invalid.", key))
		}
	}
	return nil
}

// TagIDs is nil when the request leaves tags untouched
func (r *PodcastRequest) TagIDs() []uint {
	if r.Tags == nil {
		return nil
	}
	if *r.Tags == nil {
		return []uint{}
	}
	return *r.Tags
}

func (r *PodcastRequest) Apply(m *models.Podcast) {
	m.Title = r.Title
	m.Slug = r.Slug
	m.ImageURL = r.ImageURL
	m.AuthorName = r.AuthorName
	if r.CategoryID != nil {
		m.CategoryID = *r.CategoryID
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.IsFeatured != nil {
		m.IsFeatured = *r.IsFeatured
	}
}

type EpisodeRequest struct {
	PodcastID         *uint   `json:"podcast_id" binding:"required"`
	Title             string  `json:"title" binding:"required,max=255"`
	Slug              string  `json:"slug" binding:"required,max=255"`
	Description       *string `json:"description"`
	AudioURL          string  `json:"audio_url" binding:"required,url,max=255"`
	DurationInSeconds *int    `json:"duration_in_seconds" binding:"required,min=1" example:"1800"`
	Transcript        *string `json:"transcript"`
	IsFeatured        *bool   `json:"is_featured"`
	// PublishedAt accepts RFC 3339, "2006-01-02 15:04:05" or "2006-01-02"
	PublishedAt string `json:"published_at" binding:"required" example:"2024-05-01 09:30:00"`

	publishedAt time.Time
}

func (r *EpisodeRequest) ValidateWith(ctx context.Context, deps *Dependencies, id uint, errs FieldErrors) error {
	if !errs.Has("published_at") {
		t, _, err := store.ParseDate(r.PublishedAt)
		if err != nil {
			errs.Add("published_at", "The published at field must be a valid date.")
		}
		r.publishedAt = t
	}
	if err := checkExists(ctx, errs, deps.Podcasts, "podcast_id", r.PodcastID); err != nil {
		return err
	}
	return checkUnique(ctx, errs, deps.Episodes, "slug", r.Slug, id)
}

func (r *EpisodeRequest) Apply(m *models.Episode) {
	m.Title = r.Title
	m.Slug = r.Slug
	m.AudioURL = r.AudioURL
	m.PublishedAt = r.publishedAt
	if r.PodcastID != nil {
		m.PodcastID = *r.PodcastID
	}
	if r.DurationInSeconds != nil {
		m.DurationInSeconds = *r.DurationInSeconds
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.Transcript != nil {
		m.Transcript = r.Transcript
	}
	if r.IsFeatured != nil {
		m.IsFeatured = *r.IsFeatured
	}
}

type TagRequest struct {
	Name string `json:"name" binding:"required,max=255" example:"Interviews"`
	Slug string `json:"slug" binding:"required,max=255,slug" example:"interviews"`
}

func (r *TagRequest) ValidateWith(ctx context.Context, deps *Dependencies, id uint, errs FieldErrors) error {
	if err := checkUnique(ctx, errs, deps.Tags, "name", r.Name, id); err != nil {
		return err
	}
	return checkUnique(ctx, errs, deps.Tags, "slug", r.Slug, id)
}

func (r *TagRequest) Apply(m *models.Tag) {
	m.Name = r.Name
	m.Slug = r.Slug
}
