package models

import (
	"fmt"
	"time"
)

// Category groups podcasts; ordered by SortOrder in featured listings
type Category struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"not null"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	Description *string   `gorm:"type:text"`
	ImageURL    string    `gorm:"column:image_url;not null"`
	IsFeatured  bool      `gorm:"not null;default:false;index"`
	SortOrder   int       `gorm:"not null;default:0"`
	Podcasts    []Podcast `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Podcast belongs to a Category and owns its Episodes
type Podcast struct {
	ID          uint      `gorm:"primaryKey"`
	CategoryID  uint      `gorm:"not null;index"`
	Category    *Category `gorm:"foreignKey:CategoryID"`
	Title       string    `gorm:"not null"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	Description *string   `gorm:"type:text"`
	ImageURL    string    `gorm:"column:image_url;not null"`
	AuthorName  string    `gorm:"not null"`
	IsFeatured  bool      `gorm:"not null;default:false;index"`
	Tags        []Tag     `gorm:"many2many:podcast_tag"`
	Episodes    []Episode `gorm:"foreignKey:PodcastID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Episode is a single audio item of a Podcast
type Episode struct {
	ID                uint      `gorm:"primaryKey"`
	PodcastID         uint      `gorm:"not null;index"`
	Podcast           *Podcast  `gorm:"foreignKey:PodcastID"`
	Title             string    `gorm:"not null"`
	Slug              string    `gorm:"uniqueIndex;not null"`
	Description       *string   `gorm:"type:text"`
	AudioURL          string    `gorm:"column:audio_url;not null"`
	DurationInSeconds int       `gorm:"not null"`
	Transcript        *string   `gorm:"type:text"`
	IsFeatured        bool      `gorm:"not null;default:false;index"`
	PublishedAt       time.Time `gorm:"not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// FormattedDuration renders the duration as MM:SS. Minutes are not wrapped into hours.
func (e *Episode) FormattedDuration() string {
	return FormatDuration(e.DurationInSeconds)
}

// FormatDuration renders seconds as zero-padded MM:SS
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Tag labels podcasts through the podcast_tag join table
type Tag struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	Slug      string    `gorm:"uniqueIndex;not null"`
	Podcasts  []Podcast `gorm:"many2many:podcast_tag"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PodcastTag is a row of the podcast_tag join table
type PodcastTag struct {
	PodcastID uint `gorm:"primaryKey"`
	TagID     uint `gorm:"primaryKey"`
	CreatedAt time.Time
}

// TableName pins the join table name shared with the many2many tags
func (PodcastTag) TableName() string {
	return "podcast_tag"
}
