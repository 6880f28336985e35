// Package seed fills an empty catalog with sample categories, podcasts,
// episodes and tags.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/categories"
	"github.com/killallgit/catalog-api/internal/services/episodes"
	"github.com/killallgit/catalog-api/internal/services/podcasts"
	"github.com/killallgit/catalog-api/internal/services/tags"
	apperrors "github.com/killallgit/catalog-api/pkg/errors"
	"gorm.io/gorm"
)

var categoryNames = []string{
	"News & Storytelling",
	"Entertainment & Lifestyle",
	"Tech, Sport & Business",
	"Education & Learning",
	"Health & Wellness",
}

var (
	adjectives = []string{"Daily", "Curious", "Weekly", "Hidden", "Modern", "Quiet", "Bold", "Late Night", "Open", "Deep"}
	nouns      = []string{"Signal", "Stories", "Hour", "Dispatch", "Notebook", "Table", "Frontier", "Review", "Session", "Journal"}
	tagNames   = []string{"Interviews", "Comedy", "True Crime", "Science", "History", "Startups", "Football", "Mindfulness", "Politics", "Design"}
	authors    = []string{"Ada Mensah", "Luis Ortega", "Mira Patel", "Jonas Berg", "Keiko Tanaka", "Sam Okafor", "Nora Lind"}
)

// Options controls how much data is generated
type Options struct {
	PodcastsPerCategory int
	FeaturedPerCategory int
	MinEpisodes         int
	MaxEpisodes         int
	// Seed makes runs reproducible; zero picks a random seed
	Seed uint64
}

func DefaultOptions() Options {
	return Options{
		PodcastsPerCategory: 5,
		FeaturedPerCategory: 2,
		MinEpisodes:         5,
		MaxEpisodes:         10,
	}
}

// Summary counts the rows a run created
type Summary struct {
	Tags       int
	Categories int
	Podcasts   int
	Episodes   int
}

type Seeder struct {
	categories *categories.Repository
	podcasts   *podcasts.Repository
	episodes   *episodes.Repository
	tags       *tags.Repository
	logger     *slog.Logger
	now        func() time.Time
}

func New(db *gorm.DB, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		categories: categories.NewRepository(db),
		podcasts:   podcasts.NewRepository(db),
		episodes:   episodes.NewRepository(db),
		tags:       tags.NewRepository(db),
		logger:     logger,
		now:        time.Now,
	}
}

// Run ensures the 10 tags and the named categories exist, adds 2 featured
// categories and, for every named category, regular and featured podcasts
// with random tags and episodes. Every podcast gets at least one featured
// episode. Tags and named categories found by slug are reused.
func (s *Seeder) Run(ctx context.Context, opts Options) (Summary, error) {
	var sum Summary
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	run := &run{Seeder: s, rng: rng, opts: opts, suffix: uuid.NewString()[:8]}

	tagIDs := make([]uint, 0, len(tagNames))
	for _, name := range tagNames {
		tag, created, err := run.tag(ctx, name)
		if err != nil {
			return sum, err
		}
		tagIDs = append(tagIDs, tag.ID)
		if created {
			sum.Tags++
		}
	}

	named := make([]*models.Category, 0, len(categoryNames))
	for i, name := range categoryNames {
		cat, err := s.categories.FindBySlug(ctx, slug.Make(name))
		if apperrors.IsNotFound(err) {
			cat, err = run.category(ctx, name, slug.Make(name), false, i)
			if err == nil {
				sum.Categories++
			}
		}
		if err != nil {
			return sum, err
		}
		named = append(named, cat)
	}
	for i := range 2 {
		title := run.title()
		if _, err := run.category(ctx, title, run.uniqueSlug(title), true, len(categoryNames)+i); err != nil {
			return sum, err
		}
		sum.Categories++
	}

	for _, cat := range named {
		total := opts.PodcastsPerCategory + opts.FeaturedPerCategory
		for i := range total {
			featured := i >= opts.PodcastsPerCategory
			p, err := run.podcast(ctx, cat.ID, featured, run.pickTags(tagIDs))
			if err != nil {
				return sum, err
			}
			sum.Podcasts++

			n, err := run.episodesFor(ctx, p.ID)
			sum.Episodes += n
			if err != nil {
				return sum, err
			}
		}
	}

	s.logger.Info("catalog seeded",
		slog.Int("tags", sum.Tags),
		slog.Int("categories", sum.Categories),
		slog.Int("podcasts", sum.Podcasts),
		slog.Int("episodes", sum.Episodes))
	return sum, nil
}

// run holds the state of one Run call
type run struct {
	*Seeder
	rng    *rand.Rand
	opts   Options
	suffix string
	seq    int
}

func (r *run) title() string {
	r.seq++
	return fmt.Sprintf("%s %s %d",
		adjectives[r.rng.IntN(len(adjectives))], nouns[r.rng.IntN(len(nouns))], r.seq)
}

// uniqueSlug keeps repeated runs from colliding with earlier data
func (r *run) uniqueSlug(title string) string {
	return slug.Make(title + " " + r.suffix)
}

func (r *run) tag(ctx context.Context, name string) (*models.Tag, bool, error) {
	existing, err := r.tags.FindBySlug(ctx, slug.Make(name))
	if err == nil {
		return existing, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, false, err
	}

	tag := &models.Tag{Name: name, Slug: slug.Make(name)}
	if err := r.tags.Create(ctx, tag); err != nil {
		return nil, false, fmt.Errorf("seeding tag %q: %w", name, err)
	}
	return tag, true, nil
}

func (r *run) category(ctx context.Context, name, categorySlug string, featured bool, order int) (*models.Category, error) {
	desc := "Podcasts about " + name
	cat := &models.Category{
		Name:        name,
		Slug:        categorySlug,
		Description: &desc,
		ImageURL:    "https://picsum.photos/seed/" + slug.Make(name) + "/640/480",
		IsFeatured:  featured,
		SortOrder:   order,
	}
	if err := r.categories.Create(ctx, cat); err != nil {
		return nil, fmt.Errorf("seeding category %q: %w", name, err)
	}
	return cat, nil
}

func (r *run) podcast(ctx context.Context, categoryID uint, featured bool, tagIDs []uint) (*models.Podcast, error) {
	title := r.title()
	desc := "A show called " + title
	p := &models.Podcast{
		CategoryID:  categoryID,
		Title:       title,
		Slug:        r.uniqueSlug(title),
		Description: &desc,
		ImageURL:    "https://picsum.photos/seed/" + slug.Make(title) + "/640/480",
		AuthorName:  authors[r.rng.IntN(len(authors))],
		IsFeatured:  featured || r.rng.IntN(5) == 0,
	}
	created, err := r.podcasts.CreateWithTags(ctx, p, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("seeding podcast %q: %w", title, err)
	}
	return created, nil
}

// episodesFor creates MinEpisodes..MaxEpisodes regular episodes plus one featured
func (r *run) episodesFor(ctx context.Context, podcastID uint) (int, error) {
	count := r.opts.MinEpisodes
	if spread := r.opts.MaxEpisodes - r.opts.MinEpisodes; spread > 0 {
		count += r.rng.IntN(spread + 1)
	}

	created := 0
	for i := range count + 1 {
		title := r.title()
		transcript := "Transcript of " + title
		ep := &models.Episode{
			PodcastID:         podcastID,
			Title:             title,
			Slug:              r.uniqueSlug(title),
			AudioURL:          "https://cdn.example.com/audio/" + slug.Make(title) + ".mp3",
			DurationInSeconds: 600 + r.rng.IntN(3001),
			Transcript:        &transcript,
			IsFeatured:        i == count || r.rng.IntN(5) == 0,
			PublishedAt:       r.now().UTC().Add(-time.Duration(r.rng.IntN(365*24)) * time.Hour),
		}
		if err := r.episodes.Create(ctx, ep); err != nil {
			return created, fmt.Errorf("seeding episode %q: %w", title, err)
		}
		created++
	}
	return created, nil
}

// pickTags chooses 1 to 3 distinct tags
func (r *run) pickTags(ids []uint) []uint {
	if len(ids) == 0 {
		return []uint{}
	}
	n := min(1+r.rng.IntN(3), len(ids))
	picked := make([]uint, 0, n)
	for _, i := range r.rng.Perm(len(ids))[:n] {
		picked = append(picked, ids[i])
	}
	return picked
}
