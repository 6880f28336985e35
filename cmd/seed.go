package cmd

import (
	"fmt"

	"github.com/killallgit/catalog-api/internal/services/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the catalog with sample data",
	Long: `Create sample tags, categories, podcasts and episodes.

Tags and the named categories are reused when they already exist,
so the command can be run more than once.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	defaults := seed.DefaultOptions()
	seedCmd.Flags().Int("podcasts-per-category", defaults.PodcastsPerCategory, "podcasts created in each named category")
	seedCmd.Flags().Int("featured-per-category", defaults.FeaturedPerCategory, "how many of those podcasts are featured")
	seedCmd.Flags().Int("min-episodes", defaults.MinEpisodes, "minimum episodes per podcast")
	seedCmd.Flags().Int("max-episodes", defaults.MaxEpisodes, "maximum episodes per podcast")
	seedCmd.Flags().Uint64("seed", 0, "random seed (0 = time based)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	opts := seed.DefaultOptions()
	opts.PodcastsPerCategory, _ = cmd.Flags().GetInt("podcasts-per-category")
	opts.FeaturedPerCategory, _ = cmd.Flags().GetInt("featured-per-category")
	opts.MinEpisodes, _ = cmd.Flags().GetInt("min-episodes")
	opts.MaxEpisodes, _ = cmd.Flags().GetInt("max-episodes")
	opts.Seed, _ = cmd.Flags().GetUint64("seed")
	if opts.MinEpisodes > opts.MaxEpisodes {
		return fmt.Errorf("--min-episodes (%d) must not exceed --max-episodes (%d)", opts.MinEpisodes, opts.MaxEpisodes)
	}

	db, err := openDatabase(true)
	if err != nil {
		return err
	}
	defer db.Close()

	summary, err := seed.New(db.DB, appLogger).Run(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d tags, %d categories, %d podcasts, %d episodes\n",
		summary.Tags, summary.Categories, summary.Podcasts, summary.Episodes)
	return nil
}
