package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/killallgit/catalog-api/internal/database"
	"github.com/killallgit/catalog-api/pkg/config"
	"github.com/killallgit/catalog-api/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string

	// Loaded on demand by the commands that need them
	appConfig *config.Config
	appLogger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalog-api",
	Short: "Podcast Catalog API server",
	Long: `Podcast Catalog API - A REST API for browsing and managing a podcast catalog

Categories group podcasts, podcasts own episodes and carry tags.
Reads are public; writes require a bearer token.

Features:
  • Paginated, filterable and sortable listings
  • Featured and recent shortcuts
  • JWT protected create, update and delete
  • Per-client rate limiting (in-memory or Redis)
  • SQLite or PostgreSQL storage with versioned migrations`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.DefaultConfigPath+")")

	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error), overrides config")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs, overrides config")
}

// loadConfig reads settings and builds the logger the first time a command needs them
func loadConfig(cmd *cobra.Command) error {
	if appConfig == nil {
		config.SetConfigFile(cfgFile)
		if err := config.Init(); err != nil {
			return fmt.Errorf("initializing config: %w", err)
		}
		cfg, err := config.GetConfig()
		if err != nil {
			return err
		}
		appConfig = cfg
	}

	if appLogger == nil {
		level := appConfig.Logging.Level
		if flag := cmd.Flags().Lookup("log-level"); flag != nil && flag.Changed {
			level = flag.Value.String()
		}
		format := appConfig.Logging.Format
		if jsonLogs, err := cmd.Flags().GetBool("json-logs"); err == nil && cmd.Flags().Changed("json-logs") {
			format = "text"
			if jsonLogs {
				format = "json"
			}
		}
		appLogger = logger.NewWithWriter(cmd.ErrOrStderr(), level, format)
		slog.SetDefault(appLogger)
	}
	return nil
}

// openDatabase connects with the loaded settings and applies migrations when auto_migrate is on
func openDatabase(migrate bool) (*database.DB, error) {
	dbCfg := appConfig.Database
	db, err := database.Initialize(database.Options{
		Driver:          dbCfg.Driver,
		Path:            dbCfg.Path,
		DSN:             dbCfg.DSN,
		MaxOpenConns:    dbCfg.MaxConnections,
		MaxIdleConns:    dbCfg.MaxIdleConnections,
		ConnMaxLifetime: dbCfg.ConnectionMaxLifetime,
		LogQueries:      dbCfg.LogQueries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if migrate && dbCfg.AutoMigrate {
		if err := db.MigrateUp(appLogger); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}
