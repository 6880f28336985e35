package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultConfigPath is read when no --config flag is given. A missing file is not an error.
const DefaultConfigPath = "./config/settings.yaml"

var (
	once       sync.Once
	initErr    error
	configPath = DefaultConfigPath
)

// SetConfigFile overrides the settings file read by Init
func SetConfigFile(path string) {
	if path != "" {
		configPath = path
	}
}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// .env is optional; values already present in the environment win
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			initErr = fmt.Errorf("loading .env: %w", err)
			return
		}

		setDefaults()

		viper.SetEnvPrefix("CATALOG")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		path := filepath.Clean(configPath)
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", path, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Set overrides a single key, used by command line flags
func Set(key string, value any) {
	viper.Set(key, value)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate checks the values viper resolved and auto-corrects the soft ones
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	switch viper.GetString("database.driver") {
	case "sqlite":
		if viper.GetString("database.path") == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	case "postgres":
		if viper.GetString("database.dsn") == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", viper.GetString("database.driver"))
	}

	switch viper.GetString("rate_limiting.backend") {
	case "memory":
	case "redis":
		if viper.GetString("redis.url") == "" {
			return fmt.Errorf("redis.url is required for the redis rate limiting backend")
		}
	default:
		return fmt.Errorf("unsupported rate limiting backend: %q", viper.GetString("rate_limiting.backend"))
	}

	if viper.GetInt("rate_limiting.per_minute") <= 0 {
		viper.Set("rate_limiting.per_minute", 60)
	}
	if viper.GetInt("pagination.default_per_page") <= 0 {
		viper.Set("pagination.default_per_page", 15)
	}

	return validateSecret()
}

// validateSecret refuses placeholder JWT secrets in production
func validateSecret() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{"", "changeme", "CHANGEME", "YOUR_SECRET_HERE"}
	secret := viper.GetString("auth.jwt_secret")
	for _, placeholder := range placeholders {
		if secret == placeholder {
			if isProduction {
				return fmt.Errorf("invalid JWT secret: cannot use placeholder values in production")
			}
			slog.Warn("JWT secret is using a placeholder value, write routes are not protected by a real secret")
			break
		}
	}
	return nil
}

// Validate validates a Config struct
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.RateLimiting.PerMinute <= 0 {
		c.RateLimiting.PerMinute = 60
	}
	if c.Pagination.DefaultPerPage <= 0 {
		c.Pagination.DefaultPerPage = 15
	}
	if c.Pagination.MaxPerPage < c.Pagination.DefaultPerPage {
		c.Pagination.MaxPerPage = c.Pagination.DefaultPerPage
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.write_timeout", 15*time.Second)
	viper.SetDefault("server.idle_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "./data/catalog.db")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.auto_migrate", true)
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.log_queries", false)

	viper.SetDefault("auth.jwt_secret", "")
	viper.SetDefault("auth.issuer", "catalog-api")
	viper.SetDefault("auth.token_ttl", 24*time.Hour)

	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.per_minute", 60)
	viper.SetDefault("rate_limiting.backend", "memory")
	viper.SetDefault("rate_limiting.cleanup_interval", 5*time.Minute)

	viper.SetDefault("redis.url", "")

	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Content-Type", "Authorization", "Accept"})
	viper.SetDefault("security.max_body_bytes", 1<<20)

	viper.SetDefault("pagination.default_per_page", 15)
	viper.SetDefault("pagination.max_per_page", 100)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// reset clears the loaded state so tests can call Init again
func reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
	configPath = DefaultConfigPath
}
