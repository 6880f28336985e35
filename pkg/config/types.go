package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Auth         AuthConfig       `mapstructure:"auth"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Redis        RedisConfig      `mapstructure:"redis"`
	Security     SecurityConfig   `mapstructure:"security"`
	Pagination   PaginationConfig `mapstructure:"pagination"`
	Logging      LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	// Driver is either "sqlite" or "postgres"
	Driver                string        `mapstructure:"driver"`
	Path                  string        `mapstructure:"path"`
	DSN                   string        `mapstructure:"dsn"`
	AutoMigrate           bool          `mapstructure:"auto_migrate"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// AuthConfig contains bearer token settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	Issuer    string        `mapstructure:"issuer"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	PerMinute       int           `mapstructure:"per_minute"`
	Backend         string        `mapstructure:"backend"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RedisConfig contains the connection used by the shared rate limiter
type RedisConfig struct {
	URL string `mapstructure:"url"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS   bool     `mapstructure:"enable_cors"`
	CORSOrigins  []string `mapstructure:"cors_origins"`
	CORSMethods  []string `mapstructure:"cors_methods"`
	CORSHeaders  []string `mapstructure:"cors_headers"`
	MaxBodyBytes int64    `mapstructure:"max_body_bytes"`
}

// PaginationConfig bounds the per_page query parameter
type PaginationConfig struct {
	DefaultPerPage int `mapstructure:"default_per_page"`
	MaxPerPage     int `mapstructure:"max_per_page"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
