package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "missing config file falls back to defaults",
			setup: func(t *testing.T) {
				SetConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
			},
			check: func(t *testing.T) {
				assert.Equal(t, 8080, GetInt("server.port"))
				assert.Equal(t, "sqlite", GetString("database.driver"))
				assert.Equal(t, 60, GetInt("rate_limiting.per_minute"))
				assert.Equal(t, "memory", GetString("rate_limiting.backend"))
				assert.Equal(t, 15, GetInt("pagination.default_per_page"))
				assert.Equal(t, 24*time.Hour, GetDuration("auth.token_ttl"))
			},
		},
		{
			name: "load from settings file",
			setup: func(t *testing.T) {
				SetConfigFile(writeSettings(t, `
server:
  host: "127.0.0.1"
  port: 9000
database:
  path: "./test.db"
rate_limiting:
  per_minute: 30
`))
			},
			check: func(t *testing.T) {
				assert.Equal(t, 9000, GetInt("server.port"))
				assert.Equal(t, "127.0.0.1", GetString("server.host"))
				assert.Equal(t, "./test.db", GetString("database.path"))
				assert.Equal(t, 30, GetInt("rate_limiting.per_minute"))
			},
		},
		{
			name: "environment variable override",
			setup: func(t *testing.T) {
				SetConfigFile(writeSettings(t, "server:\n  port: 8080\n"))
				t.Setenv("CATALOG_SERVER_PORT", "9090")
				t.Setenv("CATALOG_AUTH_JWT_SECRET", "from-env")
			},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
				assert.Equal(t, "from-env", GetString("auth.jwt_secret"))
			},
		},
		{
			name: "invalid port",
			setup: func(t *testing.T) {
				SetConfigFile(writeSettings(t, "server:\n  port: 70000\n"))
			},
			wantErr: true,
		},
		{
			name: "postgres without dsn",
			setup: func(t *testing.T) {
				SetConfigFile(writeSettings(t, "database:\n  driver: postgres\n"))
			},
			wantErr: true,
		},
		{
			name: "redis backend without url",
			setup: func(t *testing.T) {
				SetConfigFile(writeSettings(t, "rate_limiting:\n  backend: redis\n"))
			},
			wantErr: true,
		},
		{
			name: "placeholder secret rejected in production",
			setup: func(t *testing.T) {
				SetConfigFile(writeSettings(t, "environment: production\nauth:\n  jwt_secret: changeme\n"))
			},
			wantErr: true,
		},
		{
			name: "non-positive quota is corrected",
			setup: func(t *testing.T) {
				SetConfigFile(writeSettings(t, "rate_limiting:\n  per_minute: 0\n"))
			},
			check: func(t *testing.T) {
				assert.Equal(t, 60, GetInt("rate_limiting.per_minute"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			t.Cleanup(reset)
			tt.setup(t)

			err := Init()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)
	SetConfigFile(writeSettings(t, `
security:
  cors_origins: ["https://example.com"]
pagination:
  default_per_page: 20
  max_per_page: 50
`))
	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com"}, cfg.Security.CORSOrigins)
	assert.Equal(t, 20, cfg.Pagination.DefaultPerPage)
	assert.Equal(t, 50, cfg.Pagination.MaxPerPage)
	assert.Equal(t, "catalog-api", cfg.Auth.Issuer)
	assert.Equal(t, int64(1<<20), cfg.Security.MaxBodyBytes)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Driver: "sqlite"},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.RateLimiting.PerMinute)
	assert.Equal(t, 15, cfg.Pagination.DefaultPerPage)
	assert.Equal(t, 15, cfg.Pagination.MaxPerPage)

	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())
}
