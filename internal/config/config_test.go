package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	// No config file; the secret comes from the environment.
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "uploads", cfg.Server.StoragePath)
	assert.Equal(t, "tutorhub", cfg.Database.DBName)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "1h", cfg.JWT.AccessTokenExpiration)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: production
jwt:
  secret: file-secret
  access_token_expiration: 30m
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "30m", cfg.JWT.AccessTokenExpiration)
	// untouched values keep their defaults
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: file-secret
  cookie_secure: false
database:
  max_open_conns: 10
`)

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_COOKIE_SECURE", "true")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.True(t, cfg.JWT.CookieSecure)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		path := writeConfigFile(t, `
server:
  port: "8080"
`)
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "JWT secret is required")
	})

	t.Run("bad token expiration", func(t *testing.T) {
		path := writeConfigFile(t, `
jwt:
  secret: s
  access_token_expiration: eventually
`)
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "access token expiration")
	})
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "tutorhub"

	assert.Equal(t,
		"postgres://app:pw@db.internal:5433/tutorhub?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
