package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "PORT", "GIN_MODE",
		"AUTH_API_KEY", "AUTH_MODE", "AUTH_JWT_SECRET",
		"CORS_ALLOWED_ORIGINS", "SEED_DEMO_USERS",
		"HTTP_LOG_ENABLED", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "user-management-api", cfg.AppName)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "static", cfg.AuthMode)
	assert.Empty(t, cfg.AuthAPIKey)
	assert.True(t, cfg.SeedDemoUsers)
	assert.False(t, cfg.HTTPLogEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_API_KEY", "s3cret")
	t.Setenv("AUTH_MODE", "jwt")
	t.Setenv("SEED_DEMO_USERS", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg := Load()
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "s3cret", cfg.AuthAPIKey)
	assert.Equal(t, "jwt", cfg.AuthMode)
	assert.False(t, cfg.SeedDemoUsers)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SEED_DEMO_USERS", "not-a-bool")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := Load()
	assert.True(t, cfg.SeedDemoUsers)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " https://a.example , ,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())

	cfg = &Config{}
	assert.Empty(t, cfg.CORSOrigins())
}
