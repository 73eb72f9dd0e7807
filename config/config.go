package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Authentication. An empty secret is a valid configuration: the gate
	// passes requests through and main logs a deployment warning.
	AuthAPIKey    string
	AuthMode      string // static or jwt
	AuthJWTSecret string

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Demo data installed at startup
	SeedDemoUsers bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool

	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "user-management-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		AuthAPIKey:    getenv("AUTH_API_KEY", ""),
		AuthMode:      getenv("AUTH_MODE", "static"),
		AuthJWTSecret: getenv("AUTH_JWT_SECRET", ""),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		SeedDemoUsers: getbool("SEED_DEMO_USERS", true),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),

		ShutdownTimeout: getdur("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
