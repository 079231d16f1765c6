// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. It is built once at
// startup and passed around by pointer; nothing mutates it afterwards.
type Config struct {
	BackendURL      string
	RefreshInterval time.Duration
	AutoRefresh     bool
	HTTPTimeout     time.Duration
	HealthTimeout   time.Duration
}

// Default values
const (
	defaultRefreshInterval = 30 * time.Second
	defaultHTTPTimeout     = 10 * time.Second
	defaultHealthTimeout   = 5 * time.Second

	// MinRefreshInterval and MaxRefreshInterval bound the operator slider.
	MinRefreshInterval = 10 * time.Second
	MaxRefreshInterval = 120 * time.Second
)

// Load reads configuration from .env files, an optional YAML file and
// environment variables. Environment variables always win over the file.
// ANALYTICS_BACKEND_URL is required; everything else defaults.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	fileCfg := loadFileConfig()

	cfg := &Config{
		BackendURL:      getEnvString("ANALYTICS_BACKEND_URL", fileCfg.BackendURL),
		RefreshInterval: getEnvDuration("DASHBOARD_REFRESH_INTERVAL", fileCfg.refreshInterval(defaultRefreshInterval)),
		AutoRefresh:     getEnvBool("DASHBOARD_AUTO_REFRESH", fileCfg.autoRefresh(true)),
		HTTPTimeout:     defaultHTTPTimeout,
		HealthTimeout:   defaultHealthTimeout,
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf(
			"ANALYTICS_BACKEND_URL is required (set via env, .env or cynchrony.yaml)")
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	cfg.RefreshInterval = ClampInterval(cfg.RefreshInterval)

	return cfg, nil
}

// ClampInterval bounds an interval to the operator-adjustable range.
func ClampInterval(d time.Duration) time.Duration {
	if d < MinRefreshInterval {
		return MinRefreshInterval
	}
	if d > MaxRefreshInterval {
		return MaxRefreshInterval
	}
	return d
}

// DocsURL returns the backend API documentation URL.
func (c *Config) DocsURL() string {
	return c.BackendURL + "/docs"
}

// HealthURL returns the backend health-check URL.
func (c *Config) HealthURL() string {
	return c.BackendURL + "/health"
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "cynchrony", ".env"),
			filepath.Join(home, ".cynchrony", ".env"),
		)
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
