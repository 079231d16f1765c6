package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	key := "TEST_ENV_STRING"
	val := "test_value"
	os.Setenv(key, val)
	defer os.Unsetenv(key)

	if got := getEnvString(key, "default"); got != val {
		t.Errorf("getEnvString() = %q, want %q", got, val)
	}

	if got := getEnvString("NON_EXISTENT", "default"); got != "default" {
		t.Errorf("getEnvString() = %q, want %q", got, "default")
	}
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_ENV_DURATION"

	tests := []struct {
		name       string
		envVal     string
		defaultVal time.Duration
		want       time.Duration
	}{
		{"ValidDuration", "1m", time.Second, time.Minute},
		{"ValidSeconds", "60", time.Second, 60 * time.Second},
		{"Invalid", "invalid", time.Second, time.Second},
		{"Empty", "", time.Second, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}

			if got := getEnvDuration(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_ENV_BOOL"

	tests := []struct {
		name       string
		envVal     string
		defaultVal bool
		want       bool
	}{
		{"True", "true", false, true},
		{"False", "false", true, false},
		{"Numeric", "1", false, true},
		{"Invalid", "yes-please", true, true},
		{"Empty", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}

			if got := getEnvBool(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampInterval(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{5 * time.Second, MinRefreshInterval},
		{10 * time.Second, 10 * time.Second},
		{45 * time.Second, 45 * time.Second},
		{120 * time.Second, 120 * time.Second},
		{10 * time.Minute, MaxRefreshInterval},
	}

	for _, tt := range tests {
		if got := ClampInterval(tt.in); got != tt.want {
			t.Errorf("ClampInterval(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoad_RequiresBackendURL(t *testing.T) {
	os.Unsetenv("ANALYTICS_BACKEND_URL")

	// Keep the cwd away from any real .env or cynchrony.yaml.
	oldWd, _ := os.Getwd()
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWd)
	t.Setenv("HOME", tmp)

	if _, err := Load(); err == nil {
		t.Error("Load() should fail without ANALYTICS_BACKEND_URL")
	}
}

func TestLoad_Defaults(t *testing.T) {
	oldWd, _ := os.Getwd()
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWd)
	t.Setenv("HOME", tmp)
	t.Setenv("ANALYTICS_BACKEND_URL", "http://localhost:8000/")
	os.Unsetenv("DASHBOARD_REFRESH_INTERVAL")
	os.Unsetenv("DASHBOARD_AUTO_REFRESH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BackendURL != "http://localhost:8000" {
		t.Errorf("BackendURL = %q, want trailing slash trimmed", cfg.BackendURL)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Errorf("RefreshInterval = %v, want 30s", cfg.RefreshInterval)
	}
	if !cfg.AutoRefresh {
		t.Error("AutoRefresh should default to true")
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v, want 10s", cfg.HTTPTimeout)
	}
	if cfg.DocsURL() != "http://localhost:8000/docs" {
		t.Errorf("DocsURL = %q", cfg.DocsURL())
	}
	if cfg.HealthURL() != "http://localhost:8000/health" {
		t.Errorf("HealthURL = %q", cfg.HealthURL())
	}
}

func TestLoad_IntervalClamped(t *testing.T) {
	oldWd, _ := os.Getwd()
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWd)
	t.Setenv("HOME", tmp)
	t.Setenv("ANALYTICS_BACKEND_URL", "http://localhost:8000")
	t.Setenv("DASHBOARD_REFRESH_INTERVAL", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.RefreshInterval != MinRefreshInterval {
		t.Errorf("RefreshInterval = %v, want clamped to %v", cfg.RefreshInterval, MinRefreshInterval)
	}
}

func TestLoadFileConfig(t *testing.T) {
	oldWd, _ := os.Getwd()
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWd)
	t.Setenv("HOME", tmp)

	content := "backend_url: http://yaml:9000\nrefresh_interval_seconds: 60\nauto_refresh: false\n"
	if err := os.WriteFile(filepath.Join(tmp, "cynchrony.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	fc := loadFileConfig()
	if fc.BackendURL != "http://yaml:9000" {
		t.Errorf("BackendURL = %q", fc.BackendURL)
	}
	if got := fc.refreshInterval(30 * time.Second); got != 60*time.Second {
		t.Errorf("refreshInterval = %v, want 60s", got)
	}
	if fc.autoRefresh(true) {
		t.Error("autoRefresh should be false from file")
	}

	// Env still wins over the file.
	t.Setenv("ANALYTICS_BACKEND_URL", "http://env:8000")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BackendURL != "http://env:8000" {
		t.Errorf("BackendURL = %q, env should win", cfg.BackendURL)
	}
	if cfg.RefreshInterval != 60*time.Second {
		t.Errorf("RefreshInterval = %v, want 60s from file", cfg.RefreshInterval)
	}
}

func TestFileConfig_Fallbacks(t *testing.T) {
	var fc fileConfig
	if got := fc.refreshInterval(42 * time.Second); got != 42*time.Second {
		t.Errorf("refreshInterval fallback = %v", got)
	}
	if !fc.autoRefresh(true) {
		t.Error("autoRefresh fallback should be true")
	}
}
