// Package config contains everything related to configuration
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional cynchrony.yaml file. Every field is
// optional; a missing or unreadable file yields the zero value.
type fileConfig struct {
	BackendURL             string `yaml:"backend_url"`
	RefreshIntervalSeconds int    `yaml:"refresh_interval_seconds"`
	AutoRefresh            *bool  `yaml:"auto_refresh"`
}

func (f fileConfig) refreshInterval(fallback time.Duration) time.Duration {
	if f.RefreshIntervalSeconds > 0 {
		return time.Duration(f.RefreshIntervalSeconds) * time.Second
	}
	return fallback
}

func (f fileConfig) autoRefresh(fallback bool) bool {
	if f.AutoRefresh != nil {
		return *f.AutoRefresh
	}
	return fallback
}

func configFilePaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, "cynchrony.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "cynchrony", "cynchrony.yaml"))
	}
	return paths
}

// loadFileConfig reads the first cynchrony.yaml found. Missing files
// are not an error; malformed files are ignored the same way.
func loadFileConfig() fileConfig {
	var cfg fileConfig
	for _, path := range configFilePaths() {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return fileConfig{}
		}
		return cfg
	}
	return fileConfig{}
}
