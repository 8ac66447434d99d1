package config

import (
	"strings"
	"time"
)

// Config is the okxpos runtime configuration. Credentials are never stored here.
type Config struct {
	App  AppConfig  `toml:"app"`
	OKX  OKXConfig  `toml:"okx"`
	Poll PollConfig `toml:"poll"`
	UI   UIConfig   `toml:"ui"`

	// Path is the file the config was read from; empty when running on defaults.
	Path string `toml:"-"`
}

type AppConfig struct {
	Env           string `toml:"env"`
	LogLevel      string `toml:"log_level"`
	HTTPAddr      string `toml:"http_addr"`
	LogPath       string `toml:"log_path"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb"`
	LogMaxBackups int    `toml:"log_max_backups"`
	LogMaxAgeDays int    `toml:"log_max_age_days"`
}

type OKXConfig struct {
	BaseURL               string `toml:"base_url"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	// EnvFile is loaded with godotenv before the OKX_* variables are read.
	EnvFile string `toml:"env_file"`
}

// RequestTimeout returns the per-request bound; zero disables it.
func (o OKXConfig) RequestTimeout() time.Duration {
	if o.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(o.RequestTimeoutSeconds) * time.Second
}

type PollConfig struct {
	RefreshSeconds float64 `toml:"refresh_seconds"`
	AutoStart      bool    `toml:"auto_start"`
}

// RefreshInterval converts RefreshSeconds to a duration.
func (p PollConfig) RefreshInterval() time.Duration {
	return time.Duration(p.RefreshSeconds * float64(time.Second))
}

type UIConfig struct {
	LogCapacity int `toml:"log_capacity"`
}

// keySet tracks the dotted paths explicitly present in the config file.
type keySet map[string]struct{}

func (k keySet) mark(path string) {
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return
	}
	k[path] = struct{}{}
}

func (k keySet) isSet(path string) bool {
	if len(k) == 0 {
		return false
	}
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return false
	}
	_, ok := k[path]
	return ok
}

// fieldDefault describes when and how one field receives its default.
type fieldDefault struct {
	key   string
	need  func() bool
	apply func()
}
