package config

import "gopkg.in/yaml.v3"

// Dump renders the effective configuration as YAML for the startup summary.
func (c *Config) Dump() (string, error) {
	view := map[string]any{
		"app": map[string]any{
			"env":              c.App.Env,
			"log_level":        c.App.LogLevel,
			"http_addr":        c.App.HTTPAddr,
			"log_path":         c.App.LogPath,
			"log_max_size_mb":  c.App.LogMaxSizeMB,
			"log_max_backups":  c.App.LogMaxBackups,
			"log_max_age_days": c.App.LogMaxAgeDays,
		},
		"okx": map[string]any{
			"base_url":                c.OKX.BaseURL,
			"request_timeout_seconds": c.OKX.RequestTimeoutSeconds,
			"env_file":                c.OKX.EnvFile,
		},
		"poll": map[string]any{
			"refresh_seconds": c.Poll.RefreshSeconds,
			"auto_start":      c.Poll.AutoStart,
		},
		"ui": map[string]any{
			"log_capacity": c.UI.LogCapacity,
		},
	}
	out, err := yaml.Marshal(view)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
