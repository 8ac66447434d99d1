package config

import "strings"

const (
	defaultAppEnv         = "dev"
	defaultAppLogLevel    = "info"
	defaultAppHTTPAddr    = ":8080"
	defaultLogMaxSizeMB   = 50
	defaultLogMaxBackups  = 5
	defaultLogMaxAgeDays  = 14
	defaultOKXBaseURL     = "https://www.okx.com"
	defaultOKXTimeout     = 30
	defaultOKXEnvFile     = ".env"
	defaultRefreshSeconds = 120
	defaultPollAutoStart  = false
	defaultUILogCapacity  = 500
	minRefreshSeconds     = 1
	defaultConfigPath     = "configs/config.yaml"
	configPathEnv         = "OKXPOS_CONFIG"
)

// Default returns a config with every default applied, as used when no file exists.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults(nil)
	return &cfg
}

func (c *Config) applyDefaults(keys keySet) {
	c.App.applyDefaults(keys)
	c.OKX.applyDefaults(keys)
	c.Poll.applyDefaults(keys)
	c.UI.applyDefaults(keys)
}

func (a *AppConfig) applyDefaults(keys keySet) {
	if a == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("app.env", &a.Env, defaultAppEnv),
		stringFieldDefault("app.log_level", &a.LogLevel, defaultAppLogLevel),
		stringFieldDefault("app.http_addr", &a.HTTPAddr, defaultAppHTTPAddr),
		intFieldDefault("app.log_max_size_mb", &a.LogMaxSizeMB, defaultLogMaxSizeMB),
		intFieldDefault("app.log_max_backups", &a.LogMaxBackups, defaultLogMaxBackups),
		intFieldDefault("app.log_max_age_days", &a.LogMaxAgeDays, defaultLogMaxAgeDays),
	)
}

func (o *OKXConfig) applyDefaults(keys keySet) {
	if o == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("okx.base_url", &o.BaseURL, defaultOKXBaseURL),
		intFieldDefault("okx.request_timeout_seconds", &o.RequestTimeoutSeconds, defaultOKXTimeout),
		stringFieldDefault("okx.env_file", &o.EnvFile, defaultOKXEnvFile),
	)
	o.BaseURL = strings.TrimSuffix(strings.TrimSpace(o.BaseURL), "/")
}

func (p *PollConfig) applyDefaults(keys keySet) {
	if p == nil {
		return
	}
	applyFieldDefaults(keys,
		fieldDefault{
			key:   "poll.refresh_seconds",
			need:  func() bool { return p.RefreshSeconds == 0 },
			apply: func() { p.RefreshSeconds = defaultRefreshSeconds },
		},
		boolFieldDefault("poll.auto_start", &p.AutoStart, defaultPollAutoStart),
	)
}

func (u *UIConfig) applyDefaults(keys keySet) {
	if u == nil {
		return
	}
	applyFieldDefaults(keys,
		fieldDefault{
			key:   "ui.log_capacity",
			need:  func() bool { return u.LogCapacity <= 0 },
			apply: func() { u.LogCapacity = defaultUILogCapacity },
		},
	)
}

func applyFieldDefaults(keys keySet, defs ...fieldDefault) {
	for _, def := range defs {
		if def.apply == nil {
			continue
		}
		if def.key != "" && keys.isSet(def.key) {
			continue
		}
		if def.need != nil && !def.need() {
			continue
		}
		def.apply()
	}
}

func stringFieldDefault(key string, target *string, def string) fieldDefault {
	return fieldDefault{
		key: key,
		need: func() bool {
			return target != nil && strings.TrimSpace(*target) == ""
		},
		apply: func() {
			if target != nil {
				*target = def
			}
		},
	}
}

func intFieldDefault(key string, target *int, def int) fieldDefault {
	return fieldDefault{
		key:  key,
		need: func() bool { return target != nil && *target == 0 },
		apply: func() {
			if target != nil {
				*target = def
			}
		},
	}
}

func boolFieldDefault(key string, target *bool, def bool) fieldDefault {
	return fieldDefault{
		key:  key,
		need: func() bool { return target != nil },
		apply: func() {
			if target != nil {
				*target = def
			}
		},
	}
}
