package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// ResolvePath returns $OKXPOS_CONFIG or the default config location.
func ResolvePath() string {
	if p := strings.TrimSpace(os.Getenv(configPathEnv)); p != "" {
		return p
	}
	return defaultConfigPath
}

// Load reads the YAML file at path. A missing file is not an error: the
// returned config then carries only defaults and an empty Path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	source, err := readConfigFile(v, path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "toml"
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	setKeys := make(keySet)
	collectSettingsKeys(v.AllSettings(), setKeys)
	cfg.applyDefaults(setKeys)
	cfg.Path = source
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	v.SetConfigFile(abs)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("reading config file failed (%s): %w", abs, err)
	}
	return abs, nil
}

func collectSettingsKeys(settings map[string]any, dest keySet) {
	if dest == nil || len(settings) == 0 {
		return
	}
	flattenConfigKeys("", settings, dest)
}

func flattenConfigKeys(prefix string, node any, dest keySet) {
	switch val := node.(type) {
	case map[string]any:
		for k, v := range val {
			next := strings.ToLower(strings.TrimSpace(k))
			if next == "" {
				continue
			}
			if prefix != "" {
				next = prefix + "." + next
			}
			flattenConfigKeys(next, v, dest)
		}
	default:
		if prefix != "" {
			dest.mark(prefix)
		}
	}
}
