package config

import (
	"fmt"

	"okxpos/internal/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watch reloads the config file whenever it is written and passes the fresh,
// validated config to onChange. Invalid edits are logged and skipped.
// Configs loaded from defaults only have nothing to watch.
func Watch(cfg *Config, onChange func(*Config)) error {
	if cfg == nil || cfg.Path == "" || onChange == nil {
		return nil
	}
	v := viper.New()
	v.SetConfigFile(cfg.Path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("watch config %s: %w", cfg.Path, err)
	}
	path := cfg.Path
	v.OnConfigChange(func(evt fsnotify.Event) {
		if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
			return
		}
		next, err := Load(path)
		if err != nil {
			logger.Errorf("config reload failed (%s): %v", evt.Name, err)
			return
		}
		logger.Infof("config reloaded (%s)", evt.Name)
		onChange(next)
	})
	v.WatchConfig()
	return nil
}
