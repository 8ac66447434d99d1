package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"okxpos/internal/app"
	"okxpos/internal/config"
	"okxpos/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.ResolvePath())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logFile, err := logger.SetupFile(logger.FileOptions{
		Path:       cfg.App.LogPath,
		MaxSizeMB:  cfg.App.LogMaxSizeMB,
		MaxBackups: cfg.App.LogMaxBackups,
		MaxAgeDays: cfg.App.LogMaxAgeDays,
	})
	if err != nil {
		log.Fatalf("init log file: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.SetLevel(cfg.App.LogLevel)

	if err := config.LoadDotEnv(cfg.OKX.EnvFile); err != nil {
		logger.Warnf("dotenv %s not loaded: %v", cfg.OKX.EnvFile, err)
	}
	source := cfg.Path
	if source == "" {
		source = "defaults"
	}
	logger.Infof("config loaded (env=%s, source=%s)", cfg.App.Env, source)

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("init app: %v", err)
	}
	if err := application.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
