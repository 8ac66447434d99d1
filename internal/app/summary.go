package app

import (
	"fmt"
	"strings"

	"okxpos/internal/config"
)

// StartupSummary is printed once before the dashboard starts serving.
type StartupSummary struct {
	ConfigPath string
	Dashboard  string
	Settings   string
}

func newStartupSummary(cfg *config.Config) *StartupSummary {
	s := &StartupSummary{ConfigPath: cfg.Path, Dashboard: dashboardURL(cfg.App.HTTPAddr)}
	if dump, err := cfg.Dump(); err == nil {
		s.Settings = dump
	}
	return s
}

func dashboardURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

func (s *StartupSummary) Print() {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("OKX POSITIONS VIEWER")
	fmt.Println(strings.Repeat("=", 60))
	path := s.ConfigPath
	if path == "" {
		path = "(defaults)"
	}
	fmt.Printf("  config:    %s\n", path)
	fmt.Printf("  dashboard: %s\n", s.Dashboard)
	if s.Settings != "" {
		fmt.Println()
		fmt.Println("  " + strings.ReplaceAll(strings.TrimRight(s.Settings, "\n"), "\n", "\n  "))
	}
	fmt.Println(strings.Repeat("=", 60))
}
