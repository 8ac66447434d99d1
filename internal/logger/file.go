package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions controls the rotated log file sink.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// SetupFile tees process logs to stdout and a lumberjack-rotated file.
// An empty path keeps stdout only and returns a nil closer.
func SetupFile(opts FileOptions) (io.Closer, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 50
	}
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	SetOutput(io.MultiWriter(os.Stdout, rotator))
	return rotator, nil
}
