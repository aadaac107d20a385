package drain

import (
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/driftlog/drift/formatter"
)

// FileConfig holds configuration for the rotating-file sink
type FileConfig struct {
	// Path of the active log file
	Path string
	// MaxSizeMB before rotation (default: 100)
	MaxSizeMB int
	// MaxBackups to retain; 0 keeps all
	MaxBackups int
	// MaxAgeDays to retain backups; 0 keeps forever
	MaxAgeDays int
	// Compress rotated files with gzip
	Compress bool
	// Formatter to use (default: JSONFormatter)
	Formatter formatter.Formatter
}

func applyFileDefaults(cfg *FileConfig) {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 100
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewJSONFormatter(formatter.Config{})
	}
}

// NewFile creates a file sink with size/age-based rotation handled by
// lumberjack. The sink owns the file; Close flushes and closes it.
func NewFile(cfg FileConfig) *Writer {
	applyFileDefaults(&cfg)
	lj := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return newWriter(lj, cfg.Formatter, lj)
}
