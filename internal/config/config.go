// Package config handles application configuration and setup
package config

import (
	"os"

	"github.com/retroenv/ndsgameid/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with the level selected by the debug and quiet flags.
// Debug wins over quiet when both are set. Log output goes to stderr, stdout is reserved
// for the results of the tools.
func CreateLogger(flags options.Flags) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = os.Stderr
	switch {
	case flags.Debug:
		cfg.Level = log.DebugLevel
	case flags.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
