// Package logging wraps zerolog for the catalog conversion. Runs attached to
// a terminal get console text; batch runs get one JSON object per line so
// rejected catalog lines can be filtered with standard tools.
//
// Example usage:
//
//	logger := logging.Default()
//	logger.Info().Str("catalog", "GCVS").Int("records", n).Msg("Read catalog")
//
//	ctx := logging.WithLogger(context.Background(), logger)
//	ctx = logging.WithCatalog(ctx, "Krakow")
//	logging.FromContext(ctx).Debug().Msg("Merging ephemerides")
package logging

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment variables read by the default logger.
const (
	EnvLogLevel  = "VARSTARS_LOG_LEVEL"
	EnvLogFormat = "VARSTARS_LOG_FORMAT"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger = envLogger()
)

// envLogger builds the package default from the environment. Bad values fall
// back to DefaultConfig.
func envLogger() zerolog.Logger {
	cfg := DefaultConfig()
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		cfg.Format = format
	}

	logger, err := NewLoggerFromConfig(cfg)
	if err != nil {
		logger, _ = NewLoggerFromConfig(DefaultConfig())
	}
	return logger
}

// Default returns the package default logger.
func Default() *zerolog.Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	logger := defaultLogger
	return &logger
}

// SetDefault replaces the package default logger and zerolog's global one.
func SetDefault(logger zerolog.Logger) {
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
	log.Logger = logger
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
