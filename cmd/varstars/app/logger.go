package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/varstars/pkg/errors"
	"github.com/agentstation/varstars/pkg/logging"
)

// NewLogger builds the run logger from the configuration.
// Level precedence, highest first:
//  1. --log-level or VARSTARS_LOG_LEVEL
//  2. -q/--quiet (warn), which also wins over -v
//  3. -v/--verbose (debug)
//  4. info
func NewLogger(config *Config) (zerolog.Logger, error) {
	level := determineLogLevel(config)

	logger, err := logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	})
	if err != nil {
		return logger, errors.NewConfigError("logging", "invalid log settings", err)
	}
	return logger, nil
}

func determineLogLevel(config *Config) string {
	if config.LogLevel != "" {
		level, ok := validateLogLevel(config.LogLevel)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using %q\n", config.LogLevel, level)
		}
		return level
	}

	switch {
	case config.Verbose && config.Quiet:
		fmt.Fprintf(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet\n")
		return "warn"
	case config.Quiet:
		return "warn"
	case config.Verbose:
		return "debug"
	}
	return "info"
}

// validateLogLevel normalizes a level name, reporting false and info for
// names zerolog does not know.
func validateLogLevel(name string) (string, bool) {
	level, err := logging.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel.String(), false
	}
	return level.String(), true
}
