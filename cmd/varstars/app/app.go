// Package app provides the application context and dependency management
// for the varstars CLI. It centralizes configuration, logging, and the
// construction of the catalog converter.
package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/varstars"
	"github.com/agentstation/varstars/pkg/errors"
	"github.com/agentstation/varstars/pkg/logging"
	"github.com/agentstation/varstars/pkg/save"
)

// App represents the varstars application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger, rebuilt from flags unless injected
	logger      *zerolog.Logger
	loggerFixed bool

	// Summary destination
	stdout io.Writer
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment, .env
// files, and the default config file locations.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdout:  os.Stdout,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	// Bad log settings are reported when the command runs.
	if logger, err := NewLogger(config); err == nil {
		app.logger = &logger
	} else {
		app.logger = logging.Default()
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Converter builds a converter from the current configuration.
func (a *App) Converter() (varstars.Converter, error) {
	opts, err := a.converterOptions()
	if err != nil {
		return nil, err
	}

	conv, err := varstars.New(opts...)
	if err != nil {
		return nil, errors.NewConfigError("converter", "invalid settings", err)
	}
	return conv, nil
}

// converterOptions constructs converter options from the app configuration.
func (a *App) converterOptions() ([]varstars.Option, error) {
	format, err := save.ParseFormat(a.config.Format)
	if err != nil {
		return nil, errors.NewConfigError("format", err.Error(), err)
	}

	opts := []varstars.Option{
		varstars.WithLogger(a.logger),
		varstars.WithFormat(format),
		varstars.WithStdout(a.stdout),
		varstars.WithPulsatingMagnitudeLimit(a.config.MaxMagnitude),
	}

	// A reference date wins over a reference Julian date
	if a.config.ReferenceDate != "" {
		t, err := parseReferenceDate(a.config.ReferenceDate)
		if err != nil {
			return nil, err
		}
		opts = append(opts, varstars.WithReferenceDate(t))
	} else {
		opts = append(opts, varstars.WithReferenceJulianDate(a.config.ReferenceJD))
	}

	return opts, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		a.loggerFixed = true
		return nil
	}
}

// WithOutput sets where the run summary is written.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.stdout = w
		return nil
	}
}
