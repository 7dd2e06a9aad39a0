package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/varstars/pkg/constants"
	"github.com/agentstation/varstars/pkg/errors"
)

// Log output formats.
const (
	FormatAuto    = "auto"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config selects the level, encoding and destination of a run's log.
type Config struct {
	Level      string // trace, debug, info, warn, error or disabled
	Format     string // auto, json or console
	Output     string // stderr, stdout, discard or a file path to append to
	TimeFormat string // kitchen, rfc3339, rfc3339nano, unix or a Go layout
	NoColor    bool
	AddCaller  bool
}

// DefaultConfig logs info and above to stderr, as console text on a
// terminal and JSON lines otherwise.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     FormatAuto,
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

var levelAliases = map[string]zerolog.Level{
	"warning": zerolog.WarnLevel,
	"none":    zerolog.Disabled,
	"off":     zerolog.Disabled,
}

var timeFormats = map[string]string{
	"kitchen":     time.Kitchen,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"unix":        zerolog.TimeFormatUnix,
	"epoch":       zerolog.TimeFormatUnix,
}

// ParseLevel maps a level name to a zerolog level. An empty name is info.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	if level, ok := levelAliases[name]; ok {
		return level, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel, errors.NewValidationError("level", name, "unknown log level")
	}
	return level, nil
}

// NewLoggerFromConfig builds a logger and sets the zerolog global level to
// match. A nil cfg uses DefaultConfig.
func NewLoggerFromConfig(cfg *Config) (zerolog.Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	w, err := cfg.writer()
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.SetGlobalLevel(level)
	logCtx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logCtx = logCtx.Caller()
	}
	return logCtx.Logger(), nil
}

// Configure replaces the default logger.
func Configure(cfg *Config) error {
	logger, err := NewLoggerFromConfig(cfg)
	if err != nil {
		return err
	}
	SetDefault(logger)
	return nil
}

// writer resolves the destination and wraps it in a console writer when the
// format asks for one.
func (c *Config) writer() (io.Writer, error) {
	var out io.Writer
	switch strings.ToLower(c.Output) {
	case "", "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	case "discard", "none":
		return io.Discard, nil
	default:
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
		if err != nil {
			return nil, errors.WrapIO("open", c.Output, err)
		}
		out = f
	}

	switch strings.ToLower(c.Format) {
	case FormatJSON:
		return out, nil
	case FormatConsole, "pretty":
	case "", FormatAuto:
		if f, ok := out.(*os.File); !ok || !isTerminal(f) {
			return out, nil
		}
	default:
		return nil, errors.NewValidationError("format", c.Format, "unknown log format")
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: c.timeFormat(),
		NoColor:    c.NoColor,
	}, nil
}

func (c *Config) timeFormat() string {
	if layout, ok := timeFormats[strings.ToLower(c.TimeFormat)]; ok {
		return layout
	}
	if strings.Contains(c.TimeFormat, "2006") || strings.Contains(c.TimeFormat, "15:04") {
		return c.TimeFormat
	}
	return time.Kitchen
}
