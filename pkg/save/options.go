package save

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/varstars/pkg/errors"
)

// Format is the encoding of a written result set.
type Format int

// Format constants.
const (
	FormatJSON Format = iota
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// ParseFormat parses a format name. The empty string selects JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, &errors.ValidationError{
		Field:   "format",
		Value:   name,
		Message: fmt.Sprintf("unsupported format (want %s or %s)", FormatJSON, FormatYAML),
	}
}

// Options selects where encoded data is written.
type Options struct {
	path   string
	writer io.Writer
}

// Path returns the destination file, if any.
func (s *Options) Path() string {
	return s.path
}

// Writer returns the destination writer, if any.
func (s *Options) Writer() io.Writer {
	return s.writer
}

// Defaults returns options with no destination.
func Defaults() *Options {
	return &Options{}
}

// Apply applies opts in order and returns the result.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option configures a write.
type Option func(*Options)

// WithPath writes to a file, replaced atomically.
func WithPath(path string) Option {
	return func(s *Options) {
		s.path = path
	}
}

// WithWriter writes to w. A writer takes precedence over a path.
func WithWriter(w io.Writer) Option {
	return func(s *Options) {
		s.writer = w
	}
}
