package varstars

import (
	"io"
	"math"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/varstars/pkg/constants"
	"github.com/agentstation/varstars/pkg/epoch"
	"github.com/agentstation/varstars/pkg/errors"
	"github.com/agentstation/varstars/pkg/save"
)

// config holds the settings of a Converter.
type config struct {
	referenceJD    float64
	magnitudeLimit float64
	format         save.Format
	logger         *zerolog.Logger
	stdout         io.Writer
}

func defaultConfig() *config {
	return &config{
		referenceJD:    constants.ReferenceJulianDate,
		magnitudeLimit: constants.PulsatingMagnitudeLimit,
		format:         save.FormatJSON,
		stdout:         os.Stdout,
	}
}

// Option is a function that configures a Converter
type Option func(*config) error

// WithReferenceJulianDate sets the Julian date epochs are advanced to.
func WithReferenceJulianDate(jd float64) Option {
	return func(c *config) error {
		if math.IsNaN(jd) || math.IsInf(jd, 0) || jd <= 0 {
			return errors.NewValidationError("reference_jd", jd, "must be a positive finite Julian date")
		}
		c.referenceJD = jd
		return nil
	}
}

// WithReferenceDate sets the reference as a calendar instant.
func WithReferenceDate(t time.Time) Option {
	return func(c *config) error {
		if t.IsZero() {
			return errors.NewValidationError("reference_date", t, "must not be zero")
		}
		return WithReferenceJulianDate(epoch.JulianDate(t))(c)
	}
}

// WithPulsatingMagnitudeLimit sets the faintest maximum magnitude kept in the
// pulsating set.
func WithPulsatingMagnitudeLimit(limit float64) Option {
	return func(c *config) error {
		if math.IsNaN(limit) || math.IsInf(limit, 0) {
			return errors.NewValidationError("max_magnitude", limit, "must be finite")
		}
		c.magnitudeLimit = limit
		return nil
	}
}

// WithFormat sets the encoding used by ConvertFiles.
func WithFormat(f save.Format) Option {
	return func(c *config) error {
		if !f.IsValid() {
			return errors.NewValidationError("format", f, "unsupported format")
		}
		c.format = f
		return nil
	}
}

// WithLogger sets the logger. Without one, the logger is taken from the
// context passed to Convert.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithStdout sets where an output path of "-" is written.
func WithStdout(w io.Writer) Option {
	return func(c *config) error {
		if w == nil {
			return errors.NewValidationError("stdout", w, "writer is required")
		}
		c.stdout = w
		return nil
	}
}
