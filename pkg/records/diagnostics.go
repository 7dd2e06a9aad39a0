package records

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/varstars/pkg/errors"
)

// Diagnostic describes a field that could not be decoded. Most diagnostics
// mean the record was dropped; a malformed magnitude or eclipse percentage
// only blanks that field.
type Diagnostic struct {
	Catalog string // constants.CatalogGCVS or constants.CatalogKrakow
	Line    int    // 1-based line number, 0 when parsed outside a reader
	Star    string // star name, when decoded before the failure
	Err     *errors.ParseError
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return d.Err.Error()
}

// Unwrap returns the underlying parse error.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Reporter receives diagnostics while parsing. A nil Reporter discards them.
type Reporter func(Diagnostic)

func (r Reporter) report(d Diagnostic) {
	if r != nil {
		r(d)
	}
}

// LogReporter writes every diagnostic as an error event on logger.
func LogReporter(logger *zerolog.Logger) Reporter {
	return func(d Diagnostic) {
		event := logger.Error().
			Str("catalog", d.Catalog).
			Str("field", d.Err.Field).
			Str("raw", d.Err.Raw)
		if d.Line > 0 {
			event = event.Int("line", d.Line)
		}
		if d.Star != "" {
			event = event.Str("star", d.Star)
		}
		event.Err(d.Err.Err).Msg("Cannot decode catalog field")
	}
}

// Tee fans a diagnostic out to several reporters.
func Tee(reporters ...Reporter) Reporter {
	return func(d Diagnostic) {
		for _, r := range reporters {
			r.report(d)
		}
	}
}
