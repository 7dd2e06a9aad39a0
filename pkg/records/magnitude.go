package records

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/agentstation/varstars/pkg/errors"
)

var (
	// A magnitude token, optionally flagged by a leading "(", "<" or ">".
	// "(" marks an amplitude to be added to the maximum magnitude.
	magnitudePattern = regexp.MustCompile(`^\s*([(<>]?)\s*([-\d.]+)[\s:]*\)?\s*$`)

	// Blanks, band letters and punctuation that carry no magnitude.
	ignoreMagnitudePattern = regexp.MustCompile(`^[\s\d().:'BRIJUVabcgpuvy*]*$`)
)

// MagnitudeState tells whether a magnitude field held a value.
type MagnitudeState int

const (
	// MagnitudeAbsent means the field was blank or only carried band codes.
	MagnitudeAbsent MagnitudeState = iota
	// MagnitudeDecoded means Value holds a magnitude.
	MagnitudeDecoded
	// MagnitudeMalformed means the field held text that is not a magnitude.
	MagnitudeMalformed
)

// String returns the state name.
func (s MagnitudeState) String() string {
	switch s {
	case MagnitudeDecoded:
		return "decoded"
	case MagnitudeMalformed:
		return "malformed"
	default:
		return "absent"
	}
}

// Magnitude is the result of decoding one magnitude field.
type Magnitude struct {
	Value float64
	State MagnitudeState
	Err   error // set when State is MagnitudeMalformed
}

// Valid reports whether the magnitude holds a value.
func (m Magnitude) Valid() bool {
	return m.State == MagnitudeDecoded
}

// DecodeMagnitude decodes a raw magnitude field. base is added to values
// written in parentheses.
func DecodeMagnitude(base float64, raw string) Magnitude {
	groups := magnitudePattern.FindStringSubmatch(raw)
	if groups == nil {
		if ignoreMagnitudePattern.MatchString(raw) {
			return Magnitude{State: MagnitudeAbsent}
		}
		return Magnitude{
			State: MagnitudeMalformed,
			Err:   fmt.Errorf("%w: %q does not match %s", errors.ErrNoMatch, raw, magnitudePattern),
		}
	}

	value, err := strconv.ParseFloat(groups[2], 64)
	if err != nil {
		return Magnitude{State: MagnitudeMalformed, Err: fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)}
	}
	if groups[1] == "(" {
		value += base
	}
	return Magnitude{Value: value, State: MagnitudeDecoded}
}

// faintest returns the numerically larger of two minimum candidates,
// ignoring candidates without a value.
func faintest(a, b Magnitude) Magnitude {
	switch {
	case !a.Valid():
		return b
	case !b.Valid():
		return a
	case b.Value > a.Value:
		return b
	default:
		return a
	}
}
