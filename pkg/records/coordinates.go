package records

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/agentstation/varstars/pkg/errors"
)

// HHMMSS.s followed by blanks and ±DDMMSS.s
var raDecPattern = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2}\.\d*)\s+([+-]\d{2})(\d{2})(\d{2}\.\d*)\s*$`)

// ParseRADec converts a sexagesimal position block to right ascension and
// declination in radians.
func ParseRADec(raw string) (ra, dec float64, err error) {
	groups := raDecPattern.FindStringSubmatch(raw)
	if groups == nil {
		return 0, 0, fmt.Errorf("%w: %q does not match %s", errors.ErrNoMatch, raw, raDecPattern)
	}

	// The pattern guarantees every group is numeric.
	v := make([]float64, 6)
	for i := range v {
		v[i], _ = strconv.ParseFloat(groups[i+1], 64)
	}

	ra = HoursToRadians(v[0], v[1], v[2])

	// Only the degrees field is signed; minutes and seconds always add.
	dec = DegreesToRadians(v[3], v[4], v[5])

	return ra, dec, nil
}

// HoursToRadians converts an hour angle in hours, minutes and seconds to radians.
func HoursToRadians(hours, minutes, seconds float64) float64 {
	return toRadians((hours + minutes/60 + seconds/3600) * 15)
}

// DegreesToRadians converts an angle in degrees, minutes and seconds to radians.
func DegreesToRadians(degrees, minutes, seconds float64) float64 {
	return toRadians(degrees + minutes/60 + seconds/3600)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
