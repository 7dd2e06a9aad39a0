// Package epoch advances ephemeris epochs to a reference date and converts
// between Julian dates and time.Time.
package epoch

import (
	"time"

	"github.com/agentstation/varstars/pkg/stars"
)

// J2000 is the Julian date of 2000-01-01T12:00:00Z.
const J2000 = 2451545.0

var j2000Time = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

// Normalize advances epoch by whole periods while the next cycle still
// starts before reference. The result is the last epoch e with
// e + period >= reference, or epoch itself when it is already there.
// Epochs are never moved backwards, and a period <= 0 leaves epoch unchanged.
// Advancing stops early once period is too small to change epoch.
func Normalize(epoch, period, reference float64) float64 {
	if period <= 0 {
		return epoch
	}
	for epoch+period < reference {
		next := epoch + period
		if next == epoch {
			break
		}
		epoch = next
	}
	return epoch
}

// Apply normalizes star's epoch in place. It returns false, leaving the star
// untouched, when the star has no period.
func Apply(star *stars.VariableStar, reference float64) bool {
	if !star.HasPeriod() {
		return false
	}
	star.Epoch = Normalize(star.Epoch, star.Period, reference)
	return true
}

// JulianDate returns the Julian date of t.
func JulianDate(t time.Time) float64 {
	return J2000 + float64(t.Sub(j2000Time))/float64(day)
}

// Time returns the UTC instant of a Julian date, rounded to the millisecond.
func Time(jd float64) time.Time {
	offset := time.Duration((jd - J2000) * float64(day))
	return j2000Time.Add(offset).Round(time.Millisecond)
}
