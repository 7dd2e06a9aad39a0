// Package records decodes single lines of the GCVS and Krakow fixed-width
// catalogs. Parsers are pure functions of their input line; decode failures
// are handed to a Reporter.
package records

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/agentstation/varstars/pkg/constants"
	"github.com/agentstation/varstars/pkg/errors"
	"github.com/agentstation/varstars/pkg/stars"
)

// GCVS column layout, 0-based half-open byte ranges.
type column struct{ start, end int }

var (
	gcvsName         = column{8, 18}
	gcvsRADec        = column{20, 39}
	gcvsType         = column{41, 50}
	gcvsMaxMagnitude = column{52, 60}
	gcvsMinMagnitude = column{62, 74}
	gcvsAltMagnitude = column{75, 87}
	gcvsEpoch        = column{91, 101}
	gcvsPeriod       = column{111, 126}
	gcvsPercent      = column{131, 133}
	gcvsSpectralType = column{137, 154}
)

const gcvsWidth = 154

var (
	// Designation (Argelander letters, Bayer greek letter with optional
	// index, or V number) then the three-letter constellation. The greek
	// index may follow the letters directly, so "alf1 CVn" is accepted.
	starNamePattern = regexp.MustCompile(`^([A-Z]{1,2}|[a-z.]{1,3}\s*\d?|V\d{4})*\s+([A-Za-z]{3}).*$`)

	spectralTypePattern = regexp.MustCompile(`^([OBAFGKM][0-9]?[IVX]*[e]?).*$`)
)

// GCVSRecord is one decoded line of the General Catalogue of Variable Stars.
type GCVSRecord struct {
	Name             string
	Type             string
	MaximumMagnitude float64
	MinimumMagnitude float64
	Epoch            float64 // Julian date, 0 when absent
	Period           float64 // days, 0 when absent
	EclipseTime      float64 // days
	RightAscension   float64 // radians
	Declination      float64 // radians
	SpectralType     string
}

// HasPeriod reports whether the record has a usable period.
func (r *GCVSRecord) HasPeriod() bool {
	return r.Period > 0
}

// slice extracts a fixed-width field from a line padded to the layout width.
func (c column) slice(line string) string {
	return line[c.start:c.end]
}

func pad(line string, width int) string {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < width {
		line += strings.Repeat(" ", width-len(line))
	}
	return line
}

// ParseGCVS decodes one GCVS line. It returns false when the record must be
// dropped; the reason is handed to report.
func ParseGCVS(line string, report Reporter) (GCVSRecord, bool) {
	line = pad(line, gcvsWidth)

	var star string
	reject := func(field, raw string, err error) (GCVSRecord, bool) {
		report.report(Diagnostic{
			Catalog: constants.CatalogGCVS,
			Star:    star,
			Err:     errors.NewFieldError("gcvs", field, raw, err),
		})
		return GCVSRecord{}, false
	}

	rawName := gcvsName.slice(line)
	name, err := gcvsStarName(rawName)
	if err != nil {
		return reject("name", rawName, err)
	}
	star = name

	rec := GCVSRecord{
		Name: name,
		Type: strings.TrimSpace(gcvsType.slice(line)),
	}

	rawMax := gcvsMaxMagnitude.slice(line)
	maximum := DecodeMagnitude(0, rawMax)
	if maximum.State == MagnitudeMalformed {
		return reject("maximumMagnitude", rawMax, maximum.Err)
	}
	if !maximum.Valid() {
		return reject("maximumMagnitude", rawMax, fmt.Errorf("%w: no valid max magnitude", errors.ErrMissingValue))
	}
	rec.MaximumMagnitude = maximum.Value

	rawMin, rawAlt := gcvsMinMagnitude.slice(line), gcvsAltMagnitude.slice(line)
	min1 := DecodeMagnitude(maximum.Value, rawMin)
	if min1.State == MagnitudeMalformed {
		report.report(Diagnostic{Catalog: constants.CatalogGCVS, Star: star,
			Err: errors.NewFieldError("gcvs", "minimumMagnitude", rawMin, min1.Err)})
	}
	min2 := DecodeMagnitude(maximum.Value, rawAlt)
	if min2.State == MagnitudeMalformed {
		report.report(Diagnostic{Catalog: constants.CatalogGCVS, Star: star,
			Err: errors.NewFieldError("gcvs", "minimumMagnitude", rawAlt, min2.Err)})
	}
	minimum := faintest(min1, min2)
	if !minimum.Valid() {
		return reject("minimumMagnitude", rawMin+"/"+rawAlt,
			fmt.Errorf("%w: no valid min magnitude", errors.ErrMissingValue))
	}
	rec.MinimumMagnitude = minimum.Value

	if rawEpoch := strings.TrimSpace(gcvsEpoch.slice(line)); rawEpoch != "" {
		epoch, err := parseDecimal(constants.GCVSEpochPrefix + rawEpoch)
		if err != nil {
			return reject("epoch", rawEpoch, err)
		}
		rec.Epoch = epoch
	}

	if rawPeriod := strings.TrimSpace(gcvsPeriod.slice(line)); rawPeriod != "" {
		period, err := parseDecimal(rawPeriod)
		if err != nil {
			return reject("period", rawPeriod, err)
		}
		if period == 0 {
			return reject("period", rawPeriod, errors.ErrZeroPeriod)
		}
		rec.Period = period
	}

	if rawPercent := strings.TrimSpace(gcvsPercent.slice(line)); rawPercent != "" {
		percent, err := parseDecimal(rawPercent)
		if err != nil {
			report.report(Diagnostic{Catalog: constants.CatalogGCVS, Star: star,
				Err: errors.NewFieldError("gcvs", "eclipseTime", rawPercent, err)})
		} else {
			rec.EclipseTime = percent * rec.Period / 100
		}
	}

	rawRADec := gcvsRADec.slice(line)
	ra, dec, err := ParseRADec(rawRADec)
	if err != nil {
		return reject("position", rawRADec, err)
	}
	rec.RightAscension, rec.Declination = ra, dec

	if spectral := strings.TrimSpace(gcvsSpectralType.slice(line)); spectralTypePattern.MatchString(spectral) {
		rec.SpectralType = spectral
	}

	return rec, true
}

// gcvsStarName normalizes the raw name field to "<designation> <constellation>".
func gcvsStarName(raw string) (string, error) {
	groups := starNamePattern.FindStringSubmatch(raw)
	if groups == nil {
		return "", fmt.Errorf("%w: %q does not match %s", errors.ErrNoMatch, raw, starNamePattern)
	}
	designation := strings.TrimSpace(groups[1])
	if designation == "" {
		return "", fmt.Errorf("%w: %q has no designation", errors.ErrNoMatch, raw)
	}
	return designation + " " + strings.TrimSpace(groups[2]), nil
}

// parseDecimal parses a finite decimal number.
func parseDecimal(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errors.ErrInvalidInput, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", errors.ErrInvalidInput, raw)
	}
	return v, nil
}

// VariableStar converts the record into an output star named only in GCVS.
func (r *GCVSRecord) VariableStar() stars.VariableStar {
	return stars.VariableStar{
		Names:            stars.Names{constants.CatalogGCVS: r.Name},
		Type:             r.Type,
		MaximumMagnitude: r.MaximumMagnitude,
		MinimumMagnitude: r.MinimumMagnitude,
		Epoch:            r.Epoch,
		Period:           r.Period,
		EclipseTime:      r.EclipseTime,
		RightAscension:   r.RightAscension,
		Declination:      r.Declination,
		SpectralType:     r.SpectralType,
	}
}
