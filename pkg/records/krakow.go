package records

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/agentstation/varstars/pkg/constants"
	"github.com/agentstation/varstars/pkg/errors"
)

// Krakow column layout, 0-based half-open byte ranges.
var (
	krakowName   = column{0, 9}
	krakowType   = column{10, 13}
	krakowEpoch  = column{14, 26}
	krakowPeriod = column{33, 46}
)

const krakowWidth = 46

// krakowTypes are the ephemeris types kept from the Krakow list.
var krakowTypes = map[string]bool{
	"ALL": true,
	"PRI": true,
}

var (
	krakowVStarPattern = regexp.MustCompile(`^([A-Z]{3})\sV([0-9]+)$`)
	krakowStarPattern  = regexp.MustCompile(`^([A-Z]{3})\s([A-Z]+)$`)
)

// KrakowRecord is one decoded line of the Krakow eclipsing binary list.
type KrakowRecord struct {
	KrakowName string  // display name as written in the Krakow list
	GCVSName   string  // cross-reference name in GCVS form
	Epoch      float64 // Julian date
	Period     float64 // days
}

// ParseKrakow decodes one Krakow line. previous is the cross-reference name
// of the last accepted record; a line repeating it is dropped. Only adjacent
// duplicates are caught, the list is expected to be sorted by name.
func ParseKrakow(line, previous string, report Reporter) (KrakowRecord, bool) {
	line = pad(line, krakowWidth)

	if !krakowTypes[strings.ToUpper(krakowType.slice(line))] {
		return KrakowRecord{}, false
	}

	rawName := strings.TrimSpace(krakowName.slice(line))
	reject := func(field, raw string, err error) (KrakowRecord, bool) {
		report.report(Diagnostic{
			Catalog: constants.CatalogKrakow,
			Star:    rawName,
			Err:     errors.NewFieldError("krakow", field, raw, err),
		})
		return KrakowRecord{}, false
	}

	gcvsName, err := krakowCrossReference(rawName)
	if err != nil {
		return reject("name", rawName, err)
	}
	if gcvsName == previous {
		return KrakowRecord{}, false
	}

	rawEpoch := krakowEpoch.slice(line)
	epoch, err := parseDecimal(rawEpoch)
	if err != nil {
		return reject("epoch", rawEpoch, err)
	}

	rawPeriod := krakowPeriod.slice(line)
	period, err := parseDecimal(rawPeriod)
	if err != nil {
		return reject("period", rawPeriod, err)
	}

	return KrakowRecord{
		KrakowName: rawName,
		GCVSName:   gcvsName,
		Epoch:      epoch,
		Period:     period,
	}, true
}

// krakowCrossReference converts "CYG V344" to "V0344 CYG" and "AND RT" or
// "ORI ALPHA" to "RT AND" and "ALP ORI".
func krakowCrossReference(name string) (string, error) {
	if groups := krakowVStarPattern.FindStringSubmatch(name); groups != nil {
		number, err := strconv.Atoi(groups[2])
		if err != nil {
			return "", fmt.Errorf("%w: %q", errors.ErrInvalidInput, groups[2])
		}
		return fmt.Sprintf("V%04d %s", number, groups[1]), nil
	}

	if groups := krakowStarPattern.FindStringSubmatch(name); groups != nil {
		designation := groups[2]
		if len(designation) > 3 {
			designation = designation[:3]
		}
		return designation + " " + groups[1], nil
	}

	return "", fmt.Errorf("%w: %q does not match %s or %s",
		errors.ErrNoMatch, name, krakowStarPattern, krakowVStarPattern)
}
