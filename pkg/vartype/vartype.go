// Package vartype classifies GCVS variability type codes.
//
// Codes are matched case-sensitively. Combined or uncertain types carry a
// qualifier suffix ("EA/DM", "SRB:", "RRAB+BL"); pulsating codes may also
// carry a leading ":" marking an uncertain class.
package vartype

import (
	"github.com/agentstation/varstars/internal/matcher"
)

// eclipsingPattern is an "E" optionally followed by a subtype letter and a
// qualifier suffix.
const eclipsingPattern = `E([AWBP])?([+/:].*)?`

// pulsatingFamilies are the GCVS pulsating variable classes.
var pulsatingFamilies = []string{
	`ACYG`,
	`BCEPS?`,
	`BLBOO`,
	`CEP(\(B\))?`,
	`CW[AB]?`,
	`DCEPS?`,
	`DSCTC?`,
	`GDOR`,
	`L[BC]?`,
	`LPB`,
	`M`,
	`PVTEL`,
	`RPHS`,
	`RR(AB|C|\(B\))?`,
	`RV[AB]?`,
	`SR[ABCDS]?`,
	`SXPHE`,
	`ZZ[ABO]?`,
}

var (
	eclipsing = matcher.MustNew(eclipsingPattern, &matcher.Options{Anchored: true})
	pulsating = matcher.MustNewMultiMatcher(qualified(pulsatingFamilies), &matcher.Options{Anchored: true})
)

// qualified wraps each family with the optional uncertainty prefix and
// qualifier suffix.
func qualified(families []string) []string {
	out := make([]string, len(families))
	for i, f := range families {
		out[i] = `:?(` + f + `)([+/:|].*)?`
	}
	return out
}

// IsEclipsing reports whether code names an eclipsing binary type.
func IsEclipsing(code string) bool {
	return eclipsing.Match(code)
}

// IsPulsating reports whether code names a pulsating variable type.
func IsPulsating(code string) bool {
	return pulsating.Match(code)
}

// Kind is the broad class of a variability type.
type Kind int

const (
	// Other covers every type that is neither eclipsing nor pulsating.
	Other Kind = iota
	Eclipsing
	Pulsating
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Eclipsing:
		return "eclipsing"
	case Pulsating:
		return "pulsating"
	default:
		return "other"
	}
}

// Classify returns the kind of code. Eclipsing wins for combined codes that
// match both families.
func Classify(code string) Kind {
	switch {
	case IsEclipsing(code):
		return Eclipsing
	case IsPulsating(code):
		return Pulsating
	default:
		return Other
	}
}
