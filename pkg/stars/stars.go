// Package stars defines the merged variable star record written to the
// eclipsing and pulsating result sets.
package stars

import "github.com/agentstation/varstars/pkg/constants"

// Names maps a catalog label (constants.CatalogGCVS, constants.CatalogKrakow)
// to the star's designation in that catalog.
type Names map[string]string

// VariableStar is one output record. Field order matches the serialized
// order consumed by the eclipse predictor.
type VariableStar struct {
	Names            Names   `json:"names" yaml:"names"`
	Type             string  `json:"type" yaml:"type"`
	MaximumMagnitude float64 `json:"maximumMagnitude" yaml:"maximumMagnitude"`
	MinimumMagnitude float64 `json:"minimumMagnitude" yaml:"minimumMagnitude"`
	Epoch            float64 `json:"epoch" yaml:"epoch"`
	Period           float64 `json:"period" yaml:"period"`
	EclipseTime      float64 `json:"eclipseTime" yaml:"eclipseTime"`
	RightAscension   float64 `json:"rightAscension" yaml:"rightAscension"`
	Declination      float64 `json:"declination" yaml:"declination"`
	SpectralType     string  `json:"spectralType" yaml:"spectralType"`
}

// GCVSName returns the primary catalog designation.
func (s *VariableStar) GCVSName() string {
	return s.Names[constants.CatalogGCVS]
}

// KrakowName returns the supplementary catalog designation, if matched.
func (s *VariableStar) KrakowName() (string, bool) {
	name, ok := s.Names[constants.CatalogKrakow]
	return name, ok
}

// HasPeriod reports whether the star has a usable period.
func (s *VariableStar) HasPeriod() bool {
	return s.Period > 0
}
