// Package constants provides shared constants used throughout the varstars codebase.
// This includes catalog labels, the fixed-width layout limits, normalization defaults,
// and file permissions that should be consistent across the application.
package constants

// Catalog labels are the keys used in a star's names map. Downstream tools
// look names up by these exact strings.
const (
	// CatalogGCVS labels the General Catalogue of Variable Stars (primary catalog)
	CatalogGCVS = "GCVS"

	// CatalogKrakow labels the Krakow eclipsing binary ephemeris list (supplementary catalog)
	CatalogKrakow = "Krakow"
)

// Normalization defaults
const (
	// ReferenceJulianDate is the default date epochs are advanced to (2019-01-01T12:00:00Z)
	ReferenceJulianDate = 2458485.0

	// PulsatingMagnitudeLimit is the faintest maximum magnitude kept in the pulsating set
	PulsatingMagnitudeLimit = 14.0

	// GCVSEpochPrefix is prepended to the truncated Julian dates stored in the GCVS
	GCVSEpochPrefix = "24"
)

// StdoutPath as an output path writes the set to standard output.
const StdoutPath = "-"

// Header lines
const (
	// HeaderLines is the number of leading lines skipped in every catalog file
	HeaderLines = 1
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants
const (
	// MaxLineLength bounds a single catalog line read by the scanners (1 MB)
	MaxLineLength = 1024 * 1024
)
