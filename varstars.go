// Package varstars converts the General Catalogue of Variable Stars (GCVS)
// and the Krakow eclipsing binary ephemerides into two star sets: eclipsing
// binaries with refined ephemerides, and bright pulsating variables.
//
// Epochs in both sets are advanced by whole periods to a reference Julian
// date so that downstream predictors start from a recent extremum.
//
// Example usage:
//
//	conv, err := varstars.New(varstars.WithReferenceDate(time.Now()))
//	if err != nil {
//		return err
//	}
//	conv.OnUnmatched(func(rec records.KrakowRecord) {
//		fmt.Println("not in GCVS:", rec.KrakowName)
//	})
//	result, err := conv.ConvertFiles(ctx, varstars.Paths{
//		GCVS:      "gcvs5.txt",
//		Krakow:    "krakow.txt",
//		Eclipsing: "eclipsing.json",
//		Pulsating: "pulsating.json",
//	})
package varstars

import (
	"context"
	"fmt"
	"io"

	"github.com/agentstation/varstars/pkg/records"
	"github.com/agentstation/varstars/pkg/stars"
)

// Converter turns the two catalogs into eclipsing and pulsating star sets.
type Converter interface {
	// Convert reads both catalogs and builds the star sets in memory.
	Convert(ctx context.Context, gcvs, krakow io.Reader) (*Result, error)

	// ConvertFiles reads both catalog files and writes both star sets.
	// Nothing is written when either input cannot be read.
	ConvertFiles(ctx context.Context, paths Paths) (*Result, error)

	// OnRecordRejected registers a callback for decode diagnostics
	OnRecordRejected(RecordRejectedHook)

	// OnUnmatched registers a callback for unmatched Krakow records
	OnUnmatched(UnmatchedHook)
}

// converter is the internal implementation of the Converter interface
type converter struct {
	config *config

	// Event hooks
	*hooks
}

// New creates a new Converter with the given options
func New(opts ...Option) (Converter, error) {
	c := &converter{
		config: defaultConfig(),
		hooks:  newHooks(),
	}

	for _, opt := range opts {
		if err := opt(c.config); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	return c, nil
}

// Paths names the two catalog inputs and the two star set outputs.
type Paths struct {
	GCVS      string
	Krakow    string
	Eclipsing string
	Pulsating string
}

// Result holds both star sets and the run statistics.
type Result struct {
	Eclipsing []stars.VariableStar
	Pulsating []stars.VariableStar
	Stats     Stats
}

// Stats summarizes a conversion run.
type Stats struct {
	RunID       string            `json:"runId" yaml:"runId"`
	ReferenceJD float64           `json:"referenceJulianDate" yaml:"referenceJulianDate"`
	GCVS        records.ReadStats `json:"gcvs" yaml:"gcvs"`
	Krakow      records.ReadStats `json:"krakow" yaml:"krakow"`
	// Types counts accepted GCVS records by kind: eclipsing, pulsating, other.
	Types       map[string]int    `json:"types" yaml:"types"`
	Diagnostics int               `json:"diagnostics" yaml:"diagnostics"`
	Matched     int               `json:"matched" yaml:"matched"`
	// NoPeriod counts merged records dropped from the eclipsing set because
	// they have no period.
	NoPeriod       int      `json:"noPeriod" yaml:"noPeriod"`
	Eclipsing      int      `json:"eclipsing" yaml:"eclipsing"`
	Pulsating      int      `json:"pulsating" yaml:"pulsating"`
	UnmatchedNames []string `json:"unmatched" yaml:"unmatched"`
}
