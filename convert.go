package varstars

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/agentstation/varstars/pkg/constants"
	"github.com/agentstation/varstars/pkg/epoch"
	"github.com/agentstation/varstars/pkg/errors"
	"github.com/agentstation/varstars/pkg/logging"
	"github.com/agentstation/varstars/pkg/merge"
	"github.com/agentstation/varstars/pkg/records"
	"github.com/agentstation/varstars/pkg/save"
	"github.com/agentstation/varstars/pkg/stars"
	"github.com/agentstation/varstars/pkg/vartype"
)

// Convert reads both catalogs and builds the star sets in memory.
func (c *converter) Convert(ctx context.Context, gcvs, krakow io.Reader) (*Result, error) {
	return c.convert(c.runContext(ctx), gcvs, krakow)
}

func (c *converter) convert(ctx context.Context, gcvs, krakow io.Reader) (*Result, error) {
	logger := logging.FromContext(ctx)

	result := &Result{Stats: Stats{
		RunID:       logging.RunID(ctx),
		ReferenceJD: c.config.referenceJD,
	}}
	readCtx := logging.WithStage(ctx, "read")
	report := records.Tee(
		records.LogReporter(logging.FromContext(readCtx)),
		func(records.Diagnostic) { result.Stats.Diagnostics++ },
		c.hooks.reporter(),
	)

	gcvsRecords, stats, err := records.ReadGCVS(gcvs, report)
	if err != nil {
		return nil, fmt.Errorf("reading %s catalog: %w", constants.CatalogGCVS, err)
	}
	result.Stats.GCVS = stats
	result.Stats.Types = countKinds(gcvsRecords)
	logRead(readCtx, constants.CatalogGCVS, stats)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	krakowRecords, stats, err := records.ReadKrakow(krakow, report)
	if err != nil {
		return nil, fmt.Errorf("reading %s catalog: %w", constants.CatalogKrakow, err)
	}
	result.Stats.Krakow = stats
	logRead(readCtx, constants.CatalogKrakow, stats)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := merge.Merge(gcvsRecords, krakowRecords)
	result.Stats.Matched = merged.Matched
	result.Eclipsing = c.eclipsing(merged.Stars, &result.Stats)
	result.Pulsating = c.pulsating(gcvsRecords)
	result.Stats.Eclipsing = len(result.Eclipsing)
	result.Stats.Pulsating = len(result.Pulsating)

	result.Stats.UnmatchedNames = merged.UnmatchedNames()
	if len(merged.Unmatched) > 0 {
		logging.FromContext(logging.WithStage(ctx, "merge")).Info().
			Int("count", len(merged.Unmatched)).
			Strs("names", result.Stats.UnmatchedNames).
			Msg("Krakow stars not merged")
		c.hooks.triggerUnmatched(merged.Unmatched)
	}

	logger.Info().
		Int("matched", merged.Matched).
		Int("eclipsing", result.Stats.Eclipsing).
		Int("pulsating", result.Stats.Pulsating).
		Int("no_period", result.Stats.NoPeriod).
		Float64("reference_jd", c.config.referenceJD).
		Msg("Converted catalogs")

	return result, nil
}

// eclipsing normalizes merged stars, dropping those without a period.
func (c *converter) eclipsing(merged []stars.VariableStar, stats *Stats) []stars.VariableStar {
	out := make([]stars.VariableStar, 0, len(merged))
	for i := range merged {
		star := merged[i]
		if !epoch.Apply(&star, c.config.referenceJD) {
			stats.NoPeriod++
			continue
		}
		out = append(out, star)
	}
	return out
}

// countKinds tallies records by variability kind. Every kind is present.
func countKinds(gcvs []records.GCVSRecord) map[string]int {
	counts := map[string]int{
		vartype.Eclipsing.String(): 0,
		vartype.Pulsating.String(): 0,
		vartype.Other.String():     0,
	}
	for i := range gcvs {
		counts[vartype.Classify(gcvs[i].Type).String()]++
	}
	return counts
}

// pulsating selects bright periodic pulsating variables from GCVS.
func (c *converter) pulsating(gcvs []records.GCVSRecord) []stars.VariableStar {
	out := make([]stars.VariableStar, 0)
	for i := range gcvs {
		rec := &gcvs[i]
		if !vartype.IsPulsating(rec.Type) ||
			rec.MaximumMagnitude > c.config.magnitudeLimit ||
			!rec.HasPeriod() {
			continue
		}
		star := rec.VariableStar()
		epoch.Apply(&star, c.config.referenceJD)
		out = append(out, star)
	}
	return out
}

// ConvertFiles reads both catalog files and writes both star sets. Both sets
// are encoded before either file is replaced.
func (c *converter) ConvertFiles(ctx context.Context, paths Paths) (*Result, error) {
	if err := paths.validate(); err != nil {
		return nil, err
	}
	ctx = c.runContext(ctx)
	logger := logging.FromContext(ctx)

	gcvs, err := os.Open(paths.GCVS)
	if err != nil {
		return nil, errors.WrapIO("open", paths.GCVS, err)
	}
	defer func() { _ = gcvs.Close() }()

	krakow, err := os.Open(paths.Krakow)
	if err != nil {
		return nil, errors.WrapIO("open", paths.Krakow, err)
	}
	defer func() { _ = krakow.Close() }()

	result, err := c.convert(ctx, gcvs, krakow)
	if err != nil {
		return nil, err
	}

	eclipsing, err := save.Encode(result.Eclipsing, c.config.format)
	if err != nil {
		return nil, err
	}
	pulsating, err := save.Encode(result.Pulsating, c.config.format)
	if err != nil {
		return nil, err
	}

	if err := save.Write(eclipsing, c.destination(paths.Eclipsing)); err != nil {
		return nil, err
	}
	logger.Info().Str("path", paths.Eclipsing).Int("stars", len(result.Eclipsing)).Msg("Wrote eclipsing binaries")

	if err := save.Write(pulsating, c.destination(paths.Pulsating)); err != nil {
		return nil, err
	}
	logger.Info().Str("path", paths.Pulsating).Int("stars", len(result.Pulsating)).Msg("Wrote pulsating stars")

	return result, nil
}

// destination maps an output path to a save option; StdoutPath writes to
// the configured stdout.
func (c *converter) destination(path string) save.Option {
	if path == constants.StdoutPath {
		return save.WithWriter(c.config.stdout)
	}
	return save.WithPath(path)
}

// runContext attaches the configured logger and a run ID to ctx.
func (c *converter) runContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.config.logger != nil {
		ctx = logging.WithLogger(ctx, c.config.logger)
	}
	if logging.RunID(ctx) == "" {
		ctx = logging.WithRunID(ctx, "")
	}
	return ctx
}

func logRead(ctx context.Context, catalog string, stats records.ReadStats) {
	logging.FromContext(logging.WithCatalog(ctx, catalog)).Info().
		Int("records", stats.Accepted).
		Int("lines", stats.Lines).
		Msg("Read catalog")
}

func (p Paths) validate() error {
	fields := []struct{ name, value string }{
		{"gcvs", p.GCVS},
		{"krakow", p.Krakow},
		{"eclipsing", p.Eclipsing},
		{"pulsating", p.Pulsating},
	}
	for _, f := range fields {
		if f.value == "" {
			return errors.NewValidationError(f.name, f.value, "path is required")
		}
	}
	return nil
}
