package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/varstars"
	"github.com/agentstation/varstars/pkg/constants"
)

// SummaryData lays out run statistics as a two-column table.
func SummaryData(stats varstars.Stats) Data {
	caser := cases.Title(language.English, cases.NoLower)
	row := func(label string, value any) []string {
		return []string{caser.String(label), fmt.Sprint(value)}
	}

	unmatched := "-"
	if len(stats.UnmatchedNames) > 0 {
		unmatched = strings.Join(stats.UnmatchedNames, ", ")
	}

	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			row("run id", stats.RunID),
			row("reference julian date", strconv.FormatFloat(stats.ReferenceJD, 'f', -1, 64)),
			row(constants.CatalogGCVS+" lines", stats.GCVS.Lines),
			row(constants.CatalogGCVS+" records", stats.GCVS.Accepted),
			row(constants.CatalogKrakow+" lines", stats.Krakow.Lines),
			row(constants.CatalogKrakow+" records", stats.Krakow.Accepted),
			row("eclipsing type codes", stats.Types["eclipsing"]),
			row("pulsating type codes", stats.Types["pulsating"]),
			row("other type codes", stats.Types["other"]),
			row("rejected fields", stats.Diagnostics),
			row("matched", stats.Matched),
			row("dropped without period", stats.NoPeriod),
			row("eclipsing binaries", stats.Eclipsing),
			row("pulsating stars", stats.Pulsating),
			row("krakow stars not merged", unmatched),
		},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// statsTable renders Stats as a table while keeping its JSON and YAML
// field names.
type statsTable varstars.Stats

func (s statsTable) Table() Data { return SummaryData(varstars.Stats(s)) }

// Summary writes run statistics to w in format.
func Summary(w io.Writer, format Format, stats varstars.Stats) error {
	return NewFormatter(format).Format(w, statsTable(stats))
}
