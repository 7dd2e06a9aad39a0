package records

import (
	"bufio"
	"io"

	"github.com/agentstation/varstars/pkg/constants"
	"github.com/agentstation/varstars/pkg/errors"
)

// ReadStats counts lines seen and records accepted by a reader.
type ReadStats struct {
	Lines    int `json:"lines" yaml:"lines"`
	Accepted int `json:"accepted" yaml:"accepted"`
}

// ReadGCVS parses every line of a GCVS file after the header.
func ReadGCVS(r io.Reader, report Reporter) ([]GCVSRecord, ReadStats, error) {
	var out []GCVSRecord
	stats, err := scanLines(r, func(n int, line string) {
		rec, ok := ParseGCVS(line, atLine(report, n))
		if ok {
			out = append(out, rec)
		}
	})
	stats.Accepted = len(out)
	return out, stats, err
}

// ReadKrakow parses every line of a Krakow file after the header, dropping
// records that repeat the previous accepted cross-reference name.
func ReadKrakow(r io.Reader, report Reporter) ([]KrakowRecord, ReadStats, error) {
	var (
		out  []KrakowRecord
		last string
	)
	stats, err := scanLines(r, func(n int, line string) {
		rec, ok := ParseKrakow(line, last, atLine(report, n))
		if ok {
			last = rec.GCVSName
			out = append(out, rec)
		}
	})
	stats.Accepted = len(out)
	return out, stats, err
}

// scanLines calls fn for each line after the header with its 1-based number.
func scanLines(r io.Reader, fn func(n int, line string)) (ReadStats, error) {
	var stats ReadStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), constants.MaxLineLength)
	for scanner.Scan() {
		stats.Lines++
		if stats.Lines <= constants.HeaderLines {
			continue
		}
		fn(stats.Lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return stats, errors.WrapIO("read", "", err)
	}
	return stats, nil
}

// atLine stamps the line number on diagnostics passing through report.
func atLine(report Reporter, n int) Reporter {
	if report == nil {
		return nil
	}
	return func(d Diagnostic) {
		d.Line = n
		d.Err.Line = n
		report(d)
	}
}
