package records

import "strings"

// line places each value at its column offset in a blank line of width.
func line(width int, fields map[int]string) string {
	b := []byte(strings.Repeat(" ", width))
	for offset, value := range fields {
		copy(b[offset:], value)
	}
	return strings.TrimRight(string(b), " ")
}

// gcvsFields returns the fields of a well-formed eclipsing binary line.
func gcvsFields() map[int]string {
	return map[int]string{
		gcvsName.start:         "V0344 Cyg",
		gcvsRADec.start:        "202520.01 +393012.5",
		gcvsType.start:         "EA",
		gcvsMaxMagnitude.start: "  10.50",
		gcvsMinMagnitude.start: "  11.20",
		gcvsEpoch.start:        "50000.5000",
		gcvsPeriod.start:       "2.5",
		gcvsPercent.start:      "10",
		gcvsSpectralType.start: "A2V",
	}
}

func gcvsLine(overrides map[int]string) string {
	fields := gcvsFields()
	for k, v := range overrides {
		fields[k] = v
	}
	return line(gcvsWidth, fields)
}

func krakowLine(name, typ, epoch, period string) string {
	return line(krakowWidth, map[int]string{
		krakowName.start:   name,
		krakowType.start:   typ,
		krakowEpoch.start:  epoch,
		krakowPeriod.start: period,
	})
}

// collect returns a Reporter that records diagnostics into dst.
func collect(dst *[]Diagnostic) Reporter {
	return func(d Diagnostic) {
		*dst = append(*dst, d)
	}
}
