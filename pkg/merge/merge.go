// Package merge joins GCVS records with Krakow ephemerides by name.
//
// Each GCVS record consumes at most one Krakow record: the first one in input
// order whose cross-reference name equals the GCVS name under case folding.
// A matched record takes the Krakow epoch and period. An unmatched record is
// kept only when its type is an eclipsing binary type.
package merge

import (
	"golang.org/x/text/cases"

	"github.com/agentstation/varstars/pkg/constants"
	"github.com/agentstation/varstars/pkg/records"
	"github.com/agentstation/varstars/pkg/stars"
	"github.com/agentstation/varstars/pkg/vartype"
)

// Result is the outcome of a merge.
type Result struct {
	// Stars holds the eclipsing binary candidates in GCVS input order.
	Stars []stars.VariableStar
	// Matched counts GCVS records that consumed a Krakow record.
	Matched int
	// Unmatched lists Krakow records no GCVS record consumed, in input order.
	Unmatched []records.KrakowRecord
}

// index maps a folded cross-reference name to the queue of Krakow positions
// still available under that name.
type index struct {
	fold   cases.Caser
	queues map[string][]int
}

func newIndex(krakow []records.KrakowRecord) *index {
	idx := &index{
		fold:   cases.Fold(),
		queues: make(map[string][]int, len(krakow)),
	}
	for i := range krakow {
		key := idx.key(krakow[i].GCVSName)
		idx.queues[key] = append(idx.queues[key], i)
	}
	return idx
}

func (idx *index) key(name string) string {
	return idx.fold.String(name)
}

// take removes and returns the first position queued under name.
func (idx *index) take(name string) (int, bool) {
	key := idx.key(name)
	queue := idx.queues[key]
	if len(queue) == 0 {
		return 0, false
	}
	if len(queue) == 1 {
		delete(idx.queues, key)
	} else {
		idx.queues[key] = queue[1:]
	}
	return queue[0], true
}

// Merge matches every GCVS record against the Krakow pool.
func Merge(gcvs []records.GCVSRecord, krakow []records.KrakowRecord) Result {
	idx := newIndex(krakow)
	consumed := make([]bool, len(krakow))

	var result Result
	for i := range gcvs {
		rec := &gcvs[i]

		if pos, ok := idx.take(rec.Name); ok {
			consumed[pos] = true
			result.Matched++
			result.Stars = append(result.Stars, withEphemeris(rec, &krakow[pos]))
			continue
		}

		if vartype.IsEclipsing(rec.Type) {
			result.Stars = append(result.Stars, rec.VariableStar())
		}
	}

	for i := range krakow {
		if !consumed[i] {
			result.Unmatched = append(result.Unmatched, krakow[i])
		}
	}

	return result
}

// withEphemeris builds the output star for a matched pair.
func withEphemeris(rec *records.GCVSRecord, k *records.KrakowRecord) stars.VariableStar {
	star := rec.VariableStar()
	star.Epoch = k.Epoch
	star.Period = k.Period
	star.Names[constants.CatalogKrakow] = k.KrakowName
	return star
}

// UnmatchedNames returns the display names of the unmatched Krakow records.
func (r *Result) UnmatchedNames() []string {
	names := make([]string, len(r.Unmatched))
	for i := range r.Unmatched {
		names[i] = r.Unmatched[i].KrakowName
	}
	return names
}
