// Package nubase normalizes rows of the NUBASE2020 nuclear properties table.
//
// NUBASE lists one row per nuclear state, ground states and isomers alike.
// Normalization keeps only ground states, deduplicates on isotope identity,
// and converts the heterogeneous half-life units to seconds. The decay-mode
// column is additionally parsed into structured branches for diagnostics and
// the database export; the emitted field stays the raw trimmed string.
package nubase

import (
	"strconv"
	"strings"

	"github.com/fourdst/speciesgen/core/fwf"
)

// Layout is the fixed-width column layout of nubase_4.mas20.
var Layout = fwf.Layout{
	Name:      "nubase2020",
	SkipLines: 1,
	Columns: []fwf.Column{
		{Name: "a", Start: 0, End: 3},
		{Name: "zzzI", Start: 4, End: 8},
		{Name: "aEl", Start: 11, End: 16},
		{Name: "halfLife", Start: 69, End: 78},
		{Name: "halfLifeUnit", Start: 79, End: 81},
		{Name: "spinParity", Start: 89, End: 102},
		{Name: "decayModes", Start: 120, End: 209},
	},
}

// Record is one normalized ground-state row.
type Record struct {
	A       int    // mass number
	Element string // symbol extracted from the combined "56Fe" field

	HalfLife HalfLife

	SpinParity string
	DecayModes string // raw decay-mode string, trimmed

	// PrimaryMode is the highest-percentage branch of the parsed decay
	// modes, or "" when the string yields no branches.
	PrimaryMode string
}

// Key returns the isotope identity "Symbol-A" for the record.
func (r Record) Key() string {
	return r.Element + "-" + strconv.Itoa(r.A)
}

// Stats reports what normalization did to the raw table.
type Stats struct {
	Raw               int // decoded rows in
	Kept              int // records out
	DroppedNonIsotope int // mass number failed to parse
	DroppedIsomer     int // excited-state rows excluded
	DroppedDuplicate  int // later rows for an already-seen isotope
	Stable            int // half-life "stbl"
	UnparseableValue  int // half-life value failed numeric parse
	UnknownUnit       int // half-life unit not in the factor table
	DecayParseErrors  int // decay-mode strings the grammar rejected
}

type key struct {
	a  int
	el string
}

// Normalize converts raw decoded records into at most one nuclear record per
// distinct isotope identity, in original file order.
func Normalize(raw []fwf.Record) ([]Record, Stats) {
	stats := Stats{Raw: len(raw)}
	seen := make(map[key]bool, len(raw))
	var records []Record

	for _, row := range raw {
		a, err := strconv.Atoi(strings.TrimSpace(row["a"]))
		if err != nil {
			// Not an isotope row (continuation lines, blank rows).
			stats.DroppedNonIsotope++
			continue
		}

		if !isGroundState(row["zzzI"]) {
			stats.DroppedIsomer++
			continue
		}

		el := extractSymbol(row["aEl"])
		k := key{a: a, el: el}
		if seen[k] {
			stats.DroppedDuplicate++
			continue
		}
		seen[k] = true

		hl := ConvertHalfLife(row["halfLife"], row["halfLifeUnit"])
		switch hl.Outcome {
		case OutcomeStable:
			stats.Stable++
		case OutcomeUnparseable:
			stats.UnparseableValue++
		case OutcomeUnknownUnit:
			stats.UnknownUnit++
		}

		decay := strings.TrimSpace(row["decayModes"])
		branches, err := ParseDecayModes(decay)
		if err != nil {
			stats.DecayParseErrors++
		}

		records = append(records, Record{
			A:           a,
			Element:     el,
			HalfLife:    hl,
			SpinParity:  strings.TrimSpace(row["spinParity"]),
			DecayModes:  decay,
			PrimaryMode: PrimaryMode(branches),
		})
	}

	stats.Kept = len(records)
	return records, stats
}

// isGroundState checks the isomer indicator, the 4th character of the ZZZi
// column: ' ' or '0' denotes the ground state, anything else an excited
// state. A short field has no indicator and counts as ground.
func isGroundState(zzzI string) bool {
	if len(zzzI) < 4 {
		return true
	}
	return zzzI[3] == ' ' || zzzI[3] == '0'
}

// extractSymbol returns the leading alphabetic run of the combined
// mass-number+symbol field (e.g., "Fe" from " 56Fe").
func extractSymbol(aEl string) string {
	start := -1
	for i := 0; i < len(aEl); i++ {
		c := aEl[i]
		isAlpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if isAlpha {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return aEl[start:i]
		}
	}
	if start >= 0 {
		return aEl[start:]
	}
	return ""
}
