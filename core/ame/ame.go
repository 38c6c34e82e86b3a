// Package ame normalizes rows of the AME2020 atomic mass evaluation table.
//
// The table is fixed-width Fortran output: 36 header lines, then one row per
// nuclide. Estimated (non-experimental) values are flagged with '#' or '*'
// annotations; those are stripped before numeric parsing. All per-row
// conversions are pure functions of the raw record and never drop a row.
package ame

import (
	"math"
	"strconv"
	"strings"

	"github.com/fourdst/speciesgen/core/fwf"
)

// Layout is the fixed-width column layout of mass.mas20.
// Offsets follow the published Fortran format
// (a1,i3,i5,i5,i5,1x,a3,a4,1x,f14.6,f12.6,f13.5,1x,f10.5,1x,a2,f13.5,f11.5,1x,i3,1x,f13.6,f12.6).
var Layout = fwf.Layout{
	Name:      "ame2020",
	SkipLines: 36,
	Columns: []fwf.Column{
		{Name: "control", Start: 0, End: 1},
		{Name: "nz", Start: 1, End: 4},
		{Name: "n", Start: 4, End: 9},
		{Name: "z", Start: 9, End: 14},
		{Name: "a", Start: 14, End: 19},
		{Name: "el", Start: 20, End: 23},
		{Name: "o", Start: 23, End: 27},
		{Name: "massExcess", Start: 28, End: 42},
		{Name: "massExcessUnc", Start: 42, End: 54},
		{Name: "bindingEnergy", Start: 54, End: 67},
		{Name: "bindingEnergyUnc", Start: 68, End: 78},
		{Name: "betaCode", Start: 79, End: 81},
		{Name: "betaDecayEnergy", Start: 81, End: 94},
		{Name: "betaDecayEnergyUnc", Start: 94, End: 105},
		{Name: "atomicMassInt", Start: 106, End: 109},
		{Name: "atomicMassFrac", Start: 110, End: 123},
		{Name: "atomicMassUnc", Start: 123, End: 135},
	},
}

// Record is one normalized mass-table row.
// The (Element, A) pair is the isotope identity used as the merge key.
type Record struct {
	Control string // control flag column (page breaks etc. in the source)
	NZ      int    // N - Z
	N       int    // neutron number
	Z       int    // proton number
	A       int    // mass number
	Element string // element symbol, whitespace-trimmed
	Origin  string // origin/accuracy code

	MassExcess    float64 // keV
	MassExcessUnc float64

	BindingEnergy    float64 // keV per nucleon
	BindingEnergyUnc float64

	BetaCode           string  // decay mode code (e.g., "B-")
	BetaDecayEnergy    float64 // keV; NaN when unparseable
	BetaDecayEnergyUnc float64

	// AtomicMass is the combined atomic mass in u, assembled from the
	// integer column plus the micro-u fractional column. HasAtomicMass is
	// false when either mass column failed to parse.
	AtomicMass    float64
	HasAtomicMass bool
	AtomicMassUnc float64 // micro-u
}

// Normalize converts raw decoded records into typed mass records.
// Every input row produces exactly one output row; field-level parse
// failures become the per-field sentinels documented on Record.
func Normalize(raw []fwf.Record) []Record {
	records := make([]Record, 0, len(raw))
	for _, row := range raw {
		records = append(records, normalizeRow(row))
	}
	return records
}

func normalizeRow(row fwf.Record) Record {
	rec := Record{
		Control: row["control"],
		NZ:      parseInt(row["nz"]),
		N:       parseInt(row["n"]),
		Z:       parseInt(row["z"]),
		A:       parseInt(row["a"]),
		Element: strings.TrimSpace(row["el"]),
		Origin:  strings.TrimSpace(row["o"]),

		MassExcess:    parseFloat(row["massExcess"]),
		MassExcessUnc: parseFloat(row["massExcessUnc"]),

		BindingEnergy:    parseFloat(row["bindingEnergy"]),
		BindingEnergyUnc: parseFloat(row["bindingEnergyUnc"]),

		BetaCode:           strings.TrimSpace(row["betaCode"]),
		BetaDecayEnergy:    parseFloat(row["betaDecayEnergy"]),
		BetaDecayEnergyUnc: parseFloat(row["betaDecayEnergyUnc"]),

		AtomicMassUnc: parseFloat(row["atomicMassUnc"]),
	}
	rec.AtomicMass, rec.HasAtomicMass = combineAtomicMass(row["atomicMassInt"], row["atomicMassFrac"])
	return rec
}

// combineAtomicMass merges the integer-u column with the micro-u fractional
// column: "1" + "008664.91590" combine to 1.00866491590 u. A parse failure in
// either part marks the mass absent for the row.
func combineAtomicMass(intPart, fracPart string) (float64, bool) {
	whole, err := strconv.Atoi(strings.TrimSpace(intPart))
	if err != nil {
		return 0, false
	}
	frac, err := strconv.ParseFloat(stripAnnotations(fracPart), 64)
	if err != nil {
		return 0, false
	}
	return float64(whole) + frac/1e6, true
}

// parseInt parses a trimmed integer column, returning 0 on failure.
func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// parseFloat parses a numeric column after stripping the '#' and '*'
// estimation markers. Failures become NaN, which is distinct from a true
// zero value in the table.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(stripAnnotations(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func stripAnnotations(s string) string {
	s = strings.ReplaceAll(s, "#", "")
	s = strings.ReplaceAll(s, "*", "")
	return strings.TrimSpace(s)
}

// Key returns the isotope identity "Symbol-A" for the record.
func (r Record) Key() string {
	return r.Element + "-" + strconv.Itoa(r.A)
}
