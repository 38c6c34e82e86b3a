package species

import (
	"github.com/fourdst/speciesgen/core/ame"
	"github.com/fourdst/speciesgen/core/nubase"
)

// Stats reports aggregate merge results. It is observability output only and
// never drives control flow.
type Stats struct {
	MassRows    int // AME rows in (equals merged rows out)
	NuclearRows int // NUBASE rows in
	Matched     int // merged rows that found nuclear data
	// UnmatchedNuclear counts NUBASE rows with no AME mass entry. They are
	// dropped from the output; the count surfaces the coverage gap.
	UnmatchedNuclear int
}

type mergeKey struct {
	el string
	a  int
}

// Merge joins the mass table (left) against the nuclear table (right) on
// (element symbol, mass number), equality only.
//
// Every mass row yields exactly one Species in input order, matched or not.
// The nuclear table is already deduplicated to one row per identity; if a
// duplicate slips through, the first occurrence wins and no row multiplies.
func Merge(mass []ame.Record, nuclear []nubase.Record) ([]Species, Stats) {
	stats := Stats{MassRows: len(mass), NuclearRows: len(nuclear)}

	byKey := make(map[mergeKey]nubase.Record, len(nuclear))
	for _, n := range nuclear {
		k := mergeKey{el: n.Element, a: n.A}
		if _, dup := byKey[k]; !dup {
			byKey[k] = n
		}
	}

	matched := make(map[mergeKey]bool, len(byKey))
	merged := make([]Species, 0, len(mass))
	for _, m := range mass {
		s := fromMass(m)
		k := mergeKey{el: m.Element, a: m.A}
		if n, ok := byKey[k]; ok {
			s.attachNuclear(n)
			matched[k] = true
			stats.Matched++
		}
		merged = append(merged, s)
	}

	for k := range byKey {
		if !matched[k] {
			stats.UnmatchedNuclear++
		}
	}

	return merged, stats
}
