package nubase

import (
	"math"
	"strconv"
	"strings"
)

// Outcome tags how a half-life value was produced. The numeric fallbacks
// match the historical behavior (0.0 for anything unusable), but the tag
// keeps an unknown unit distinguishable from a genuine near-zero half-life
// so the run can report it.
type Outcome int

const (
	// OutcomeConverted means value times unit factor.
	OutcomeConverted Outcome = iota
	// OutcomeStable means the "stbl" token; seconds is +Inf.
	OutcomeStable
	// OutcomeUnparseable means the value failed numeric parsing; seconds is 0.
	OutcomeUnparseable
	// OutcomeUnknownUnit means the unit token has no factor; seconds is 0.
	OutcomeUnknownUnit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConverted:
		return "converted"
	case OutcomeStable:
		return "stable"
	case OutcomeUnparseable:
		return "unparseable"
	case OutcomeUnknownUnit:
		return "unknown-unit"
	default:
		return "invalid"
	}
}

// HalfLife is a half-life normalized to seconds plus its conversion outcome.
type HalfLife struct {
	Seconds float64
	Outcome Outcome
}

// stableToken marks stable nuclides in the NUBASE half-life column.
const stableToken = "stbl"

// unitFactors maps NUBASE half-life unit tokens to seconds.
// Year-based factors use the Julian year (3.15576e7 s).
var unitFactors = map[string]float64{
	"ys": 1e-24,
	"zs": 1e-21,
	"as": 1e-18,
	"fs": 1e-15,
	"ps": 1e-12,
	"ns": 1e-9,
	"us": 1e-6,
	"ms": 1e-3,
	"s":  1.0,
	"m":  60.0,
	"h":  3600.0,
	"d":  86400.0,
	"y":  3.15576e7,
	"ky": 3.15576e10,
	"My": 3.15576e13,
	"Gy": 3.15576e16,
	"Ty": 3.15576e19,
	"Py": 3.15576e22,
	"Ey": 3.15576e25,
}

// ConvertHalfLife normalizes a raw half-life value and unit to seconds.
//
// "stbl" converts to +Inf regardless of unit. The value may carry a '#'
// estimation marker, which is stripped before parsing. An unparseable value
// or an unrecognized unit yields 0.0 seconds with the corresponding outcome
// tag.
func ConvertHalfLife(value, unit string) HalfLife {
	value = strings.TrimSpace(value)
	unit = strings.TrimSpace(unit)

	if value == stableToken {
		return HalfLife{Seconds: math.Inf(1), Outcome: OutcomeStable}
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(value, "#", ""), 64)
	if err != nil {
		return HalfLife{Seconds: 0, Outcome: OutcomeUnparseable}
	}

	factor, ok := unitFactors[unit]
	if !ok {
		return HalfLife{Seconds: 0, Outcome: OutcomeUnknownUnit}
	}
	return HalfLife{Seconds: v * factor, Outcome: OutcomeConverted}
}
