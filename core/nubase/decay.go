package nubase

import (
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/fourdst/speciesgen/core/errors"
)

// DecayBranch is one branch of a parsed decay-mode string, e.g. the
// "B-n=0.02 1" part of "B-=99.98;B-n=0.02 1".
type DecayBranch struct {
	Mode        string  // decay mode token (B-, A, IT, SF, 2p, 14C, ...)
	Relation    string  // "=", "~", "<", ">", or "" when no value is given
	Percent     float64 // branching percentage; NaN when not given
	Uncertainty float64 // percentage uncertainty; NaN when not given
	Uncertain   bool    // trailing "?" marker
}

// decayAST mirrors the branch list grammar: branches separated by ';'.
type decayAST struct {
	Branches []branchAST `@@ ( ";" @@ )* ";"?`
}

// branchAST is one "mode[rel value [unc]][?]" clause.
// Cluster-emission modes like "14C" start with digits, so the mode captures
// an optional leading Number token together with the Mode token.
type branchAST struct {
	Mode  string `@(Number? Mode)`
	Rel   string `( @Op`
	Value string `  ( @Number`
	Unc   string `    @Number? )? )?`
	Query bool   `@Query?`
}

// decayLexer tokenizes NUBASE decay-mode strings. Order matters: numeric
// values (possibly with exponent and '#' estimation marker) are matched
// before mode tokens.
var decayLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?#?`},
	{Name: "Mode", Pattern: `[A-Za-z][A-Za-z0-9+\-']*`},
	{Name: "Op", Pattern: `[=~<>]`},
	{Name: "Query", Pattern: `\?`},
	{Name: "Semi", Pattern: `;`},
	{Name: "Space", Pattern: `[ \t]+`},
})

// decayParser is the Participle parser for decay-mode strings.
var decayParser = participle.MustBuild[decayAST](
	participle.Lexer(decayLexer),
	participle.Elide("Space"),
)

// ParseDecayModes parses a raw decay-mode string into structured branches.
//
// Parsing is best-effort and diagnostic-only: the conversion pipeline keeps
// the raw string regardless, and a rejected string is reported as a count,
// never as a failed run. An empty string parses to no branches.
func ParseDecayModes(s string) ([]DecayBranch, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	ast, err := decayParser.ParseString("", s)
	if err != nil {
		return nil, &errors.ParseError{Format: "decay modes", Value: s, Message: err.Error(), Err: err}
	}

	branches := make([]DecayBranch, 0, len(ast.Branches))
	for _, b := range ast.Branches {
		branches = append(branches, DecayBranch{
			Mode:        b.Mode,
			Relation:    b.Rel,
			Percent:     parsePercent(b.Value),
			Uncertainty: parsePercent(b.Unc),
			Uncertain:   b.Query,
		})
	}
	return branches, nil
}

// parsePercent parses a branch percentage, stripping the '#' marker.
// Missing values become NaN.
func parsePercent(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "#")
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// PrimaryMode returns the mode of the highest-percentage branch.
// Branches without a percentage rank below any measured branch; if no
// branch carries a percentage the first branch wins. Returns "" for an
// empty branch list.
func PrimaryMode(branches []DecayBranch) string {
	if len(branches) == 0 {
		return ""
	}
	best := 0
	bestPct := math.Inf(-1)
	for i, b := range branches {
		if !math.IsNaN(b.Percent) && b.Percent > bestPct {
			best = i
			bestPct = b.Percent
		}
	}
	return branches[best].Mode
}
