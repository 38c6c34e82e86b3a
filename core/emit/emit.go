// Package emit serializes the merged species table into generated source.
//
// Two targets exist: the C++ header consumed by the fourdst composition
// library (the primary output) and a Go source variant. Both embed every
// merged field as a literal, build a "Symbol-A" keyed lookup table, and
// emit an (A, Z) lookup that resolves Z through the element-symbol table.
package emit

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fourdst/speciesgen/core/errors"
	"github.com/fourdst/speciesgen/core/species"
)

// Emitter writes the merged table as generated source.
type Emitter interface {
	// Emit writes the generated source for the table to w.
	Emit(w io.Writer, table []species.Species) error
}

// WriteFile emits the table to the file at path, creating or truncating it.
func WriteFile(path string, e Emitter, table []species.Species) error {
	f, err := os.Create(path)
	if err != nil {
		return &errors.IOError{Operation: "create", Path: path, Err: err}
	}

	if err := e.Emit(f, table); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &errors.IOError{Operation: "write", Path: path, Err: err}
	}
	return nil
}

// InstanceName derives the declaration identifier from the species key:
// "H-1" becomes "H_1".
func InstanceName(s species.Species) string {
	return strings.ReplaceAll(s.Key(), "-", "_")
}

// checkUnique verifies that no two rows share a declaration identifier.
// The merge key makes collisions impossible by construction, but a silent
// map overwrite would be unrecoverable downstream, so the emitters refuse
// to write one.
func checkUnique(table []species.Species) error {
	seen := make(map[string]bool, len(table))
	for _, s := range table {
		key := s.Key()
		if seen[key] {
			return &errors.CollisionError{Key: key}
		}
		seen[key] = true
	}
	return nil
}

// escapeString escapes backslashes and double quotes for embedding in a
// double-quoted string literal (identical rules in C++ and Go).
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// formatFloat renders a finite float literal in the shortest exact form.
// Non-finite values are target-language specific and handled by the emitters.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
