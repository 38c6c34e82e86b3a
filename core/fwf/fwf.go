// Package fwf decodes fixed-width column files into named raw fields.
//
// Both reference-table layouts (AME2020 and NUBASE2020) are expressed as
// Layout values and fed to the one generic decoder; there is no per-format
// decoding logic. Fields are raw substrings of the line at the configured
// byte offsets, with no whitespace stripping. All interpretation happens in
// the per-source normalization packages.
package fwf

import (
	"bufio"
	"io"

	"github.com/fourdst/speciesgen/core/errors"
	"github.com/fourdst/speciesgen/internal/textfile"
)

// Column describes one fixed-width field: a name and a 0-indexed,
// end-exclusive byte range within the line.
type Column struct {
	Name  string
	Start int
	End   int
}

// Layout describes a complete fixed-width file format.
type Layout struct {
	// Name identifies the layout in error messages (e.g., "ame2020").
	Name string
	// SkipLines is the number of header lines to discard before data rows.
	SkipLines int
	// Columns lists the fields in file order. Byte ranges between columns
	// are filler and carry no semantic value.
	Columns []Column
}

// Record holds the raw field values of one decoded line, keyed by column name.
type Record map[string]string

// Decode reads all data rows from r according to the layout.
//
// Lines shorter than a column's range yield the reachable prefix of that
// field, or "" when the whole range is past the end of the line. A malformed
// row therefore still decodes; rejecting it is the normalizer's call.
func Decode(r io.Reader, layout Layout) ([]Record, error) {
	scanner := bufio.NewScanner(r)

	for i := 0; i < layout.SkipLines; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, &errors.DecodeError{Layout: layout.Name, Err: err}
			}
			return nil, nil // fewer lines than the header skip count
		}
	}

	var records []Record
	for scanner.Scan() {
		records = append(records, decodeLine(scanner.Text(), layout))
	}
	if err := scanner.Err(); err != nil {
		return nil, &errors.DecodeError{Layout: layout.Name, Err: err}
	}
	return records, nil
}

// DecodeFile opens the file at path and decodes it according to the layout.
// Compressed inputs (.xz, .gz) are handled transparently.
func DecodeFile(path string, layout Layout) ([]Record, error) {
	f, err := textfile.Open(path)
	if err != nil {
		return nil, &errors.DecodeError{Layout: layout.Name, Path: path, Err: err}
	}
	defer f.Close()

	return Decode(f, layout)
}

// decodeLine slices one line into raw fields, clamping ranges to line length.
func decodeLine(line string, layout Layout) Record {
	rec := make(Record, len(layout.Columns))
	for _, col := range layout.Columns {
		start, end := col.Start, col.End
		if start > len(line) {
			start = len(line)
		}
		if end > len(line) {
			end = len(line)
		}
		rec[col.Name] = line[start:end]
	}
	return rec
}
