package fwf

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fourdst/speciesgen/core/errors"
)

var testLayout = Layout{
	Name:      "test",
	SkipLines: 1,
	Columns: []Column{
		{Name: "a", Start: 0, End: 3},
		// one filler byte at position 3
		{Name: "b", Start: 4, End: 8},
		{Name: "c", Start: 10, End: 14},
	},
}

func TestDecode(t *testing.T) {
	input := "header line\n" +
		"001 bbbb..cccc\n" +
		"002 BBBB..CCCC tail ignored\n"

	records, err := Decode(strings.NewReader(input), testLayout)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if got := records[0]["a"]; got != "001" {
		t.Errorf("a = %q, want %q", got, "001")
	}
	if got := records[0]["b"]; got != "bbbb" {
		t.Errorf("b = %q, want %q", got, "bbbb")
	}
	if got := records[1]["c"]; got != "CCCC" {
		t.Errorf("c = %q, want %q", got, "CCCC")
	}
}

func TestDecodeNoStripping(t *testing.T) {
	input := "h\n" +
		" 1   b  ..  c \n"

	records, err := Decode(strings.NewReader(input), testLayout)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	// Fields are raw substrings; whitespace is preserved.
	if got := records[0]["a"]; got != " 1 " {
		t.Errorf("a = %q, want %q", got, " 1 ")
	}
	if got := records[0]["b"]; got != " b  " {
		t.Errorf("b = %q, want %q", got, " b  ")
	}
}

func TestDecodeShortLine(t *testing.T) {
	input := "h\n" +
		"001 bb\n"

	records, err := Decode(strings.NewReader(input), testLayout)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	// Column b is cut short, column c is entirely past the end of the line.
	if got := records[0]["b"]; got != "bb" {
		t.Errorf("b = %q, want %q", got, "bb")
	}
	if got := records[0]["c"]; got != "" {
		t.Errorf("c = %q, want empty", got)
	}
}

func TestDecodeFewerLinesThanSkip(t *testing.T) {
	records, err := Decode(strings.NewReader("only header\n"), testLayout)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.txt"), testLayout)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var decodeErr *errors.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error type = %T, want *errors.DecodeError", err)
	}
	if decodeErr.Layout != "test" {
		t.Errorf("layout = %q, want %q", decodeErr.Layout, "test")
	}
}

func TestDecodeFileGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.txt.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(f)
	if _, err := gw.Write([]byte("h\n001 bbbb..cccc\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	gw.Close()
	f.Close()

	records, err := DecodeFile(path, testLayout)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if got := records[0]["c"]; got != "cccc" {
		t.Errorf("c = %q, want %q", got, "cccc")
	}
}
