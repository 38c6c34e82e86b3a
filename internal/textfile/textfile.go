// Package textfile provides utilities for reading text data files.
// It supports transparent decompression of .xz and .gz files, the forms in
// which the AME and NUBASE reference tables are commonly distributed.
package textfile

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/fourdst/speciesgen/core/errors"
)

// Reader wraps an input file with automatic decompression handling.
type Reader struct {
	io.Reader
	file         *os.File
	decompressor io.Closer
}

// Open opens the file at path for reading.
// Files ending in .xz or .gz are decompressed transparently; everything else
// is read as plain text.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.IOError{Operation: "open", Path: path, Err: err}
	}

	var reader io.Reader = f
	var decompressor io.Closer

	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &errors.IOError{Operation: "open", Path: path, Err: err}
		}
		reader = xzr
		decompressor = nil // xz reader doesn't need closing
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &errors.IOError{Operation: "open", Path: path, Err: err}
		}
		reader = gzr
		decompressor = gzr
	}

	return &Reader{
		Reader:       reader,
		file:         f,
		decompressor: decompressor,
	}, nil
}

// Close closes the reader and any underlying decompressor.
func (r *Reader) Close() error {
	var errs []error
	if r.decompressor != nil {
		if err := r.decompressor.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := r.file.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
