// Package provenance records what a generation run consumed and produced.
//
// The manifest ties the generated source to the exact reference-table bytes
// it came from: BLAKE3 digests of both inputs and the output, the merge and
// normalization statistics, and a unique run ID. It is written next to the
// generated file when requested and is diagnostic output only.
package provenance

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/fourdst/speciesgen/core/errors"
	"github.com/fourdst/speciesgen/core/nubase"
	"github.com/fourdst/speciesgen/core/species"
)

// Input describes one consumed or produced file.
type Input struct {
	Path   string `json:"path"`
	Bytes  int64  `json:"bytes"`
	BLAKE3 string `json:"blake3"`
}

// Manifest is the provenance record of one generation run.
type Manifest struct {
	RunID       string    `json:"run_id"`
	Tool        string    `json:"tool"`
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`

	Inputs []Input `json:"inputs"`
	Output Input   `json:"output"`

	Merge   species.Stats `json:"merge_stats"`
	Nuclear nubase.Stats  `json:"nubase_stats"`
}

// New creates a manifest with a fresh run ID and UTC timestamp.
func New(tool, version string) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		Tool:        tool,
		Version:     version,
		GeneratedAt: time.Now().UTC(),
	}
}

// AddInput digests the file at path and appends it to the input list.
func (m *Manifest) AddInput(path string) error {
	in, err := digestFile(path)
	if err != nil {
		return err
	}
	m.Inputs = append(m.Inputs, in)
	return nil
}

// SetOutput digests the generated file at path.
func (m *Manifest) SetOutput(path string) error {
	out, err := digestFile(path)
	if err != nil {
		return err
	}
	m.Output = out
	return nil
}

// Write serializes the manifest as indented JSON to path.
func (m *Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return &errors.IOError{Operation: "encode manifest for", Path: path, Err: err}
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &errors.IOError{Operation: "write manifest", Path: path, Err: err}
	}
	return nil
}

// digestFile computes the BLAKE3 digest of a file's raw bytes. Compressed
// inputs are digested as distributed, not decompressed, so the manifest
// matches what a checksum of the downloaded file would report.
func digestFile(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, &errors.IOError{Operation: "read", Path: path, Err: err}
	}
	sum := blake3.Sum256(data)
	return Input{
		Path:   path,
		Bytes:  int64(len(data)),
		BLAKE3: hex.EncodeToString(sum[:]),
	}, nil
}
