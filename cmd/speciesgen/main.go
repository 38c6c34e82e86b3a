// Command speciesgen converts the AME2020 atomic-mass table and the
// NUBASE2020 nuclear-properties table into a generated source file exposing
// one species declaration per isotope plus a name-indexed lookup table.
//
// Usage:
//
//	speciesgen generate mass.mas20 nubase_4.mas20 -o species.h
//	speciesgen generate mass.mas20.xz nubase_4.mas20.xz --lang go --package atomic -o species_gen.go
//	speciesgen version
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kong"

	"github.com/fourdst/speciesgen/core/ame"
	"github.com/fourdst/speciesgen/core/emit"
	"github.com/fourdst/speciesgen/core/fwf"
	"github.com/fourdst/speciesgen/core/nubase"
	"github.com/fourdst/speciesgen/core/provenance"
	"github.com/fourdst/speciesgen/core/species"
	"github.com/fourdst/speciesgen/core/sqlite"
	"github.com/fourdst/speciesgen/internal/logging"
)

const version = "0.2.0"

// CLI defines the command-line interface for speciesgen.
var CLI struct {
	// Global flags
	LogLevel  string `help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `help:"Log output format (text, json)" enum:"text,json" default:"text"`

	Generate GenerateCmd `cmd:"" help:"Generate the species source file from the two reference tables"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// GenerateCmd runs the full conversion pipeline:
// decode both tables, normalize, merge, emit.
type GenerateCmd struct {
	AME    string `arg:"" help:"AME2020 mass table (mass.mas20; .xz/.gz accepted)" type:"existingfile"`
	Nubase string `arg:"" help:"NUBASE2020 table (nubase_4.mas20; .xz/.gz accepted)" type:"existingfile"`

	Out      string `short:"o" help:"Output path for the generated source" default:"species.h" type:"path"`
	Lang     string `help:"Output language" enum:"cpp,go" default:"cpp"`
	Package  string `help:"Package name for Go output" default:"atomic"`
	DB       string `help:"Also export the merged table to a SQLite database at this path" type:"path"`
	Manifest string `help:"Write a JSON provenance manifest to this path" type:"path"`
}

func (c *GenerateCmd) Run() error {
	start := time.Now()
	rawMass, err := fwf.DecodeFile(c.AME, ame.Layout)
	if err != nil {
		return err
	}
	massTable := ame.Normalize(rawMass)
	logging.Stage("ame", len(massTable), time.Since(start), "path", c.AME)

	start = time.Now()
	rawNuclear, err := fwf.DecodeFile(c.Nubase, nubase.Layout)
	if err != nil {
		return err
	}
	nuclearTable, nuclearStats := nubase.Normalize(rawNuclear)
	logging.Stage("nubase", len(nuclearTable), time.Since(start),
		"path", c.Nubase,
		"raw_rows", nuclearStats.Raw,
		"isomers_dropped", nuclearStats.DroppedIsomer,
		"duplicates_dropped", nuclearStats.DroppedDuplicate,
	)
	if nuclearStats.UnknownUnit > 0 {
		logging.Warn("half-life units without a conversion factor were zeroed",
			"count", nuclearStats.UnknownUnit)
	}

	start = time.Now()
	merged, mergeStats := species.Merge(massTable, nuclearTable)
	logging.Stage("merge", len(merged), time.Since(start),
		"matched", mergeStats.Matched,
		"unmatched_nubase", mergeStats.UnmatchedNuclear,
	)

	var emitter emit.Emitter
	switch c.Lang {
	case "go":
		emitter = emit.GoEmitter{Package: c.Package}
	default:
		emitter = emit.CppEmitter{}
	}
	if err := emit.WriteFile(c.Out, emitter, merged); err != nil {
		return err
	}

	if c.DB != "" {
		if err := sqlite.Export(context.Background(), c.DB, merged); err != nil {
			return err
		}
		logging.Info("exported species database", "path", c.DB, "driver", sqlite.DriverType())
	}

	if c.Manifest != "" {
		manifest := provenance.New("speciesgen", version)
		for _, in := range []string{c.AME, c.Nubase} {
			if err := manifest.AddInput(in); err != nil {
				return err
			}
		}
		if err := manifest.SetOutput(c.Out); err != nil {
			return err
		}
		manifest.Merge = mergeStats
		manifest.Nuclear = nuclearStats
		if err := manifest.Write(c.Manifest); err != nil {
			return err
		}
		logging.Info("wrote provenance manifest", "path", c.Manifest, "run_id", manifest.RunID)
	}

	fmt.Printf("Species in final table:  %d\n", mergeStats.MassRows)
	fmt.Printf("With nuclear data:       %d\n", mergeStats.Matched)
	fmt.Printf("NUBASE-only (dropped):   %d\n", mergeStats.UnmatchedNuclear)
	fmt.Printf("Unknown half-life units: %d\n", nuclearStats.UnknownUnit)
	fmt.Printf("Generated %s\n", c.Out)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("speciesgen %s (sqlite driver: %s)\n", version, sqlite.DriverType())
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("speciesgen"),
		kong.Description("Convert AME2020 and NUBASE2020 reference tables to generated species source"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
