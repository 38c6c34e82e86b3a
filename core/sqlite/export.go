package sqlite

import (
	"context"
	"database/sql"
	"math"

	"github.com/fourdst/speciesgen/core/errors"
	"github.com/fourdst/speciesgen/core/species"
)

// schema is the species table DDL. NaN-valued fields and missing nuclear
// properties are stored as NULL; the half-life of a stable nuclide is +Inf,
// which SQLite represents natively.
const schema = `
CREATE TABLE IF NOT EXISTS species (
	name                  TEXT PRIMARY KEY,
	el                    TEXT NOT NULL,
	nz                    INTEGER NOT NULL,
	n                     INTEGER NOT NULL,
	z                     INTEGER NOT NULL,
	a                     INTEGER NOT NULL,
	mass_excess           REAL,
	mass_excess_unc       REAL,
	binding_energy        REAL,
	binding_energy_unc    REAL,
	beta_code             TEXT NOT NULL,
	beta_decay_energy     REAL,
	beta_decay_energy_unc REAL,
	atomic_mass           REAL,
	atomic_mass_unc       REAL,
	half_life_s           REAL,
	spin_parity           TEXT,
	decay_modes           TEXT,
	primary_mode          TEXT
);
CREATE INDEX IF NOT EXISTS idx_species_az ON species(a, z);
`

const insertSpecies = `
INSERT INTO species (
	name, el, nz, n, z, a,
	mass_excess, mass_excess_unc,
	binding_energy, binding_energy_unc,
	beta_code, beta_decay_energy, beta_decay_energy_unc,
	atomic_mass, atomic_mass_unc,
	half_life_s, spin_parity, decay_modes, primary_mode
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Export writes the merged table into a SQLite database at path.
// The whole export runs in one transaction; a failed insert rolls back
// everything and fails the run.
func Export(ctx context.Context, path string, table []species.Species) error {
	db, err := Open(path)
	if err != nil {
		return &errors.IOError{Operation: "open database", Path: path, Err: err}
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return &errors.IOError{Operation: "create schema in", Path: path, Err: err}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return &errors.IOError{Operation: "begin transaction on", Path: path, Err: err}
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertSpecies)
	if err != nil {
		return &errors.IOError{Operation: "prepare insert on", Path: path, Err: err}
	}
	defer stmt.Close()

	for _, s := range table {
		if _, err := stmt.ExecContext(ctx,
			s.Name, s.Element, s.NZ, s.N, s.Z, s.A,
			nullFloat(s.MassExcess), nullFloat(s.MassExcessUnc),
			nullFloat(s.BindingEnergy), nullFloat(s.BindingEnergyUnc),
			s.BetaCode, nullFloat(s.BetaDecayEnergy), nullFloat(s.BetaDecayEnergyUnc),
			atomicMass(s), nullFloat(s.AtomicMassUnc),
			halfLife(s), nullString(s.SpinParity), nullString(s.DecayModes), nullString(s.PrimaryMode),
		); err != nil {
			return &errors.IOError{Operation: "insert " + s.Name + " into", Path: path, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &errors.IOError{Operation: "commit to", Path: path, Err: err}
	}
	return nil
}

func nullFloat(v float64) sql.NullFloat64 {
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func atomicMass(s species.Species) sql.NullFloat64 {
	if !s.HasAtomicMass {
		return sql.NullFloat64{}
	}
	return nullFloat(s.AtomicMass)
}

func halfLife(s species.Species) sql.NullFloat64 {
	if !s.HasNuclearData {
		return sql.NullFloat64{}
	}
	return nullFloat(s.HalfLife)
}
