package sqlite

import (
	"context"
	"database/sql"
	"math"
	"path/filepath"
	"testing"

	"github.com/fourdst/speciesgen/core/species"
)

func testTable() []species.Species {
	return []species.Species{
		{
			Name: "Fe-56", Element: "Fe", NZ: 4, N: 30, Z: 26, A: 56,
			MassExcess: -60601.003, MassExcessUnc: 0.354,
			BindingEnergy: 8790.356, BindingEnergyUnc: 0.006,
			BetaCode:        "B-",
			BetaDecayEnergy: math.NaN(), BetaDecayEnergyUnc: math.NaN(),
			AtomicMass: 55.93493554, HasAtomicMass: true, AtomicMassUnc: 0.379,
			HasNuclearData: true, HalfLife: 3.5e17,
			SpinParity: "0+", DecayModes: "IS=91.754 36", PrimaryMode: "IS",
		},
		{
			Name: "Zz-300", Element: "Zz", N: 200, Z: 100, A: 300,
			BetaCode: "", HalfLife: math.Inf(1), // no nuclear match
		},
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "species.db")
	if err := Export(context.Background(), path, testTable()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM species").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("row count = %d, want 2", count)
	}

	var halfLife sql.NullFloat64
	var primaryMode sql.NullString
	var betaDecay sql.NullFloat64
	err = db.QueryRow(
		"SELECT half_life_s, primary_mode, beta_decay_energy FROM species WHERE name = ?", "Fe-56",
	).Scan(&halfLife, &primaryMode, &betaDecay)
	if err != nil {
		t.Fatalf("query Fe-56: %v", err)
	}
	if !halfLife.Valid || halfLife.Float64 != 3.5e17 {
		t.Errorf("half_life_s = %+v, want 3.5e17", halfLife)
	}
	if !primaryMode.Valid || primaryMode.String != "IS" {
		t.Errorf("primary_mode = %+v, want IS", primaryMode)
	}
	if betaDecay.Valid {
		t.Errorf("beta_decay_energy = %+v, want NULL for NaN", betaDecay)
	}

	// A row with no nuclear match stores NULL, not the +Inf sentinel.
	err = db.QueryRow(
		"SELECT half_life_s, spin_parity FROM species WHERE name = ?", "Zz-300",
	).Scan(&halfLife, &primaryMode)
	if err != nil {
		t.Fatalf("query Zz-300: %v", err)
	}
	if halfLife.Valid {
		t.Errorf("half_life_s = %+v, want NULL", halfLife)
	}
	if primaryMode.Valid {
		t.Errorf("spin_parity = %+v, want NULL", primaryMode)
	}
}

func TestExportLookupByAZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "species.db")
	if err := Export(context.Background(), path, testTable()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	var name string
	if err := db.QueryRow("SELECT name FROM species WHERE a = ? AND z = ?", 56, 26).Scan(&name); err != nil {
		t.Fatalf("query by (a, z): %v", err)
	}
	if name != "Fe-56" {
		t.Errorf("name = %q, want Fe-56", name)
	}
}

func TestDriverInfo(t *testing.T) {
	if DriverName() == "" {
		t.Error("empty driver name")
	}
	switch DriverType() {
	case "purego":
		if IsCGO() {
			t.Error("purego driver reported as CGO")
		}
	case "cgo":
		if !IsCGO() {
			t.Error("cgo driver not reported as CGO")
		}
	default:
		t.Errorf("unexpected driver type %q", DriverType())
	}
}
