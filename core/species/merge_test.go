package species

import (
	"math"
	"testing"

	"github.com/fourdst/speciesgen/core/ame"
	"github.com/fourdst/speciesgen/core/nubase"
)

func massRecord(el string, n, z int) ame.Record {
	return ame.Record{
		Element:       el,
		N:             n,
		Z:             z,
		A:             n + z,
		NZ:            n - z,
		BindingEnergy: 1000,
		AtomicMass:    float64(n + z),
		HasAtomicMass: true,
	}
}

func nuclearRecord(el string, a int, hl nubase.HalfLife) nubase.Record {
	return nubase.Record{
		A:           a,
		Element:     el,
		HalfLife:    hl,
		SpinParity:  "0+",
		DecayModes:  "B-=100",
		PrimaryMode: "B-",
	}
}

func TestMergeTotality(t *testing.T) {
	mass := []ame.Record{
		massRecord("H", 0, 1),
		massRecord("He", 2, 2),
	}
	nuclear := []nubase.Record{
		nuclearRecord("H", 1, nubase.HalfLife{Seconds: math.Inf(1), Outcome: nubase.OutcomeStable}),
	}

	merged, stats := Merge(mass, nuclear)
	if len(merged) != len(mass) {
		t.Fatalf("merged rows = %d, want %d", len(merged), len(mass))
	}
	if stats.MassRows != 2 || stats.NuclearRows != 1 || stats.Matched != 1 {
		t.Errorf("stats = %+v", stats)
	}

	h1 := merged[0]
	if h1.Name != "H-1" {
		t.Fatalf("row 0 = %q, want H-1 (input order preserved)", h1.Name)
	}
	if !h1.HasNuclearData {
		t.Error("H-1 should carry nuclear data")
	}
	if !math.IsInf(h1.HalfLife, 1) {
		t.Errorf("H-1 half-life = %v, want +Inf", h1.HalfLife)
	}
	if h1.SpinParity != "0+" || h1.DecayModes != "B-=100" {
		t.Errorf("H-1 nuclear fields = %q, %q", h1.SpinParity, h1.DecayModes)
	}

	he4 := merged[1]
	if he4.HasNuclearData {
		t.Error("He-4 should not carry nuclear data")
	}
	if !math.IsInf(he4.HalfLife, 1) {
		t.Errorf("He-4 half-life sentinel = %v, want +Inf", he4.HalfLife)
	}
	if he4.SpinParity != "" || he4.DecayModes != "" {
		t.Errorf("He-4 nuclear fields = %q, %q, want empty", he4.SpinParity, he4.DecayModes)
	}
}

func TestMergeUnmatchedNuclearCounted(t *testing.T) {
	mass := []ame.Record{massRecord("H", 0, 1)}
	nuclear := []nubase.Record{
		nuclearRecord("H", 1, nubase.HalfLife{Seconds: math.Inf(1), Outcome: nubase.OutcomeStable}),
		nuclearRecord("Zz", 300, nubase.HalfLife{Seconds: 1}),
	}

	merged, stats := Merge(mass, nuclear)
	if len(merged) != 1 {
		t.Fatalf("merged rows = %d, want 1 (right-only rows dropped)", len(merged))
	}
	if stats.UnmatchedNuclear != 1 {
		t.Errorf("UnmatchedNuclear = %d, want 1", stats.UnmatchedNuclear)
	}
}

func TestMergeNoRowMultiplication(t *testing.T) {
	mass := []ame.Record{massRecord("Li", 3, 3)}
	// Two nuclear rows for the same identity; the first must win and the
	// left side must not multiply.
	nuclear := []nubase.Record{
		nuclearRecord("Li", 6, nubase.HalfLife{Seconds: math.Inf(1), Outcome: nubase.OutcomeStable}),
		nuclearRecord("Li", 6, nubase.HalfLife{Seconds: 1}),
	}

	merged, _ := Merge(mass, nuclear)
	if len(merged) != 1 {
		t.Fatalf("merged rows = %d, want 1", len(merged))
	}
	if !math.IsInf(merged[0].HalfLife, 1) {
		t.Errorf("half-life = %v, want +Inf from first nuclear row", merged[0].HalfLife)
	}
}

func TestMergePreservesMassFields(t *testing.T) {
	m := massRecord("Fe", 30, 26)
	m.MassExcess = -60601.003
	m.BetaCode = "B-"
	m.BetaDecayEnergy = math.NaN()

	merged, _ := Merge([]ame.Record{m}, nil)
	s := merged[0]
	if s.Name != "Fe-56" || s.Z != 26 || s.N != 30 || s.A != 56 {
		t.Fatalf("identity = %+v", s)
	}
	if s.MassExcess != -60601.003 {
		t.Errorf("MassExcess = %v", s.MassExcess)
	}
	if !math.IsNaN(s.BetaDecayEnergy) {
		t.Errorf("BetaDecayEnergy = %v, want NaN", s.BetaDecayEnergy)
	}
	if s.Key() != "Fe-56" {
		t.Errorf("Key() = %q", s.Key())
	}
}
