// Package species defines the merged per-isotope record and the merge of the
// AME mass table against the NUBASE properties table.
package species

import (
	"math"
	"strconv"

	"github.com/fourdst/speciesgen/core/ame"
	"github.com/fourdst/speciesgen/core/nubase"
)

// Species is one merged isotope record: a full AME mass record plus the
// NUBASE nuclear properties when a matching row exists.
type Species struct {
	Name    string // "Symbol-A", the identity key
	Element string
	NZ      int
	N       int
	Z       int
	A       int

	MassExcess    float64
	MassExcessUnc float64

	BindingEnergy    float64
	BindingEnergyUnc float64

	BetaCode           string
	BetaDecayEnergy    float64
	BetaDecayEnergyUnc float64

	AtomicMass    float64
	HasAtomicMass bool
	AtomicMassUnc float64

	// Nuclear properties from NUBASE. With no matching row HalfLife is the
	// +Inf sentinel, the strings are empty, and HasNuclearData is false.
	HasNuclearData bool
	HalfLife       float64 // seconds
	SpinParity     string
	DecayModes     string
	PrimaryMode    string
}

// fromMass builds the mass-only part of a Species.
func fromMass(m ame.Record) Species {
	return Species{
		Name:    m.Key(),
		Element: m.Element,
		NZ:      m.NZ,
		N:       m.N,
		Z:       m.Z,
		A:       m.A,

		MassExcess:    m.MassExcess,
		MassExcessUnc: m.MassExcessUnc,

		BindingEnergy:    m.BindingEnergy,
		BindingEnergyUnc: m.BindingEnergyUnc,

		BetaCode:           m.BetaCode,
		BetaDecayEnergy:    m.BetaDecayEnergy,
		BetaDecayEnergyUnc: m.BetaDecayEnergyUnc,

		AtomicMass:    m.AtomicMass,
		HasAtomicMass: m.HasAtomicMass,
		AtomicMassUnc: m.AtomicMassUnc,

		HalfLife: math.Inf(1),
	}
}

// attachNuclear copies the NUBASE properties onto a mass record.
func (s *Species) attachNuclear(n nubase.Record) {
	s.HasNuclearData = true
	s.HalfLife = n.HalfLife.Seconds
	s.SpinParity = n.SpinParity
	s.DecayModes = n.DecayModes
	s.PrimaryMode = n.PrimaryMode
}

// Key returns the isotope identity "Symbol-A".
func (s Species) Key() string {
	return s.Element + "-" + strconv.Itoa(s.A)
}
