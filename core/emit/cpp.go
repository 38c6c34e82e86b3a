package emit

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/fourdst/speciesgen/core/species"
)

// CppEmitter writes the species table as a C++ header for the fourdst
// composition library. The Species constructor shape and the
// element_symbol_map used by az_to_species are collaborators defined in the
// included headers; this emitter only guarantees literal values in the
// agreed argument order.
type CppEmitter struct{}

const cppPrologue = `#pragma once
#include <cstdint>
#include <limits>
#include <string>
#include <unordered_map>
#include "fourdst/composition/atomicSpecies.h"
#include "fourdst/composition/elements.h"

namespace fourdst::atomic {
`

// Emit writes the complete header: one static const Species per isotope, the
// name-keyed species map, and the (A, Z) lookup helper.
func (CppEmitter) Emit(w io.Writer, table []species.Species) error {
	if err := checkUnique(table); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, cppPrologue)

	for _, s := range table {
		writeCppSpecies(bw, s)
	}

	fmt.Fprint(bw, "\n    static const std::unordered_map<std::string, const Species*> species = {\n")
	for _, s := range table {
		fmt.Fprintf(bw, "        {\"%s\", &%s},\n", s.Key(), InstanceName(s))
	}
	fmt.Fprint(bw, "    };\n")

	fmt.Fprint(bw, `
    inline const Species* az_to_species(const int a, const int z) {
        const std::string element_symbol = element_symbol_map.at(static_cast<uint8_t>(z));
        const auto it = species.find(element_symbol + "-" + std::to_string(a));
        return it == species.end() ? nullptr : it->second;
    }

} // namespace fourdst::atomic
`)

	if err := bw.Flush(); err != nil {
		return err
	}
	return nil
}

// writeCppSpecies writes one static const Species declaration with all 18
// fields embedded as literals.
func writeCppSpecies(w io.Writer, s species.Species) {
	atomicMass := math.NaN()
	if s.HasAtomicMass {
		atomicMass = s.AtomicMass
	}
	fmt.Fprintf(w,
		"    static const Species %s(\"%s\", \"%s\", %d, %d, %d, %d, %s, %s, %s, %s, \"%s\", %s, %s, %s, \"%s\", \"%s\", %s, %s);\n",
		InstanceName(s),
		s.Key(),
		escapeString(s.Element),
		s.NZ, s.N, s.Z, s.A,
		cppFloat(s.MassExcess), cppFloat(s.MassExcessUnc),
		cppFloat(s.BindingEnergy), cppFloat(s.BindingEnergyUnc),
		escapeString(s.BetaCode),
		cppFloat(s.BetaDecayEnergy), cppFloat(s.BetaDecayEnergyUnc),
		cppFloat(s.HalfLife),
		escapeString(s.SpinParity),
		escapeString(s.DecayModes),
		cppFloat(atomicMass), cppFloat(s.AtomicMassUnc),
	)
}

// cppFloat renders a double literal, mapping the sentinels to
// std::numeric_limits expressions.
func cppFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "std::numeric_limits<double>::quiet_NaN()"
	case math.IsInf(v, 1):
		return "std::numeric_limits<double>::infinity()"
	case math.IsInf(v, -1):
		return "-std::numeric_limits<double>::infinity()"
	default:
		return formatFloat(v)
	}
}
