package emit

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/fourdst/speciesgen/core/elements"
	"github.com/fourdst/speciesgen/core/species"
)

// GoEmitter writes the species table as a Go source file. The Species type
// and the newSpecies constructor are collaborators expected to exist in the
// target package; the generated file contributes the declarations, the
// name-keyed index, and the (A, Z) lookup backed by an embedded copy of the
// element-symbol table.
type GoEmitter struct {
	// Package is the package name of the generated file (default "atomic").
	Package string
}

// Emit writes the complete generated Go source for the table.
func (e GoEmitter) Emit(w io.Writer, table []species.Species) error {
	if err := checkUnique(table); err != nil {
		return err
	}

	pkg := e.Package
	if pkg == "" {
		pkg = "atomic"
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// Code generated by speciesgen. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	fmt.Fprint(bw, "import (\n\t\"math\"\n\t\"strconv\"\n)\n\n")
	// Not every table contains a NaN/Inf literal, so pin the math import.
	fmt.Fprint(bw, "var _ = math.Inf\n\n")

	fmt.Fprint(bw, "var (\n")
	for _, s := range table {
		writeGoSpecies(bw, s)
	}
	fmt.Fprint(bw, ")\n\n")

	fmt.Fprint(bw, "// Index maps \"Symbol-A\" species keys to their declarations.\n")
	fmt.Fprint(bw, "var Index = map[string]*Species{\n")
	for _, s := range table {
		fmt.Fprintf(bw, "\t%q: &%s,\n", s.Key(), InstanceName(s))
	}
	fmt.Fprint(bw, "}\n\n")

	fmt.Fprint(bw, "// elementSymbols is indexed by proton number; index 0 is the neutron.\n")
	fmt.Fprint(bw, "var elementSymbols = [...]string{\n")
	for z, sym := range elements.All() {
		fmt.Fprintf(bw, "\t%q,", sym)
		if (z+1)%10 == 0 {
			fmt.Fprint(bw, "\n")
		}
	}
	fmt.Fprint(bw, "\n}\n\n")

	fmt.Fprint(bw, `// LookupAZ resolves a (mass number, proton number) pair to a species.
func LookupAZ(a, z int) (*Species, bool) {
	if z < 0 || z >= len(elementSymbols) {
		return nil, false
	}
	s, ok := Index[elementSymbols[z]+"-"+strconv.Itoa(a)]
	return s, ok
}
`)

	if err := bw.Flush(); err != nil {
		return err
	}
	return nil
}

// writeGoSpecies writes one declaration as a newSpecies constructor call,
// mirroring the C++ argument order.
func writeGoSpecies(w io.Writer, s species.Species) {
	atomicMass := math.NaN()
	if s.HasAtomicMass {
		atomicMass = s.AtomicMass
	}
	fmt.Fprintf(w,
		"\t%s = newSpecies(\"%s\", \"%s\", %d, %d, %d, %d, %s, %s, %s, %s, \"%s\", %s, %s, %s, \"%s\", \"%s\", %s, %s)\n",
		InstanceName(s),
		s.Key(),
		escapeString(s.Element),
		s.NZ, s.N, s.Z, s.A,
		goFloat(s.MassExcess), goFloat(s.MassExcessUnc),
		goFloat(s.BindingEnergy), goFloat(s.BindingEnergyUnc),
		escapeString(s.BetaCode),
		goFloat(s.BetaDecayEnergy), goFloat(s.BetaDecayEnergyUnc),
		goFloat(s.HalfLife),
		escapeString(s.SpinParity),
		escapeString(s.DecayModes),
		goFloat(atomicMass), goFloat(s.AtomicMassUnc),
	)
}

// goFloat renders a float64 literal, mapping the sentinels to math calls.
func goFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "math.NaN()"
	case math.IsInf(v, 1):
		return "math.Inf(1)"
	case math.IsInf(v, -1):
		return "math.Inf(-1)"
	default:
		return formatFloat(v)
	}
}
