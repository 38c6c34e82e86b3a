// Package elements maps proton numbers to element symbols.
//
// The table is the collaborator behind the (A, Z) lookup function in the
// generated source: Z resolves to a symbol here, and the symbol plus mass
// number forms the "Symbol-A" species key. Index 0 is the bare neutron,
// matching the AME2020 convention.
package elements

// symbols is indexed by proton number, 0 (neutron) through 118 (oganesson).
var symbols = [...]string{
	"n",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// MaxZ is the highest proton number in the table.
const MaxZ = len(symbols) - 1

// Symbol returns the element symbol for proton number z.
// The second return value is false when z is out of range.
func Symbol(z int) (string, bool) {
	if z < 0 || z >= len(symbols) {
		return "", false
	}
	return symbols[z], true
}

// All returns the full symbol table in proton-number order.
// The returned slice must not be modified.
func All() []string {
	return symbols[:]
}
