// Package molecule provides the molecular graph model of the KeyIP-AtomType
// module: atoms, bonds, lone pairs, and the Molecule container that answers
// connectivity, bond-order, and hydrogen-count queries for perception and
// descriptor code.
//
// A Molecule is not safe for concurrent mutation.  Concurrent read-only use
// (for example many perception calls over the same molecule) is safe as long
// as no goroutine adds atoms, bonds, or lone pairs at the same time.
package molecule

// ─────────────────────────────────────────────────────────────────────────────
// Atom
// ─────────────────────────────────────────────────────────────────────────────

// Atom is one vertex of a molecular graph.  Atoms are identified by pointer:
// the same *Atom may belong to at most one Molecule.
type Atom struct {
	// Symbol is the element symbol, e.g. "C" or "Cl".
	Symbol string

	// Hybridization is the declared hybridization; HybridizationUnset when
	// nothing was declared.
	Hybridization Hybridization

	// FormalCharge is the declared formal charge; ChargeUnset when absent.
	FormalCharge FormalCharge

	// ImplicitHydrogenCount is the number of hydrogens not present as
	// explicit atoms.
	ImplicitHydrogenCount int

	// X, Y, Z are the atom coordinates as read from the source file.
	X, Y, Z float64
}

// NewAtom returns an atom with the given element symbol and every optional
// attribute unset.
func NewAtom(symbol string) *Atom {
	return &Atom{Symbol: symbol}
}

// ─────────────────────────────────────────────────────────────────────────────
// Bond
// ─────────────────────────────────────────────────────────────────────────────

// Bond is an edge between two atoms of the same molecule.
type Bond struct {
	Begin *Atom
	End   *Atom
	Order BondOrder
}

// Contains reports whether a is one of the bond's endpoints.
func (b *Bond) Contains(a *Atom) bool {
	return a != nil && (b.Begin == a || b.End == a)
}

// Other returns the endpoint opposite to a, or nil if a is not an endpoint.
func (b *Bond) Other(a *Atom) *Atom {
	switch a {
	case b.Begin:
		return b.End
	case b.End:
		return b.Begin
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// LonePair
// ─────────────────────────────────────────────────────────────────────────────

// lonePairElectrons is the electron count of every lone pair.
const lonePairElectrons = 2

// LonePair is a non-bonding electron pair localised on one atom.
type LonePair struct {
	Atom *Atom
}

// NewLonePair returns a lone pair on a; a may be nil and set later.
func NewLonePair(a *Atom) *LonePair {
	return &LonePair{Atom: a}
}

// ElectronCount is always 2.
func (lp *LonePair) ElectronCount() int { return lonePairElectrons }

// Contains reports whether the lone pair sits on a.
func (lp *LonePair) Contains(a *Atom) bool {
	return a != nil && lp.Atom == a
}

//Personal.AI order the ending
