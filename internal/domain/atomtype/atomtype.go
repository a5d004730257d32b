// Package atomtype implements atom-type perception: the immutable catalog of
// named atom types, the per-element rule sets that classify an atom from its
// local context, and the Matcher that dispatches an atom to its element's rule
// set and resolves the chosen name against the catalog.
//
// Perception has two disjoint outcomes besides a match.  NoMatch is a normal
// classification result and is returned with a nil error.  A failure (a rule
// naming a type the catalog lacks, or a graph property that cannot be read) is
// returned as an error and is never folded into NoMatch.
//
// Nothing in this package mutates the molecule or the catalog.  Callers must
// not mutate a molecule while it is being perceived.
package atomtype

import (
	"fmt"

	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
)

// AtomType is one immutable catalog record.
type AtomType struct {
	// Name is the catalog key, e.g. "C.sp2".
	Name string

	// Symbol is the element the type applies to.
	Symbol string

	AtomicNumber  int
	Hybridization molecule.Hybridization

	// FormalCharge is the charge an atom of this type carries.
	FormalCharge int

	// FormalNeighbourCount is the expected number of connected atoms,
	// hydrogens included.
	FormalNeighbourCount int

	PiBondCount   int
	LonePairCount int

	// Valency is the expected sum of bond orders plus hydrogens.
	Valency int
}

func (t AtomType) String() string {
	return fmt.Sprintf("%s(%s, %s, charge=%d, neighbours=%d)",
		t.Name, t.Symbol, t.Hybridization, t.FormalCharge, t.FormalNeighbourCount)
}

//Personal.AI order the ending
