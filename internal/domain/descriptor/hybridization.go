package descriptor

import (
	"math"

	"github.com/turtacn/KeyIP-AtomType/internal/domain/atomtype"
	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
)

// AtomTypeHybridization reports the hybridization of the perceived atom type
// as a number: sp 1, sp2 2, sp3 3.  An unperceived atom, or a type with any
// other hybridization, yields NaN with no error; a perception failure yields
// NaN with the error.
type AtomTypeHybridization struct {
	matcher *atomtype.Matcher
}

// NewAtomTypeHybridization wraps matcher.
func NewAtomTypeHybridization(matcher *atomtype.Matcher) (*AtomTypeHybridization, error) {
	if matcher == nil {
		return nil, errors.InvalidParam("matcher must not be nil")
	}
	return &AtomTypeHybridization{matcher: matcher}, nil
}

func (*AtomTypeHybridization) Specification() Specification {
	return Specification{
		Reference:                "atomHybridization",
		ImplementationTitle:      "descriptor.AtomTypeHybridization",
		ImplementationIdentifier: "1.0",
		Vendor:                   Vendor,
	}
}

func (*AtomTypeHybridization) Names() []string { return []string{"aHyb"} }

var hybridizationValues = map[molecule.Hybridization]float64{
	molecule.HybridizationSP:  1,
	molecule.HybridizationSP2: 2,
	molecule.HybridizationSP3: 3,
}

func (h *AtomTypeHybridization) Calculate(atom *molecule.Atom, mol *molecule.Molecule) Value {
	if atom == nil || mol == nil {
		return dummy(h, errors.InvalidParam("atom and molecule are required"))
	}
	p, err := h.matcher.FindMatchingAtomType(mol, atom)
	if err != nil {
		return dummy(h, err)
	}
	at, ok := p.AtomType()
	if !ok {
		return result(h, math.NaN())
	}
	v, ok := hybridizationValues[at.Hybridization]
	if !ok {
		return result(h, math.NaN())
	}
	return result(h, v)
}

//Personal.AI order the ending
