package descriptor

import (
	"fmt"

	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
)

// KierHall is the Kier–Hall electronegativity of an atom:
//
//	delta  = degree - H
//	deltaV = (Zv - H) / (Z - Zv - 1)
//	KHE    = (deltaV - delta) / period²
//
// where H counts implicit and explicit hydrogens, Zv is the number of valence
// electrons and Z the atomic number.  Hydrogen is defined as 0.
type KierHall struct{}

// NewKierHall returns the descriptor.
func NewKierHall() *KierHall { return &KierHall{} }

func (*KierHall) Specification() Specification {
	return Specification{
		Reference:                "kierHallElectronegativity",
		ImplementationTitle:      "descriptor.KierHall",
		ImplementationIdentifier: "1.0",
		Vendor:                   Vendor,
	}
}

func (*KierHall) Names() []string { return []string{"elecKierHall"} }

// Calculate computes the value for atom.  Any lookup failure yields NaN and
// the error.
func (k *KierHall) Calculate(atom *molecule.Atom, mol *molecule.Molecule) Value {
	if atom == nil || mol == nil {
		return dummy(k, errors.InvalidParam("atom and molecule are required"))
	}
	el, err := molecule.LookupElement(atom.Symbol)
	if err != nil {
		return dummy(k, err)
	}
	if el.AtomicNumber == 1 {
		return result(k, 0)
	}

	hydrogens, err := mol.HydrogenCount(atom)
	if err != nil {
		return dummy(k, err)
	}
	degree, err := mol.ConnectedBondsCount(atom)
	if err != nil {
		return dummy(k, err)
	}

	core := el.AtomicNumber - el.ValenceElectrons - 1
	if core == 0 {
		return dummy(k, errors.New(errors.CodeDescriptorFailed, "zero core electron term").
			WithDetail(fmt.Sprintf("symbol=%s", atom.Symbol)))
	}
	delta := float64(degree - hydrogens)
	deltaV := float64(el.ValenceElectrons-hydrogens) / float64(core)
	period := float64(el.Period)
	return result(k, (deltaV-delta)/(period*period))
}

//Personal.AI order the ending
