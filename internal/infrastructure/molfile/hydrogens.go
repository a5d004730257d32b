package molfile

import (
	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
)

// defaultValence is the neutral valence used to fill implicit hydrogens.
// Elements not listed keep their implicit count unchanged.
var defaultValence = map[string]int{
	"B": 3, "C": 4, "N": 3, "O": 2, "P": 3, "S": 2,
	"F": 1, "Cl": 1, "Br": 1, "I": 1,
}

// Hydrogenate sets every atom's implicit hydrogen count to its default
// valence, adjusted for formal charge, minus its bond-order sum (never below
// zero).  Carbon loses one valence per unit of charge; N, O, P and S gain one
// per positive unit and lose one per negative unit.
func Hydrogenate(mol *molecule.Molecule) error {
	for _, a := range mol.Atoms() {
		valence, ok := defaultValence[a.Symbol]
		if !ok {
			continue
		}
		charge := a.FormalCharge.OrZero()
		switch a.Symbol {
		case "C":
			if charge < 0 {
				charge = -charge
			}
			valence -= charge
		case "N", "O", "P", "S":
			valence += charge
		}
		sum, err := mol.BondOrderSum(a)
		if err != nil {
			return err
		}
		h := valence - sum
		if h < 0 {
			h = 0
		}
		a.ImplicitHydrogenCount = h
	}
	return nil
}

//Personal.AI order the ending
