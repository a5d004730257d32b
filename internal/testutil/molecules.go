package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
)

// Bond describes a bond between zero-based atom indices.
type Bond struct {
	Begin, End int
	Order      molecule.BondOrder
}

// BuildMolecule builds a molecule from element symbols and bonds, failing the
// test on any construction error.
func BuildMolecule(t testing.TB, title string, symbols []string, bonds ...Bond) *molecule.Molecule {
	t.Helper()
	m := molecule.New(title)
	for _, s := range symbols {
		_, err := m.AddAtom(molecule.NewAtom(s))
		require.NoError(t, err)
	}
	for _, b := range bonds {
		_, err := m.AddBond(b.Begin, b.End, b.Order)
		require.NoError(t, err)
	}
	return m
}

// Propyne is CH3-C≡CH with hydrogens implicit: sp3, sp, sp carbons.
func Propyne(t testing.TB) *molecule.Molecule {
	return BuildMolecule(t, "propyne", []string{"C", "C", "C"},
		Bond{0, 1, molecule.BondOrderSingle},
		Bond{1, 2, molecule.BondOrderTriple})
}

// Acetaldehyde is CH3-CH=O: sp3 carbon, sp2 carbon, unperceived oxygen.
func Acetaldehyde(t testing.TB) *molecule.Molecule {
	return BuildMolecule(t, "acetaldehyde", []string{"C", "C", "O"},
		Bond{0, 1, molecule.BondOrderSingle},
		Bond{1, 2, molecule.BondOrderDouble})
}

// Broken has a carbon with a bond of unset order; perceiving either carbon
// fails.
func Broken(t testing.TB) *molecule.Molecule {
	return BuildMolecule(t, "broken", []string{"C", "C"},
		Bond{0, 1, molecule.BondOrderUnset})
}

//Personal.AI order the ending
