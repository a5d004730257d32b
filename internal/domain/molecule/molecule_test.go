package molecule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
)

// ethene builds C=C with two implicit hydrogens per carbon and one explicit H
// on the first carbon (so it carries one implicit hydrogen).
func ethene(t *testing.T) (*Molecule, *Atom, *Atom, *Atom) {
	t.Helper()
	m := New("ethene")
	c1 := NewAtom("C")
	c1.ImplicitHydrogenCount = 1
	c2 := NewAtom("C")
	c2.ImplicitHydrogenCount = 2
	h := NewAtom("H")
	for _, a := range []*Atom{c1, c2, h} {
		_, err := m.AddAtom(a)
		require.NoError(t, err)
	}
	_, err := m.AddBond(0, 1, BondOrderDouble)
	require.NoError(t, err)
	_, err = m.AddBond(0, 2, BondOrderSingle)
	require.NoError(t, err)
	return m, c1, c2, h
}

func TestNew_AssignsID(t *testing.T) {
	a, b := New("x"), New("x")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "x", a.Title)
	assert.Zero(t, a.AtomCount())
}

func TestAddAtom_RejectsNilAndDuplicate(t *testing.T) {
	m := New("")
	_, err := m.AddAtom(nil)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))

	a := NewAtom("C")
	idx, err := m.AddAtom(a)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = m.AddAtom(a)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))
}

func TestAddBond_InvalidEndpoints(t *testing.T) {
	m := New("")
	_, _ = m.AddAtom(NewAtom("C"))
	_, _ = m.AddAtom(NewAtom("C"))

	_, err := m.AddBond(0, 0, BondOrderSingle)
	assert.True(t, errors.IsCode(err, errors.CodeBondEndpointsInvalid))

	_, err = m.AddBond(0, 5, BondOrderSingle)
	assert.True(t, errors.IsCode(err, errors.CodeBondEndpointsInvalid))

	_, err = m.AddBond(-1, 1, BondOrderSingle)
	assert.True(t, errors.IsCode(err, errors.CodeBondEndpointsInvalid))
}

func TestConnectivity(t *testing.T) {
	m, c1, c2, h := ethene(t)

	deg, err := m.ConnectedBondsCount(c1)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	deg, err = m.ConnectedBondsCount(c2)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	nbrs, err := m.ConnectedAtoms(c1)
	require.NoError(t, err)
	assert.Equal(t, []*Atom{c2, h}, nbrs)

	bonds, err := m.ConnectedBonds(h)
	require.NoError(t, err)
	require.Len(t, bonds, 1)
	assert.Equal(t, c1, bonds[0].Other(h))
	assert.Nil(t, bonds[0].Other(c2))

	assert.Equal(t, 2, m.BondCount())
	assert.Equal(t, 1, m.IndexOf(c2))
	assert.Equal(t, -1, m.IndexOf(NewAtom("C")))
}

func TestMaximumBondOrder(t *testing.T) {
	m, c1, c2, h := ethene(t)

	got, err := m.MaximumBondOrder(c1)
	require.NoError(t, err)
	assert.Equal(t, BondOrderDouble, got)

	got, err = m.MaximumBondOrder(h)
	require.NoError(t, err)
	assert.Equal(t, BondOrderSingle, got)

	_ = c2
	iso := NewAtom("C")
	_, _ = m.AddAtom(iso)
	got, err = m.MaximumBondOrder(iso)
	require.NoError(t, err)
	assert.Equal(t, BondOrderUnset, got, "an isolated atom has no maximum order")
}

func TestMaximumBondOrder_UnsetBondFails(t *testing.T) {
	m := New("")
	a, b := NewAtom("C"), NewAtom("C")
	_, _ = m.AddAtom(a)
	_, _ = m.AddAtom(b)
	_, err := m.AddBond(0, 1, BondOrderUnset)
	require.NoError(t, err)

	_, err = m.MaximumBondOrder(a)
	assert.True(t, errors.IsCode(err, errors.CodeBondOrderUndefined))

	_, err = m.BondOrderSum(b)
	assert.True(t, errors.IsCode(err, errors.CodeBondOrderUndefined))
}

func TestQueries_AtomNotInMolecule(t *testing.T) {
	m, _, _, _ := ethene(t)
	stranger := NewAtom("C")

	_, err := m.ConnectedBondsCount(stranger)
	assert.True(t, errors.IsCode(err, errors.CodeAtomNotInMolecule))

	_, err = m.MaximumBondOrder(stranger)
	assert.True(t, errors.IsCode(err, errors.CodeAtomNotInMolecule))

	_, err = m.HydrogenCount(stranger)
	assert.True(t, errors.IsCode(err, errors.CodeAtomNotInMolecule))

	_, err = m.LonePairCount(stranger)
	assert.True(t, errors.IsCode(err, errors.CodeAtomNotInMolecule))

	_, err = m.ConnectedBonds(nil)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))
}

func TestHydrogenCount(t *testing.T) {
	m, c1, c2, h := ethene(t)

	n, err := m.HydrogenCount(c1)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one implicit plus one explicit")

	n, err = m.HydrogenCount(c2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = m.HydrogenCount(h)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	c2.ImplicitHydrogenCount = -1
	_, err = m.HydrogenCount(c2)
	assert.True(t, errors.IsCode(err, errors.CodeHydrogenCountUnknown))
}

func TestBondOrderSum(t *testing.T) {
	m, c1, _, _ := ethene(t)
	sum, err := m.BondOrderSum(c1)
	require.NoError(t, err)
	assert.Equal(t, 3, sum)
}

func TestLonePairs(t *testing.T) {
	m := New("water")
	o := NewAtom("O")
	_, _ = m.AddAtom(o)

	for i := 0; i < 2; i++ {
		lp, err := m.AddLonePair(0)
		require.NoError(t, err)
		assert.Equal(t, 2, lp.ElectronCount())
		assert.True(t, lp.Contains(o))
	}
	_, err := m.AddLonePair(3)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))

	n, err := m.LonePairCount(o)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, m.LonePairs(), 2)
}

func TestLonePair_ElectronCountAlwaysTwo(t *testing.T) {
	assert.Equal(t, 2, NewLonePair(nil).ElectronCount())
	assert.False(t, NewLonePair(nil).Contains(nil))
}

func TestAtomsAndBonds_ReturnCopies(t *testing.T) {
	m, c1, _, _ := ethene(t)
	atoms := m.Atoms()
	atoms[0] = nil
	got, err := m.Atom(0)
	require.NoError(t, err)
	assert.Equal(t, c1, got)

	bonds := m.Bonds()
	bonds[0] = nil
	assert.NotNil(t, m.Bonds()[0])

	_, err = m.Atom(10)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))
}

func TestProperties(t *testing.T) {
	m := New("")
	m.SetProperty("b", "2")
	m.SetProperty("a", "1")
	v, ok := m.Property("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	_, ok = m.Property("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, m.PropertyKeys())
}

func TestFormula(t *testing.T) {
	m, _, _, _ := ethene(t)
	assert.Equal(t, "C2H4", m.Formula())

	water := New("")
	o := NewAtom("O")
	o.ImplicitHydrogenCount = 2
	_, _ = water.AddAtom(o)
	assert.Equal(t, "H2O", water.Formula())

	chloro := New("")
	c := NewAtom("C")
	c.ImplicitHydrogenCount = 3
	_, _ = chloro.AddAtom(c)
	_, _ = chloro.AddAtom(NewAtom("Cl"))
	_, _ = chloro.AddBond(0, 1, BondOrderSingle)
	assert.Equal(t, "CH3Cl", chloro.Formula())
}

//Personal.AI order the ending
