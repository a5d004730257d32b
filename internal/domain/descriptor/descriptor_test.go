package descriptor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/KeyIP-AtomType/internal/domain/atomtype"
	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
)

// methanol: C(H3)-O(H), hydrogens implicit.
func methanol(t *testing.T) (*molecule.Molecule, *molecule.Atom, *molecule.Atom) {
	t.Helper()
	m := molecule.New("methanol")
	c := molecule.NewAtom("C")
	c.ImplicitHydrogenCount = 3
	o := molecule.NewAtom("O")
	o.ImplicitHydrogenCount = 1
	_, err := m.AddAtom(c)
	require.NoError(t, err)
	_, err = m.AddAtom(o)
	require.NoError(t, err)
	_, err = m.AddBond(0, 1, molecule.BondOrderSingle)
	require.NoError(t, err)
	return m, c, o
}

func TestKierHall_Values(t *testing.T) {
	m, c, o := methanol(t)
	k := NewKierHall()

	// carbon: delta = 1-3 = -2, deltaV = (4-3)/1 = 1, (1+2)/4
	v := k.Calculate(c, m)
	require.False(t, v.Failed())
	assert.InDelta(t, 0.75, v.Result, 1e-9)
	assert.Equal(t, []string{"elecKierHall"}, v.Names)

	// oxygen: delta = 1-1 = 0, deltaV = (6-1)/1 = 5, 5/4
	v = k.Calculate(o, m)
	require.False(t, v.Failed())
	assert.InDelta(t, 1.25, v.Result, 1e-9)
}

func TestKierHall_ExplicitHydrogens(t *testing.T) {
	m := molecule.New("")
	c := molecule.NewAtom("C")
	_, _ = m.AddAtom(c)
	for i := 0; i < 4; i++ {
		idx, _ := m.AddAtom(molecule.NewAtom("H"))
		_, err := m.AddBond(0, idx, molecule.BondOrderSingle)
		require.NoError(t, err)
	}
	k := NewKierHall()

	// delta = 4-4 = 0, deltaV = (4-4)/1 = 0
	v := k.Calculate(c, m)
	require.False(t, v.Failed())
	assert.InDelta(t, 0, v.Result, 1e-9)

	h, err := m.Atom(1)
	require.NoError(t, err)
	v = k.Calculate(h, m)
	require.False(t, v.Failed())
	assert.Equal(t, 0.0, v.Result)
}

func TestKierHall_Period3(t *testing.T) {
	m := molecule.New("")
	c := molecule.NewAtom("C")
	c.ImplicitHydrogenCount = 3
	cl := molecule.NewAtom("Cl")
	_, _ = m.AddAtom(c)
	_, _ = m.AddAtom(cl)
	_, _ = m.AddBond(0, 1, molecule.BondOrderSingle)

	// delta = 1, deltaV = 7/(17-7-1) = 7/9, (7/9 - 1)/9
	v := NewKierHall().Calculate(cl, m)
	require.False(t, v.Failed())
	assert.InDelta(t, (7.0/9.0-1)/9, v.Result, 1e-9)
}

func TestKierHall_Failures(t *testing.T) {
	m, _, _ := methanol(t)
	k := NewKierHall()

	v := k.Calculate(molecule.NewAtom("Xx"), m)
	assert.True(t, math.IsNaN(v.Result))
	assert.True(t, errors.IsCode(v.Err, errors.CodeElementUnknown))

	v = k.Calculate(molecule.NewAtom("C"), m)
	assert.True(t, math.IsNaN(v.Result))
	assert.True(t, errors.IsCode(v.Err, errors.CodeAtomNotInMolecule))

	v = k.Calculate(nil, m)
	assert.True(t, errors.IsCode(v.Err, errors.CodeInvalidParam))
}

func TestAtomTypeHybridization(t *testing.T) {
	matcher, err := atomtype.NewMatcher(atomtype.NewDefaultTable())
	require.NoError(t, err)
	d, err := NewAtomTypeHybridization(matcher)
	require.NoError(t, err)

	m := molecule.New("propyne")
	for _, sym := range []string{"C", "C", "C"} {
		_, _ = m.AddAtom(molecule.NewAtom(sym))
	}
	_, _ = m.AddBond(0, 1, molecule.BondOrderSingle)
	_, _ = m.AddBond(1, 2, molecule.BondOrderTriple)
	o := molecule.NewAtom("O")
	_, _ = m.AddAtom(o)
	_, _ = m.AddBond(0, 3, molecule.BondOrderSingle)

	atoms := m.Atoms()
	assert.Equal(t, 3.0, d.Calculate(atoms[0], m).Result)
	assert.Equal(t, 1.0, d.Calculate(atoms[1], m).Result)

	v := d.Calculate(o, m)
	assert.True(t, math.IsNaN(v.Result), "unperceived yields NaN")
	assert.NoError(t, v.Err)

	v = d.Calculate(molecule.NewAtom("C"), m)
	assert.True(t, math.IsNaN(v.Result))
	assert.True(t, errors.IsCode(v.Err, errors.CodeAtomNotInMolecule))

	_, err = NewAtomTypeHybridization(nil)
	assert.Error(t, err)
}

func TestSpecificationAndNames(t *testing.T) {
	matcher, err := atomtype.NewMatcher(atomtype.NewDefaultTable())
	require.NoError(t, err)
	hyb, err := NewAtomTypeHybridization(matcher)
	require.NoError(t, err)

	ds := []AtomicDescriptor{NewKierHall(), hyb}
	assert.Equal(t, []string{"elecKierHall", "aHyb"}, Names(ds))
	for _, d := range ds {
		assert.Equal(t, Vendor, d.Specification().Vendor)
		assert.NotEmpty(t, d.Specification().ImplementationTitle)
	}
}
