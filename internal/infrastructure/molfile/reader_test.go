package molfile

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
)

func atomLine(sym string, code int) string {
	return fmt.Sprintf("%10.4f%10.4f%10.4f %-3s 0%3d  0  0  0  0  0  0  0  0  0  0", 0.0, 0.0, 0.0, sym, code)
}

func bondLine(a, b, order int) string {
	return fmt.Sprintf("%3d%3d%3d  0  0  0  0", a, b, order)
}

func molBlock(title string, atoms, bonds []string, props ...string) string {
	lines := []string{title, "  test", "", fmt.Sprintf("%3d%3d  0  0  0  0  0  0  0  0999 V2000", len(atoms), len(bonds))}
	lines = append(lines, atoms...)
	lines = append(lines, bonds...)
	lines = append(lines, props...)
	lines = append(lines, "M  END")
	return strings.Join(lines, "\n")
}

func TestParseFile_SDF(t *testing.T) {
	mols, err := ParseFile("testdata/molecules.sdf")
	require.NoError(t, err)
	require.Len(t, mols, 4)

	titles := make([]string, len(mols))
	for i, m := range mols {
		titles[i] = m.Title
	}
	assert.Equal(t, []string{"ethanol", "propyne", "allene", "methyl cation"}, titles)

	ethanol := mols[0]
	assert.Equal(t, 3, ethanol.AtomCount())
	assert.Equal(t, 2, ethanol.BondCount())
	assert.Equal(t, "C2H6O", ethanol.Formula())
	v, ok := ethanol.Property("SOURCE")
	assert.True(t, ok)
	assert.Equal(t, "fixture", v)

	c2, err := ethanol.Atom(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, c2.X, 1e-9)

	propyne := mols[1]
	c, err := propyne.Atom(1)
	require.NoError(t, err)
	order, err := propyne.MaximumBondOrder(c)
	require.NoError(t, err)
	assert.Equal(t, molecule.BondOrderTriple, order)

	cation := mols[3]
	carbon, err := cation.Atom(0)
	require.NoError(t, err)
	assert.Equal(t, molecule.Charge(1), carbon.FormalCharge)
	assert.Equal(t, 0, carbon.ImplicitHydrogenCount)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile("testdata/does-not-exist.sdf")
	assert.True(t, errors.IsCode(err, errors.CodeMolfileParseFailed))
}

func TestParseFile_AromaticBondRejected(t *testing.T) {
	_, err := ParseFile("testdata/aromatic.mol")
	assert.True(t, errors.IsCode(err, errors.CodeMolfileUnsupported))
}

func TestParseString_ChargeCodes(t *testing.T) {
	block := molBlock("ions",
		[]string{atomLine("N", 3), atomLine("O", 5), atomLine("C", 0), atomLine("Fe", 2)}, nil)
	mol, err := ParseString(block)
	require.NoError(t, err)

	want := []molecule.FormalCharge{molecule.Charge(1), molecule.Charge(-1), molecule.Charge(0), molecule.Charge(2)}
	for i, a := range mol.Atoms() {
		assert.Equal(t, want[i], a.FormalCharge, a.Symbol)
	}
}

func TestParseString_ChargePropertyResetsAtomBlock(t *testing.T) {
	block := molBlock("chg",
		[]string{atomLine("N", 3), atomLine("C", 0)},
		[]string{bondLine(1, 2, 1)},
		"M  CHG  1   2  -1")
	mol, err := ParseString(block)
	require.NoError(t, err)
	atoms := mol.Atoms()
	assert.Equal(t, molecule.Charge(0), atoms[0].FormalCharge)
	assert.Equal(t, molecule.Charge(-1), atoms[1].FormalCharge)
}

func TestParseString_Errors(t *testing.T) {
	cases := []struct {
		name  string
		block string
		code  errors.ErrorCode
	}{
		{"too short", "title\n\n", errors.CodeMolfileParseFailed},
		{"v3000", "t\n\n\n  0  0  0     0  0            999 V3000\nM  END", errors.CodeMolfileUnsupported},
		{"bad counts", "t\n\n\nxx  0\nM  END", errors.CodeMolfileParseFailed},
		{"truncated", molBlock("t", []string{atomLine("C", 0)}, nil)[:40], errors.CodeMolfileParseFailed},
		{"bond out of range", molBlock("t", []string{atomLine("C", 0)}, []string{bondLine(1, 2, 1)}), errors.CodeBondEndpointsInvalid},
		{"self bond", molBlock("t", []string{atomLine("C", 0)}, []string{bondLine(1, 1, 1)}), errors.CodeBondEndpointsInvalid},
		{"bad charge code", molBlock("t", []string{atomLine("C", 9)}, nil), errors.CodeMolfileParseFailed},
		{"chg out of range", molBlock("t", []string{atomLine("C", 0)}, nil, "M  CHG  1   4   1"), errors.CodeMolfileParseFailed},
		{"chg short", molBlock("t", []string{atomLine("C", 0)}, nil, "M  CHG  2   1   1"), errors.CodeMolfileParseFailed},
		{"query bond", molBlock("t", []string{atomLine("C", 0), atomLine("C", 0)}, []string{bondLine(1, 2, 8)}), errors.CodeMolfileUnsupported},
		{"empty", "\n\n", errors.CodeMolfileParseFailed},
		{"negative atom count", "title\n  prog\n\n -5  0  0  0  0  0  0  0  0  0999 V2000\nM  END\n", errors.CodeMolfileParseFailed},
		{"negative bond count", "title\n  prog\n\n  1 -2  0  0  0  0  0  0  0  0999 V2000\n" + atomLine("C", 0) + "\nM  END\n", errors.CodeMolfileParseFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = ParseString(tc.block) })
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tc.code), err.Error())
		})
	}
}

func TestReader_NextAndEOF(t *testing.T) {
	one := molBlock("a", []string{atomLine("C", 0)}, nil)
	two := molBlock("b", []string{atomLine("O", 0)}, nil)
	r := NewReader(strings.NewReader(one + "\n$$$$\n\n$$$$\n" + two + "\r\n$$$$\n\n"))

	m, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", m.Title)

	m, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", m.Title)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_ErrorNamesRecord(t *testing.T) {
	good := molBlock("ok", []string{atomLine("C", 0)}, nil)
	bad := molBlock("bad", []string{atomLine("C", 0)}, []string{bondLine(1, 1, 1)})
	mols, err := NewReader(strings.NewReader(good + "\n$$$$\n" + bad)).ReadAll()
	require.Error(t, err)
	assert.Len(t, mols, 1)
	assert.Contains(t, err.Error(), "record=2")
}

func TestHydrogenate(t *testing.T) {
	block := molBlock("mixed",
		[]string{atomLine("C", 0), atomLine("N", 3), atomLine("O", 0), atomLine("Cl", 0), atomLine("C", 5), atomLine("Xe", 0)},
		[]string{bondLine(1, 2, 2), bondLine(1, 3, 1), bondLine(1, 4, 1)})
	mol, err := ParseString(block)
	require.NoError(t, err)

	got := make([]int, 0, mol.AtomCount())
	for _, a := range mol.Atoms() {
		got = append(got, a.ImplicitHydrogenCount)
	}
	// C: 4-4, N+: 4-2, O: 2-1, Cl: 1-1, C-: 3-0, Xe untouched
	assert.Equal(t, []int{0, 2, 1, 0, 3, 0}, got)
}

func TestWithImplicitHydrogensDisabled(t *testing.T) {
	block := molBlock("m", []string{atomLine("C", 0)}, nil)
	mol, err := ParseString(block, WithImplicitHydrogens(false))
	require.NoError(t, err)
	assert.Equal(t, 0, mol.Atoms()[0].ImplicitHydrogenCount)

	mol, err = ParseString(block)
	require.NoError(t, err)
	assert.Equal(t, 4, mol.Atoms()[0].ImplicitHydrogenCount)
}

//Personal.AI order the ending
