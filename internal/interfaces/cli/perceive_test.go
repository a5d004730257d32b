package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
	types "github.com/turtacn/KeyIP-AtomType/pkg/types/atomtype"
)

func TestPerceive_JSON(t *testing.T) {
	out, err := execute(t, "--output", "json", "perceive", sdfFixture)
	require.NoError(t, err)

	var batch types.BatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &batch))
	require.Equal(t, 4, batch.Total)
	assert.Equal(t, 2, batch.Complete)
	assert.Equal(t, 2, batch.Partial)
	assert.Equal(t, 0, batch.Failed)

	byTitle := make(map[string]*types.MoleculeReport)
	for _, r := range batch.Molecules {
		byTitle[r.Title] = r
	}

	allene := byTitle["allene"]
	require.NotNil(t, allene)
	names := make([]string, 0, len(allene.Atoms))
	for _, a := range allene.Atoms {
		names = append(names, a.AtomType)
	}
	assert.Equal(t, []string{"C.sp2", "C.sp", "C.sp2"}, names)

	cation := byTitle["methyl cation"]
	require.NotNil(t, cation)
	assert.Equal(t, types.StatusUnperceived, cation.Atoms[0].Status)
	assert.Equal(t, "CH3", cation.Formula)

	ethanol := byTitle["ethanol"]
	require.NotNil(t, ethanol)
	assert.Equal(t, types.MoleculePartial, ethanol.Status)
	assert.Equal(t, "C2H6O", ethanol.Formula)
}

func TestPerceive_YAML(t *testing.T) {
	out, err := execute(t, "-o", "yaml", "perceive", sdfFixture)
	require.NoError(t, err)

	var batch types.BatchReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &batch))
	assert.Equal(t, 4, batch.Total)
	assert.Equal(t, "propyne", batch.Molecules[1].Title)
}

func TestPerceive_TextAndTable(t *testing.T) {
	out, err := execute(t, "perceive", sdfFixture)
	require.NoError(t, err)
	assert.Contains(t, out, "propyne [complete]")
	assert.Contains(t, out, "4 molecules: 2 complete, 2 partial, 0 failed")

	out, err = execute(t, "-o", "table", "perceive", sdfFixture)
	require.NoError(t, err)
	assert.Contains(t, out, "Atom Type")
	assert.Contains(t, out, "C.sp")
	assert.Equal(t, 4, strings.Count(out, "# "))
}

func TestPerceive_Flags(t *testing.T) {
	out, err := execute(t, "-o", "json", "perceive",
		"--concurrency", "1", "--fail-fast", "--no-implicit-hydrogens",
		"--metrics-addr", "127.0.0.1:0", sdfFixture)
	require.NoError(t, err)

	var batch types.BatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &batch))
	assert.Equal(t, "C2O", batch.Molecules[0].Formula)
}

func TestPerceive_Errors(t *testing.T) {
	_, err := execute(t, "perceive", aromaticFixture)
	assert.True(t, errors.IsCode(err, errors.CodeMolfileUnsupported))

	_, err = execute(t, "perceive", "testdata/missing.sdf")
	assert.True(t, errors.IsCode(err, errors.CodeMolfileParseFailed))

	_, err = execute(t, "perceive")
	assert.Error(t, err)
}

//Personal.AI order the ending
