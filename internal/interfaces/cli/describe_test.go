package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/turtacn/KeyIP-AtomType/pkg/types/atomtype"
)

func TestDescribe_Table(t *testing.T) {
	out, err := execute(t, "describe", sdfFixture)
	require.NoError(t, err)
	assert.Contains(t, out, "ethanol (elecKierHall, aHyb)")
	assert.Contains(t, out, "NaN")
}

func TestDescribe_JSON(t *testing.T) {
	out, err := execute(t, "-o", "json", "describe", sdfFixture)
	require.NoError(t, err)

	var reports []types.DescriptorReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 4)

	propyne := reports[1]
	assert.Equal(t, []string{"elecKierHall", "aHyb"}, propyne.Names)
	hyb := make([]string, 0, len(propyne.Atoms))
	for _, a := range propyne.Atoms {
		hyb = append(hyb, a.Values[1].Text)
	}
	assert.Equal(t, []string{"3.0000", "1.0000", "1.0000"}, hyb)
}

//Personal.AI order the ending
