package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bennofs/mintec/pkg/mintec/models"
)

func TestToJSON(t *testing.T) {
	problems := models.Problems{
		{Row: 10, Column: "B", Text: "ignoring superfluous data", Kind: models.KindRedundantVariantData},
	}
	report := NewReport("erika.xlsx", &models.Record{Name: "Erika"}, problems)

	data, err := ToJSON(report, false)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "erika.xlsx", decoded["file"])
	assert.Equal(t, "WARN", decoded["status"])
	assert.Equal(t, "\nB10: ignoring superfluous data\n", decoded["message"])
	assert.Equal(t, "Erika", decoded["record"].(map[string]interface{})["name"])

	pretty, err := ToJSON(report, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"status\": \"WARN\"")
}

func TestNewReportWithoutProblems(t *testing.T) {
	data, err := ToJSON(NewReport("ok.xlsx", &models.Record{}, nil), false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"problems":[]`)
	assert.Contains(t, string(data), `"status":"OK"`)
	assert.NotContains(t, string(data), `"message"`)
}
