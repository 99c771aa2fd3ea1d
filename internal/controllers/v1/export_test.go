package v1_test

import (
	"encoding/json"
	"net/http"
	"time"

	v1 "github.com/splitledger/backend/internal/controllers/v1"
	"github.com/splitledger/backend/internal/models"
	"github.com/splitledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExport verifies that the export works correctly
//
// Thorough checks are only executed for the non-data fields since
// the data fields are populated by the Export() methods of the models
func (suite *TestSuiteStandard) TestExport() {
	t := suite.T()

	rule := createTestRule(t, v1.RuleEditable{})

	recorder := test.Request(t, http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, "0.0.0", response.Version)

	// Not sure if this is a good test, if it ever fails we'll re-evaluate
	now := time.Now()
	difference := response.CreationTime.Sub(now).Seconds()
	assert.Less(t, difference, float64(1))

	// Basic tests for the data fields. Full testing is done in the respective Export() methods
	// of the models
	assert.Len(t, response.Data, len(models.Registry), "Number of models in export does not match registry")

	var rules []models.Rule
	require.Nil(t, json.Unmarshal(response.Data["Rule"], &rules))
	require.Len(t, rules, 1, "Number of rules in export must be 1")
	assert.Equal(t, rule.Data.CreatedAt, rules[0].CreatedAt)
}

func (suite *TestSuiteStandard) TestExportOptions() {
	t := suite.T()

	recorder := test.Request(t, http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
	assert.Equal(t, "OPTIONS, GET", recorder.Header().Get("allow"))
}
