package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/splitledger/backend/internal/controllers/v1"
	"github.com/splitledger/backend/internal/engine"
	"github.com/splitledger/backend/internal/models"
	"github.com/splitledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRule(t *testing.T, r v1.RuleEditable, expectedStatus ...int) v1.RuleResponse {
	if r.Description == "" {
		r.Description = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.RuleEditable{r}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/rules", body)
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var response v1.RuleCreateResponse
	test.DecodeResponse(t, &recorder, &response)

	if recorder.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.RuleResponse{}
}

// TestRulesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestRulesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestRule(t, v1.RuleEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/rules", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.RuleListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestRulesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestRulesOptions() {
	tests := []struct {
		name   string
		id     string // path at the rules endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Rule with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Rule exists", createTestRule(suite.T(), v1.RuleEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/rules", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestRulesCreate() {
	t := suite.T()

	rule := createTestRule(t, v1.RuleEditable{
		Description: "Consignment vinyl",
		Priority:    1,
		Keywords:    []string{"vinyl", "record"},
		Components: []v1.ComponentEditable{
			{Type: engine.ComponentInvestor, Kind: engine.KindPercentage, Value: decimal.NewFromInt(15), Label: "Bank A", Position: 1},
			{Type: engine.ComponentConsigner, Kind: engine.KindFlat, Value: decimal.NewFromInt(10), Position: 2},
		},
	})

	require.NotNil(t, rule.Data)
	assert.Equal(t, "Consignment vinyl", rule.Data.Description)
	assert.Len(t, rule.Data.Components, 2)
	assert.Contains(t, rule.Data.Links.Self, fmt.Sprintf("/v1/rules/%s", rule.Data.ID))
}

func (suite *TestSuiteStandard) TestRulesCreateDuplicateDescription() {
	t := suite.T()

	createTestRule(t, v1.RuleEditable{Description: "Consignment vinyl"})

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/rules", []v1.RuleEditable{
		{Description: "Consignment vinyl"},
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

	var response v1.RuleCreateResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data, 1)
	assert.Equal(t, models.ErrRuleDescriptionNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestRulesCreateInvalidComponent() {
	t := suite.T()

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/rules", []v1.RuleEditable{
		{
			Description: "Broken rule",
			Components: []v1.ComponentEditable{
				{Type: "shareholder", Kind: engine.KindPercentage, Value: decimal.NewFromInt(10)},
			},
		},
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

	var response v1.RuleCreateResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data, 1)
	assert.Contains(t, *response.Data[0].Error, "unsupported component type")
}

// TestRulesCreateInvalidBody verifies that creation fails on bodies that
// cannot be parsed.
func (suite *TestSuiteStandard) TestRulesCreateInvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Broken JSON", `{ "description": "Not closed`},
		{"Not an array", `{ "description": "a rule" }`},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/rules", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestRulesGetList() {
	t := suite.T()

	createTestRule(t, v1.RuleEditable{Description: "Consignment", Priority: 2, Keywords: []string{"consignment"}})
	createTestRule(t, v1.RuleEditable{Description: "Vintage lamps", Priority: 1, Keywords: []string{"vintage", "lamp"}})

	recorder := test.Request(t, http.MethodGet, "http://example.com/v1/rules", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.RuleListResponse
	test.DecodeResponse(t, &recorder, &response)

	// Rules are returned in ascending priority order
	require.Len(t, response.Data, 2)
	assert.Equal(t, "Vintage lamps", response.Data[0].Description)
	assert.Equal(t, "Consignment", response.Data[1].Description)

	assert.Equal(t, 2, response.Pagination.Count)
	assert.Equal(t, int64(2), response.Pagination.Total)
}

// TestRulesGetFiltered verifies the query string filters of the list
// endpoint.
func (suite *TestSuiteStandard) TestRulesGetFiltered() {
	t := suite.T()

	createTestRule(t, v1.RuleEditable{Description: "Consignment", Priority: 2, Keywords: []string{"consignment"}})
	createTestRule(t, v1.RuleEditable{Description: "Vintage lamps", Priority: 1, Keywords: []string{"vintage", "lamp"}})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Filter by priority", "priority=1", 1},
		{"Filter by description", "description=Vintage", 1},
		{"Filter by keyword", "keyword=consignment", 1},
		{"Keyword that no rule has", "keyword=espresso", 0},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/rules?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.RuleListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestRulesGetSingle() {
	t := suite.T()

	rule := createTestRule(t, v1.RuleEditable{
		Description: "Consignment vinyl",
		Components: []v1.ComponentEditable{
			{Type: engine.ComponentConsigner, Kind: engine.KindPercentage, Value: decimal.NewFromInt(40), Position: 2},
			{Type: engine.ComponentInvestor, Kind: engine.KindPercentage, Value: decimal.NewFromInt(15), Position: 1},
		},
	})

	recorder := test.Request(t, http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.RuleResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, "Consignment vinyl", response.Data.Description)

	// Components are returned in position order
	require.Len(t, response.Data.Components, 2)
	assert.Equal(t, engine.ComponentInvestor, response.Data.Components[0].Type)
	assert.Equal(t, engine.ComponentConsigner, response.Data.Components[1].Type)
}

func (suite *TestSuiteStandard) TestRulesUpdate() {
	t := suite.T()

	rule := createTestRule(t, v1.RuleEditable{
		Description: "Consignment vinyl",
		Components: []v1.ComponentEditable{
			{Type: engine.ComponentInvestor, Kind: engine.KindPercentage, Value: decimal.NewFromInt(15), Position: 1},
		},
	})

	recorder := test.Request(t, http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"description": "Consignment records",
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.RuleResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, "Consignment records", response.Data.Description)

	// The components were not part of the request, they must be untouched
	require.Len(t, response.Data.Components, 1)
	assert.Equal(t, engine.ComponentInvestor, response.Data.Components[0].Type)
}

// TestRulesUpdateComponents verifies that updating components replaces
// all existing ones.
func (suite *TestSuiteStandard) TestRulesUpdateComponents() {
	t := suite.T()

	rule := createTestRule(t, v1.RuleEditable{
		Components: []v1.ComponentEditable{
			{Type: engine.ComponentInvestor, Kind: engine.KindPercentage, Value: decimal.NewFromInt(15), Position: 1},
			{Type: engine.ComponentVendor, Kind: engine.KindPercentage, Value: decimal.NewFromInt(30), Position: 2},
		},
	})

	recorder := test.Request(t, http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"components": []v1.ComponentEditable{
			{Type: engine.ComponentConsigner, Kind: engine.KindFlat, Value: decimal.NewFromInt(25), Position: 1},
		},
	})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.RuleResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data.Components, 1)
	assert.Equal(t, engine.ComponentConsigner, response.Data.Components[0].Type)
}

func (suite *TestSuiteStandard) TestRulesUpdateFails() {
	t := suite.T()

	rule := createTestRule(t, v1.RuleEditable{})

	tests := []struct {
		name   string
		url    string
		body   string
		status int
	}{
		{"Invalid body", rule.Data.Links.Self, `{ "description": `, http.StatusBadRequest},
		{"Invalid UUID", "http://example.com/v1/rules/NotAUUID", "", http.StatusBadRequest},
		{"No rule with this ID", fmt.Sprintf("http://example.com/v1/rules/%s", uuid.New()), `{ "description": "A rule" }`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPatch, tt.url, tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestRulesDelete() {
	t := suite.T()

	rule := createTestRule(t, v1.RuleEditable{})

	recorder := test.Request(t, http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRulesDeleteFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Invalid UUID", "NotAUUID", http.StatusBadRequest},
		{"No rule with this ID", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/rules/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}
