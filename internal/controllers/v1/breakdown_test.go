package v1_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	v1 "github.com/splitledger/backend/internal/controllers/v1"
	"github.com/splitledger/backend/internal/engine"
	"github.com/splitledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrderInput(id string) engine.OrderInput {
	return engine.OrderInput{
		ID:              id,
		Currency:        "USD",
		FinancialStatus: "paid",
		TotalPrice:      "110.00",
		LineItems: []engine.LineItemInput{
			{
				Title:    "Vintage Lamp",
				Vendor:   "Acme",
				Tags:     []string{"Consignment"},
				Price:    "100.00",
				Quantity: "1",
				Cost:     "30.00",
			},
		},
		Discounts: []engine.DiscountInput{
			{Kind: "percentage", Value: "10"},
		},
		TaxLines: []engine.TaxLineInput{
			{Title: "State Tax", Rate: "0.08", Amount: "8.00"},
			{Title: "Federal Tax", Rate: "0.02", Amount: "2.00"},
		},
	}
}

func createConsignmentRule(t *testing.T) {
	createTestRule(t, v1.RuleEditable{
		Description: "Consignment goods",
		Keywords:    []string{"Consignment"},
		Components: []v1.ComponentEditable{
			{Type: engine.ComponentConsigner, Kind: engine.KindPercentage, Value: decimal.NewFromInt(20), Position: 1},
			{Type: engine.ComponentInvestor, Kind: engine.KindFlat, Value: decimal.NewFromInt(10), Position: 2},
		},
	})
}

func (suite *TestSuiteStandard) TestBreakdownsCompute() {
	t := suite.T()

	createConsignmentRule(t)

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/breakdowns", []engine.OrderInput{testOrderInput("1001")})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.BreakdownResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	require.Len(t, response.Data.Breakdowns, 1)

	breakdown := response.Data.Breakdowns[0]
	assert.Equal(t, "Consignment goods", breakdown.MatchedRule)
	assert.True(t, breakdown.BaseAmount.Equal(decimal.NewFromInt(60)), "base amount is %s", breakdown.BaseAmount)
	assert.True(t, breakdown.Consigner.Equal(decimal.NewFromInt(12)), "consigner share is %s", breakdown.Consigner)
	assert.True(t, breakdown.Investor.Equal(decimal.NewFromInt(10)), "investor share is %s", breakdown.Investor)
	assert.True(t, breakdown.Revenue.Equal(decimal.RequireFromString("34.20")), "revenue is %s", breakdown.Revenue)
}

// TestBreakdownsMixedBatch verifies that refunded and malformed orders
// do not abort the rest of the batch.
func (suite *TestSuiteStandard) TestBreakdownsMixedBatch() {
	t := suite.T()

	createConsignmentRule(t)

	refunded := testOrderInput("1002")
	refunded.FinancialStatus = "refunded"

	malformed := testOrderInput("1003")
	malformed.LineItems[0].Price = "not-a-number"

	body := []engine.OrderInput{testOrderInput("1001"), refunded, malformed}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/breakdowns", body)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.BreakdownResponse
	test.DecodeResponse(t, &recorder, &response)

	require.Len(t, response.Data.Breakdowns, 1)
	assert.Equal(t, []string{"1002"}, response.Data.Skipped)
	require.Len(t, response.Data.Failed, 1)
	assert.Equal(t, "1003", response.Data.Failed[0].OrderID)
}

func (suite *TestSuiteStandard) TestBreakdownsTaxMode() {
	t := suite.T()

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/breakdowns?taxMode=sequential", []engine.OrderInput{testOrderInput("1001")})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.BreakdownResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data.Breakdowns, 1)
}

func (suite *TestSuiteStandard) TestBreakdownsFails() {
	tests := []struct {
		name string
		url  string
		body any
	}{
		{"Invalid tax mode", "http://example.com/v1/breakdowns?taxMode=compound", []engine.OrderInput{testOrderInput("1001")}},
		{"No orders", "http://example.com/v1/breakdowns", []engine.OrderInput{}},
		{"Empty body", "http://example.com/v1/breakdowns", ""},
		{"Broken JSON", "http://example.com/v1/breakdowns", `[{"id": `},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, tt.url, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBreakdownsCSV() {
	t := suite.T()

	createConsignmentRule(t)

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/breakdowns/csv", []engine.OrderInput{testOrderInput("1001")})
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "attachment")

	body := recorder.Body.String()
	assert.Contains(t, body, "Order ID")
	assert.Contains(t, body, "Consignment goods")
	assert.Contains(t, body, "TOTAL")
}

func (suite *TestSuiteStandard) TestBreakdownsOptions() {
	tests := []struct {
		name string
		url  string
	}{
		{"Breakdowns", "http://example.com/v1/breakdowns"},
		{"CSV", "http://example.com/v1/breakdowns/csv"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, POST", recorder.Header().Get("allow"))
		})
	}
}
