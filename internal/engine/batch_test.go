package engine_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/splitledger/backend/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchOrder(id, status string) engine.OrderInput {
	return engine.OrderInput{
		ID:              id,
		Currency:        "USD",
		FinancialStatus: status,
		LineItems: []engine.LineItemInput{
			{Title: "Lamp", Vendor: "Acme", Price: "100.00", Quantity: "1"},
		},
	}
}

func TestProcessBatch(t *testing.T) {
	t.Parallel()

	orders := []engine.OrderInput{
		batchOrder("1", engine.StatusPaid),
		batchOrder("2", engine.StatusRefunded),
		batchOrder("3", engine.StatusPaid),
	}
	orders[2].LineItems[0].Price = "broken"

	rules := []engine.Rule{{
		ID:          "acme",
		Description: "Acme",
		Keywords:    []string{"acme"},
		Components: []engine.Component{
			{Type: engine.ComponentVendor, Kind: engine.KindPercentage, Value: decimal.RequireFromString("50"), Position: 1},
		},
	}}

	result := engine.ProcessBatch(orders, rules, engine.Options{})

	require.Len(t, result.Breakdowns, 1)
	assert.Equal(t, "1", result.Breakdowns[0].OrderID)
	assert.Equal(t, "Acme", result.Breakdowns[0].MatchedRule)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "2", result.Skipped[0])

	require.Len(t, result.Failed, 1)
	assert.Equal(t, "3", result.Failed[0].OrderID)

	var malformed engine.MalformedOrderError
	require.ErrorAs(t, result.Failed[0], &malformed)
	assert.Equal(t, "lineItems[0].price", malformed.Field)
}

func TestProcessBatchEmpty(t *testing.T) {
	t.Parallel()

	result := engine.ProcessBatch(nil, nil, engine.Options{})

	assert.Empty(t, result.Breakdowns)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, result.Failed)
}

func TestProcessBatchPreservesInputOrder(t *testing.T) {
	t.Parallel()

	var orders []engine.OrderInput
	for i := range 100 {
		orders = append(orders, batchOrder(fmt.Sprintf("order-%03d", i), engine.StatusPaid))
	}

	result := engine.ProcessBatch(orders, nil, engine.Options{})

	require.Len(t, result.Breakdowns, 100)
	for i, breakdown := range result.Breakdowns {
		assert.Equal(t, fmt.Sprintf("order-%03d", i), breakdown.OrderID)
	}
}

func TestProcessBatchAllRefunded(t *testing.T) {
	t.Parallel()

	var orders []engine.OrderInput
	for i := range 10 {
		orders = append(orders, batchOrder(fmt.Sprintf("%d", i), engine.StatusRefunded))
	}

	result := engine.ProcessBatch(orders, nil, engine.Options{})

	assert.Empty(t, result.Breakdowns)
	assert.Len(t, result.Skipped, 10)
}
