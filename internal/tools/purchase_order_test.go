package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseOrderLookupEmptyList(t *testing.T) {
	runner := &fakeRunner{}
	tool := NewPurchaseOrderLookupTool(runner, testLogger())

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"po_numbers": []interface{}{},
	})
	require.NoError(t, err)
	assert.Equal(t, "No purchase order numbers provided.", result.Text)
	assert.Empty(t, runner.queries)
}

func TestPurchaseOrderLookupNoMatches(t *testing.T) {
	runner := &fakeRunner{}
	tool := NewPurchaseOrderLookupTool(runner, testLogger())

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"po_numbers": []interface{}{"PO-404"},
	})
	require.NoError(t, err)
	assert.Equal(t, "No purchase orders found.", result.Text)
}

func TestPurchaseOrderLookupFormatsRecord(t *testing.T) {
	runner := &fakeRunner{
		results: [][]map[string]interface{}{
			{
				{
					"po_number":     "PO-100",
					"supplier_name": "Acme Corp",
					"supplier_id":   int64(5),
					"order_date":    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
					"currency_code": "EUR",
					"status":        "OPEN",
					"total_amount":  2500.0,
				},
			},
		},
	}
	tool := NewPurchaseOrderLookupTool(runner, testLogger())

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"po_numbers": []interface{}{"PO-100", "PO-101"},
	})
	require.NoError(t, err)

	require.Len(t, runner.queries, 1)
	assert.Contains(t, runner.queries[0], "IN ($1,$2)")
	assert.Equal(t, []interface{}{"PO-100", "PO-101"}, runner.params[0])

	assert.Contains(t, result.Text, "Purchase Order Information:")
	assert.Contains(t, result.Text, "PO Number: PO-100")
	assert.Contains(t, result.Text, "Supplier: Acme Corp (ID: 5)")
	assert.Contains(t, result.Text, "Order Date: 2024-02-01")
	assert.Contains(t, result.Text, "Total Amount: EUR 2500.00")
}
