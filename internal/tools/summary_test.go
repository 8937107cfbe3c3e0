package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorSummaryRequiresID(t *testing.T) {
	runner := &fakeRunner{}
	tool := NewVendorSummaryTool(runner, testLogger())

	for _, params := range []map[string]interface{}{
		{},
		{"vendor_id": float64(0)},
	} {
		result, err := tool.Execute(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, "Vendor ID is required.", result.Text)
	}
	assert.Empty(t, runner.queries)
}

func TestVendorSummaryVendorNotFound(t *testing.T) {
	runner := &fakeRunner{}
	tool := NewVendorSummaryTool(runner, testLogger())

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"vendor_id": float64(42),
	})
	require.NoError(t, err)
	assert.Equal(t, "Vendor not found.", result.Text)

	// Aggregate queries are skipped when the vendor is missing.
	require.Len(t, runner.queries, 1)
}

func TestVendorSummaryPerCurrencyBlocks(t *testing.T) {
	runner := &fakeRunner{
		results: [][]map[string]interface{}{
			{
				{"supplier_id": int64(5), "name": "Acme Corp", "contact_email": "ap@acme.example", "phone": "555-0100"},
			},
			{
				{"invoice_count": int64(3), "total_invoiced": 300.0, "total_paid": 100.0, "currency_code": "USD"},
				{"invoice_count": int64(2), "total_invoiced": 80.0, "total_paid": 80.0, "currency_code": "EUR"},
			},
			{
				{"po_count": int64(1), "total_po_amount": 500.0, "currency_code": "USD"},
			},
		},
	}
	tool := NewVendorSummaryTool(runner, testLogger())

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"vendor_id": float64(5),
	})
	require.NoError(t, err)

	require.Len(t, runner.queries, 3)
	for _, params := range runner.params {
		assert.Equal(t, []interface{}{5}, params)
	}

	assert.Contains(t, result.Text, "Vendor Summary for: Acme Corp")
	assert.Contains(t, result.Text, "Currency: USD")
	assert.Contains(t, result.Text, "Total Invoices: 3")
	assert.Contains(t, result.Text, "Total Invoiced: USD 300.00")
	assert.Contains(t, result.Text, "Total Paid: USD 100.00")
	assert.Contains(t, result.Text, "Outstanding: USD 200.00")

	assert.Contains(t, result.Text, "Currency: EUR")
	assert.Contains(t, result.Text, "Outstanding: EUR 0.00")

	assert.Contains(t, result.Text, "Total POs: 1")
	assert.Contains(t, result.Text, "Total Amount: USD 500.00")

	assert.Equal(t, 5, result.Metadata["vendor_id"])
}

func TestVendorSummaryEmptyAggregates(t *testing.T) {
	runner := &fakeRunner{
		results: [][]map[string]interface{}{
			{
				{"supplier_id": int64(9), "name": "New Vendor", "contact_email": nil, "phone": nil},
			},
		},
	}
	tool := NewVendorSummaryTool(runner, testLogger())

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"vendor_id": float64(9),
	})
	require.NoError(t, err)

	assert.Contains(t, result.Text, "No invoices found.")
	assert.Contains(t, result.Text, "No purchase orders found.")
}
