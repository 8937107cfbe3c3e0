package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/finvops/aplookup-mcp/internal/database"
	"github.com/finvops/aplookup-mcp/internal/logging"
)

// InvoiceLookupTool looks up invoices by one or more invoice numbers.
type InvoiceLookupTool struct {
	*BaseTool
	runner QueryRunner
	logger *logging.Logger
}

// NewInvoiceLookupTool creates a new invoice lookup tool
func NewInvoiceLookupTool(runner QueryRunner, logger *logging.Logger) *InvoiceLookupTool {
	return &InvoiceLookupTool{
		BaseTool: NewBaseTool(
			"lookup_invoice",
			"Look up invoice information by invoice number(s). Can handle single invoice or list of invoice numbers. Returns invoice details including amounts, dates, and status.",
			map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"invoice_numbers": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "List of invoice numbers to look up",
					},
				},
				"required": []interface{}{"invoice_numbers"},
			},
		),
		runner: runner,
		logger: logger,
	}
}

const invoiceLookupBase = `
	SELECT i.invoice_id, i.invoice_number, i.invoice_date, i.due_date,
	       i.currency_code, i.status, i.subtotal_amount, i.tax_amount,
	       i.total_amount, s.name AS supplier_name, s.supplier_id,
	       po.po_number
	FROM invoices i
	JOIN suppliers s ON i.supplier_id = s.supplier_id
	LEFT JOIN purchase_orders po ON i.po_id = po.po_id
	WHERE i.invoice_number IN ({placeholders})
	ORDER BY i.invoice_date DESC
`

// Execute runs the invoice lookup
func (t *InvoiceLookupTool) Execute(ctx context.Context, params map[string]interface{}) (*ToolResult, error) {
	invoiceNumbers, _ := StringSliceArg(params, "invoice_numbers")
	if len(invoiceNumbers) == 0 {
		return Text("No invoice numbers provided."), nil
	}

	query, queryParams, err := database.BuildInClause(invoiceLookupBase, invoiceNumbers)
	if err != nil {
		return nil, err
	}

	results, err := t.runner.Query(ctx, query, queryParams)
	if err != nil {
		return nil, fmt.Errorf("invoice lookup failed: %w", err)
	}

	if len(results) == 0 {
		return Text("No invoices found."), nil
	}

	var out strings.Builder
	out.WriteString("Invoice Information:\n\n")
	for _, inv := range results {
		currency := FormatField(inv["currency_code"])
		fmt.Fprintf(&out, "Invoice Number: %s\n", FormatField(inv["invoice_number"]))
		fmt.Fprintf(&out, "Supplier: %s (ID: %s)\n", FormatField(inv["supplier_name"]), FormatField(inv["supplier_id"]))
		fmt.Fprintf(&out, "PO Number: %s\n", FormatField(inv["po_number"]))
		fmt.Fprintf(&out, "Invoice Date: %s\n", FormatDate(inv["invoice_date"]))
		fmt.Fprintf(&out, "Due Date: %s\n", FormatDate(inv["due_date"]))
		fmt.Fprintf(&out, "Status: %s\n", FormatField(inv["status"]))
		fmt.Fprintf(&out, "Subtotal: %s %s\n", currency, FormatAmount(inv["subtotal_amount"]))
		fmt.Fprintf(&out, "Tax: %s %s\n", currency, FormatAmount(inv["tax_amount"]))
		fmt.Fprintf(&out, "Total Amount: %s %s\n", currency, FormatAmount(inv["total_amount"]))
		out.WriteString(recordSeparator)
	}

	return TextWithMeta(out.String(), map[string]interface{}{"count": len(results)}), nil
}
