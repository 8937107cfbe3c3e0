package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/finvops/aplookup-mcp/internal/logging"
)

// VendorSummaryTool reports a vendor's invoice and purchase order totals,
// grouped by currency. It issues three sequential statements (vendor
// identity, invoice aggregate, PO aggregate) with no transaction tying them
// together.
type VendorSummaryTool struct {
	*BaseTool
	runner QueryRunner
	logger *logging.Logger
}

// NewVendorSummaryTool creates a new vendor summary tool
func NewVendorSummaryTool(runner QueryRunner, logger *logging.Logger) *VendorSummaryTool {
	return &VendorSummaryTool{
		BaseTool: NewBaseTool(
			"get_vendor_summary",
			"Get summary information for a vendor including total invoices, total amounts, and payment status.",
			map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"vendor_id": map[string]interface{}{
						"type":        "integer",
						"description": "The vendor's ID number",
					},
				},
				"required": []interface{}{"vendor_id"},
			},
		),
		runner: runner,
		logger: logger,
	}
}

// Execute runs the vendor summary
func (t *VendorSummaryTool) Execute(ctx context.Context, params map[string]interface{}) (*ToolResult, error) {
	vendorID, ok := IntArg(params, "vendor_id")
	if !ok || vendorID == 0 {
		return Text("Vendor ID is required."), nil
	}

	vendorQuery := `
	SELECT supplier_id, name, contact_email, phone
	FROM suppliers
	WHERE supplier_id = $1
`
	vendorResults, err := t.runner.Query(ctx, vendorQuery, []interface{}{vendorID})
	if err != nil {
		return nil, fmt.Errorf("vendor summary failed: %w", err)
	}
	if len(vendorResults) == 0 {
		return Text("Vendor not found."), nil
	}
	vendor := vendorResults[0]

	invoiceQuery := `
	SELECT
	    COUNT(*) AS invoice_count,
	    SUM(total_amount) AS total_invoiced,
	    SUM(CASE WHEN status = 'PAID' THEN total_amount ELSE 0 END) AS total_paid,
	    currency_code
	FROM invoices
	WHERE supplier_id = $1
	GROUP BY currency_code
`
	invoiceStats, err := t.runner.Query(ctx, invoiceQuery, []interface{}{vendorID})
	if err != nil {
		return nil, fmt.Errorf("vendor summary failed: %w", err)
	}

	poQuery := `
	SELECT
	    COUNT(*) AS po_count,
	    SUM(total_amount) AS total_po_amount,
	    currency_code
	FROM purchase_orders
	WHERE supplier_id = $1
	GROUP BY currency_code
`
	poStats, err := t.runner.Query(ctx, poQuery, []interface{}{vendorID})
	if err != nil {
		return nil, fmt.Errorf("vendor summary failed: %w", err)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Vendor Summary for: %s\n", FormatField(vendor["name"]))
	fmt.Fprintf(&out, "ID: %s\n", FormatField(vendor["supplier_id"]))
	fmt.Fprintf(&out, "Email: %s\n", FormatField(vendor["contact_email"]))
	fmt.Fprintf(&out, "Phone: %s\n", FormatField(vendor["phone"]))
	out.WriteString(headerSeparator)
	out.WriteString("\n")

	out.WriteString("Invoice Summary:\n")
	if len(invoiceStats) > 0 {
		for _, stat := range invoiceStats {
			currency := FormatField(stat["currency_code"])
			invoiced, _ := NumericValue(stat["total_invoiced"])
			paid, _ := NumericValue(stat["total_paid"])

			fmt.Fprintf(&out, "  Currency: %s\n", currency)
			fmt.Fprintf(&out, "  Total Invoices: %d\n", CountValue(stat["invoice_count"]))
			fmt.Fprintf(&out, "  Total Invoiced: %s %s\n", currency, FormatAmount(stat["total_invoiced"]))
			fmt.Fprintf(&out, "  Total Paid: %s %s\n", currency, FormatAmount(stat["total_paid"]))
			fmt.Fprintf(&out, "  Outstanding: %s %.2f\n", currency, invoiced-paid)
		}
	} else {
		out.WriteString("  No invoices found.\n")
	}

	out.WriteString("\nPurchase Order Summary:\n")
	if len(poStats) > 0 {
		for _, stat := range poStats {
			currency := FormatField(stat["currency_code"])
			fmt.Fprintf(&out, "  Currency: %s\n", currency)
			fmt.Fprintf(&out, "  Total POs: %d\n", CountValue(stat["po_count"]))
			fmt.Fprintf(&out, "  Total Amount: %s %s\n", currency, FormatAmount(stat["total_po_amount"]))
		}
	} else {
		out.WriteString("  No purchase orders found.\n")
	}

	return TextWithMeta(out.String(), map[string]interface{}{"vendor_id": vendorID}), nil
}
