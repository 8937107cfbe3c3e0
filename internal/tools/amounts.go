package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/finvops/aplookup-mcp/internal/database"
	"github.com/finvops/aplookup-mcp/internal/logging"
)

// AmountsQueryTool queries invoice amounts and balances with optional
// filters. All filters are optional; with none supplied every invoice
// matches.
type AmountsQueryTool struct {
	*BaseTool
	runner QueryRunner
	logger *logging.Logger
}

// NewAmountsQueryTool creates a new amounts query tool
func NewAmountsQueryTool(runner QueryRunner, logger *logging.Logger) *AmountsQueryTool {
	return &AmountsQueryTool{
		BaseTool: NewBaseTool(
			"query_amounts",
			"Query financial information including invoice amounts, payment amounts, and balances. Supports filtering by vendor, date range, and status.",
			map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"vendor_id": map[string]interface{}{
						"type":        "integer",
						"description": "Filter by vendor ID",
					},
					"min_amount": map[string]interface{}{
						"type":        "number",
						"description": "Minimum amount to filter",
					},
					"max_amount": map[string]interface{}{
						"type":        "number",
						"description": "Maximum amount to filter",
					},
					"status": map[string]interface{}{
						"type":        "string",
						"description": "Filter by status (e.g., PAID, APPROVED, DRAFT)",
					},
				},
			},
		),
		runner: runner,
		logger: logger,
	}
}

// Execute runs the amounts query
func (t *AmountsQueryTool) Execute(ctx context.Context, params map[string]interface{}) (*ToolResult, error) {
	cond := database.NewConditionSet()

	// Filter order is fixed: vendor, min, max, status.
	if vendorID, ok := IntArg(params, "vendor_id"); ok && vendorID != 0 {
		cond.Add("i.supplier_id = $%d", vendorID)
	}
	if minAmount, ok := FloatArg(params, "min_amount"); ok {
		cond.Add("i.total_amount >= $%d", minAmount)
	}
	if maxAmount, ok := FloatArg(params, "max_amount"); ok {
		cond.Add("i.total_amount <= $%d", maxAmount)
	}
	if status, ok := StringArg(params, "status"); ok && status != "" {
		cond.Add("i.status = $%d", status)
	}

	query := fmt.Sprintf(`
	SELECT i.invoice_number, i.invoice_date, i.total_amount,
	       i.currency_code, i.status, s.name AS supplier_name,
	       ib.amount_paid, ib.balance_due
	FROM invoices i
	JOIN suppliers s ON i.supplier_id = s.supplier_id
	LEFT JOIN invoice_balances ib ON i.invoice_id = ib.invoice_id
	WHERE %s
	ORDER BY i.invoice_date DESC
`, cond.WhereClause())

	results, err := t.runner.Query(ctx, query, cond.Params())
	if err != nil {
		return nil, fmt.Errorf("amounts query failed: %w", err)
	}

	if len(results) == 0 {
		return Text("No invoices found matching criteria."), nil
	}

	var out strings.Builder
	out.WriteString("Financial Query Results:\n\n")

	// Only USD rows contribute to the grand total; summing across
	// currencies would be meaningless.
	var usdTotal float64
	for _, inv := range results {
		currency := FormatField(inv["currency_code"])
		balance := inv["balance_due"]
		if balance == nil {
			balance = inv["total_amount"]
		}

		fmt.Fprintf(&out, "Invoice: %s\n", FormatField(inv["invoice_number"]))
		fmt.Fprintf(&out, "Supplier: %s\n", FormatField(inv["supplier_name"]))
		fmt.Fprintf(&out, "Date: %s\n", FormatDate(inv["invoice_date"]))
		fmt.Fprintf(&out, "Total: %s %s\n", currency, FormatAmount(inv["total_amount"]))
		fmt.Fprintf(&out, "Paid: %s %s\n", currency, FormatAmount(inv["amount_paid"]))
		fmt.Fprintf(&out, "Balance Due: %s %s\n", currency, FormatAmount(balance))
		fmt.Fprintf(&out, "Status: %s\n", FormatField(inv["status"]))
		out.WriteString(recordSeparator)

		if currency == "USD" {
			if total, ok := NumericValue(inv["total_amount"]); ok {
				usdTotal += total
			}
		}
	}

	fmt.Fprintf(&out, "\nTotal (USD only): $%.2f\n", usdTotal)

	return TextWithMeta(out.String(), map[string]interface{}{"count": len(results)}), nil
}
