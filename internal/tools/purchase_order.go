package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/finvops/aplookup-mcp/internal/database"
	"github.com/finvops/aplookup-mcp/internal/logging"
)

// PurchaseOrderLookupTool looks up purchase orders by one or more PO numbers.
type PurchaseOrderLookupTool struct {
	*BaseTool
	runner QueryRunner
	logger *logging.Logger
}

// NewPurchaseOrderLookupTool creates a new purchase order lookup tool
func NewPurchaseOrderLookupTool(runner QueryRunner, logger *logging.Logger) *PurchaseOrderLookupTool {
	return &PurchaseOrderLookupTool{
		BaseTool: NewBaseTool(
			"lookup_purchase_order",
			"Look up purchase order information by PO number(s). Can handle single PO or list of PO numbers. Returns PO details including amounts, dates, and status.",
			map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"po_numbers": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "List of purchase order numbers to look up",
					},
				},
				"required": []interface{}{"po_numbers"},
			},
		),
		runner: runner,
		logger: logger,
	}
}

const purchaseOrderLookupBase = `
	SELECT po.po_id, po.po_number, po.order_date, po.currency_code,
	       po.status, po.total_amount, s.name AS supplier_name, s.supplier_id
	FROM purchase_orders po
	JOIN suppliers s ON po.supplier_id = s.supplier_id
	WHERE po.po_number IN ({placeholders})
	ORDER BY po.order_date DESC
`

// Execute runs the purchase order lookup
func (t *PurchaseOrderLookupTool) Execute(ctx context.Context, params map[string]interface{}) (*ToolResult, error) {
	poNumbers, _ := StringSliceArg(params, "po_numbers")
	if len(poNumbers) == 0 {
		return Text("No purchase order numbers provided."), nil
	}

	query, queryParams, err := database.BuildInClause(purchaseOrderLookupBase, poNumbers)
	if err != nil {
		return nil, err
	}

	results, err := t.runner.Query(ctx, query, queryParams)
	if err != nil {
		return nil, fmt.Errorf("purchase order lookup failed: %w", err)
	}

	if len(results) == 0 {
		return Text("No purchase orders found."), nil
	}

	var out strings.Builder
	out.WriteString("Purchase Order Information:\n\n")
	for _, po := range results {
		fmt.Fprintf(&out, "PO Number: %s\n", FormatField(po["po_number"]))
		fmt.Fprintf(&out, "Supplier: %s (ID: %s)\n", FormatField(po["supplier_name"]), FormatField(po["supplier_id"]))
		fmt.Fprintf(&out, "Order Date: %s\n", FormatDate(po["order_date"]))
		fmt.Fprintf(&out, "Status: %s\n", FormatField(po["status"]))
		fmt.Fprintf(&out, "Total Amount: %s %s\n", FormatField(po["currency_code"]), FormatAmount(po["total_amount"]))
		out.WriteString(recordSeparator)
	}

	return TextWithMeta(out.String(), map[string]interface{}{"count": len(results)}), nil
}
