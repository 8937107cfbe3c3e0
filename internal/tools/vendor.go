package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/finvops/aplookup-mcp/internal/logging"
)

// VendorLookupTool looks up vendor records by id, by name substring, or
// lists all vendors when no filter is given. The id filter wins when both
// are supplied.
type VendorLookupTool struct {
	*BaseTool
	runner QueryRunner
	logger *logging.Logger
}

// NewVendorLookupTool creates a new vendor lookup tool
func NewVendorLookupTool(runner QueryRunner, logger *logging.Logger) *VendorLookupTool {
	return &VendorLookupTool{
		BaseTool: NewBaseTool(
			"lookup_vendor",
			"Look up vendor/supplier information by name or ID. Returns vendor details including contact info and billing address.",
			map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"vendor_id": map[string]interface{}{
						"type":        "integer",
						"description": "The vendor's ID number",
					},
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Search for vendor by name (partial match supported)",
					},
				},
			},
		),
		runner: runner,
		logger: logger,
	}
}

const vendorColumns = `supplier_id, name, contact_email, phone,
		       billing_address, created_at, updated_at`

// Execute runs the vendor lookup
func (t *VendorLookupTool) Execute(ctx context.Context, params map[string]interface{}) (*ToolResult, error) {
	vendorID, hasID := IntArg(params, "vendor_id")
	name, hasName := StringArg(params, "name")

	var (
		results []map[string]interface{}
		err     error
	)

	switch {
	case hasID && vendorID != 0:
		query := fmt.Sprintf(`SELECT %s FROM suppliers WHERE supplier_id = $1`, vendorColumns)
		results, err = t.runner.Query(ctx, query, []interface{}{vendorID})
	case hasName && name != "":
		query := fmt.Sprintf(`SELECT %s FROM suppliers WHERE name ILIKE $1`, vendorColumns)
		results, err = t.runner.Query(ctx, query, []interface{}{"%" + name + "%"})
	default:
		query := fmt.Sprintf(`SELECT %s FROM suppliers ORDER BY name`, vendorColumns)
		results, err = t.runner.Query(ctx, query, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("vendor lookup failed: %w", err)
	}

	if len(results) == 0 {
		return Text("No vendors found."), nil
	}

	var out strings.Builder
	out.WriteString("Vendor Information:\n\n")
	for _, vendor := range results {
		fmt.Fprintf(&out, "ID: %s\n", FormatField(vendor["supplier_id"]))
		fmt.Fprintf(&out, "Name: %s\n", FormatField(vendor["name"]))
		fmt.Fprintf(&out, "Email: %s\n", FormatField(vendor["contact_email"]))
		fmt.Fprintf(&out, "Phone: %s\n", FormatField(vendor["phone"]))
		fmt.Fprintf(&out, "Billing Address: %s\n", FormatField(vendor["billing_address"]))
		out.WriteString(recordSeparator)
	}

	return TextWithMeta(out.String(), map[string]interface{}{"count": len(results)}), nil
}
