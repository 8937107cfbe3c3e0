package resources

import (
	"context"

	"github.com/finvops/aplookup-mcp/internal/tools"
)

// TableStatsResource reports row counts for the lookup tables.
type TableStatsResource struct {
	*BaseResource
}

// NewTableStatsResource creates a new table stats resource
func NewTableStatsResource(runner tools.QueryRunner) *TableStatsResource {
	return &TableStatsResource{BaseResource: NewBaseResource(runner)}
}

// URI returns the resource URI
func (r *TableStatsResource) URI() string {
	return "aplookup://stats"
}

// Name returns the resource name
func (r *TableStatsResource) Name() string {
	return "Table Statistics"
}

// Description returns the resource description
func (r *TableStatsResource) Description() string {
	return "Row counts for suppliers, invoices, and purchase orders"
}

// MimeType returns the MIME type
func (r *TableStatsResource) MimeType() string {
	return "application/json"
}

// GetContent returns the stats content
func (r *TableStatsResource) GetContent(ctx context.Context) (interface{}, error) {
	query := `
	SELECT
	    (SELECT COUNT(*) FROM suppliers) AS supplier_count,
	    (SELECT COUNT(*) FROM invoices) AS invoice_count,
	    (SELECT COUNT(*) FROM purchase_orders) AS purchase_order_count
`
	return r.query(ctx, query)
}

// OpenBalancesResource exposes the per-supplier open balance view.
type OpenBalancesResource struct {
	*BaseResource
}

// NewOpenBalancesResource creates a new open balances resource
func NewOpenBalancesResource(runner tools.QueryRunner) *OpenBalancesResource {
	return &OpenBalancesResource{BaseResource: NewBaseResource(runner)}
}

// URI returns the resource URI
func (r *OpenBalancesResource) URI() string {
	return "aplookup://open_balances"
}

// Name returns the resource name
func (r *OpenBalancesResource) Name() string {
	return "Supplier Open Balances"
}

// Description returns the resource description
func (r *OpenBalancesResource) Description() string {
	return "Outstanding balance per supplier from the supplier_open_balances view"
}

// MimeType returns the MIME type
func (r *OpenBalancesResource) MimeType() string {
	return "application/json"
}

// GetContent returns the open balances content
func (r *OpenBalancesResource) GetContent(ctx context.Context) (interface{}, error) {
	return r.query(ctx, `SELECT * FROM supplier_open_balances`)
}
