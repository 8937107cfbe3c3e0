package resources

import (
	"context"

	"github.com/finvops/aplookup-mcp/internal/tools"
)

// SchemaResource exposes the accounts payable table layout.
type SchemaResource struct {
	*BaseResource
}

// NewSchemaResource creates a new schema resource
func NewSchemaResource(runner tools.QueryRunner) *SchemaResource {
	return &SchemaResource{BaseResource: NewBaseResource(runner)}
}

// URI returns the resource URI
func (r *SchemaResource) URI() string {
	return "aplookup://schema"
}

// Name returns the resource name
func (r *SchemaResource) Name() string {
	return "Database Schema"
}

// Description returns the resource description
func (r *SchemaResource) Description() string {
	return "Column layout of the suppliers, invoices, and purchase order tables"
}

// MimeType returns the MIME type
func (r *SchemaResource) MimeType() string {
	return "application/json"
}

// GetContent returns the schema content
func (r *SchemaResource) GetContent(ctx context.Context) (interface{}, error) {
	query := `
	SELECT
	    table_name,
	    column_name,
	    data_type,
	    is_nullable
	FROM information_schema.columns
	WHERE table_schema = 'public'
	  AND table_name IN ('suppliers', 'invoices', 'purchase_orders')
	ORDER BY table_name, ordinal_position
`
	return r.query(ctx, query)
}
