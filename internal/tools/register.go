package tools

import (
	"github.com/finvops/aplookup-mcp/internal/logging"
)

// RegisterAll registers every lookup tool with the registry. The runner may
// be nil when only definitions are needed, e.g. for offline listings.
func RegisterAll(registry *Registry, runner QueryRunner, logger *logging.Logger) {
	registry.Register(NewVendorLookupTool(runner, logger))
	registry.Register(NewInvoiceLookupTool(runner, logger))
	registry.Register(NewPurchaseOrderLookupTool(runner, logger))
	registry.Register(NewAmountsQueryTool(runner, logger))
	registry.Register(NewVendorSummaryTool(runner, logger))
}
