package server

import (
	"github.com/finvops/aplookup-mcp/internal/config"
	"github.com/finvops/aplookup-mcp/internal/tools"
)

// filterToolsByFeatures removes tools whose feature group is disabled in
// the configuration.
func (s *Server) filterToolsByFeatures(definitions []tools.ToolDefinition) []tools.ToolDefinition {
	features := s.config.GetFeaturesConfig()
	filtered := make([]tools.ToolDefinition, 0, len(definitions))

	for _, def := range definitions {
		if shouldIncludeTool(def.Name, features) {
			filtered = append(filtered, def)
		}
	}

	return filtered
}

// shouldIncludeTool maps tool names to feature flags. Tools with no flag
// are always included.
func shouldIncludeTool(toolName string, features *config.FeaturesConfig) bool {
	switch toolName {
	case "lookup_vendor":
		return features.Vendors.IsEnabled()
	case "lookup_invoice":
		return features.Invoices.IsEnabled()
	case "lookup_purchase_order":
		return features.PurchaseOrders.IsEnabled()
	case "query_amounts":
		return features.Amounts.IsEnabled()
	case "get_vendor_summary":
		return features.Summaries.IsEnabled()
	}
	return true
}
