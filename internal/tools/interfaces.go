package tools

import "context"

// Tool is the interface that all tools must implement
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]interface{}
	Execute(ctx context.Context, params map[string]interface{}) (*ToolResult, error)
}

// QueryRunner executes a parameterized SELECT and returns rows as
// named-field maps. Tools never see the driver directly, which keeps them
// testable without a database.
type QueryRunner interface {
	Query(ctx context.Context, query string, params []interface{}) ([]map[string]interface{}, error)
}
