package builtin

import (
	"context"

	"github.com/finvops/aplookup-mcp/internal/middleware"
)

// ValidationMiddleware rejects structurally invalid requests before they
// reach a handler.
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

func (m *ValidationMiddleware) Name() string  { return "validation" }
func (m *ValidationMiddleware) Order() int    { return 1 }
func (m *ValidationMiddleware) Enabled() bool { return true }

// Execute checks the request shape and short-circuits with error content
// when it is unusable.
func (m *ValidationMiddleware) Execute(ctx context.Context, req *middleware.MCPRequest, next middleware.Handler) (*middleware.MCPResponse, error) {
	if req.Method == "" {
		return errorContent("Missing method in request"), nil
	}

	if req.Method == "tools/call" {
		name, _ := req.Params["name"].(string)
		if name == "" {
			return errorContent("Missing tool name in request"), nil
		}
	}

	return next(ctx)
}

func errorContent(text string) *middleware.MCPResponse {
	return &middleware.MCPResponse{
		Content: []middleware.ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}
