package builtin

import (
	"context"

	"github.com/finvops/aplookup-mcp/internal/logging"
	"github.com/finvops/aplookup-mcp/internal/middleware"
)

// ErrorHandlingMiddleware is the outermost error boundary: any error that
// escapes a handler becomes ordinary text content, so the protocol call
// itself never fails.
type ErrorHandlingMiddleware struct {
	logger *logging.Logger
}

// NewErrorHandlingMiddleware creates a new error handling middleware
func NewErrorHandlingMiddleware(logger *logging.Logger) *ErrorHandlingMiddleware {
	return &ErrorHandlingMiddleware{logger: logger}
}

func (m *ErrorHandlingMiddleware) Name() string  { return "error-handling" }
func (m *ErrorHandlingMiddleware) Order() int    { return 100 }
func (m *ErrorHandlingMiddleware) Enabled() bool { return true }

// Execute converts an escaping error into error content carrying the
// message in both the text and the metadata.
func (m *ErrorHandlingMiddleware) Execute(ctx context.Context, req *middleware.MCPRequest, next middleware.Handler) (*middleware.MCPResponse, error) {
	resp, err := next(ctx)
	if err == nil {
		return resp, nil
	}

	m.logger.Error("Unhandled error", err, map[string]interface{}{
		"method": req.Method,
	})

	failure := errorContent("Error: " + err.Error())
	failure.Metadata = map[string]interface{}{"error": err.Error()}
	return failure, nil
}
