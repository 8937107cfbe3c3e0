package builtin

import (
	"context"
	"time"

	"github.com/finvops/aplookup-mcp/internal/logging"
	"github.com/finvops/aplookup-mcp/internal/middleware"
	"github.com/google/uuid"
)

// LoggingMiddleware logs requests and responses, tagging each call with a
// generated request id.
type LoggingMiddleware struct {
	logger                *logging.Logger
	enableRequestLogging  bool
	enableResponseLogging bool
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(logger *logging.Logger, enableRequest, enableResponse bool) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger:                logger,
		enableRequestLogging:  enableRequest,
		enableResponseLogging: enableResponse,
	}
}

// Name returns the middleware name
func (m *LoggingMiddleware) Name() string {
	return "logging"
}

// Order returns the execution order
func (m *LoggingMiddleware) Order() int {
	return 2
}

// Enabled returns whether the middleware is enabled
func (m *LoggingMiddleware) Enabled() bool {
	return true
}

// Execute executes the middleware
func (m *LoggingMiddleware) Execute(ctx context.Context, req *middleware.MCPRequest, next middleware.Handler) (*middleware.MCPResponse, error) {
	requestID := uuid.New().String()
	logger := m.logger.Child(map[string]interface{}{"request_id": requestID})
	start := time.Now()

	if m.enableRequestLogging {
		logger.Info("Request", map[string]interface{}{
			"method": req.Method,
			"params": req.Params,
		})
	}

	resp, err := next(ctx)
	duration := time.Since(start)

	if err != nil {
		logger.Error("Request failed", err, map[string]interface{}{
			"method":   req.Method,
			"duration": duration.String(),
		})
		return nil, err
	}

	if m.enableResponseLogging {
		logger.Info("Response", map[string]interface{}{
			"method":   req.Method,
			"duration": duration.String(),
			"success":  !resp.IsError,
		})
	}

	return resp, nil
}
