package builtin

import (
	"context"
	"fmt"
	"time"

	"github.com/finvops/aplookup-mcp/internal/logging"
	"github.com/finvops/aplookup-mcp/internal/middleware"
)

// TimeoutMiddleware bounds the time a single call may take.
type TimeoutMiddleware struct {
	timeout time.Duration
	logger  *logging.Logger
}

// NewTimeoutMiddleware creates a new timeout middleware
func NewTimeoutMiddleware(timeout time.Duration, logger *logging.Logger) *TimeoutMiddleware {
	return &TimeoutMiddleware{timeout: timeout, logger: logger}
}

func (m *TimeoutMiddleware) Name() string  { return "timeout" }
func (m *TimeoutMiddleware) Order() int    { return 3 }
func (m *TimeoutMiddleware) Enabled() bool { return true }

type callResult struct {
	resp *middleware.MCPResponse
	err  error
}

// Execute runs next under a deadline. A timeout becomes error content, not
// a protocol failure.
func (m *TimeoutMiddleware) Execute(ctx context.Context, req *middleware.MCPRequest, next middleware.Handler) (*middleware.MCPResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	results := make(chan callResult, 1)
	go func() {
		resp, err := next(ctx)
		results <- callResult{resp: resp, err: err}
	}()

	select {
	case r := <-results:
		return r.resp, r.err
	case <-ctx.Done():
		m.logger.Warn("Request timeout", map[string]interface{}{
			"method":  req.Method,
			"timeout": m.timeout.String(),
		})
		return errorContent(fmt.Sprintf("Request timeout after %v", m.timeout)), nil
	}
}
