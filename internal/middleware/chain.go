package middleware

import (
	"context"
	"sort"
)

// Chain is an ordered set of middleware composed around a final handler.
type Chain struct {
	middlewares []Middleware
}

// NewChain creates a chain sorted by ascending Order.
func NewChain(middlewares []Middleware) *Chain {
	sorted := make([]Middleware, len(middlewares))
	copy(sorted, middlewares)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})
	return &Chain{middlewares: sorted}
}

// Execute composes the enabled middleware around finalHandler, innermost
// last, and runs the result.
func (c *Chain) Execute(ctx context.Context, req *MCPRequest, finalHandler Handler) (*MCPResponse, error) {
	next := finalHandler
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		mw := c.middlewares[i]
		if !mw.Enabled() {
			continue
		}
		inner := next
		next = func(ctx context.Context) (*MCPResponse, error) {
			return mw.Execute(ctx, req, inner)
		}
	}
	return next(ctx)
}
