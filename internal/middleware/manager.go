package middleware

import (
	"context"
	"sync"

	"github.com/finvops/aplookup-mcp/internal/logging"
)

// Manager holds the registered middleware and builds a chain per call, so
// registration order never matters and late registration is safe.
type Manager struct {
	middlewares []Middleware
	mu          sync.RWMutex
	logger      *logging.Logger
}

// NewManager creates an empty middleware manager.
func NewManager(logger *logging.Logger) *Manager {
	return &Manager{logger: logger}
}

// Register adds a middleware to the set.
func (m *Manager) Register(mw Middleware) {
	m.mu.Lock()
	m.middlewares = append(m.middlewares, mw)
	m.mu.Unlock()

	m.logger.Debug("Registered middleware", map[string]interface{}{
		"name":  mw.Name(),
		"order": mw.Order(),
	})
}

// Execute runs handler inside the full middleware chain.
func (m *Manager) Execute(ctx context.Context, req *MCPRequest, handler Handler) (*MCPResponse, error) {
	m.mu.RLock()
	chain := NewChain(m.middlewares)
	m.mu.RUnlock()

	return chain.Execute(ctx, req, handler)
}
