package tools

import (
	"fmt"
	"sort"
	"sync"

	"github.com/finvops/aplookup-mcp/internal/logging"
)

// ToolDefinition represents a tool's definition for MCP
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Registry manages tool registration and lookup. Definitions are pure
// metadata and never touch the database.
type Registry struct {
	tools       map[string]Tool
	definitions map[string]ToolDefinition
	mu          sync.RWMutex
	logger      *logging.Logger
}

// NewRegistry creates a new tool registry
func NewRegistry(logger *logging.Logger) *Registry {
	return &Registry{
		tools:       make(map[string]Tool),
		definitions: make(map[string]ToolDefinition),
		logger:      logger,
	}
}

// Register registers a tool
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tools[tool.Name()] = tool
	r.definitions[tool.Name()] = ToolDefinition{
		Name:        tool.Name(),
		Description: tool.Description(),
		InputSchema: tool.InputSchema(),
	}
	r.logger.Debug(fmt.Sprintf("Registered tool: %s", tool.Name()), nil)
}

// GetTool retrieves a tool by name, or nil when unknown
func (r *Registry) GetTool(name string) Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// HasTool checks if a tool exists
func (r *Registry) HasTool(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.tools[name]
	return exists
}

// GetAllDefinitions returns all tool definitions, sorted by name for
// reproducible listings.
func (r *Registry) GetAllDefinitions() []ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definitions := make([]ToolDefinition, 0, len(r.definitions))
	for _, def := range r.definitions {
		definitions = append(definitions, def)
	}
	sort.Slice(definitions, func(i, j int) bool {
		return definitions[i].Name < definitions[j].Name
	})
	return definitions
}

// GetCount returns the number of registered tools
func (r *Registry) GetCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
