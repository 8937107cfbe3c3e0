package resources

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/finvops/aplookup-mcp/internal/tools"
)

// Resource is the interface that all resources must implement
type Resource interface {
	URI() string
	Name() string
	Description() string
	MimeType() string
	GetContent(ctx context.Context) (interface{}, error)
}

// BaseResource provides query access for resources
type BaseResource struct {
	runner tools.QueryRunner
}

// NewBaseResource creates a new base resource
func NewBaseResource(runner tools.QueryRunner) *BaseResource {
	return &BaseResource{runner: runner}
}

func (r *BaseResource) query(ctx context.Context, query string) ([]map[string]interface{}, error) {
	return r.runner.Query(ctx, query, nil)
}

// Manager manages all resources
type Manager struct {
	resources map[string]Resource
}

// NewManager creates a new resource manager with the built-in resources
// registered.
func NewManager(runner tools.QueryRunner) *Manager {
	m := &Manager{
		resources: make(map[string]Resource),
	}

	m.Register(NewSchemaResource(runner))
	m.Register(NewTableStatsResource(runner))
	m.Register(NewOpenBalancesResource(runner))

	return m
}

// Register registers a resource
func (m *Manager) Register(resource Resource) {
	m.resources[resource.URI()] = resource
}

// HandleResource handles a resource read request
func (m *Manager) HandleResource(ctx context.Context, uri string) (*ReadResourceResponse, error) {
	resource, exists := m.resources[uri]
	if !exists {
		return nil, &ResourceNotFoundError{URI: uri}
	}

	content, err := resource.GetContent(ctx)
	if err != nil {
		return nil, err
	}

	contentJSON, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, err
	}

	return &ReadResourceResponse{
		Contents: []ResourceContent{
			{
				URI:      uri,
				MimeType: resource.MimeType(),
				Text:     string(contentJSON),
			},
		},
	}, nil
}

// ListResources returns all available resource definitions, sorted by URI
// for reproducible listings.
func (m *Manager) ListResources() []ResourceDefinition {
	definitions := make([]ResourceDefinition, 0, len(m.resources))
	for _, resource := range m.resources {
		definitions = append(definitions, ResourceDefinition{
			URI:         resource.URI(),
			Name:        resource.Name(),
			Description: resource.Description(),
			MimeType:    resource.MimeType(),
		})
	}
	sort.Slice(definitions, func(i, j int) bool {
		return definitions[i].URI < definitions[j].URI
	})
	return definitions
}

// ResourceDefinition represents a resource definition
type ResourceDefinition struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mimeType"`
}

// ReadResourceResponse represents a resource read response
type ReadResourceResponse struct {
	Contents []ResourceContent `json:"contents"`
}

// ResourceContent represents resource content
type ResourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

// ResourceNotFoundError is returned when a resource is not found
type ResourceNotFoundError struct {
	URI string
}

func (e *ResourceNotFoundError) Error() string {
	return "resource not found: " + e.URI
}
