package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finvops/aplookup-mcp/internal/metrics"
	"github.com/finvops/aplookup-mcp/pkg/mcp"
)

func (s *Server) setupResourceHandlers() {
	s.mcpServer.SetHandler("resources/list", s.handleListResources)
	s.mcpServer.SetHandler("resources/read", s.handleReadResource)
}

func (s *Server) handleListResources(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var out mcp.ListResourcesResponse
	for _, def := range s.resources.ListResources() {
		out.Resources = append(out.Resources, mcp.ResourceDefinition{
			URI:         def.URI,
			Name:        def.Name,
			Description: def.Description,
			MimeType:    def.MimeType,
		})
	}
	return out, nil
}

func (s *Server) handleReadResource(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req mcp.ReadResourceRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("failed to parse read resource request: %w", err)
	}

	resp, err := s.resources.HandleResource(ctx, req.URI)
	if err != nil {
		metrics.RecordResourceRead(req.URI, "error")
		return nil, fmt.Errorf("failed to read resource %s: %w", req.URI, err)
	}
	metrics.RecordResourceRead(req.URI, "success")

	var out mcp.ReadResourceResponse
	for _, content := range resp.Contents {
		out.Contents = append(out.Contents, mcp.ResourceContent{
			URI:      content.URI,
			MimeType: content.MimeType,
			Text:     content.Text,
		})
	}
	return out, nil
}
