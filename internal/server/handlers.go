package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/finvops/aplookup-mcp/internal/metrics"
	"github.com/finvops/aplookup-mcp/internal/middleware"
	"github.com/finvops/aplookup-mcp/pkg/mcp"
)

// setupToolHandlers sets up tool-related MCP handlers
func (s *Server) setupToolHandlers() {
	s.mcpServer.SetHandler("tools/list", s.handleListTools)
	s.mcpServer.SetHandler("tools/call", s.handleCallTool)
}

// handleListTools handles the tools/list request
func (s *Server) handleListTools(ctx context.Context, params json.RawMessage) (interface{}, error) {
	definitions := s.toolRegistry.GetAllDefinitions()
	filtered := s.filterToolsByFeatures(definitions)

	mcpTools := make([]mcp.ToolDefinition, len(filtered))
	for i, def := range filtered {
		mcpTools[i] = mcp.ToolDefinition{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}
	}

	return mcp.ListToolsResponse{Tools: mcpTools}, nil
}

// handleCallTool handles the tools/call request
func (s *Server) handleCallTool(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req mcp.CallToolRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("failed to parse call tool request: %w", err)
	}

	mcpReq := &middleware.MCPRequest{
		Method: "tools/call",
		Params: map[string]interface{}{
			"name":      req.Name,
			"arguments": req.Arguments,
		},
	}

	resp, err := s.middleware.Execute(ctx, mcpReq, func(ctx context.Context) (*middleware.MCPResponse, error) {
		return s.executeTool(ctx, req.Name, req.Arguments)
	})
	if err != nil {
		return nil, err
	}

	content := make([]mcp.ContentBlock, len(resp.Content))
	for i, block := range resp.Content {
		content[i] = mcp.ContentBlock{Type: block.Type, Text: block.Text}
	}

	return mcp.ToolResult{
		Content:  content,
		IsError:  resp.IsError,
		Metadata: resp.Metadata,
	}, nil
}

// executeTool dispatches a tool call. Every failure mode surfaces as plain
// text content prefixed "Error: " rather than a protocol-level fault.
func (s *Server) executeTool(ctx context.Context, toolName string, arguments map[string]interface{}) (*middleware.MCPResponse, error) {
	if arguments == nil {
		arguments = map[string]interface{}{}
	}

	tool := s.toolRegistry.GetTool(toolName)
	if tool == nil {
		metrics.RecordToolCall(toolName, "unknown", 0)
		return &middleware.MCPResponse{
			Content: []middleware.ContentBlock{
				{Type: "text", Text: fmt.Sprintf("Error: Unknown tool: %s", toolName)},
			},
			IsError: true,
		}, nil
	}

	start := time.Now()
	result, err := tool.Execute(ctx, arguments)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordToolCall(toolName, "error", duration)
		s.logger.Error("Tool execution failed", err, map[string]interface{}{
			"tool": toolName,
		})
		return &middleware.MCPResponse{
			Content: []middleware.ContentBlock{
				{Type: "text", Text: fmt.Sprintf("Error: %v", err)},
			},
			IsError: true,
		}, nil
	}

	metrics.RecordToolCall(toolName, "success", duration)

	return &middleware.MCPResponse{
		Content: []middleware.ContentBlock{
			{Type: "text", Text: result.Text},
		},
		Metadata: result.Metadata,
	}, nil
}
