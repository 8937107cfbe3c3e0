package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// HandlerFunc handles one MCP method.
type HandlerFunc func(ctx context.Context, params json.RawMessage) (interface{}, error)

// Server is an MCP protocol server over a stdio transport.
type Server struct {
	transport *StdioTransport
	handlers  map[string]HandlerFunc
	info      ServerInfo
	caps      ServerCapabilities
}

// NewServer creates a new MCP server.
func NewServer(name, version string) *Server {
	return &Server{
		transport: NewStdioTransport(),
		handlers:  make(map[string]HandlerFunc),
		info: ServerInfo{
			Name:    name,
			Version: version,
		},
	}
}

// SetTransport replaces the transport, used by tests to run in memory.
func (s *Server) SetTransport(t *StdioTransport) {
	s.transport = t
}

// SetHandler registers a handler for a method.
func (s *Server) SetHandler(method string, handler HandlerFunc) {
	s.handlers[method] = handler
}

// SetCapabilities sets the capabilities advertised during initialize.
func (s *Server) SetCapabilities(caps ServerCapabilities) {
	s.caps = caps
}

func (s *Server) handleInitialize(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req InitializeRequest
	if len(params) > 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, fmt.Errorf("failed to parse initialize request: %w", err)
		}
	}

	return InitializeResponse{
		ProtocolVersion: ProtocolVersion,
		Capabilities:    s.caps,
		ServerInfo:      s.info,
	}, nil
}

func (s *Server) handlePing(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return struct{}{}, nil
}

// Run processes requests until the stream closes or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.SetHandler("initialize", s.handleInitialize)
	s.SetHandler("ping", s.handlePing)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		req, err := s.transport.ReadMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.transport.WriteError(err)
			continue
		}

		// Notifications get no response.
		if req.IsNotification() {
			continue
		}

		resp := s.handleRequest(ctx, req)
		if err := s.transport.WriteMessage(resp); err != nil {
			s.transport.WriteError(err)
		}
	}
}

func (s *Server) handleRequest(ctx context.Context, req *JSONRPCRequest) *JSONRPCResponse {
	if err := ValidateRequest(req); err != nil {
		return CreateErrorResponse(req.ID, ErrCodeInvalidRequest, err.Error(), nil)
	}

	handler, exists := s.handlers[req.Method]
	if !exists {
		return CreateErrorResponse(req.ID, ErrCodeMethodNotFound,
			fmt.Sprintf("method not found: %s", req.Method), nil)
	}

	result, err := handler(ctx, req.Params)
	if err != nil {
		return CreateErrorResponse(req.ID, ErrCodeInternalError, err.Error(), nil)
	}

	return CreateResponse(req.ID, result)
}
