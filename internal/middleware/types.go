package middleware

import "context"

// MCPRequest is the view of a protocol call that middleware can inspect.
type MCPRequest struct {
	Method   string                 `json:"method"`
	Params   map[string]interface{} `json:"params,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// MCPResponse carries the content blocks a call produced. IsError marks
// business failures that still complete the protocol call.
type MCPResponse struct {
	Content  []ContentBlock         `json:"content,omitempty"`
	IsError  bool                   `json:"isError,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// ContentBlock is one typed piece of response content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Handler produces the response for a request.
type Handler func(ctx context.Context) (*MCPResponse, error)

// Middleware wraps a Handler. Lower Order runs earlier; a disabled
// middleware is skipped without affecting the rest of the chain.
type Middleware interface {
	Name() string
	Order() int
	Enabled() bool
	Execute(ctx context.Context, req *MCPRequest, next Handler) (*MCPResponse, error)
}
