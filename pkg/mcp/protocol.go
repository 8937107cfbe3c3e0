package mcp

import (
	"encoding/json"
	"fmt"
)

const ProtocolVersion = "2024-11-05"

// Standard JSON-RPC error codes
const (
	ErrCodeParseError     = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternalError  = -32603
)

// ParseRequest parses a JSON-RPC request
func ParseRequest(data []byte) (*JSONRPCRequest, error) {
	var req JSONRPCRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse JSON-RPC request: %w", err)
	}

	if req.JSONRPC != "2.0" {
		return nil, fmt.Errorf("invalid JSON-RPC version: %q", req.JSONRPC)
	}

	return &req, nil
}

// ValidateRequest validates a parsed JSON-RPC request
func ValidateRequest(req *JSONRPCRequest) error {
	if req.JSONRPC != "2.0" {
		return fmt.Errorf("invalid JSON-RPC version")
	}
	if req.Method == "" {
		return fmt.Errorf("method is required")
	}
	return nil
}

// CreateResponse creates a JSON-RPC success response
func CreateResponse(id json.RawMessage, result interface{}) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}

// CreateErrorResponse creates a JSON-RPC error response
func CreateErrorResponse(id json.RawMessage, code int, message string, data interface{}) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &JSONRPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// SerializeResponse serializes a JSON-RPC response to JSON
func SerializeResponse(resp *JSONRPCResponse) ([]byte, error) {
	return json.Marshal(resp)
}
