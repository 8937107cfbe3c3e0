package builtin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finvops/aplookup-mcp/internal/config"
	"github.com/finvops/aplookup-mcp/internal/logging"
	"github.com/finvops/aplookup-mcp/internal/middleware"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(&config.LoggingConfig{Level: "error", Format: "json"})
}

func TestErrorHandlingConvertsErrorToContent(t *testing.T) {
	mw := NewErrorHandlingMiddleware(testLogger())

	resp, err := mw.Execute(context.Background(), &middleware.MCPRequest{Method: "tools/call"}, func(ctx context.Context) (*middleware.MCPResponse, error) {
		return nil, errors.New("boom")
	})
	require.NoError(t, err)

	assert.True(t, resp.IsError)
	require.Len(t, resp.Content, 1)
	assert.Equal(t, "Error: boom", resp.Content[0].Text)
	assert.Equal(t, "boom", resp.Metadata["error"])
}

func TestErrorHandlingPassesThroughSuccess(t *testing.T) {
	mw := NewErrorHandlingMiddleware(testLogger())

	resp, err := mw.Execute(context.Background(), &middleware.MCPRequest{Method: "tools/call"}, func(ctx context.Context) (*middleware.MCPResponse, error) {
		return &middleware.MCPResponse{Content: []middleware.ContentBlock{{Type: "text", Text: "ok"}}}, nil
	})
	require.NoError(t, err)

	assert.False(t, resp.IsError)
	assert.Equal(t, "ok", resp.Content[0].Text)
}

func TestValidationRejectsMissingMethod(t *testing.T) {
	mw := NewValidationMiddleware()

	called := false
	resp, err := mw.Execute(context.Background(), &middleware.MCPRequest{}, func(ctx context.Context) (*middleware.MCPResponse, error) {
		called = true
		return &middleware.MCPResponse{}, nil
	})
	require.NoError(t, err)

	assert.False(t, called)
	assert.True(t, resp.IsError)
	assert.Equal(t, "Missing method in request", resp.Content[0].Text)
}

func TestValidationRejectsCallWithoutToolName(t *testing.T) {
	mw := NewValidationMiddleware()

	req := &middleware.MCPRequest{Method: "tools/call", Params: map[string]interface{}{}}
	resp, err := mw.Execute(context.Background(), req, func(ctx context.Context) (*middleware.MCPResponse, error) {
		t.Fatal("handler should not run")
		return nil, nil
	})
	require.NoError(t, err)

	assert.True(t, resp.IsError)
	assert.Equal(t, "Missing tool name in request", resp.Content[0].Text)
}

func TestTimeoutReturnsErrorContent(t *testing.T) {
	mw := NewTimeoutMiddleware(10*time.Millisecond, testLogger())

	resp, err := mw.Execute(context.Background(), &middleware.MCPRequest{Method: "tools/call"}, func(ctx context.Context) (*middleware.MCPResponse, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
			return &middleware.MCPResponse{}, nil
		}
	})
	require.NoError(t, err)

	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Content[0].Text, "Request timeout after")
}

func TestTimeoutFastHandlerSucceeds(t *testing.T) {
	mw := NewTimeoutMiddleware(time.Second, testLogger())

	resp, err := mw.Execute(context.Background(), &middleware.MCPRequest{Method: "tools/call"}, func(ctx context.Context) (*middleware.MCPResponse, error) {
		return &middleware.MCPResponse{Content: []middleware.ContentBlock{{Type: "text", Text: "fast"}}}, nil
	})
	require.NoError(t, err)

	assert.False(t, resp.IsError)
	assert.Equal(t, "fast", resp.Content[0].Text)
}

func TestMiddlewareOrdering(t *testing.T) {
	assert.Less(t, NewValidationMiddleware().Order(), NewLoggingMiddleware(testLogger(), false, false).Order())
	assert.Less(t, NewLoggingMiddleware(testLogger(), false, false).Order(), NewTimeoutMiddleware(time.Second, testLogger()).Order())
	assert.Less(t, NewTimeoutMiddleware(time.Second, testLogger()).Order(), NewErrorHandlingMiddleware(testLogger()).Order())
}
