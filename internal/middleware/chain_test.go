package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMiddleware struct {
	name    string
	order   int
	enabled bool
	trace   *[]string
}

func (m *recordingMiddleware) Name() string  { return m.name }
func (m *recordingMiddleware) Order() int    { return m.order }
func (m *recordingMiddleware) Enabled() bool { return m.enabled }

func (m *recordingMiddleware) Execute(ctx context.Context, req *MCPRequest, next Handler) (*MCPResponse, error) {
	*m.trace = append(*m.trace, m.name)
	return next(ctx)
}

func TestChainExecutesInOrder(t *testing.T) {
	var trace []string

	chain := NewChain([]Middleware{
		&recordingMiddleware{name: "last", order: 100, enabled: true, trace: &trace},
		&recordingMiddleware{name: "first", order: 1, enabled: true, trace: &trace},
		&recordingMiddleware{name: "middle", order: 2, enabled: true, trace: &trace},
	})

	resp, err := chain.Execute(context.Background(), &MCPRequest{Method: "tools/call"}, func(ctx context.Context) (*MCPResponse, error) {
		trace = append(trace, "handler")
		return &MCPResponse{}, nil
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, []string{"first", "middle", "last", "handler"}, trace)
}

func TestChainSkipsDisabledMiddleware(t *testing.T) {
	var trace []string

	chain := NewChain([]Middleware{
		&recordingMiddleware{name: "on", order: 1, enabled: true, trace: &trace},
		&recordingMiddleware{name: "off", order: 2, enabled: false, trace: &trace},
	})

	_, err := chain.Execute(context.Background(), &MCPRequest{Method: "tools/call"}, func(ctx context.Context) (*MCPResponse, error) {
		trace = append(trace, "handler")
		return &MCPResponse{}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"on", "handler"}, trace)
}

func TestEmptyChainCallsHandler(t *testing.T) {
	chain := NewChain(nil)

	resp, err := chain.Execute(context.Background(), &MCPRequest{Method: "ping"}, func(ctx context.Context) (*MCPResponse, error) {
		return &MCPResponse{Content: []ContentBlock{{Type: "text", Text: "ok"}}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content[0].Text)
}
