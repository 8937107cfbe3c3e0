package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest([]byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}`))
	require.NoError(t, err)
	assert.Equal(t, "ping", req.Method)
	assert.Equal(t, "1", string(req.ID))
	assert.False(t, req.IsNotification())
}

func TestParseRequestRejectsBadVersion(t *testing.T) {
	_, err := ParseRequest([]byte(`{"jsonrpc":"1.0","id":1,"method":"ping"}`))
	assert.Error(t, err)

	_, err = ParseRequest([]byte(`not json`))
	assert.Error(t, err)
}

func TestIsNotification(t *testing.T) {
	req, err := ParseRequest([]byte(`{"jsonrpc":"2.0","method":"notifications/initialized"}`))
	require.NoError(t, err)
	assert.True(t, req.IsNotification())

	req, err = ParseRequest([]byte(`{"jsonrpc":"2.0","id":null,"method":"notifications/initialized"}`))
	require.NoError(t, err)
	assert.True(t, req.IsNotification())

	req, err = ParseRequest([]byte(`{"jsonrpc":"2.0","id":"abc","method":"ping"}`))
	require.NoError(t, err)
	assert.False(t, req.IsNotification())
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(&JSONRPCRequest{JSONRPC: "2.0", Method: "ping"}))
	assert.Error(t, ValidateRequest(&JSONRPCRequest{JSONRPC: "2.0"}))
	assert.Error(t, ValidateRequest(&JSONRPCRequest{JSONRPC: "", Method: "ping"}))
}

func TestCreateResponsePreservesID(t *testing.T) {
	resp := CreateResponse(json.RawMessage(`42`), map[string]string{"ok": "yes"})
	data, err := SerializeResponse(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2.0", decoded["jsonrpc"])
	assert.Equal(t, float64(42), decoded["id"])
	assert.NotContains(t, decoded, "error")
}

func TestCreateErrorResponse(t *testing.T) {
	resp := CreateErrorResponse(json.RawMessage(`"req-1"`), ErrCodeMethodNotFound, "method not found: bogus", nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeMethodNotFound, resp.Error.Code)
	assert.Equal(t, "method not found: bogus", resp.Error.Message)
	assert.Nil(t, resp.Result)
}
