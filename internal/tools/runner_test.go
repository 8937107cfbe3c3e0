package tools

import (
	"context"

	"github.com/finvops/aplookup-mcp/internal/config"
	"github.com/finvops/aplookup-mcp/internal/logging"
)

// fakeRunner records every query and replays canned result sets in order.
type fakeRunner struct {
	queries []string
	params  [][]interface{}
	results [][]map[string]interface{}
	err     error
}

func (f *fakeRunner) Query(ctx context.Context, query string, params []interface{}) ([]map[string]interface{}, error) {
	f.queries = append(f.queries, query)
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	idx := len(f.queries) - 1
	if idx < len(f.results) {
		return f.results[idx], nil
	}
	return nil, nil
}

func testLogger() *logging.Logger {
	return logging.NewLogger(&config.LoggingConfig{Level: "error", Format: "json"})
}
