package tools

import (
	"context"
	"fmt"

	"github.com/finvops/aplookup-mcp/internal/database"
)

// QueryExecutor is the production QueryRunner: it runs tool queries against
// the pgx pool and returns each row as a column-name keyed map.
type QueryExecutor struct {
	db *database.Database
}

// NewQueryExecutor creates a new query executor
func NewQueryExecutor(db *database.Database) *QueryExecutor {
	return &QueryExecutor{db: db}
}

// Query executes a query and collects all rows.
func (e *QueryExecutor) Query(ctx context.Context, query string, params []interface{}) ([]map[string]interface{}, error) {
	rows, err := e.db.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()

	var results []map[string]interface{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(fields))
		for i, fd := range fields {
			row[string(fd.Name)] = values[i]
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
