package database

import (
	"context"
	"fmt"
	"time"

	"github.com/finvops/aplookup-mcp/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Database wraps a pgx connection pool.
type Database struct {
	pool *pgxpool.Pool
}

// NewDatabase creates a new database instance
func NewDatabase() *Database {
	return &Database{}
}

// Connect opens the pool described by cfg. An explicit connection string
// wins over the discrete host/port fields.
func (d *Database) Connect(cfg *config.DatabaseConfig) error {
	poolConfig, err := pgxpool.ParseConfig(connString(cfg))
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}

	if pool := cfg.Pool; pool != nil {
		poolConfig.MinConns = int32(pool.GetMin())
		poolConfig.MaxConns = int32(pool.GetMax())
		poolConfig.MaxConnIdleTime = pool.GetIdleTimeout()
		poolConfig.MaxConnLifetime = time.Hour
		poolConfig.HealthCheckPeriod = time.Minute
	}

	d.pool, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	return nil
}

func connString(cfg *config.DatabaseConfig) string {
	if cfg.ConnectionString != nil && *cfg.ConnectionString != "" {
		return *cfg.ConnectionString
	}

	password := ""
	if cfg.Password != nil {
		password = *cfg.Password
	}

	sslMode := "disable"
	if cfg.SSL != nil && *cfg.SSL {
		sslMode = "require"
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.GetHost(), cfg.GetPort(), cfg.GetUser(), password, cfg.GetDatabase(), sslMode)
}

// Query executes a query and returns rows
func (d *Database) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	if d.pool == nil {
		return nil, fmt.Errorf("database not connected")
	}
	return d.pool.Query(ctx, query, args...)
}

// QueryRow executes a query and returns a single row
func (d *Database) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	if d.pool == nil {
		return &errorRow{err: fmt.Errorf("database not connected")}
	}
	return d.pool.QueryRow(ctx, query, args...)
}

// Ping tests the database connection
func (d *Database) Ping(ctx context.Context) error {
	if d.pool == nil {
		return fmt.Errorf("database not connected")
	}
	return d.pool.Ping(ctx)
}

// Close closes the connection pool
func (d *Database) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
}

type errorRow struct {
	err error
}

func (r *errorRow) Scan(dest ...interface{}) error {
	return r.err
}
