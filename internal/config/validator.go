package config

import "fmt"

// ValidateConfig checks a configuration for values that would break startup
// and returns one message per problem. An empty slice means the config is
// usable.
func ValidateConfig(cfg *ServerConfig) []string {
	var problems []string

	db := &cfg.Database
	if db.ConnectionString == nil && db.Host == nil {
		problems = append(problems, "database needs either connectionString or host")
	}
	if db.Port != nil && (*db.Port < 1 || *db.Port > 65535) {
		problems = append(problems, fmt.Sprintf("database port %d is out of range", *db.Port))
	}
	if pool := db.Pool; pool != nil {
		if pool.Min != nil && *pool.Min < 0 {
			problems = append(problems, "pool min must be >= 0")
		}
		if pool.Max != nil && *pool.Max < 1 {
			problems = append(problems, "pool max must be >= 1")
		}
		if pool.Min != nil && pool.Max != nil && *pool.Min > *pool.Max {
			problems = append(problems, "pool min must not exceed pool max")
		}
		if pool.IdleTimeoutMillis != nil && *pool.IdleTimeoutMillis < 0 {
			problems = append(problems, "pool idleTimeoutMillis must be >= 0")
		}
		if pool.ConnectionTimeoutMillis != nil && *pool.ConnectionTimeoutMillis < 0 {
			problems = append(problems, "pool connectionTimeoutMillis must be >= 0")
		}
	}

	if cfg.Server.Timeout != nil && *cfg.Server.Timeout < 0 {
		problems = append(problems, "server timeout must be >= 0")
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log level %q", cfg.Logging.Level))
	}
	switch cfg.Logging.Format {
	case "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("unknown log format %q", cfg.Logging.Format))
	}

	return problems
}
