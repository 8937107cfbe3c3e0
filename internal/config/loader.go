package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ConfigLoader handles loading configuration from multiple sources
type ConfigLoader struct{}

// NewConfigLoader creates a new config loader
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// GetDefaultConfig returns a default configuration. Connection defaults match
// the documented environment surface: localhost:15432/invoices as postgres.
func GetDefaultConfig() *ServerConfig {
	timeout := 30000
	min := 2
	max := 10
	idleTimeout := 30000
	connTimeout := 5000
	output := "stderr"
	enableReqLog := true
	enableRespLog := false
	enableMetrics := false
	ssl := false

	return &ServerConfig{
		Database: DatabaseConfig{
			Host:     stringPtr("localhost"),
			Port:     intPtr(15432),
			Database: stringPtr("invoices"),
			User:     stringPtr("postgres"),
			Password: stringPtr("P@ssw0rd!"),
			Pool: &PoolConfig{
				Min:                     &min,
				Max:                     &max,
				IdleTimeoutMillis:       &idleTimeout,
				ConnectionTimeoutMillis: &connTimeout,
			},
			SSL: &ssl,
		},
		Server: ServerSettings{
			Name:          stringPtr("ap-lookup-server"),
			Version:       stringPtr("1.0.0"),
			Timeout:       &timeout,
			EnableMetrics: &enableMetrics,
		},
		Logging: LoggingConfig{
			Level:                 "info",
			Format:                "text",
			Output:                &output,
			EnableRequestLogging:  &enableReqLog,
			EnableResponseLogging: &enableRespLog,
		},
		Features: FeaturesConfig{
			Vendors:        &FeatureConfig{Enabled: true},
			Invoices:       &FeatureConfig{Enabled: true},
			PurchaseOrders: &FeatureConfig{Enabled: true},
			Amounts:        &FeatureConfig{Enabled: true},
			Summaries:      &FeatureConfig{Enabled: true},
		},
	}
}

// LoadFromFile loads configuration from a JSON file. It returns nil without
// error when no config file exists at any known location.
func (l *ConfigLoader) LoadFromFile(configPath string) (*ServerConfig, error) {
	possiblePaths := []string{}

	if configPath != "" {
		possiblePaths = append(possiblePaths, configPath)
	}

	if envPath := os.Getenv("APLOOKUP_MCP_CONFIG"); envPath != "" {
		possiblePaths = append(possiblePaths, envPath)
	}

	cwd, _ := os.Getwd()
	possiblePaths = append(possiblePaths,
		filepath.Join(cwd, "aplookup-config.json"),
	)

	if home, err := os.UserHomeDir(); err == nil {
		possiblePaths = append(possiblePaths,
			filepath.Join(home, ".aplookup", "config.json"),
		)
	}

	for _, path := range possiblePaths {
		if data, err := os.ReadFile(path); err == nil {
			var config ServerConfig
			if err := json.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
			}
			return &config, nil
		}
	}

	return nil, nil
}

// MergeWithEnv merges configuration with environment variables
func (l *ConfigLoader) MergeWithEnv(config *ServerConfig) *ServerConfig {
	merged := *config

	// Database config from env
	if connStr := os.Getenv("POSTGRES_CONNECTION_STRING"); connStr != "" {
		merged.Database.ConnectionString = &connStr
	}
	if host := os.Getenv("POSTGRES_HOST"); host != "" {
		merged.Database.Host = &host
	}
	if portStr := os.Getenv("POSTGRES_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			merged.Database.Port = &port
		}
	}
	if db := os.Getenv("POSTGRES_DATABASE"); db != "" {
		merged.Database.Database = &db
	}
	if user := os.Getenv("POSTGRES_USER"); user != "" {
		merged.Database.User = &user
	}
	if pass := os.Getenv("POSTGRES_PASSWORD"); pass != "" {
		merged.Database.Password = &pass
	}

	// Logging config from env
	if level := os.Getenv("APLOOKUP_LOG_LEVEL"); level != "" {
		merged.Logging.Level = level
	}
	if format := os.Getenv("APLOOKUP_LOG_FORMAT"); format != "" {
		merged.Logging.Format = format
	}
	if output := os.Getenv("APLOOKUP_LOG_OUTPUT"); output != "" {
		merged.Logging.Output = &output
	}

	// Metrics from env
	if metrics := os.Getenv("APLOOKUP_ENABLE_METRICS"); metrics != "" {
		enabled := metrics == "true"
		merged.Server.EnableMetrics = &enabled
	}
	if addr := os.Getenv("APLOOKUP_METRICS_ADDR"); addr != "" {
		merged.Server.MetricsAddr = &addr
	}

	return &merged
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
