package config

import "time"

// ServerConfig is the root configuration structure
type ServerConfig struct {
	Database DatabaseConfig `json:"database"`
	Server   ServerSettings `json:"server"`
	Logging  LoggingConfig  `json:"logging"`
	Features FeaturesConfig `json:"features"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	ConnectionString *string     `json:"connectionString,omitempty"`
	Host             *string     `json:"host,omitempty"`
	Port             *int        `json:"port,omitempty"`
	Database         *string     `json:"database,omitempty"`
	User             *string     `json:"user,omitempty"`
	Password         *string     `json:"password,omitempty"`
	Pool             *PoolConfig `json:"pool,omitempty"`
	SSL              *bool       `json:"ssl,omitempty"`
}

// PoolConfig holds connection pool settings
type PoolConfig struct {
	Min                     *int `json:"min,omitempty"`
	Max                     *int `json:"max,omitempty"`
	IdleTimeoutMillis       *int `json:"idleTimeoutMillis,omitempty"`
	ConnectionTimeoutMillis *int `json:"connectionTimeoutMillis,omitempty"`
}

// ServerSettings holds server configuration
type ServerSettings struct {
	Name          *string `json:"name,omitempty"`
	Version       *string `json:"version,omitempty"`
	Timeout       *int    `json:"timeout,omitempty"`
	EnableMetrics *bool   `json:"enableMetrics,omitempty"`
	MetricsAddr   *string `json:"metricsAddr,omitempty"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level                 string  `json:"level"`
	Format                string  `json:"format"`
	Output                *string `json:"output,omitempty"`
	EnableRequestLogging  *bool   `json:"enableRequestLogging,omitempty"`
	EnableResponseLogging *bool   `json:"enableResponseLogging,omitempty"`
}

// FeaturesConfig gates which tool groups are advertised
type FeaturesConfig struct {
	Vendors        *FeatureConfig `json:"vendors,omitempty"`
	Invoices       *FeatureConfig `json:"invoices,omitempty"`
	PurchaseOrders *FeatureConfig `json:"purchaseOrders,omitempty"`
	Amounts        *FeatureConfig `json:"amounts,omitempty"`
	Summaries      *FeatureConfig `json:"summaries,omitempty"`
}

// FeatureConfig holds per-feature settings
type FeatureConfig struct {
	Enabled bool `json:"enabled"`
}

// Helper methods for getting values with defaults

func (c *DatabaseConfig) GetHost() string {
	if c.Host != nil {
		return *c.Host
	}
	return "localhost"
}

func (c *DatabaseConfig) GetPort() int {
	if c.Port != nil {
		return *c.Port
	}
	return 15432
}

func (c *DatabaseConfig) GetDatabase() string {
	if c.Database != nil {
		return *c.Database
	}
	return "invoices"
}

func (c *DatabaseConfig) GetUser() string {
	if c.User != nil {
		return *c.User
	}
	return "postgres"
}

func (c *PoolConfig) GetMin() int {
	if c.Min != nil {
		return *c.Min
	}
	return 2
}

func (c *PoolConfig) GetMax() int {
	if c.Max != nil {
		return *c.Max
	}
	return 10
}

func (c *PoolConfig) GetIdleTimeout() time.Duration {
	if c.IdleTimeoutMillis != nil {
		return time.Duration(*c.IdleTimeoutMillis) * time.Millisecond
	}
	return 30 * time.Second
}

func (c *PoolConfig) GetConnectionTimeout() time.Duration {
	if c.ConnectionTimeoutMillis != nil {
		return time.Duration(*c.ConnectionTimeoutMillis) * time.Millisecond
	}
	return 5 * time.Second
}

func (s *ServerSettings) GetName() string {
	if s.Name != nil {
		return *s.Name
	}
	return "ap-lookup-server"
}

func (s *ServerSettings) GetVersion() string {
	if s.Version != nil {
		return *s.Version
	}
	return "1.0.0"
}

func (s *ServerSettings) GetTimeout() time.Duration {
	if s.Timeout != nil {
		return time.Duration(*s.Timeout) * time.Millisecond
	}
	return 30 * time.Second
}

func (s *ServerSettings) GetMetricsAddr() string {
	if s.MetricsAddr != nil {
		return *s.MetricsAddr
	}
	return ":9187"
}

// IsEnabled reports whether the feature is on. An absent feature block
// means enabled; disabling takes an explicit enabled:false.
func (f *FeatureConfig) IsEnabled() bool {
	return f == nil || f.Enabled
}
