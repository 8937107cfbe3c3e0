package config

import (
	"fmt"
	"os"
)

// ConfigManager manages configuration loading and access
type ConfigManager struct {
	config *ServerConfig
}

// NewConfigManager creates a new config manager
func NewConfigManager() *ConfigManager {
	return &ConfigManager{}
}

// NewConfigManagerFromConfig wraps an already built configuration, skipping
// file and environment loading.
func NewConfigManagerFromConfig(cfg *ServerConfig) *ConfigManager {
	return &ConfigManager{config: cfg}
}

// Load loads configuration from file and environment
func (m *ConfigManager) Load(configPath string) (*ServerConfig, error) {
	if m.config != nil {
		return m.config, nil
	}

	loader := NewConfigLoader()

	fileConfig, err := loader.LoadFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	baseConfig := fileConfig
	if baseConfig == nil {
		baseConfig = GetDefaultConfig()
	}

	m.config = loader.MergeWithEnv(baseConfig)

	if problems := ValidateConfig(m.config); len(problems) > 0 {
		fmt.Fprintf(os.Stderr, "Configuration validation errors:\n")
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "  - %s\n", p)
		}
		return nil, fmt.Errorf("invalid configuration")
	}

	return m.config, nil
}

// GetConfig returns the current configuration
func (m *ConfigManager) GetConfig() *ServerConfig {
	if m.config == nil {
		if _, err := m.Load(""); err != nil {
			return GetDefaultConfig()
		}
	}
	return m.config
}

// GetDatabaseConfig returns database configuration
func (m *ConfigManager) GetDatabaseConfig() *DatabaseConfig {
	return &m.GetConfig().Database
}

// GetServerSettings returns server settings
func (m *ConfigManager) GetServerSettings() *ServerSettings {
	return &m.GetConfig().Server
}

// GetLoggingConfig returns logging configuration
func (m *ConfigManager) GetLoggingConfig() *LoggingConfig {
	return &m.GetConfig().Logging
}

// GetFeaturesConfig returns features configuration
func (m *ConfigManager) GetFeaturesConfig() *FeaturesConfig {
	return &m.GetConfig().Features
}
